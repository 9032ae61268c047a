// test/mock/store.go
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/metacat/audit"
	"github.com/dev-mohitbeniwal/metacat/model"
)

// MemoryDraftStore is an in-memory util.DraftStore. Like redis, it fails on a done context.
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string]model.SelectorDraft
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]model.SelectorDraft)}
}

func (s *MemoryDraftStore) GetDraft(ctx context.Context, sessionID string) (*model.SelectorDraft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, nil
	}
	return &draft, nil
}

func (s *MemoryDraftStore) SetDraft(ctx context.Context, draft model.SelectorDraft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.SessionID] = draft
	return nil
}

func (s *MemoryDraftStore) DeleteDraft(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, log audit.AuditLog) {
	m.Called(ctx, log)
}

func (m *MockAuditService) Query(ctx context.Context, from, to time.Time, userID, action string) ([]audit.AuditLog, error) {
	args := m.Called(ctx, from, to, userID, action)
	logs, _ := args.Get(0).([]audit.AuditLog)
	return logs, args.Error(1)
}
