// audit/service.go
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/metacat/logging"
)

type Service interface {
	Record(ctx context.Context, log AuditLog)
	Query(ctx context.Context, from, to time.Time, userID, action string) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Record stores an event best effort; audit failures never fail the caller.
// A nil repository disables auditing.
func (s *service) Record(ctx context.Context, log AuditLog) {
	if s.repo == nil {
		return
	}
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}
	if err := s.repo.Log(ctx, log); err != nil {
		logger.Error("Failed to create audit log",
			zap.Error(err),
			zap.String("action", log.Action),
			zap.String("sessionID", log.SessionID))
	}
}

func (s *service) Query(ctx context.Context, from, to time.Time, userID, action string) ([]AuditLog, error) {
	if s.repo == nil {
		return []AuditLog{}, nil
	}
	return s.repo.Query(ctx, from, to, userID, action)
}

// Details marshals v for AuditLog.Details, dropping it on failure
func Details(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}
