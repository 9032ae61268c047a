// service/test_suite_selector.go
package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/metacat/audit"
	"github.com/dev-mohitbeniwal/metacat/dao"
	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	logger "github.com/dev-mohitbeniwal/metacat/logging"
	"github.com/dev-mohitbeniwal/metacat/model"
	"github.com/dev-mohitbeniwal/metacat/util"
)

// SubmitFunc receives a validated selection. Nothing is persisted by the selector.
type SubmitFunc func(ctx context.Context, selection model.SelectTestSuite) error

// ITestSuiteSelectorService defines the "select or create a test suite" form
type ITestSuiteSelectorService interface {
	Open(ctx context.Context, sessionID, entityFQN string, initial *model.SelectTestSuite) (*model.SelectorState, error)
	State(ctx context.Context, sessionID string) (*model.SelectorState, error)
	SetMode(ctx context.Context, sessionID string, isNewTestSuite bool) (*model.SelectorState, error)
	Update(ctx context.Context, sessionID string, fields model.SelectorFields) (*model.SelectorState, error)
	Submit(ctx context.Context, sessionID string, onSubmit SubmitFunc) (*model.SelectTestSuite, error)
	Cancel(ctx context.Context, sessionID string) (string, error)
}

// selectorSession holds the suites loaded when the selector was opened
type selectorSession struct {
	entityFQN  string
	testSuites []model.TestSuite
}

type TestSuiteSelector struct {
	testSuiteDAO    dao.ITestSuiteDAO
	drafts          util.DraftStore
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	auditService    audit.Service
	eventBus        *util.EventBus
	listLimit       int

	mu       sync.RWMutex
	sessions map[string]*selectorSession
}

var _ ITestSuiteSelectorService = &TestSuiteSelector{}

func NewTestSuiteSelector(
	testSuiteDAO dao.ITestSuiteDAO,
	drafts util.DraftStore,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	auditService audit.Service,
	eventBus *util.EventBus,
	listLimit int,
) *TestSuiteSelector {
	s := &TestSuiteSelector{
		testSuiteDAO:    testSuiteDAO,
		drafts:          drafts,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		auditService:    auditService,
		eventBus:        eventBus,
		listLimit:       listLimit,
		sessions:        make(map[string]*selectorSession),
	}
	eventBus.Subscribe(util.EventSessionReset, s.handleSessionReset)
	return s
}

// Open starts a selector for entityFQN, loading every test suite once.
// A failed load is reported to the session and leaves the list empty.
func (s *TestSuiteSelector) Open(ctx context.Context, sessionID, entityFQN string, initial *model.SelectTestSuite) (*model.SelectorState, error) {
	suites, err := s.testSuiteDAO.ListTestSuites(ctx, s.listLimit)
	if err != nil {
		logger.Error("Error loading test suites",
			zap.Error(err),
			zap.String("sessionID", sessionID),
			zap.String("entityFQN", entityFQN))
		s.notificationSvc.ShowError(ctx, sessionID, err, "")
		suites = []model.TestSuite{}
	}

	draft := model.SelectorDraft{SessionID: sessionID, EntityFQN: entityFQN}
	if initial != nil {
		draft.IsNewTestSuite = initial.IsNewTestSuite
		draft.TestSuiteName = initial.Name
		draft.Description = initial.Description
		if initial.Data != nil {
			draft.TestSuiteID = initial.Data.ID
		}
	}

	if err := s.drafts.SetDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to store selector draft: %w", err)
	}

	s.mu.Lock()
	s.sessions[sessionID] = &selectorSession{entityFQN: entityFQN, testSuites: suites}
	s.mu.Unlock()

	logger.Info("Test suite selector opened",
		zap.String("sessionID", sessionID),
		zap.String("entityFQN", entityFQN),
		zap.Int("testSuites", len(suites)))
	return &model.SelectorState{SelectorDraft: draft, TestSuites: suites}, nil
}

func (s *TestSuiteSelector) State(ctx context.Context, sessionID string) (*model.SelectorState, error) {
	session, draft, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &model.SelectorState{SelectorDraft: *draft, TestSuites: session.testSuites}, nil
}

// SetMode switches between picking an existing suite and creating a new one.
// Name and description drafts survive the switch.
func (s *TestSuiteSelector) SetMode(ctx context.Context, sessionID string, isNewTestSuite bool) (*model.SelectorState, error) {
	return s.mutate(ctx, sessionID, func(draft *model.SelectorDraft) {
		draft.IsNewTestSuite = isNewTestSuite
	})
}

// Update applies the fields present in fields
func (s *TestSuiteSelector) Update(ctx context.Context, sessionID string, fields model.SelectorFields) (*model.SelectorState, error) {
	return s.mutate(ctx, sessionID, func(draft *model.SelectorDraft) {
		if fields.TestSuiteID != nil {
			draft.TestSuiteID = *fields.TestSuiteID
		}
		if fields.TestSuiteName != nil {
			draft.TestSuiteName = *fields.TestSuiteName
		}
		if fields.Description != nil {
			draft.Description = *fields.Description
		}
	})
}

// Submit validates the draft and hands the selection to onSubmit.
// Validation failures come back as util.ValidationErrors and onSubmit is not called.
func (s *TestSuiteSelector) Submit(ctx context.Context, sessionID string, onSubmit SubmitFunc) (*model.SelectTestSuite, error) {
	session, draft, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	description := s.validationUtil.NormalizeDescription(draft.Description)
	form := util.SelectionForm{
		IsNewTestSuite: draft.IsNewTestSuite,
		TestSuiteID:    draft.TestSuiteID,
		TestSuiteName:  draft.TestSuiteName,
		Description:    description,
		KnownIDs:       make(map[string]struct{}, len(session.testSuites)),
		KnownNames:     make(map[string]struct{}, len(session.testSuites)),
	}
	for _, suite := range session.testSuites {
		form.KnownIDs[suite.ID] = struct{}{}
		form.KnownNames[suite.Name] = struct{}{}
	}
	if err := s.validationUtil.ValidateSelection(form); err != nil {
		return nil, err
	}

	selection := model.SelectTestSuite{IsNewTestSuite: draft.IsNewTestSuite}
	if draft.IsNewTestSuite {
		selection.Name = draft.TestSuiteName
		selection.Description = description
	}
	for i := range session.testSuites {
		if session.testSuites[i].ID == draft.TestSuiteID {
			suite := session.testSuites[i]
			selection.Data = &suite
			break
		}
	}

	if onSubmit != nil {
		if err := onSubmit(ctx, selection); err != nil {
			return nil, err
		}
	}

	if s.auditService != nil {
		s.auditService.Record(ctx, audit.AuditLog{
			SessionID: sessionID,
			UserID:    util.UserIDFromContext(ctx),
			Action:    audit.ActionTestSuiteSelect,
			Resource:  string(model.ResourceEntityTestSuite),
			EntityID:  draft.TestSuiteID,
			Outcome:   audit.OutcomeSuccess,
			Details:   audit.Details(selection),
		})
	}
	s.eventBus.Publish(ctx, util.EventTestSuiteSelected, selection)

	logger.Info("Test suite selected",
		zap.String("sessionID", sessionID),
		zap.Bool("isNewTestSuite", selection.IsNewTestSuite))
	return &selection, nil
}

// Cancel drops the selector and returns where the caller navigates back to
func (s *TestSuiteSelector) Cancel(ctx context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return "", metacat_errors.ErrSelectorNotOpen
	}
	if err := s.drafts.DeleteDraft(ctx, sessionID); err != nil {
		logger.Warn("Failed to delete selector draft", zap.Error(err), zap.String("sessionID", sessionID))
	}
	return TableTabPath(session.entityFQN), nil
}

// TableTabPath is the schema tab of a table's details page
func TableTabPath(entityFQN string) string {
	return "/table/" + entityFQN + "/schema"
}

func (s *TestSuiteSelector) mutate(ctx context.Context, sessionID string, apply func(*model.SelectorDraft)) (*model.SelectorState, error) {
	session, draft, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	apply(draft)
	if err := s.drafts.SetDraft(ctx, *draft); err != nil {
		return nil, fmt.Errorf("failed to store selector draft: %w", err)
	}
	return &model.SelectorState{SelectorDraft: *draft, TestSuites: session.testSuites}, nil
}

func (s *TestSuiteSelector) load(ctx context.Context, sessionID string) (*selectorSession, *model.SelectorDraft, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil, metacat_errors.ErrSelectorNotOpen
	}

	draft, err := s.drafts.GetDraft(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load selector draft: %w", err)
	}
	if draft == nil {
		// expired in the store
		return nil, nil, metacat_errors.ErrSelectorNotOpen
	}
	return session, draft, nil
}

func (s *TestSuiteSelector) handleSessionReset(ctx context.Context, event util.Event) error {
	sessionID, ok := event.Payload.(string)
	if !ok {
		return nil
	}
	s.mu.Lock()
	_, open := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !open {
		return nil
	}
	// the publishing request may already be finished
	return s.drafts.DeleteDraft(context.WithoutCancel(ctx), sessionID)
}
