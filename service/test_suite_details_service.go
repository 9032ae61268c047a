// service/test_suite_details_service.go
package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dev-mohitbeniwal/metacat/audit"
	"github.com/dev-mohitbeniwal/metacat/dao"
	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	logger "github.com/dev-mohitbeniwal/metacat/logging"
	"github.com/dev-mohitbeniwal/metacat/model"
	"github.com/dev-mohitbeniwal/metacat/util"
	"github.com/dev-mohitbeniwal/metacat/view"
)

// Messages shown when a catalog call gives no usable reason
const (
	MsgFetchTestSuiteFailed  = "Error while fetching test suite"
	MsgUpdateTestSuiteFailed = "Error while updating test suite"
	MsgDeleteTestSuiteFailed = "Error while deleting test suite"
	MsgTestSuiteDeleted      = "Test suite deleted successfully!"
)

// TestSuiteDetails is what the details page shows
type TestSuiteDetails struct {
	Header      view.TestSuiteHeaderProps `json:"header"`
	Permissions model.OperationPermission `json:"permissions"`
}

// ITestSuiteDetailsService defines the test suite details page
type ITestSuiteDetailsService interface {
	GetDetails(ctx context.Context, sessionID, fqn string) (*TestSuiteDetails, error)
	Header(ctx context.Context, sessionID, fqn string) (*view.TestSuiteHeader, error)
	SetDescriptionEditable(ctx context.Context, sessionID, fqn string, editing bool) (*TestSuiteDetails, error)
	SetDeleteWidgetVisible(ctx context.Context, sessionID, fqn string, visible bool) (*TestSuiteDetails, error)
	UpdateDescription(ctx context.Context, sessionID, fqn, description string) (*TestSuiteDetails, error)
	UpdateOwner(ctx context.Context, sessionID, fqn string, owner *model.EntityReference) (*TestSuiteDetails, error)
	DeleteTestSuite(ctx context.Context, sessionID, fqn string, hardDelete bool) (string, error)
}

type detailsPage struct {
	testSuite     *model.TestSuite
	permissions   model.OperationPermission
	editing       bool
	deleteVisible bool
}

func (p *detailsPage) details() *TestSuiteDetails {
	suite := *p.testSuite
	extraInfo := []view.ExtraInfo{view.OwnerInfo(suite.Owner)}
	return &TestSuiteDetails{
		Header: view.TestSuiteHeaderProps{
			Breadcrumb:            view.TestSuiteBreadcrumb(&suite),
			ExtraInfo:             extraInfo,
			TestSuite:             &suite,
			Description:           suite.Description,
			IsDescriptionEditable: p.editing,
			DeleteWidget:          view.NewDeleteWidget(&suite, p.deleteVisible),
		},
		Permissions: p.permissions.Clone(),
	}
}

type TestSuiteDetailsService struct {
	testSuiteDAO    dao.ITestSuiteDAO
	permissionSvc   IPermissionService
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	auditService    audit.Service
	eventBus        *util.EventBus

	mu    sync.Mutex
	pages map[string]map[string]*detailsPage
}

var _ ITestSuiteDetailsService = &TestSuiteDetailsService{}

func NewTestSuiteDetailsService(
	testSuiteDAO dao.ITestSuiteDAO,
	permissionSvc IPermissionService,
	validationUtil *util.ValidationUtil,
	notificationSvc *util.NotificationService,
	auditService audit.Service,
	eventBus *util.EventBus,
) *TestSuiteDetailsService {
	s := &TestSuiteDetailsService{
		testSuiteDAO:    testSuiteDAO,
		permissionSvc:   permissionSvc,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		auditService:    auditService,
		eventBus:        eventBus,
		pages:           make(map[string]map[string]*detailsPage),
	}
	eventBus.Subscribe(util.EventSessionReset, s.handleSessionReset)
	return s
}

// GetDetails (re)loads the suite and the caller's test suite permissions.
// The two calls run concurrently; a permission failure leaves the page readable.
func (s *TestSuiteDetailsService) GetDetails(ctx context.Context, sessionID, fqn string) (*TestSuiteDetails, error) {
	var (
		suite       *model.TestSuite
		permissions model.OperationPermission
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		suite, err = s.testSuiteDAO.GetTestSuiteByName(ctx, fqn)
		return err
	})
	g.Go(func() error {
		// reported to the session by the permission service
		perms, err := s.permissionSvc.GetResourcePermission(ctx, sessionID, model.ResourceEntityTestSuite)
		if err == nil {
			permissions = perms
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("Error fetching test suite",
			zap.Error(err),
			zap.String("sessionID", sessionID),
			zap.String("fqn", fqn))
		s.notificationSvc.ShowError(ctx, sessionID, err, MsgFetchTestSuiteFailed)
		return nil, err
	}
	if permissions == nil {
		permissions = model.OperationPermission{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	page := &detailsPage{testSuite: suite, permissions: permissions}
	if previous := s.pageLocked(sessionID, fqn); previous != nil {
		page.editing = previous.editing
		page.deleteVisible = previous.deleteVisible
	}
	s.setPageLocked(sessionID, fqn, page)
	return page.details(), nil
}

// Header binds the page's current props to this service
func (s *TestSuiteDetailsService) Header(ctx context.Context, sessionID, fqn string) (*view.TestSuiteHeader, error) {
	details, err := s.current(ctx, sessionID, fqn)
	if err != nil {
		return nil, err
	}
	return &view.TestSuiteHeader{
		Props:    details.Header,
		Handlers: &headerHandlers{svc: s, sessionID: sessionID, fqn: fqn},
	}, nil
}

func (s *TestSuiteDetailsService) SetDescriptionEditable(ctx context.Context, sessionID, fqn string, editing bool) (*TestSuiteDetails, error) {
	return s.withPage(ctx, sessionID, fqn, func(p *detailsPage) { p.editing = editing })
}

func (s *TestSuiteDetailsService) SetDeleteWidgetVisible(ctx context.Context, sessionID, fqn string, visible bool) (*TestSuiteDetails, error) {
	return s.withPage(ctx, sessionID, fqn, func(p *detailsPage) { p.deleteVisible = visible })
}

// UpdateDescription patches the description and closes the editor.
// On failure the editor stays open with the previous description.
func (s *TestSuiteDetailsService) UpdateDescription(ctx context.Context, sessionID, fqn, description string) (*TestSuiteDetails, error) {
	page, err := s.page(ctx, sessionID, fqn)
	if err != nil {
		return nil, err
	}

	description = s.validationUtil.NormalizeDescription(description)
	op := util.PatchOp(page.testSuite.Description != "", description != "")
	if op == "" {
		return s.SetDescriptionEditable(ctx, sessionID, fqn, false)
	}
	ops := []model.JSONPatchOperation{{Op: op, Path: "/description"}}
	if op != util.PatchRemove {
		ops[0].Value = description
	}

	return s.patch(ctx, sessionID, fqn, page, ops, func(p *detailsPage) { p.editing = false })
}

// UpdateOwner sets or clears the suite owner
func (s *TestSuiteDetailsService) UpdateOwner(ctx context.Context, sessionID, fqn string, owner *model.EntityReference) (*TestSuiteDetails, error) {
	page, err := s.page(ctx, sessionID, fqn)
	if err != nil {
		return nil, err
	}

	op := util.PatchOp(page.testSuite.Owner != nil, owner != nil)
	if op == "" {
		return s.withPage(ctx, sessionID, fqn, func(*detailsPage) {})
	}
	ops := []model.JSONPatchOperation{{Op: op, Path: "/owner"}}
	if owner != nil {
		ops[0].Value = model.EntityReference{ID: owner.ID, Type: owner.Type}
	}

	return s.patch(ctx, sessionID, fqn, page, ops, nil)
}

// DeleteTestSuite removes the suite and returns the listing path to navigate to
func (s *TestSuiteDetailsService) DeleteTestSuite(ctx context.Context, sessionID, fqn string, hardDelete bool) (string, error) {
	page, err := s.page(ctx, sessionID, fqn)
	if err != nil {
		return "", err
	}
	suiteID := page.testSuite.ID

	err = s.testSuiteDAO.DeleteTestSuite(ctx, suiteID, hardDelete)
	s.record(ctx, sessionID, audit.ActionTestSuiteDelete, suiteID, err, map[string]bool{"hardDelete": hardDelete})
	if err != nil {
		logger.Error("Error deleting test suite",
			zap.Error(err),
			zap.String("sessionID", sessionID),
			zap.String("testSuiteID", suiteID))
		s.notificationSvc.ShowError(ctx, sessionID, err, MsgDeleteTestSuiteFailed)
		return "", err
	}

	s.mu.Lock()
	if pages := s.pages[sessionID]; pages != nil {
		delete(pages, fqn)
	}
	s.mu.Unlock()

	s.notificationSvc.ShowSuccess(ctx, sessionID, MsgTestSuiteDeleted)
	s.eventBus.Publish(ctx, util.EventTestSuiteDeleted, suiteID)
	logger.Info("Test suite deleted",
		zap.String("testSuiteID", suiteID),
		zap.Bool("hardDelete", hardDelete))
	return view.TestSuitesPath, nil
}

func (s *TestSuiteDetailsService) patch(ctx context.Context, sessionID, fqn string, page *detailsPage, ops []model.JSONPatchOperation, onSuccess func(*detailsPage)) (*TestSuiteDetails, error) {
	suiteID := page.testSuite.ID
	updated, err := s.testSuiteDAO.PatchTestSuite(ctx, suiteID, ops)
	s.record(ctx, sessionID, audit.ActionTestSuiteUpdate, suiteID, err, ops)
	if err != nil {
		logger.Error("Error updating test suite",
			zap.Error(err),
			zap.String("sessionID", sessionID),
			zap.String("testSuiteID", suiteID))
		s.notificationSvc.ShowError(ctx, sessionID, err, MsgUpdateTestSuiteFailed)
		return nil, err
	}

	return s.withPage(ctx, sessionID, fqn, func(p *detailsPage) {
		p.testSuite = updated
		if onSuccess != nil {
			onSuccess(p)
		}
	})
}

func (s *TestSuiteDetailsService) record(ctx context.Context, sessionID, action, suiteID string, err error, details interface{}) {
	if s.auditService == nil {
		return
	}
	outcome := audit.OutcomeSuccess
	if err != nil {
		outcome = audit.OutcomeFailure
	}
	s.auditService.Record(ctx, audit.AuditLog{
		SessionID: sessionID,
		UserID:    util.UserIDFromContext(ctx),
		Action:    action,
		Resource:  string(model.ResourceEntityTestSuite),
		EntityID:  suiteID,
		Outcome:   outcome,
		Details:   audit.Details(details),
	})
}

// page returns a copy of the session's page, loading it on first use
func (s *TestSuiteDetailsService) page(ctx context.Context, sessionID, fqn string) (*detailsPage, error) {
	s.mu.Lock()
	page := s.pageLocked(sessionID, fqn)
	s.mu.Unlock()

	if page == nil {
		if _, err := s.GetDetails(ctx, sessionID, fqn); err != nil {
			return nil, err
		}
		s.mu.Lock()
		page = s.pageLocked(sessionID, fqn)
		s.mu.Unlock()
	}
	if page == nil {
		return nil, errPageGone(fqn)
	}
	copied := *page
	return &copied, nil
}

func (s *TestSuiteDetailsService) current(ctx context.Context, sessionID, fqn string) (*TestSuiteDetails, error) {
	return s.withPage(ctx, sessionID, fqn, func(*detailsPage) {})
}

func (s *TestSuiteDetailsService) withPage(ctx context.Context, sessionID, fqn string, apply func(*detailsPage)) (*TestSuiteDetails, error) {
	if _, err := s.page(ctx, sessionID, fqn); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	page := s.pageLocked(sessionID, fqn)
	if page == nil {
		return nil, errPageGone(fqn)
	}
	apply(page)
	return page.details(), nil
}

func (s *TestSuiteDetailsService) pageLocked(sessionID, fqn string) *detailsPage {
	return s.pages[sessionID][fqn]
}

func (s *TestSuiteDetailsService) setPageLocked(sessionID, fqn string, page *detailsPage) {
	pages, ok := s.pages[sessionID]
	if !ok {
		pages = make(map[string]*detailsPage)
		s.pages[sessionID] = pages
	}
	pages[fqn] = page
}

// errPageGone reports a page dropped by a concurrent session reset or delete
func errPageGone(fqn string) error {
	return fmt.Errorf("%w: %s", metacat_errors.ErrTestSuiteNotFound, fqn)
}

func (s *TestSuiteDetailsService) handleSessionReset(_ context.Context, event util.Event) error {
	sessionID, ok := event.Payload.(string)
	if !ok {
		return nil
	}
	s.mu.Lock()
	delete(s.pages, sessionID)
	s.mu.Unlock()
	return nil
}

// headerHandlers forwards header actions for one page to the service
type headerHandlers struct {
	svc       *TestSuiteDetailsService
	sessionID string
	fqn       string
}

var _ view.TestSuiteHeaderHandlers = &headerHandlers{}

func (h *headerHandlers) HandleDeleteWidgetVisible(ctx context.Context, visible bool) error {
	_, err := h.svc.SetDeleteWidgetVisible(ctx, h.sessionID, h.fqn, visible)
	return err
}

func (h *headerHandlers) HandleUpdateOwner(ctx context.Context, owner *model.EntityReference) error {
	_, err := h.svc.UpdateOwner(ctx, h.sessionID, h.fqn, owner)
	return err
}

func (h *headerHandlers) DescriptionHandler(ctx context.Context, editing bool) error {
	_, err := h.svc.SetDescriptionEditable(ctx, h.sessionID, h.fqn, editing)
	return err
}

func (h *headerHandlers) HandleDescriptionUpdate(ctx context.Context, description string) error {
	_, err := h.svc.UpdateDescription(ctx, h.sessionID, h.fqn, description)
	return err
}
