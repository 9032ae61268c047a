package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/metacat/audit"
	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	"github.com/dev-mohitbeniwal/metacat/model"
	testmock "github.com/dev-mohitbeniwal/metacat/test/mock"
	"github.com/dev-mohitbeniwal/metacat/util"
)

func newTestPermissionService(t *testing.T) (*PermissionService, *testmock.MockPermissionDAO, *testmock.MockAuditService, *util.NotificationService, *util.EventBus) {
	t.Helper()
	permissionDAO := &testmock.MockPermissionDAO{}
	auditService := &testmock.MockAuditService{}
	notifications := util.NewNotificationService(nil)
	bus := util.NewEventBus()

	svc := NewPermissionService(ProviderDeps{
		PermissionDAO:   permissionDAO,
		NotificationSvc: notifications,
		AuditService:    auditService,
		EventBus:        bus,
	})
	t.Cleanup(func() {
		svc.Close()
		bus.Close()
	})
	return svc, permissionDAO, auditService, notifications, bus
}

func TestPermissionService(t *testing.T) {
	t.Run("ProviderPerSession", func(t *testing.T) {
		svc, _, _, _, _ := newTestPermissionService(t)

		a := svc.Provider("a")
		assert.Same(t, a, svc.Provider("a"))
		assert.NotSame(t, a, svc.Provider("b"))
	})

	t.Run("EntityPermission_Success", func(t *testing.T) {
		svc, permissionDAO, auditService, notifications, _ := newTestPermissionService(t)
		permissionDAO.On("GetEntityPermissionByID", mock.Anything, model.ResourceEntityTestSuite, "ts-1").
			Return(&model.ResourcePermission{
				Resource:    model.ResourceEntityTestSuite,
				Permissions: []model.Permission{{Operation: model.OperationEditAll, Access: model.AccessAllow}},
			}, nil).Once()
		auditService.On("Record", mock.Anything, mock.MatchedBy(func(log audit.AuditLog) bool {
			return log.Action == audit.ActionPermissionFetch && log.Outcome == audit.OutcomeSuccess
		})).Once()

		perms, err := svc.GetEntityPermission(context.Background(), "s1", model.ResourceEntityTestSuite, "ts-1")
		require.NoError(t, err)
		assert.True(t, perms.Allowed(model.OperationEditAll))
		assert.Zero(t, notifications.Pending("s1"))
		auditService.AssertExpectations(t)
	})

	t.Run("EntityPermission_FailureNotifiesOnce", func(t *testing.T) {
		svc, permissionDAO, auditService, notifications, _ := newTestPermissionService(t)
		fetchErr := errors.New("permission service down")
		permissionDAO.On("GetEntityPermissionByID", mock.Anything, model.ResourceEntityTable, "t-1").
			Return(nil, fetchErr).Once()
		auditService.On("Record", mock.Anything, mock.Anything)

		_, err := svc.GetEntityPermission(context.Background(), "s1", model.ResourceEntityTable, "t-1")
		assert.ErrorIs(t, err, fetchErr)

		notes := notifications.Drain("s1")
		require.Len(t, notes, 1)
		assert.Equal(t, "permission service down", notes[0].Message)
	})

	t.Run("ResourcePermission_FailureNotifiesOnce", func(t *testing.T) {
		svc, permissionDAO, auditService, notifications, _ := newTestPermissionService(t)
		permissionDAO.On("GetResourcePermission", mock.Anything, model.ResourceEntityTable).
			Return(nil, metacat_errors.ErrPermissionFetch).Once()
		auditService.On("Record", mock.Anything, mock.Anything)

		_, err := svc.GetResourcePermission(context.Background(), "s1", model.ResourceEntityTable)
		assert.ErrorIs(t, err, metacat_errors.ErrPermissionFetch)
		assert.Equal(t, 1, notifications.Pending("s1"))
	})

	t.Run("ResetSession", func(t *testing.T) {
		svc, permissionDAO, auditService, notifications, bus := newTestPermissionService(t)
		permissionDAO.On("GetLoggedInUserPermissions", mock.Anything).Return([]model.ResourcePermission{}, nil)
		auditService.On("Record", mock.Anything, mock.MatchedBy(func(log audit.AuditLog) bool {
			return log.Action == audit.ActionSessionReset && log.UserID == "u1"
		})).Once()

		resets := make(chan string, 1)
		bus.Subscribe(util.EventSessionReset, func(_ context.Context, e util.Event) error {
			resets <- e.Payload.(string)
			return nil
		})

		svc.SetCurrentUser(context.Background(), "s1", &model.User{ID: "u1"})
		bus.Wait()
		old := svc.Provider("s1")
		notifications.ShowSuccess(context.Background(), "s1", "saved")

		assert.True(t, svc.ResetSession(context.Background(), "s1"))
		bus.Wait()

		assert.Equal(t, "s1", <-resets)
		assert.Zero(t, notifications.Pending("s1"))
		_, err := old.GetResourcePermission(context.Background(), model.ResourceEntityTable)
		assert.ErrorIs(t, err, metacat_errors.ErrProviderClosed)
		assert.NotSame(t, old, svc.Provider("s1"))
		auditService.AssertExpectations(t)
	})

	t.Run("LoggedInUserPermissions_UnknownSession", func(t *testing.T) {
		svc, _, _, _, _ := newTestPermissionService(t)

		perms, loaded := svc.GetLoggedInUserPermissions(context.Background(), "nobody")
		assert.Empty(t, perms)
		assert.False(t, loaded)

		svc.mu.Lock()
		_, opened := svc.providers["nobody"]
		svc.mu.Unlock()
		assert.False(t, opened)
	})

	t.Run("ResetSession_Unknown", func(t *testing.T) {
		svc, _, auditService, _, _ := newTestPermissionService(t)
		assert.False(t, svc.ResetSession(context.Background(), "missing"))
		auditService.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})

	t.Run("Sweep", func(t *testing.T) {
		svc, _, auditService, _, _ := newTestPermissionService(t)
		auditService.On("Record", mock.Anything, mock.Anything)

		clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return clock }

		svc.Provider("idle")
		clock = clock.Add(20 * time.Minute)
		svc.Provider("active")
		clock = clock.Add(5 * time.Minute)

		assert.Equal(t, 1, svc.Sweep(context.Background(), 15*time.Minute))

		svc.mu.Lock()
		_, idleKept := svc.providers["idle"]
		_, activeKept := svc.providers["active"]
		svc.mu.Unlock()
		assert.False(t, idleKept)
		assert.True(t, activeKept)
	})

	t.Run("Sweep_KeepsProviderTouchedDuringSweep", func(t *testing.T) {
		svc, _, auditService, _, _ := newTestPermissionService(t)

		clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return clock }
		svc.Provider("a")
		svc.Provider("b")
		clock = clock.Add(time.Hour)

		// the first reset touches the other session while the sweep is still running
		var touched *PermissionProvider
		var touchedID string
		auditService.On("Record", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			if touched != nil {
				return
			}
			touchedID = "a"
			if args.Get(1).(audit.AuditLog).SessionID == "a" {
				touchedID = "b"
			}
			touched = svc.Provider(touchedID)
		})

		assert.Equal(t, 2, svc.Sweep(context.Background(), 15*time.Minute))

		require.NotNil(t, touched)
		svc.mu.Lock()
		entry, kept := svc.providers[touchedID]
		svc.mu.Unlock()
		require.True(t, kept)
		assert.Same(t, touched, entry.provider)

		touched.mu.RLock()
		closed := touched.closed
		touched.mu.RUnlock()
		assert.False(t, closed)
	})
}
