// service/permission_service.go
package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/metacat/audit"
	logger "github.com/dev-mohitbeniwal/metacat/logging"
	"github.com/dev-mohitbeniwal/metacat/model"
	"github.com/dev-mohitbeniwal/metacat/util"
)

// IPermissionService defines the permission operations of a console session
type IPermissionService interface {
	SetCurrentUser(ctx context.Context, sessionID string, user *model.User)
	GetLoggedInUserPermissions(ctx context.Context, sessionID string) (model.UIPermission, bool)
	RefreshLoggedInUserPermissions(ctx context.Context, sessionID string) error
	GetEntityPermission(ctx context.Context, sessionID string, resource model.ResourceEntity, entityID string) (model.OperationPermission, error)
	GetResourcePermission(ctx context.Context, sessionID string, resource model.ResourceEntity) (model.OperationPermission, error)
	ResetSession(ctx context.Context, sessionID string) bool
}

type providerEntry struct {
	provider *PermissionProvider
	lastUsed time.Time
}

// PermissionService owns one PermissionProvider per console session
type PermissionService struct {
	deps ProviderDeps

	mu        sync.Mutex
	providers map[string]*providerEntry
	now       func() time.Time
}

var _ IPermissionService = &PermissionService{}

func NewPermissionService(deps ProviderDeps) *PermissionService {
	return &PermissionService{
		deps:      deps,
		providers: make(map[string]*providerEntry),
		now:       time.Now,
	}
}

// Provider returns the session's provider, creating it on first use
func (s *PermissionService) Provider(sessionID string) *PermissionProvider {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.providers[sessionID]
	if !ok {
		entry = &providerEntry{provider: NewPermissionProvider(sessionID, s.deps)}
		s.providers[sessionID] = entry
		logger.Debug("Permission provider created", zap.String("sessionID", sessionID))
	}
	entry.lastUsed = s.now()
	return entry.provider
}

func (s *PermissionService) SetCurrentUser(ctx context.Context, sessionID string, user *model.User) {
	s.Provider(sessionID).SetCurrentUser(ctx, user)
}

// GetLoggedInUserPermissions reads the session's cache without opening one for unknown sessions
func (s *PermissionService) GetLoggedInUserPermissions(ctx context.Context, sessionID string) (model.UIPermission, bool) {
	s.mu.Lock()
	entry, ok := s.providers[sessionID]
	if ok {
		entry.lastUsed = s.now()
	}
	s.mu.Unlock()

	if !ok {
		return model.UIPermission{}, false
	}
	return entry.provider.Permissions()
}

func (s *PermissionService) RefreshLoggedInUserPermissions(ctx context.Context, sessionID string) error {
	return s.Provider(sessionID).RefreshPermissions(ctx)
}

// GetEntityPermission reports a failed fetch to the session once and returns the error
func (s *PermissionService) GetEntityPermission(ctx context.Context, sessionID string, resource model.ResourceEntity, entityID string) (model.OperationPermission, error) {
	perms, err := s.Provider(sessionID).GetEntityPermission(ctx, resource, entityID)
	if err != nil {
		logger.Error("Error fetching entity permission",
			zap.Error(err),
			zap.String("sessionID", sessionID),
			zap.String("resource", string(resource)),
			zap.String("entityID", entityID))
		s.deps.NotificationSvc.ShowError(ctx, sessionID, err, "")
		return nil, err
	}
	return perms, nil
}

func (s *PermissionService) GetResourcePermission(ctx context.Context, sessionID string, resource model.ResourceEntity) (model.OperationPermission, error) {
	perms, err := s.Provider(sessionID).GetResourcePermission(ctx, resource)
	if err != nil {
		logger.Error("Error fetching resource permission",
			zap.Error(err),
			zap.String("sessionID", sessionID),
			zap.String("resource", string(resource)))
		s.deps.NotificationSvc.ShowError(ctx, sessionID, err, "")
		return nil, err
	}
	return perms, nil
}

// ResetSession closes the session's provider, the equivalent of a page reload
func (s *PermissionService) ResetSession(ctx context.Context, sessionID string) bool {
	s.mu.Lock()
	entry, ok := s.providers[sessionID]
	delete(s.providers, sessionID)
	s.mu.Unlock()

	if !ok {
		return false
	}
	s.closeSession(ctx, sessionID, entry)
	return true
}

func (s *PermissionService) closeSession(ctx context.Context, sessionID string, entry *providerEntry) {
	userID := ""
	if user := entry.provider.CurrentUser(); user != nil {
		userID = user.ID
	}
	entry.provider.Close()
	s.deps.NotificationSvc.Forget(sessionID)
	s.deps.EventBus.Publish(ctx, util.EventSessionReset, sessionID)
	if s.deps.AuditService != nil {
		s.deps.AuditService.Record(ctx, audit.AuditLog{
			SessionID: sessionID,
			UserID:    userID,
			Action:    audit.ActionSessionReset,
			Outcome:   audit.OutcomeSuccess,
		})
	}

	logger.Info("Session reset", zap.String("sessionID", sessionID))
}

// Sweep closes providers idle for longer than idle and returns how many were closed.
// Expired providers are unregistered in the same pass that finds them, so a session
// used after the pass gets a fresh provider instead of losing the one it holds.
func (s *PermissionService) Sweep(ctx context.Context, idle time.Duration) int {
	s.mu.Lock()
	cutoff := s.now().Add(-idle)
	expired := make(map[string]*providerEntry)
	for id, entry := range s.providers {
		if entry.lastUsed.Before(cutoff) {
			expired[id] = entry
			delete(s.providers, id)
		}
	}
	s.mu.Unlock()

	for id, entry := range expired {
		s.closeSession(ctx, id, entry)
	}
	return len(expired)
}

// Close shuts every provider down
func (s *PermissionService) Close() {
	s.mu.Lock()
	providers := s.providers
	s.providers = make(map[string]*providerEntry)
	s.mu.Unlock()

	for _, entry := range providers {
		entry.provider.Close()
	}
}
