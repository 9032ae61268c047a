// service/permission_provider.go
package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/metacat/audit"
	"github.com/dev-mohitbeniwal/metacat/dao"
	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	logger "github.com/dev-mohitbeniwal/metacat/logging"
	"github.com/dev-mohitbeniwal/metacat/metrics"
	"github.com/dev-mohitbeniwal/metacat/model"
	"github.com/dev-mohitbeniwal/metacat/util"
)

// userChange is the payload of util.EventUserChanged
type userChange struct {
	SessionID  string
	User       *model.User
	Generation uint64
}

// PermissionProvider caches permission sets for one console session.
//
// Entity and resource lookups fetch at most once per key for the lifetime of the
// provider; entries are never evicted. Concurrent misses on the same key are not
// coalesced: each fetches and the last store wins. Logged-in user permissions are
// re-fetched whenever the current user changes, without touching the two caches.
type PermissionProvider struct {
	sessionID       string
	permissionDAO   dao.IPermissionDAO
	notificationSvc *util.NotificationService
	auditService    audit.Service
	eventBus        *util.EventBus
	metrics         *metrics.Metrics

	lifetime     context.Context
	cancel       context.CancelFunc
	subscription util.SubscriptionID

	mu                  sync.RWMutex
	closed              bool
	currentUser         *model.User
	generation          uint64
	loaded              bool
	permissions         model.UIPermission
	entitiesPermission  map[string]model.OperationPermission
	resourcesPermission map[model.ResourceEntity]model.OperationPermission
}

// ProviderDeps are the collaborators shared by every provider
type ProviderDeps struct {
	PermissionDAO   dao.IPermissionDAO
	NotificationSvc *util.NotificationService
	AuditService    audit.Service
	EventBus        *util.EventBus
	Metrics         *metrics.Metrics
}

func NewPermissionProvider(sessionID string, deps ProviderDeps) *PermissionProvider {
	lifetime, cancel := context.WithCancel(context.Background())
	p := &PermissionProvider{
		sessionID:           sessionID,
		permissionDAO:       deps.PermissionDAO,
		notificationSvc:     deps.NotificationSvc,
		auditService:        deps.AuditService,
		eventBus:            deps.EventBus,
		metrics:             deps.Metrics,
		lifetime:            lifetime,
		cancel:              cancel,
		permissions:         model.UIPermission{},
		entitiesPermission:  make(map[string]model.OperationPermission),
		resourcesPermission: make(map[model.ResourceEntity]model.OperationPermission),
	}
	p.subscription = p.eventBus.Subscribe(util.EventUserChanged, p.handleUserChanged)
	p.metrics.ProviderOpened()
	return p
}

// scoped derives a context that also ends when the provider is closed
func (p *PermissionProvider) scoped(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(p.lifetime, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// GetEntityPermission returns the permission set of one entity
func (p *PermissionProvider) GetEntityPermission(ctx context.Context, resource model.ResourceEntity, entityID string) (model.OperationPermission, error) {
	p.mu.RLock()
	cached, ok := p.entitiesPermission[entityID]
	closed := p.closed
	p.mu.RUnlock()

	if closed {
		return nil, metacat_errors.ErrProviderClosed
	}
	if ok {
		p.metrics.CacheHit(metrics.CacheEntity)
		return cached.Clone(), nil
	}
	p.metrics.CacheMiss(metrics.CacheEntity)

	fetchCtx, cancel := p.scoped(ctx)
	defer cancel()

	response, err := p.permissionDAO.GetEntityPermissionByID(fetchCtx, resource, entityID)
	p.recordFetch(ctx, resource, entityID, err)
	if err != nil {
		p.metrics.FetchError(metrics.CacheEntity)
		return nil, err
	}

	operationPermission := model.GetOperationPermissions(*response)

	p.mu.Lock()
	if !p.closed {
		p.entitiesPermission[entityID] = operationPermission
	}
	p.mu.Unlock()

	return operationPermission.Clone(), nil
}

// GetResourcePermission returns the permission set of a resource kind
func (p *PermissionProvider) GetResourcePermission(ctx context.Context, resource model.ResourceEntity) (model.OperationPermission, error) {
	p.mu.RLock()
	cached, ok := p.resourcesPermission[resource]
	closed := p.closed
	p.mu.RUnlock()

	if closed {
		return nil, metacat_errors.ErrProviderClosed
	}
	if ok {
		p.metrics.CacheHit(metrics.CacheResource)
		return cached.Clone(), nil
	}
	p.metrics.CacheMiss(metrics.CacheResource)

	fetchCtx, cancel := p.scoped(ctx)
	defer cancel()

	response, err := p.permissionDAO.GetResourcePermission(fetchCtx, resource)
	p.recordFetch(ctx, resource, "", err)
	if err != nil {
		p.metrics.FetchError(metrics.CacheResource)
		return nil, err
	}

	operationPermission := model.GetOperationPermissions(*response)

	p.mu.Lock()
	if !p.closed {
		p.resourcesPermission[resource] = operationPermission
	}
	p.mu.Unlock()

	return operationPermission.Clone(), nil
}

// Permissions returns the logged-in user's permissions and whether they were loaded
func (p *PermissionProvider) Permissions() (model.UIPermission, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.permissions.Clone(), p.loaded
}

func (p *PermissionProvider) CurrentUser() *model.User {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.currentUser
}

// SetCurrentUser replaces the session identity. A different identity triggers a
// re-fetch of logged-in permissions through the event bus.
func (p *PermissionProvider) SetCurrentUser(ctx context.Context, user *model.User) {
	p.mu.Lock()
	if p.closed || (p.generation > 0 && p.currentUser.SameIdentity(user)) {
		if !p.closed && user != nil {
			// same principal, possibly a refreshed token
			p.currentUser = user
		}
		p.mu.Unlock()
		return
	}
	p.currentUser = user
	p.generation++
	change := userChange{SessionID: p.sessionID, User: user, Generation: p.generation}
	p.mu.Unlock()

	logger.Info("Session user changed",
		zap.String("sessionID", p.sessionID),
		zap.Uint64("generation", change.Generation))
	p.eventBus.Publish(ctx, util.EventUserChanged, change)
}

func (p *PermissionProvider) handleUserChanged(_ context.Context, event util.Event) error {
	change, ok := event.Payload.(userChange)
	if !ok || change.SessionID != p.sessionID {
		return nil
	}
	return p.fetchLoggedInUserPermissions(p.lifetime, change)
}

// RefreshPermissions re-fetches logged-in permissions for the current user synchronously
func (p *PermissionProvider) RefreshPermissions(ctx context.Context) error {
	p.mu.RLock()
	change := userChange{SessionID: p.sessionID, User: p.currentUser, Generation: p.generation}
	p.mu.RUnlock()

	fetchCtx, cancel := p.scoped(ctx)
	defer cancel()
	return p.fetchLoggedInUserPermissions(fetchCtx, change)
}

// fetchLoggedInUserPermissions keeps the previous permissions on failure and on
// results that arrive for a superseded user or after Close.
func (p *PermissionProvider) fetchLoggedInUserPermissions(ctx context.Context, change userChange) error {
	if change.User == nil {
		return nil
	}

	records, err := p.permissionDAO.GetLoggedInUserPermissions(dao.WithToken(ctx, change.User.Token))

	p.mu.Lock()
	stale := p.closed || change.Generation != p.generation
	if err == nil && !stale {
		p.permissions = model.GetUIPermission(records)
		p.loaded = true
	}
	p.mu.Unlock()

	if stale {
		logger.Debug("Discarding logged in permissions for superseded user",
			zap.String("sessionID", p.sessionID),
			zap.Uint64("generation", change.Generation))
		return nil
	}
	if err != nil {
		p.notificationSvc.ShowError(p.lifetime, p.sessionID, err, "")
		return err
	}

	logger.Info("Logged in user permissions loaded",
		zap.String("sessionID", p.sessionID),
		zap.String("userID", change.User.ID),
		zap.Int("resources", len(records)))
	return nil
}

func (p *PermissionProvider) recordFetch(ctx context.Context, resource model.ResourceEntity, entityID string, err error) {
	if p.auditService == nil {
		return
	}
	outcome := audit.OutcomeSuccess
	if err != nil {
		outcome = audit.OutcomeFailure
	}
	userID := ""
	if user := p.CurrentUser(); user != nil {
		userID = user.ID
	}
	p.auditService.Record(ctx, audit.AuditLog{
		SessionID: p.sessionID,
		UserID:    userID,
		Action:    audit.ActionPermissionFetch,
		Resource:  string(resource),
		EntityID:  entityID,
		Outcome:   outcome,
	})
}

// Close cancels in-flight fetches and drops both caches
func (p *PermissionProvider) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.entitiesPermission = nil
	p.resourcesPermission = nil
	p.mu.Unlock()

	p.cancel()
	p.eventBus.Unsubscribe(util.EventUserChanged, p.subscription)
	p.metrics.ProviderClosed()
}
