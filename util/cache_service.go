// util/cache_service.go

package util

import (
	"context"
	"time"

	"github.com/dev-mohitbeniwal/metacat/db"
	"github.com/dev-mohitbeniwal/metacat/model"
)

// DraftStore keeps selector form state between requests
type DraftStore interface {
	GetDraft(ctx context.Context, sessionID string) (*model.SelectorDraft, error)
	SetDraft(ctx context.Context, draft model.SelectorDraft) error
	DeleteDraft(ctx context.Context, sessionID string) error
}

// CacheService stores drafts in redis
type CacheService struct {
	draftTTL time.Duration
}

var _ DraftStore = &CacheService{}

func NewCacheService(draftTTL time.Duration) *CacheService {
	return &CacheService{draftTTL: draftTTL}
}

func (c *CacheService) GetDraft(ctx context.Context, sessionID string) (*model.SelectorDraft, error) {
	return db.GetCachedDraft(ctx, sessionID)
}

func (c *CacheService) SetDraft(ctx context.Context, draft model.SelectorDraft) error {
	return db.CacheDraft(ctx, &draft, c.draftTTL)
}

func (c *CacheService) DeleteDraft(ctx context.Context, sessionID string) error {
	return db.DeleteCachedDraft(ctx, sessionID)
}
