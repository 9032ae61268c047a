// dao/permission_dao.go
package dao

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	logger "github.com/dev-mohitbeniwal/metacat/logging"
	"github.com/dev-mohitbeniwal/metacat/model"
)

// IPermissionDAO is the permission service as seen by the console
type IPermissionDAO interface {
	GetLoggedInUserPermissions(ctx context.Context) ([]model.ResourcePermission, error)
	GetEntityPermissionByID(ctx context.Context, resource model.ResourceEntity, entityID string) (*model.ResourcePermission, error)
	GetResourcePermission(ctx context.Context, resource model.ResourceEntity) (*model.ResourcePermission, error)
}

type PermissionDAO struct {
	Client *CatalogClient
	limit  int
}

var _ IPermissionDAO = &PermissionDAO{}

// NewPermissionDAO creates a DAO; limit bounds the logged-in user listing
func NewPermissionDAO(client *CatalogClient, limit int) *PermissionDAO {
	return &PermissionDAO{Client: client, limit: limit}
}

func (dao *PermissionDAO) GetLoggedInUserPermissions(ctx context.Context) ([]model.ResourcePermission, error) {
	var list model.ResourcePermissionList
	err := dao.Client.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "permissions",
		path:     "/v1/permissions",
		query:    url.Values{"limit": []string{strconv.Itoa(dao.limit)}},
	}, &list)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", metacat_errors.ErrPermissionFetch, err)
	}

	logger.Debug("Fetched logged in user permissions", zap.Int("resources", len(list.Data)))
	return list.Data, nil
}

func (dao *PermissionDAO) GetEntityPermissionByID(ctx context.Context, resource model.ResourceEntity, entityID string) (*model.ResourcePermission, error) {
	if resource == "" {
		return nil, metacat_errors.ErrInvalidResource
	}
	if entityID == "" {
		return nil, metacat_errors.ErrInvalidEntityID
	}

	var rp model.ResourcePermission
	err := dao.Client.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "permissions_entity",
		path:     "/v1/permissions/" + url.PathEscape(string(resource)) + "/" + url.PathEscape(entityID),
	}, &rp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", metacat_errors.ErrPermissionFetch, err)
	}
	return &rp, nil
}

func (dao *PermissionDAO) GetResourcePermission(ctx context.Context, resource model.ResourceEntity) (*model.ResourcePermission, error) {
	if resource == "" {
		return nil, metacat_errors.ErrInvalidResource
	}

	var rp model.ResourcePermission
	err := dao.Client.do(ctx, request{
		method:   http.MethodGet,
		endpoint: "permissions_resource",
		path:     "/v1/permissions/" + url.PathEscape(string(resource)),
	}, &rp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", metacat_errors.ErrPermissionFetch, err)
	}
	return &rp, nil
}
