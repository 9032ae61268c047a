// controller/permission_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	"github.com/dev-mohitbeniwal/metacat/model"
	"github.com/dev-mohitbeniwal/metacat/service"
	"github.com/dev-mohitbeniwal/metacat/util"
)

type PermissionController struct {
	permissionService service.IPermissionService
}

func NewPermissionController(permissionService service.IPermissionService) *PermissionController {
	return &PermissionController{
		permissionService: permissionService,
	}
}

// RegisterRoutes registers the API routes
func (pc *PermissionController) RegisterRoutes(r *gin.RouterGroup) {
	permissions := r.Group("/permissions")
	{
		permissions.GET("", pc.GetLoggedInUserPermissions)
		permissions.POST("/refresh", pc.RefreshLoggedInUserPermissions)
		permissions.GET("/:resource", pc.GetResourcePermission)
		permissions.GET("/:resource/:id", pc.GetEntityPermission)
	}
}

// GetLoggedInUserPermissions returns the per-resource permission map of the caller.
// loaded stays false until the first fetch for the session's user completes.
func (pc *PermissionController) GetLoggedInUserPermissions(c *gin.Context) {
	permissions, loaded := pc.permissionService.GetLoggedInUserPermissions(c.Request.Context(), util.GetSessionIDFromContext(c))
	c.JSON(http.StatusOK, gin.H{"permissions": permissions, "loaded": loaded})
}

func (pc *PermissionController) RefreshLoggedInUserPermissions(c *gin.Context) {
	sessionID := util.GetSessionIDFromContext(c)
	if err := pc.permissionService.RefreshLoggedInUserPermissions(c.Request.Context(), sessionID); err != nil {
		respondWithPermissionError(c, err)
		return
	}
	permissions, loaded := pc.permissionService.GetLoggedInUserPermissions(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, gin.H{"permissions": permissions, "loaded": loaded})
}

func (pc *PermissionController) GetResourcePermission(c *gin.Context) {
	resource := model.ResourceEntity(c.Param("resource"))
	permissions, err := pc.permissionService.GetResourcePermission(c.Request.Context(), util.GetSessionIDFromContext(c), resource)
	if err != nil {
		respondWithPermissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, permissions)
}

func (pc *PermissionController) GetEntityPermission(c *gin.Context) {
	resource := model.ResourceEntity(c.Param("resource"))
	entityID := c.Param("id")
	permissions, err := pc.permissionService.GetEntityPermission(c.Request.Context(), util.GetSessionIDFromContext(c), resource, entityID)
	if err != nil {
		respondWithPermissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, permissions)
}

func respondWithPermissionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, metacat_errors.ErrInvalidResource), errors.Is(err, metacat_errors.ErrInvalidEntityID):
		util.RespondWithError(c, http.StatusBadRequest, "Invalid permission request", err)
	case errors.Is(err, metacat_errors.ErrProviderClosed):
		util.RespondWithError(c, http.StatusConflict, "Session was reset", err)
	case errors.Is(err, metacat_errors.ErrPermissionFetch):
		util.RespondWithError(c, http.StatusBadGateway, "Failed to fetch permissions", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
