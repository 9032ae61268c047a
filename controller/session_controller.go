// controller/session_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/metacat/service"
	"github.com/dev-mohitbeniwal/metacat/util"
)

type SessionController struct {
	permissionService   service.IPermissionService
	notificationService *util.NotificationService
}

func NewSessionController(permissionService service.IPermissionService, notificationService *util.NotificationService) *SessionController {
	return &SessionController{
		permissionService:   permissionService,
		notificationService: notificationService,
	}
}

// RegisterRoutes registers the API routes
func (sc *SessionController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/notifications", sc.GetNotifications)
	r.DELETE("/session", sc.ResetSession)
}

// GetNotifications drains the toasts queued for the session
func (sc *SessionController) GetNotifications(c *gin.Context) {
	notifications := sc.notificationService.Drain(util.GetSessionIDFromContext(c))
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// ResetSession drops every cache the session holds
func (sc *SessionController) ResetSession(c *gin.Context) {
	reset := sc.permissionService.ResetSession(c.Request.Context(), util.GetSessionIDFromContext(c))
	c.JSON(http.StatusOK, gin.H{"reset": reset})
}
