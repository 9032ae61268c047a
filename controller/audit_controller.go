// controller/audit_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/metacat/audit"
	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	"github.com/dev-mohitbeniwal/metacat/util"
	helper_util "github.com/dev-mohitbeniwal/metacat/util/helper"
)

// defaultAuditWindow is how far back the activity listing looks without a from parameter
const defaultAuditWindow = 24 * time.Hour

type AuditController struct {
	auditService audit.Service
	now          func() time.Time
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
		now:          time.Now,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audit-logs", ac.ListActivity)
}

// ListActivity returns the caller's own audit entries, newest window first
func (ac *AuditController) ListActivity(c *gin.Context) {
	user := util.GetUserFromContext(c)
	if user == nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", metacat_errors.ErrUnauthorized)
		return
	}

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}
	to, err := helper_util.GetTimeParam(c, "to", ac.now())
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid time range", err)
		return
	}
	from, err := helper_util.GetTimeParam(c, "from", to.Add(-defaultAuditWindow))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid time range", err)
		return
	}

	logs, err := ac.auditService.Query(c.Request.Context(), from, to, user.ID, c.Query("action"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadGateway, "Failed to query audit logs", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": helper_util.Page(logs, limit, offset), "total": len(logs)})
}
