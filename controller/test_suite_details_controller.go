// controller/test_suite_details_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	"github.com/dev-mohitbeniwal/metacat/model"
	"github.com/dev-mohitbeniwal/metacat/service"
	"github.com/dev-mohitbeniwal/metacat/util"
)

type TestSuiteDetailsController struct {
	detailsService service.ITestSuiteDetailsService
}

func NewTestSuiteDetailsController(detailsService service.ITestSuiteDetailsService) *TestSuiteDetailsController {
	return &TestSuiteDetailsController{
		detailsService: detailsService,
	}
}

type toggleRequest struct {
	Value *bool `json:"value" binding:"required"`
}

type descriptionRequest struct {
	Description string `json:"description"`
}

type ownerRequest struct {
	Owner *model.EntityReference `json:"owner"`
}

// RegisterRoutes registers the API routes
func (dc *TestSuiteDetailsController) RegisterRoutes(r *gin.RouterGroup) {
	testSuites := r.Group("/test-suites")
	{
		testSuites.GET("/:fqn/details", dc.GetDetails)
		testSuites.PUT("/:fqn/description-edit", dc.SetDescriptionEditable)
		testSuites.PUT("/:fqn/delete-widget", dc.SetDeleteWidgetVisible)
		testSuites.PATCH("/:fqn/description", dc.UpdateDescription)
		testSuites.PATCH("/:fqn/owner", dc.UpdateOwner)
		testSuites.DELETE("/:fqn", dc.DeleteTestSuite)
	}
}

func (dc *TestSuiteDetailsController) GetDetails(c *gin.Context) {
	details, err := dc.detailsService.GetDetails(c.Request.Context(), util.GetSessionIDFromContext(c), c.Param("fqn"))
	if err != nil {
		respondWithTestSuiteError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (dc *TestSuiteDetailsController) SetDescriptionEditable(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid test suite data", metacat_errors.ErrInvalidTestSuiteData)
		return
	}

	details, err := dc.detailsService.SetDescriptionEditable(c.Request.Context(), util.GetSessionIDFromContext(c), c.Param("fqn"), *req.Value)
	if err != nil {
		respondWithTestSuiteError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (dc *TestSuiteDetailsController) SetDeleteWidgetVisible(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid test suite data", metacat_errors.ErrInvalidTestSuiteData)
		return
	}

	details, err := dc.detailsService.SetDeleteWidgetVisible(c.Request.Context(), util.GetSessionIDFromContext(c), c.Param("fqn"), *req.Value)
	if err != nil {
		respondWithTestSuiteError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (dc *TestSuiteDetailsController) UpdateDescription(c *gin.Context) {
	var req descriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid test suite data", metacat_errors.ErrInvalidTestSuiteData)
		return
	}

	details, err := dc.detailsService.UpdateDescription(c.Request.Context(), util.GetSessionIDFromContext(c), c.Param("fqn"), req.Description)
	if err != nil {
		respondWithTestSuiteError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// UpdateOwner clears the owner when the body carries no owner
func (dc *TestSuiteDetailsController) UpdateOwner(c *gin.Context) {
	var req ownerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid test suite data", metacat_errors.ErrInvalidTestSuiteData)
		return
	}

	details, err := dc.detailsService.UpdateOwner(c.Request.Context(), util.GetSessionIDFromContext(c), c.Param("fqn"), req.Owner)
	if err != nil {
		respondWithTestSuiteError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// DeleteTestSuite soft deletes unless hardDelete=true
func (dc *TestSuiteDetailsController) DeleteTestSuite(c *gin.Context) {
	hardDelete := false
	if raw := c.Query("hardDelete"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid hardDelete value", err)
			return
		}
		hardDelete = parsed
	}

	path, err := dc.detailsService.DeleteTestSuite(c.Request.Context(), util.GetSessionIDFromContext(c), c.Param("fqn"), hardDelete)
	if err != nil {
		respondWithTestSuiteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": path})
}

func respondWithTestSuiteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, metacat_errors.ErrTestSuiteNotFound):
		util.RespondWithError(c, http.StatusNotFound, "Test suite not found", err)
	case errors.Is(err, metacat_errors.ErrTestSuiteUpdateFailed):
		util.RespondWithError(c, http.StatusBadGateway, "Failed to update test suite", err)
	case errors.Is(err, metacat_errors.ErrTestSuiteDeleteFailed):
		util.RespondWithError(c, http.StatusBadGateway, "Failed to delete test suite", err)
	case errors.Is(err, metacat_errors.ErrCatalogResponse), errors.Is(err, metacat_errors.ErrCatalogRequest):
		util.RespondWithError(c, http.StatusBadGateway, "Catalog request failed", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
