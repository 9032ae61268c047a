// controller/test_suite_selector_controller.go
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

type TestSuiteSelectorController struct {
	selectorService service.ITestSuiteSelectorService
	onSubmit        service.SubmitFunc
}

// NewTestSuiteSelectorController builds the selector endpoints. onSubmit may be nil.
func NewTestSuiteSelectorController(selectorService service.ITestSuiteSelectorService, onSubmit service.SubmitFunc) *TestSuiteSelectorController {
	return &TestSuiteSelectorController{
		selectorService: selectorService,
		onSubmit:        onSubmit,
	}
}

type openSelectorRequest struct {
	EntityFQN    string                 `json:"entityFqn" binding:"required"`
	InitialValue *model.SelectTestSuite `json:"initialValue"`
}

type selectorModeRequest struct {
	IsNewTestSuite *bool `json:"isNewTestSuite" binding:"required"`
}

// RegisterRoutes registers the API routes
func (sc *TestSuiteSelectorController) RegisterRoutes(r *gin.RouterGroup) {
	selector := r.Group("/test-suites/selector")
	{
		selector.POST("", sc.Open)
		selector.GET("", sc.State)
		selector.PUT("", sc.Update)
		selector.PUT("/mode", sc.SetMode)
		selector.POST("/submit", sc.Submit)
		selector.DELETE("", sc.Cancel)
	}
}

func (sc *TestSuiteSelectorController) Open(c *gin.Context) {
	var req openSelectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid selector data", metacat_errors.ErrInvalidTestSuiteData)
		return
	}

	state, err := sc.selectorService.Open(c.Request.Context(), util.GetSessionIDFromContext(c), req.EntityFQN, req.InitialValue)
	if err != nil {
		respondWithSelectorError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

func (sc *TestSuiteSelectorController) State(c *gin.Context) {
	state, err := sc.selectorService.State(c.Request.Context(), util.GetSessionIDFromContext(c))
	if err != nil {
		respondWithSelectorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (sc *TestSuiteSelectorController) SetMode(c *gin.Context) {
	var req selectorModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid selector data", metacat_errors.ErrInvalidTestSuiteData)
		return
	}

	state, err := sc.selectorService.SetMode(c.Request.Context(), util.GetSessionIDFromContext(c), *req.IsNewTestSuite)
	if err != nil {
		respondWithSelectorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (sc *TestSuiteSelectorController) Update(c *gin.Context) {
	var fields model.SelectorFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid selector data", metacat_errors.ErrInvalidTestSuiteData)
		return
	}

	state, err := sc.selectorService.Update(c.Request.Context(), util.GetSessionIDFromContext(c), fields)
	if err != nil {
		respondWithSelectorError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Submit answers 422 with per-field messages when the form is incomplete
func (sc *TestSuiteSelectorController) Submit(c *gin.Context) {
	selection, err := sc.selectorService.Submit(c.Request.Context(), util.GetSessionIDFromContext(c), sc.onSubmit)
	if err != nil {
		respondWithSelectorError(c, err)
		return
	}
	c.JSON(http.StatusOK, selection)
}

func (sc *TestSuiteSelectorController) Cancel(c *gin.Context) {
	path, err := sc.selectorService.Cancel(c.Request.Context(), util.GetSessionIDFromContext(c))
	if err != nil {
		respondWithSelectorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": path})
}

func respondWithSelectorError(c *gin.Context, err error) {
	var verrs util.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		util.RespondWithValidation(c, http.StatusUnprocessableEntity, verrs)
	case errors.Is(err, metacat_errors.ErrSelectorNotOpen):
		util.RespondWithError(c, http.StatusNotFound, "Test suite selector is not open", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
