// router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/metacat/controller"
	"github.com/dev-mohitbeniwal/metacat/metrics"
	"github.com/dev-mohitbeniwal/metacat/middleware"
)

// Options configures the middleware chain of the api group
type Options struct {
	JWTSecret         string
	Users             middleware.SessionUsers
	RateLimitRequests int
	RateLimitDuration time.Duration
	Metrics           *metrics.Metrics
}

func SetupRouter(controllers *controller.Controllers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	api := router.Group("/api/v1")
	api.Use(middleware.Identity(opts.JWTSecret))
	if opts.RateLimitRequests > 0 {
		api.Use(middleware.RateLimiter(opts.RateLimitRequests, opts.RateLimitDuration))
	}
	api.Use(middleware.BindSessionUser(opts.Users))

	controllers.Permission.RegisterRoutes(api)
	controllers.TestSuiteSelector.RegisterRoutes(api)
	controllers.TestSuiteDetails.RegisterRoutes(api)
	controllers.Session.RegisterRoutes(api)
	controllers.Audit.RegisterRoutes(api)

	return router
}
