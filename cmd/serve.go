// cmd/serve.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/metacat/audit"
	"github.com/dev-mohitbeniwal/metacat/config"
	"github.com/dev-mohitbeniwal/metacat/controller"
	"github.com/dev-mohitbeniwal/metacat/dao"
	"github.com/dev-mohitbeniwal/metacat/db"
	logger "github.com/dev-mohitbeniwal/metacat/logging"
	"github.com/dev-mohitbeniwal/metacat/metrics"
	"github.com/dev-mohitbeniwal/metacat/router"
	"github.com/dev-mohitbeniwal/metacat/service"
	"github.com/dev-mohitbeniwal/metacat/util"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the console API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		return fmt.Errorf("failed to initialize Redis: %w", err)
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)
	defer eventBus.Close()

	m := metrics.New("metacat")

	// Audit is best effort; without Elasticsearch entries are only logged
	var auditRepository audit.Repository
	esRepository, err := audit.NewElasticsearchRepository(config.GetString("elasticsearch.url"), config.GetString("elasticsearch.index"))
	if err != nil {
		logger.Warn("Audit repository unavailable", zap.Error(err))
	} else {
		auditRepository = esRepository
	}
	auditService := audit.NewService(auditRepository)

	client := dao.NewCatalogClient(config.GetString("catalog.baseURL"), config.GetDuration("catalog.timeout"), m)
	maxResults := config.GetInt("catalog.maxResults")

	services, err := service.InitializeServices(
		client,
		auditService,
		util.NewValidationUtil(),
		util.NewCacheService(config.GetDuration("redis.draftTTL")),
		util.NewNotificationService(m),
		eventBus,
		m,
		service.ServiceOptions{PermissionLimit: maxResults, TestSuiteLimit: maxResults},
	)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer services.Permission.Close()

	go sweepSessions(ctx, services.Permission,
		config.GetDuration("session.sweepInterval"), config.GetDuration("session.idleTimeout"))

	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(controller.InitializeControllers(services), router.Options{
		JWTSecret:         config.GetString("auth.jwtSecret"),
		Users:             services.Permission,
		RateLimitRequests: config.GetInt("rateLimit.requests"),
		RateLimitDuration: config.GetDuration("rateLimit.window"),
		Metrics:           m,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server exiting")
	return nil
}

// sweepSessions drops the caches of sessions idle for longer than idle
func sweepSessions(ctx context.Context, permissions *service.PermissionService, every, idle time.Duration) {
	if every <= 0 || idle <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if closed := permissions.Sweep(ctx, idle); closed > 0 {
				logger.Info("Idle sessions swept", zap.Int("closed", closed))
			}
		}
	}
}
