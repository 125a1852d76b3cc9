package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"concierge/config"
	"concierge/handlers"
	"concierge/middleware"
	"concierge/routes"
	"concierge/services/contact"
	"concierge/services/pages"
	"concierge/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	logger := utils.GetLogger()
	cfg := config.AppConfig

	gw, closeGateway, err := openGateway(ctx)
	if err != nil {
		return err
	}
	defer closeGateway()

	sink, closeSink, err := openSink(logger)
	if err != nil {
		return err
	}
	defer closeSink()

	content, err := pages.DefaultContent()
	if err != nil {
		return err
	}

	contactSvc := contact.NewService(sink, logger)
	builder := pages.NewBuilder(gw, utils.ImageResolver(), content, logger, pages.Options{
		FeaturedLimit:    cfg.HomeFeaturedLimit,
		ContactSimulated: contactSvc.Simulated(),
	})

	monitor := utils.NewHealthMonitor(healthChecks(gw), logger)
	if err := monitor.Start(cfg.HealthCheckSchedule); err != nil {
		return err
	}
	defer monitor.Stop()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiterStore(cfg.MaxRequestsPerMin)))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewPageHandler(builder),
		handlers.NewContactHandler(contactSvc),
		handlers.NewHealthHandler(monitor),
	)
	routes.RegisterRoutes(router, handlerBundle, cfg.Origins())

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("cmsDriver", cfg.CMSDriver))
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("serve: server failed", zap.Error(err))
			return err
		}
		return nil
	case <-quit:
	case <-ctx.Done():
	}
	logger.Info("serve: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), utils.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("serve: server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("serve: server stopped gracefully")
	return nil
}
