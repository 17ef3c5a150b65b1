package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zatekoja/arovia/web/internal/adapters/preferences"
	"github.com/zatekoja/arovia/web/internal/api/handlers"
	"github.com/zatekoja/arovia/web/internal/api/routes"
	"github.com/zatekoja/arovia/web/internal/application/navigation"
	"github.com/zatekoja/arovia/web/internal/application/sessions"
	"github.com/zatekoja/arovia/web/internal/domain/providers"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/redis"
	"github.com/zatekoja/arovia/web/internal/infrastructure/observability"
	"github.com/zatekoja/arovia/web/pkg/config"
)

func main() {
	if err := newRootCmd(runServer).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI; serve is also what the bare command runs
func newRootCmd(serve func() error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arovia-web",
		Short: "Arovia healthcare access web interface",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(serveCmd(serve))
	rootCmd.AddCommand(routesCmd())
	return rootCmd
}

func serveCmd(serve func() error) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print every screen and action route",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, route := range navigation.DefaultRouter().Routes() {
				fmt.Fprintf(out, "GET  %-20s %s\n", route.Path, route.Title)
			}
			for _, action := range routes.Actions {
				fmt.Fprintf(out, "%-34s -> %s\n", action.Pattern, action.Screen)
			}
			return nil
		},
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.IsDevelopment())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			observability.AttachOTelHook(cfg.OTEL.ServiceName)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	// Preferences live in Redis when available, in memory otherwise
	var prefs providers.PreferenceStore = preferences.NewMemoryStore()
	var healthCheck func(context.Context) error
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable; preferences kept in memory")
		} else {
			defer redisClient.Close()
			prefs = preferences.NewRedisStore(redisClient)
			healthCheck = redisClient.Ping
			log.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis preference store initialized")
		}
	}

	apiClient := arovia.NewClient(cfg.API.BaseURL,
		arovia.WithTimeout(cfg.API.Timeout),
		arovia.WithReadAttempts(cfg.API.ReadAttempts),
		arovia.WithMetrics(metrics),
	)

	screens := navigation.DefaultRouter()
	sessionManager := sessions.NewManager(screens, apiClient, prefs, sessions.Options{
		DefaultUserID:         cfg.Session.DefaultUserID,
		IdleTTL:               cfg.Session.IdleTTL,
		ToastTTL:              cfg.UI.ToastTTL,
		SOSLockout:            cfg.UI.SOSLockout,
		LanguageRedirectDelay: cfg.UI.LanguageRedirectDelay,
		Metrics:               metrics,
	})
	defer sessionManager.Close()

	if cfg.Session.SweepInterval > 0 {
		go sessionManager.Run(ctx, cfg.Session.SweepInterval)
	}

	renderer, err := handlers.NewRenderer()
	if err != nil {
		return err
	}

	router := routes.NewRouter(
		screens,
		handlers.NewScreenHandler(renderer, prefs),
		handlers.NewNotificationHandler(cfg.UI.StreamHeartbeat),
		sessionManager,
		metrics,
		routes.Options{
			CookieName:     cfg.Session.CookieName,
			SecureCookie:   cfg.Session.SecureCookie,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			HealthCheck:    healthCheck,
		},
	)

	// No WriteTimeout: the notification stream is long-lived
	server := &http.Server{
		Addr:              cfg.Server.ServerAddr(),
		Handler:           router.SetupRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("api", cfg.API.BaseURL).
			Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info().Msg("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
	return nil
}
