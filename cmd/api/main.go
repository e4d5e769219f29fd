package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/event-showcase-api/internal/application/auth"
	"github.com/event-showcase-api/internal/application/portfolio"
	"github.com/event-showcase-api/internal/config"
	"github.com/event-showcase-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/event-showcase-api/internal/infrastructure/jwt"
	"github.com/event-showcase-api/internal/infrastructure/mail"
	"github.com/event-showcase-api/internal/infrastructure/memory"
	transporthttp "github.com/event-showcase-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	slog.SetDefault(setupLogger(cfg.AppEnv))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	verifications, err := newVerificationStore(ctx, cfg)
	if err != nil {
		log.Fatalf("verification store: %v", err)
	}

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("jwt provider: %v", err)
	}

	admin, err := auth.NewAdmin(cfg.AdminEmail, cfg.AdminName, cfg.AdminPasswordHash, cfg.AdminPassword, cfg.AdminTwoFactor)
	if err != nil {
		log.Fatalf("admin account: %v", err)
	}
	if cfg.IsProduction() && cfg.AdminPasswordHash == "" {
		slog.Warn("ADMIN_PASSWORD_HASH not set, using plain ADMIN_PASSWORD")
	}

	deps := &transporthttp.Deps{
		Verifications: verifications,
		Catalog:       memory.NewCatalogStore(),
		Quotes:        memory.NewQuoteStore(),
		Mailer:        mail.NewLogMailer(slog.Default()),
		JWTProvider:   jwtProvider,
		Admin:         admin,
	}
	svcs := transporthttp.NewServices(cfg, deps)

	if err := svcs.Portfolio.Reset(ctx); err != nil {
		log.Fatalf("seed portfolio: %v", err)
	}
	slog.Info("portfolio seeded", "projects", len(portfolio.SeedProjects()), "categories", len(portfolio.SeedCategories()))

	go svcs.TwoFactor.RunSweeper(ctx, cfg.VerificationSweepInterval)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      transporthttp.NewRouter(ctx, cfg, deps, svcs),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv,
			"demo_mode", cfg.DemoMode, "verification_backend", cfg.VerificationBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	slog.Info("server stopped")
}

// setupLogger picks a human-readable handler for local work and JSON elsewhere.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "development", "local":
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

func newVerificationStore(ctx context.Context, cfg *config.Config) (transporthttp.VerificationStore, error) {
	switch cfg.VerificationBackend {
	case config.BackendMemory:
		return memory.NewVerificationStore(), nil
	case config.BackendDynamoDB:
		client, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		// First start creates the table.
		if err := dynamo.Bootstrap(ctx, client, cfg.DynamoTables); err != nil {
			return nil, err
		}
		return dynamo.NewVerificationRepo(client, cfg.DynamoTables.Verifications), nil
	default:
		return nil, fmt.Errorf("unknown verification backend %q", cfg.VerificationBackend)
	}
}
