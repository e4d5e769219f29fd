package http

import (
	"context"
	"net/http"

	"github.com/event-showcase-api/internal/application/auth"
	"github.com/event-showcase-api/internal/application/consent"
	"github.com/event-showcase-api/internal/application/portfolio"
	"github.com/event-showcase-api/internal/application/quote"
	"github.com/event-showcase-api/internal/application/twofactor"
	"github.com/event-showcase-api/internal/config"
	"github.com/event-showcase-api/internal/domain"
	"github.com/event-showcase-api/internal/transport/http/handler"
	appmiddleware "github.com/event-showcase-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// Services are the application services behind the routes. NewServices builds
// them from Deps; main starts the code sweeper on TwoFactor.
type Services struct {
	TwoFactor twofactor.Service
	Auth      auth.Service
	Portfolio portfolio.Service
	Quote     quote.Service
	Consent   consent.Service
}

func NewServices(cfg *config.Config, deps *Deps) *Services {
	twoFactorSvc := twofactor.NewService(twofactor.ServiceDeps{
		Store:  deps.Verifications,
		Mailer: deps.Mailer,
		TTL:    cfg.VerificationTTL,
	})
	return &Services{
		TwoFactor: twoFactorSvc,
		Auth: auth.NewService(auth.ServiceDeps{
			Admin:        deps.Admin,
			Codes:        twoFactorSvc,
			Tokens:       deps.JWTProvider,
			Mailer:       deps.Mailer,
			ChallengeTTL: cfg.ChallengeTTL,
		}),
		Portfolio: portfolio.NewService(deps.Catalog),
		Quote:     quote.NewService(deps.Quotes),
		Consent:   consent.NewService(),
	}
}

// NewRouter builds and returns the application router. ctx bounds the
// background work owned by the router (rate-limiter cleanup).
func NewRouter(ctx context.Context, cfg *config.Config, deps *Deps, svcs *Services) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	if cfg.TrustedProxy {
		// The proxy must overwrite X-Forwarded-For / X-Real-IP.
		r.Use(chimiddleware.RealIP)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Language"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(appmiddleware.Locale)

	authMw := appmiddleware.Auth(deps.JWTProvider)

	// 5 requests/second, burst of 10, applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(ctx, rate.Limit(5), 10)

	healthH := handler.NewHealthHandler(cfg.AppEnv)
	twoFactorH := handler.NewTwoFactorHandler(svcs.TwoFactor, cfg.DemoMode)
	sessionH := handler.NewSessionHandler(svcs.Auth, cfg.DemoMode)
	projectH := handler.NewProjectHandler(svcs.Portfolio)
	categoryH := handler.NewCategoryHandler(svcs.Portfolio)
	quoteH := handler.NewQuoteHandler(svcs.Quote)
	consentH := handler.NewConsentHandler(svcs.Consent, cfg.IsProduction())

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)

		r.Group(func(r chi.Router) {
			r.Use(sensitiveRL.Limit)

			r.Post("/auth/send-2fa", twoFactorH.Send)
			r.Post("/auth/verify-2fa", twoFactorH.Verify)
			r.Post("/sessions/login", sessionH.Login)
			r.Post("/sessions/two-factor", sessionH.CompleteTwoFactor)
			r.Post("/password-reset", sessionH.ResetPassword)
			r.Post("/quotes", quoteH.Submit)
		})

		r.Get("/projects", projectH.List)
		r.Get("/projects/{slug}", projectH.GetBySlug)
		r.Get("/categories", categoryH.List)
		r.Get("/quote-options", quoteH.Options)
		r.Get("/consent", consentH.Get)
		r.Post("/consent", consentH.Record)

		// ── Admin routes ─────────────────────────────────────────────────────
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMw)
			r.Use(appmiddleware.RequireRole(domain.RoleAdmin))

			r.Get("/me", sessionH.Me)

			r.Get("/projects", projectH.List)
			r.Post("/projects", projectH.Create)
			r.Put("/projects/{id}", projectH.Update)
			r.Delete("/projects/{id}", projectH.Delete)

			r.Get("/categories", categoryH.List)
			r.Post("/categories", categoryH.Create)
			r.Put("/categories/{id}", categoryH.Update)
			r.Delete("/categories/{id}", categoryH.Delete)

			r.Post("/portfolio/reset", projectH.Reset)
			r.Get("/quotes", quoteH.List)
		})
	})

	return r
}
