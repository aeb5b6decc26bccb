package handlers

import (
	"net/http"
	"time"

	_ "github.com/GlebRadaev/lwcoin/docs"
	"github.com/GlebRadaev/lwcoin/internal/config"
	aihandlers "github.com/GlebRadaev/lwcoin/internal/handlers/ai"
	authhandlers "github.com/GlebRadaev/lwcoin/internal/handlers/auth"
	coinhandlers "github.com/GlebRadaev/lwcoin/internal/handlers/coins"
	goalhandlers "github.com/GlebRadaev/lwcoin/internal/handlers/goals"
	purchasehandlers "github.com/GlebRadaev/lwcoin/internal/handlers/purchases"
	"github.com/GlebRadaev/lwcoin/internal/ratelimit"
	"github.com/GlebRadaev/lwcoin/internal/service"
	"github.com/GlebRadaev/lwcoin/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	LinkTelegram(w http.ResponseWriter, r *http.Request)
}

type CoinHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Spend(w http.ResponseWriter, r *http.Request)
	Refill(w http.ResponseWriter, r *http.Request)
}

type AIHandler interface {
	Invoke(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	VerifyGoogle(w http.ResponseWriter, r *http.Request)
	VerifyApple(w http.ResponseWriter, r *http.Request)
	RegisterPayment(w http.ResponseWriter, r *http.Request)
	PaymentWebhook(w http.ResponseWriter, r *http.Request)
}

type GoalHandler interface {
	CreateGoal(w http.ResponseWriter, r *http.Request)
	GetActiveGoal(w http.ResponseWriter, r *http.Request)
	DeactivateGoal(w http.ResponseWriter, r *http.Request)
	GetProgress(w http.ResponseWriter, r *http.Request)
	Recompute(w http.ResponseWriter, r *http.Request)
	LogActivity(w http.ResponseWriter, r *http.Request)
	LogFood(w http.ResponseWriter, r *http.Request)
	GetExperience(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	CoinHandler     CoinHandler
	AIHandler       AIHandler
	PurchaseHandler PurchaseHandler
	GoalHandler     GoalHandler

	Tokens       auth.JWTServiceInterface
	Limiter      ratelimit.Limiter
	AIRateLimit  int
	AIRateWindow time.Duration
	CORSOrigins  []string

	// WebhooksEnabled mounts the payment webhook. It is off without a
	// signing secret.
	WebhooksEnabled bool
}

func New(s *service.Services, cfg *config.Config, limiter ratelimit.Limiter) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		CoinHandler:     coinhandlers.New(s.CoinService),
		AIHandler:       aihandlers.New(s.AIWallet, s.AIProvider),
		PurchaseHandler: purchasehandlers.New(s.PurchaseService, cfg.WebhookSecret),
		GoalHandler:     goalhandlers.New(s.GoalService),

		Tokens:       s.Tokens,
		Limiter:      limiter,
		AIRateLimit:  cfg.AIRateLimit,
		AIRateWindow: cfg.AIRateWindow,
		CORSOrigins:  cfg.CORSOrigins,

		WebhooksEnabled: cfg.WebhookSecret != "",
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.WebhooksEnabled {
		r.Post("/api/webhooks/payments", h.PurchaseHandler.PaymentWebhook)
	} else {
		zap.L().Warn("WEBHOOK_SECRET is not set, payment webhook is disabled")
	}
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.Tokens))
			r.Get("/balance", h.CoinHandler.GetBalance)
			r.Get("/transactions", h.CoinHandler.GetTransactions)
			r.Route("/coins", func(r chi.Router) {
				r.Post("/spend", h.CoinHandler.Spend)
				r.Post("/refill", h.CoinHandler.Refill)
			})
			r.With(ratelimit.Middleware(h.Limiter, "ai", h.AIRateLimit, h.AIRateWindow)).
				Post("/ai/{feature}", h.AIHandler.Invoke)
			r.Route("/purchases", func(r chi.Router) {
				r.Post("/google", h.PurchaseHandler.VerifyGoogle)
				r.Post("/apple", h.PurchaseHandler.VerifyApple)
			})
			r.Post("/payments", h.PurchaseHandler.RegisterPayment)
			r.Post("/telegram", h.AuthHandler.LinkTelegram)
			r.Route("/goals", func(r chi.Router) {
				r.Post("/", h.GoalHandler.CreateGoal)
				r.Get("/active", h.GoalHandler.GetActiveGoal)
				r.Delete("/active", h.GoalHandler.DeactivateGoal)
				r.Get("/progress", h.GoalHandler.GetProgress)
				r.Post("/progress/recompute", h.GoalHandler.Recompute)
			})
			r.Post("/activities", h.GoalHandler.LogActivity)
			r.Post("/food", h.GoalHandler.LogFood)
			r.Get("/experience", h.GoalHandler.GetExperience)
		})
	})

	return r
}
