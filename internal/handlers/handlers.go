package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/bonusledger/docs"
	authhandlers "github.com/GlebRadaev/bonusledger/internal/handlers/auth"
	bonushandlers "github.com/GlebRadaev/bonusledger/internal/handlers/bonus"
	poshandlers "github.com/GlebRadaev/bonusledger/internal/handlers/pos"
	"github.com/GlebRadaev/bonusledger/internal/service"
	"github.com/GlebRadaev/bonusledger/pkg/auth"
	"github.com/GlebRadaev/bonusledger/pkg/validate"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BonusHandler interface {
	GetBonus(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetTiers(w http.ResponseWriter, r *http.Request)
}

type POSHandler interface {
	Credit(w http.ResponseWriter, r *http.Request)
	Debit(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
	Promotion(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler  AuthHandler
	BonusHandler BonusHandler
	POSHandler   POSHandler

	jwtService auth.JWTServiceInterface
	posAPIKey  string
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, posAPIKey string) *Handlers {
	validator := validate.New()
	return &Handlers{
		AuthHandler:  authhandlers.New(s.AuthService, validator),
		BonusHandler: bonushandlers.New(s.LedgerService),
		POSHandler:   poshandlers.New(s.LedgerService, validator),
		jwtService:   jwtService,
		posAPIKey:    posAPIKey,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"https://*", "http://*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", auth.APIKeyHeader},
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/tiers", h.BonusHandler.GetTiers)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Get("/bonus", h.BonusHandler.GetBonus)
			r.Get("/bonus/history", h.BonusHandler.GetHistory)
		})
	})

	r.Route("/api/pos/users/{userID}", func(r chi.Router) {
		r.Use(auth.APIKeyMiddleware(h.posAPIKey))
		r.Post("/credit", h.POSHandler.Credit)
		r.Post("/debit", h.POSHandler.Debit)
		r.Post("/refund", h.POSHandler.Refund)
		r.Post("/promotions", h.POSHandler.Promotion)
		r.Post("/recalculate", h.POSHandler.Recalculate)
	})

	return r
}
