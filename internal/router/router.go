package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/invayl-academya/Ai-chatbot/internal/handlers"
	"github.com/invayl-academya/Ai-chatbot/internal/middleware"
	"github.com/redis/go-redis/v9"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	redisClient *redis.Client,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Auth rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(redisClient, 10, time.Minute)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"msg":"welcome to chatbot project"}`))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Auth Routes ────
	r.Route("/auth", func(r chi.Router) {
		r.Use(authLimiter.Middleware)
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/me", authHandler.Me)
			r.Get("/users", authHandler.ListUsers)
		})
	})

	// ──── Chat Routes ────
	r.Route("/chat", func(r chi.Router) {
		r.Use(jwtAuth.Middleware)
		r.Post("/", chatHandler.Chat)
		r.Get("/all", chatHandler.ListAll)
		r.Get("/qa", chatHandler.ListQA)
		r.Get("/history", chatHandler.History)
	})

	return r
}
