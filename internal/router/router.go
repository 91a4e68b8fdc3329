package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middleware"
)

func New(chatHandler *handlers.ChatHandler, notifyHandler *handlers.NotifyHandler) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover)
	r.Use(middleware.CORS)

	// Shared limiter across all three proxy endpoints (30 req/min per IP)
	apiLimiter := middleware.NewRateLimiter(30, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(chimiddleware.AllowContentType("application/json"))
		r.Use(apiLimiter.Middleware)

		r.Post("/gemini", chatHandler.Generate)
		r.Post("/send-chat-email", notifyHandler.SendChatTranscript)
		r.Post("/send-contact-form", notifyHandler.SendContactForm)
	})

	return r
}
