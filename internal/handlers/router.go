// internal/handlers/router.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"nuna/internal/config"
	"nuna/internal/middleware"
)

// HealthChecker はDB接続などの疎通確認を行います (nil なら常に OK)。
type HealthChecker func(ctx context.Context) error

// RouterDeps はルーター構築に必要なハンドラ群
type RouterDeps struct {
	Mood      *MoodHandler
	Journal   *JournalHandler
	Analytics *AnalyticsHandler
	Health    HealthChecker
}

// NewRouter は /api/v1 以下のルートとミドルウェアを設定したルーターを返します。
func NewRouter(cfg *config.Config, logger *slog.Logger, deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", healthHandler(deps.Health))

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Auth.Enabled {
			logger.Info("Applying JWT authentication middleware")
			r.Use(middleware.JWTAuthMiddleware(cfg.Auth.JWTSecret))
		} else {
			logger.Warn("Authentication disabled, using X-User-ID header")
			r.Use(middleware.DevUserContextMiddleware)
		}

		r.Route("/mood-history", func(r chi.Router) {
			r.Get("/", deps.Mood.GetMoodHistory)
			r.Post("/", deps.Mood.PostMood)
			r.Get("/active", deps.Mood.GetActiveMood)
			r.Get("/distribution", deps.Mood.GetDistribution)
			r.Get("/stats", deps.Mood.GetStatistics)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/progress", deps.Analytics.GetProgress)
			r.Get("/patterns", deps.Analytics.GetPatterns)
		})

		r.Route("/journals", func(r chi.Router) {
			r.Get("/", deps.Journal.GetJournals)
			r.Post("/", deps.Journal.PostJournal)
			r.Get("/{journal_id}", deps.Journal.GetJournal)
			r.Put("/{journal_id}", deps.Journal.PutJournal)
			r.Delete("/{journal_id}", deps.Journal.DeleteJournal)
		})
	})

	return r
}

func healthHandler(check HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				middleware.GetLogger(r.Context()).Error("Health check failed", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}
