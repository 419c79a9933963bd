// internal/handlers/analytics_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"nuna/internal/middleware"
	"nuna/internal/service"
	"nuna/internal/webutil"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
}

func NewAnalyticsHandler(s service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: s}
}

// GetProgress は直近 days 日とその前の同じ長さの期間を比べます。
func (h *AnalyticsHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetProgress"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	days, err := webutil.ParseIntParam(r, "days", 0)
	if err != nil {
		logger.Warn("Invalid days parameter", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.GetProgress(r.Context(), userID, days)
	if err != nil {
		logger.Error("Error computing progress", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress)
}

// GetPatterns は最近の日記から見つかったパターンを返します。
func (h *AnalyticsHandler) GetPatterns(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetPatterns"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	patterns, err := h.service.GetPatterns(r.Context(), userID)
	if err != nil {
		logger.Error("Error extracting patterns", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Patterns extracted", slog.Int("entries_analyzed", patterns.EntriesAnalyzed), slog.Bool("insufficient_data", patterns.InsufficientData))
	webutil.RespondWithJSON(w, http.StatusOK, patterns)
}
