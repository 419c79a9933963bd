// internal/handlers/mood_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"nuna/internal/middleware"
	"nuna/internal/model"
	"nuna/internal/service"
	"nuna/internal/webutil"
)

type MoodHandler struct {
	service     service.MoodService
	loc         *time.Location
	defaultDays int
	now         func() time.Time
}

// NewMoodHandler の defaultDays は一覧APIで期間指定がないときの日数
func NewMoodHandler(s service.MoodService, loc *time.Location, defaultDays int) *MoodHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &MoodHandler{
		service:     s,
		loc:         loc,
		defaultDays: defaultDays,
		now:         time.Now,
	}
}

// PostMood は新しい気分を記録します。以前の「現在の気分」は同時に終了する。
func (h *MoodHandler) PostMood(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostMood"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PostMoodRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid mood request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	entry, err := h.service.RecordMood(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error recording mood in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Mood recorded successfully", slog.String("mood_entry_id", entry.MoodEntryID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, entry)
}

// GetActiveMood は現在の気分を返します。記録がなければ 404。
func (h *MoodHandler) GetActiveMood(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetActiveMood"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	entry, err := h.service.GetActiveMood(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("No active mood")
		} else {
			logger.Error("Error getting active mood from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, entry)
}

// GetMoodHistory は期間内の気分記録を古い順に返します。
func (h *MoodHandler) GetMoodHistory(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetMoodHistory"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	rng, err := h.parseRange(r)
	if err != nil {
		logger.Warn("Invalid date range", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	if rng == nil {
		window := model.LastDays(h.now(), h.defaultDays)
		rng = &window
	}

	entries, err := h.service.ListMoodHistory(r.Context(), userID, *rng)
	if err != nil {
		logger.Error("Error listing mood history in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Mood history listed successfully", slog.Int("count", len(entries)))
	webutil.RespondWithJSON(w, http.StatusOK, entries)
}

// GetDistribution は期間内の気分の割合を返します。期間指定がなければサービス側の既定値。
func (h *MoodHandler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetDistribution"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	rng, err := h.parseRange(r)
	if err != nil {
		logger.Warn("Invalid date range", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	dist, err := h.service.GetDistribution(r.Context(), userID, rng)
	if err != nil {
		logger.Error("Error computing mood distribution", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, dist)
}

// GetStatistics は直近 days 日の日別集計を返します。
func (h *MoodHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetStatistics"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	// 0 はサービス側で設定値に置き換えられる
	days, err := webutil.ParseIntParam(r, "days", 0)
	if err != nil {
		logger.Warn("Invalid days parameter", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.GetStatistics(r.Context(), userID, days)
	if err != nil {
		logger.Error("Error computing mood statistics", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats)
}

// parseRange は startDate / endDate を読みます。両方なければ nil。
// 片方だけなら、開始は既定日数前、終了は現在時刻で補う。
func (h *MoodHandler) parseRange(r *http.Request) (*model.TimeRange, error) {
	start, hasStart, err := webutil.ParseDateParam(r, "startDate", false, h.loc)
	if err != nil {
		return nil, err
	}
	end, hasEnd, err := webutil.ParseDateParam(r, "endDate", true, h.loc)
	if err != nil {
		return nil, err
	}
	if !hasStart && !hasEnd {
		return nil, nil
	}

	now := h.now()
	if !hasEnd {
		end = now
	}
	if !hasStart {
		start = model.LastDays(end, h.defaultDays).Start
	}
	rng, err := model.NewTimeRange(start, end)
	if err != nil {
		return nil, model.NewAppError("INVALID_RANGE", "Tanggal akhir tidak boleh sebelum tanggal mulai.", "endDate", err)
	}
	return &rng, nil
}
