// internal/handlers/journal_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"nuna/internal/middleware"
	"nuna/internal/model"
	"nuna/internal/service"
	"nuna/internal/webutil"
)

type JournalHandler struct {
	service service.JournalService
}

func NewJournalHandler(s service.JournalService) *JournalHandler {
	return &JournalHandler{service: s}
}

// PostJournal は日記を作成します
func (h *JournalHandler) PostJournal(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PostJournal"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PostJournalRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid journal request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	journal, err := h.service.CreateJournal(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating journal in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Journal created successfully", slog.String("journal_id", journal.JournalID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, journal)
}

// GetJournals は日記を新しい順に返します
func (h *JournalHandler) GetJournals(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetJournals"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	journals, err := h.service.ListJournals(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing journals in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	if journals == nil {
		journals = []*model.JournalEntry{}
	}
	logger.Info("Journals listed successfully", slog.Int("count", len(journals)))
	webutil.RespondWithJSON(w, http.StatusOK, journals)
}

func (h *JournalHandler) GetJournal(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetJournal"))

	userID, journalID, ok := h.identify(w, r, logger)
	if !ok {
		return
	}

	journal, err := h.service.GetJournal(r.Context(), userID, journalID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Journal not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting journal from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, journal)
}

// PutJournal は指定されたフィールドだけを更新します
func (h *JournalHandler) PutJournal(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "PutJournal"))

	userID, journalID, ok := h.identify(w, r, logger)
	if !ok {
		return
	}

	var req model.PutJournalRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid journal update request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	journal, err := h.service.UpdateJournal(r.Context(), userID, journalID, &req)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) {
			logger.Warn("Journal update rejected", slog.Any("error", err))
		} else {
			logger.Error("Error updating journal in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Journal updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, journal)
}

func (h *JournalHandler) DeleteJournal(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteJournal"))

	userID, journalID, ok := h.identify(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.DeleteJournal(r.Context(), userID, journalID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Journal to delete not found", slog.Any("error", err))
		} else {
			logger.Error("Error deleting journal in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Journal deleted successfully")
	webutil.RespondWithJSON(w, http.StatusOK, model.DeleteJournalResponse{Message: "Jurnal berhasil dihapus."})
}

// identify は認証ユーザーとURLの journal_id を取り出します。失敗時はレスポンス済み。
func (h *JournalHandler) identify(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, uuid.Nil, false
	}

	journalIDStr := chi.URLParam(r, "journal_id")
	journalID, err := uuid.Parse(journalIDStr)
	if err != nil {
		logger.Warn("Invalid journal ID format in URL", slog.String("journal_id_str", journalIDStr))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "Format journal_id tidak valid.", "journal_id", model.ErrInvalidInput))
		return uuid.Nil, uuid.Nil, false
	}
	return userID, journalID, true
}
