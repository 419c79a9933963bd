//go:generate mockery --name JournalService --output ./mocks --outpkg mocks --case=underscore
// internal/service/journal_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nuna/internal/middleware"
	"nuna/internal/model"
	"nuna/internal/repository"
)

type JournalService interface {
	CreateJournal(ctx context.Context, userID uuid.UUID, req *model.PostJournalRequest) (*model.JournalEntry, error)
	GetJournal(ctx context.Context, userID, journalID uuid.UUID) (*model.JournalEntry, error)
	ListJournals(ctx context.Context, userID uuid.UUID) ([]*model.JournalEntry, error)
	UpdateJournal(ctx context.Context, userID, journalID uuid.UUID, req *model.PutJournalRequest) (*model.JournalEntry, error)
	DeleteJournal(ctx context.Context, userID, journalID uuid.UUID) error
}

type journalService struct {
	db          *gorm.DB
	journalRepo repository.JournalRepository
}

func NewJournalService(db *gorm.DB, journalRepo repository.JournalRepository) JournalService {
	return &journalService{db: db, journalRepo: journalRepo}
}

func (s *journalService) CreateJournal(ctx context.Context, userID uuid.UUID, req *model.PostJournalRequest) (*model.JournalEntry, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" {
		return nil, model.NewAppError("INVALID_TITLE", "Judul wajib diisi.", "title", model.ErrInvalidInput)
	}
	if content == "" {
		return nil, model.NewAppError("INVALID_CONTENT", "Isi jurnal wajib diisi.", "content", model.ErrInvalidInput)
	}
	mood, err := model.NormalizeJournalMood(req.Mood)
	if err != nil {
		return nil, model.NewAppError("INVALID_MOOD", "Mood tidak dikenali.", "mood", err)
	}

	entry := &model.JournalEntry{
		JournalID: uuid.New(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Mood:      mood,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.journalRepo.Create(ctx, tx, entry)
	})
	if err != nil {
		logger.Error("Failed to create journal entry", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Gagal menyimpan jurnal.", "", err)
	}
	logger.Info("Journal entry created", "journal_id", entry.JournalID)
	return entry, nil
}

func (s *journalService) GetJournal(ctx context.Context, userID, journalID uuid.UUID) (*model.JournalEntry, error) {
	entry, err := s.journalRepo.FindByID(ctx, s.db, userID, journalID)
	if err != nil {
		return nil, journalLookupError(ctx, err)
	}
	return entry, nil
}

func (s *journalService) ListJournals(ctx context.Context, userID uuid.UUID) ([]*model.JournalEntry, error) {
	entries, err := s.journalRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list journal entries", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Gagal mengambil daftar jurnal.", "", err)
	}
	if entries == nil {
		entries = []*model.JournalEntry{}
	}
	return entries, nil
}

// UpdateJournal は指定されたフィールドだけを更新します。
func (s *journalService) UpdateJournal(ctx context.Context, userID, journalID uuid.UUID, req *model.PutJournalRequest) (*model.JournalEntry, error) {
	updates := make(map[string]interface{})
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, model.NewAppError("INVALID_TITLE", "Judul wajib diisi.", "title", model.ErrInvalidInput)
		}
		updates["title"] = title
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, model.NewAppError("INVALID_CONTENT", "Isi jurnal wajib diisi.", "content", model.ErrInvalidInput)
		}
		updates["content"] = content
	}
	if req.Mood != nil {
		mood, err := model.NormalizeJournalMood(*req.Mood)
		if err != nil {
			return nil, model.NewAppError("INVALID_MOOD", "Mood tidak dikenali.", "mood", err)
		}
		updates["mood"] = mood
	}
	if len(updates) == 0 {
		return nil, model.NewAppError("NO_UPDATE_FIELDS", "Tidak ada data yang diubah.", "", model.ErrInvalidInput)
	}

	var updated *model.JournalEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.journalRepo.Update(ctx, tx, userID, journalID, updates); err != nil {
			return err
		}
		entry, err := s.journalRepo.FindByID(ctx, tx, userID, journalID)
		if err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		return nil, journalLookupError(ctx, err)
	}
	return updated, nil
}

func (s *journalService) DeleteJournal(ctx context.Context, userID, journalID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.journalRepo.Delete(ctx, tx, userID, journalID)
	})
	if err != nil {
		return journalLookupError(ctx, err)
	}
	middleware.GetLogger(ctx).Info("Journal entry deleted", "user_id", userID, "journal_id", journalID)
	return nil
}

func journalLookupError(ctx context.Context, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("NOT_FOUND", "Jurnal tidak ditemukan.", "", err)
	}
	middleware.GetLogger(ctx).Error("Journal repository error", "error", err)
	return model.NewAppError("INTERNAL_SERVER_ERROR", "Terjadi kesalahan pada server.", "", err)
}
