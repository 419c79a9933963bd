//go:generate mockery --name JournalRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nuna/internal/middleware"
	"nuna/internal/model"
)

type JournalRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *model.JournalEntry) error
	FindByID(ctx context.Context, db *gorm.DB, userID, journalID uuid.UUID) (*model.JournalEntry, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.JournalEntry, error)
	FindRecent(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]model.JournalEntry, error)
	Update(ctx context.Context, tx *gorm.DB, userID, journalID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID, journalID uuid.UUID) error
}

type gormJournalRepository struct{}

func NewGormJournalRepository() JournalRepository {
	return &gormJournalRepository{}
}

func (r *gormJournalRepository) Create(ctx context.Context, tx *gorm.DB, entry *model.JournalEntry) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(entry)
	if result.Error != nil {
		logger.Error("Error creating journal entry in DB",
			"error", result.Error,
			"user_id", entry.UserID.String(),
		)
		return fmt.Errorf("gormJournalRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormJournalRepository) FindByID(ctx context.Context, db *gorm.DB, userID, journalID uuid.UUID) (*model.JournalEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.JournalEntry
	result := db.WithContext(ctx).Where("user_id = ? AND journal_id = ?", userID, journalID).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding journal entry by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"journal_id", journalID.String(),
		)
		return nil, fmt.Errorf("gormJournalRepository.FindByID: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormJournalRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.JournalEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.JournalEntry
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&entries)
	if result.Error != nil {
		logger.Error("Error finding journal entries by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormJournalRepository.FindByUser: %w", result.Error)
	}
	return entries, nil
}

// FindRecent は新しい順に最大 limit 件を返します (パターン抽出の入力)。
func (r *gormJournalRepository) FindRecent(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]model.JournalEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []model.JournalEntry
	query := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Order("journal_id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&entries); result.Error != nil {
		logger.Error("Error finding recent journal entries in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormJournalRepository.FindRecent: %w", result.Error)
	}
	return entries, nil
}

func (r *gormJournalRepository) Update(ctx context.Context, tx *gorm.DB, userID, journalID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.JournalEntry{}).
		Where("user_id = ? AND journal_id = ?", userID, journalID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating journal entry in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"journal_id", journalID.String(),
		)
		return fmt.Errorf("gormJournalRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete は論理削除です (DeletedAt)。
func (r *gormJournalRepository) Delete(ctx context.Context, tx *gorm.DB, userID, journalID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND journal_id = ?", userID, journalID).Delete(&model.JournalEntry{})
	if result.Error != nil {
		logger.Error("Error deleting journal entry in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"journal_id", journalID.String(),
		)
		return fmt.Errorf("gormJournalRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
