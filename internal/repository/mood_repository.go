//go:generate mockery --name MoodRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"nuna/internal/middleware"
	"nuna/internal/model"
)

// MoodRepository は気分記録の永続化を行います。
// 書き込み系は呼び出し側のトランザクション (tx) 上で実行する。
type MoodRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *model.MoodEntry) error
	CloseActive(ctx context.Context, tx *gorm.DB, userID uuid.UUID, endedAt time.Time) (int64, error)
	FindActive(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.MoodEntry, error)
	FindByRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, r model.TimeRange) ([]model.MoodEntry, error)
}

type gormMoodRepository struct{}

func NewGormMoodRepository() MoodRepository {
	return &gormMoodRepository{}
}

func (r *gormMoodRepository) Create(ctx context.Context, tx *gorm.DB, entry *model.MoodEntry) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(entry)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Active mood already exists", "user_id", entry.UserID.String())
			return fmt.Errorf("gormMoodRepository.Create: %w", model.ErrConflict)
		}
		logger.Error("Error creating mood entry in DB",
			"error", result.Error,
			"user_id", entry.UserID.String(),
			"mood", entry.Mood,
		)
		return fmt.Errorf("gormMoodRepository.Create: %w", result.Error)
	}
	return nil
}

// CloseActive はアクティブな記録に終了時刻を設定し、更新件数 (0 か 1) を返します。
func (r *gormMoodRepository) CloseActive(ctx context.Context, tx *gorm.DB, userID uuid.UUID, endedAt time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.MoodEntry{}).
		Where("user_id = ? AND ended_at IS NULL", userID).
		Update("ended_at", endedAt)
	if result.Error != nil {
		logger.Error("Error closing active mood entry in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormMoodRepository.CloseActive: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormMoodRepository) FindActive(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.MoodEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.MoodEntry
	result := db.WithContext(ctx).
		Where("user_id = ? AND ended_at IS NULL", userID).
		Order("created_at DESC").
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding active mood entry in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormMoodRepository.FindActive: %w", result.Error)
	}
	return &entry, nil
}

// FindByRange は r に含まれる (両端含む) 記録を作成日時の昇順で返します。
func (r *gormMoodRepository) FindByRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, tr model.TimeRange) ([]model.MoodEntry, error) {
	logger := middleware.GetLogger(ctx)
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	var entries []model.MoodEntry
	result := db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, tr.Start.UTC(), tr.End.UTC()).
		Order("created_at ASC").
		Order("mood_entry_id ASC").
		Find(&entries)
	if result.Error != nil {
		logger.Error("Error finding mood entries by range in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormMoodRepository.FindByRange: %w", result.Error)
	}
	return entries, nil
}

// isUniqueViolation は一意制約違反かどうかを判定します。
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
