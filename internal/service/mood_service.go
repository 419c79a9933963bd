//go:generate mockery --name MoodService --output ./mocks --outpkg mocks --case=underscore
// internal/service/mood_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nuna/internal/analytics"
	"nuna/internal/config"
	"nuna/internal/middleware"
	"nuna/internal/model"
	"nuna/internal/repository"
)

// 集計期間として受け付ける最大日数
const maxWindowDays = 366

type MoodService interface {
	RecordMood(ctx context.Context, userID uuid.UUID, req *model.PostMoodRequest) (*model.MoodEntry, error)
	GetActiveMood(ctx context.Context, userID uuid.UUID) (*model.MoodEntry, error)
	ListMoodHistory(ctx context.Context, userID uuid.UUID, r model.TimeRange) ([]model.MoodEntry, error)
	GetDistribution(ctx context.Context, userID uuid.UUID, r *model.TimeRange) (*model.MoodDistribution, error)
	GetStatistics(ctx context.Context, userID uuid.UUID, days int) (*model.MoodStatistics, error)
}

type moodService struct {
	db       *gorm.DB
	moodRepo repository.MoodRepository
	cfg      *config.Config
	loc      *time.Location
	now      func() time.Time
}

// NewMoodService の loc は日別集計の暦日に使うタイムゾーン (nil なら UTC)
func NewMoodService(db *gorm.DB, moodRepo repository.MoodRepository, cfg *config.Config, loc *time.Location) MoodService {
	if loc == nil {
		loc = time.UTC
	}
	return &moodService{
		db:       db,
		moodRepo: moodRepo,
		cfg:      cfg,
		loc:      loc,
		now:      time.Now,
	}
}

// RecordMood は現在のアクティブな記録を閉じ、新しい記録を作成します。
// 2つの書き込みは同じトランザクションで行い、どちらかが失敗すれば両方ロールバックされる。
func (s *moodService) RecordMood(ctx context.Context, userID uuid.UUID, req *model.PostMoodRequest) (*model.MoodEntry, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	mood, err := model.ParseMood(req.Mood)
	if err != nil {
		return nil, model.NewAppError("INVALID_MOOD", "Mood tidak dikenali.", "mood", err)
	}

	now := s.now().UTC()
	entry := &model.MoodEntry{
		MoodEntryID: uuid.New(),
		UserID:      userID,
		Mood:        mood,
		CreatedAt:   now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		closed, err := s.moodRepo.CloseActive(ctx, tx, userID, now)
		if err != nil {
			return err
		}
		if err := s.moodRepo.Create(ctx, tx, entry); err != nil {
			return err
		}
		logger.Info("Mood recorded", "mood", mood, "closed_previous", closed > 0)
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Concurrent mood record detected", "error", err)
			return nil, model.NewAppError("CONFLICT", "Mood sedang diperbarui, silakan coba lagi.", "", err)
		}
		logger.Error("Failed to record mood", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Gagal menyimpan mood.", "", err)
	}
	return entry, nil
}

func (s *moodService) GetActiveMood(ctx context.Context, userID uuid.UUID) (*model.MoodEntry, error) {
	entry, err := s.moodRepo.FindActive(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "Belum ada mood aktif.", "", err)
		}
		middleware.GetLogger(ctx).Error("Failed to find active mood", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Gagal mengambil mood aktif.", "", err)
	}
	return entry, nil
}

func (s *moodService) ListMoodHistory(ctx context.Context, userID uuid.UUID, r model.TimeRange) ([]model.MoodEntry, error) {
	if err := r.Validate(); err != nil {
		return nil, rangeError(err)
	}
	entries, err := s.moodRepo.FindByRange(ctx, s.db, userID, r)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list mood history", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Gagal mengambil riwayat mood.", "", err)
	}
	if entries == nil {
		entries = []model.MoodEntry{}
	}
	return entries, nil
}

// GetDistribution は r が nil なら直近 analytics.distribution_days 日を集計します。
func (s *moodService) GetDistribution(ctx context.Context, userID uuid.UUID, r *model.TimeRange) (*model.MoodDistribution, error) {
	window := model.LastDays(s.now(), s.cfg.Analytics.DistributionDays)
	if r != nil {
		window = *r
	}
	entries, err := s.ListMoodHistory(ctx, userID, window)
	if err != nil {
		return nil, err
	}
	dist, err := analytics.ComputeDistribution(entries)
	if err != nil {
		middleware.GetLogger(ctx).Error("Stored mood entries failed validation", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Data mood tidak valid.", "", err)
	}
	return dist, nil
}

// GetStatistics は今日を含む直近 days 日の日別集計を返します (days <= 0 なら設定値)。
func (s *moodService) GetStatistics(ctx context.Context, userID uuid.UUID, days int) (*model.MoodStatistics, error) {
	if days <= 0 {
		days = s.cfg.Analytics.StatsDays
	}
	if days > maxWindowDays {
		return nil, model.NewAppError("INVALID_DAYS", "Jumlah hari terlalu besar.", "days", model.ErrInvalidInput)
	}
	now := s.now().In(s.loc)
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, s.loc).AddDate(0, 0, -(days - 1))
	r := model.TimeRange{Start: start, End: now}

	entries, err := s.ListMoodHistory(ctx, userID, r)
	if err != nil {
		return nil, err
	}
	stats, err := analytics.ComputeStatistics(entries, r, s.loc)
	if err != nil {
		middleware.GetLogger(ctx).Error("Stored mood entries failed validation", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Data mood tidak valid.", "", err)
	}
	return stats, nil
}

func rangeError(err error) error {
	var rangeErr *model.InvalidRangeError
	if errors.As(err, &rangeErr) {
		return model.NewAppError("INVALID_RANGE", "Tanggal akhir tidak boleh sebelum tanggal mulai.", "endDate", err)
	}
	return model.NewAppError("INVALID_RANGE", "Rentang tanggal tidak valid.", "startDate", err)
}
