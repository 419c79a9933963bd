//go:generate mockery --name AnalyticsService --output ./mocks --outpkg mocks --case=underscore
// internal/service/analytics_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nuna/internal/analytics"
	"nuna/internal/config"
	"nuna/internal/middleware"
	"nuna/internal/model"
	"nuna/internal/repository"
)

type AnalyticsService interface {
	GetProgress(ctx context.Context, userID uuid.UUID, days int) (*model.ProgressAnalysis, error)
	GetPatterns(ctx context.Context, userID uuid.UUID) (*model.PatternAnalysis, error)
	BuildReport(ctx context.Context, userID uuid.UUID, days int) (*model.AnalyticsReport, error)
}

type analyticsService struct {
	db          *gorm.DB
	moodRepo    repository.MoodRepository
	journalRepo repository.JournalRepository
	moodSvc     MoodService
	extractor   analytics.Extractor
	fallback    analytics.Extractor
	cfg         *config.Config
	now         func() time.Time
}

// NewAnalyticsService の extractor は設定で選ばれた戦略。
// ヒューリスティック以外が失敗した場合はヒューリスティックで再計算する。
func NewAnalyticsService(
	db *gorm.DB,
	moodRepo repository.MoodRepository,
	journalRepo repository.JournalRepository,
	moodSvc MoodService,
	extractor analytics.Extractor,
	cfg *config.Config,
) AnalyticsService {
	heuristic := analytics.NewHeuristicExtractor(extractorOptions(cfg))
	if extractor == nil {
		extractor = heuristic
	}
	return &analyticsService{
		db:          db,
		moodRepo:    moodRepo,
		journalRepo: journalRepo,
		moodSvc:     moodSvc,
		extractor:   extractor,
		fallback:    heuristic,
		cfg:         cfg,
		now:         time.Now,
	}
}

func extractorOptions(cfg *config.Config) analytics.ExtractorOptions {
	return analytics.ExtractorOptions{
		Window:      cfg.Analytics.PatternWindow,
		MinEntries:  cfg.Analytics.PatternMinEntries,
		MaxPatterns: cfg.Analytics.MaxPatterns,
	}
}

// GetProgress は直近 days 日と、その直前の同じ長さの期間を比較します。
func (s *analyticsService) GetProgress(ctx context.Context, userID uuid.UUID, days int) (*model.ProgressAnalysis, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	if days <= 0 {
		days = s.cfg.Analytics.ProgressDays
	}
	if days > maxWindowDays {
		return nil, model.NewAppError("INVALID_DAYS", "Jumlah hari terlalu besar.", "days", model.ErrInvalidInput)
	}

	current := model.LastDays(s.now(), days)
	previous := current.Previous()

	currentEntries, err := s.moodRepo.FindByRange(ctx, s.db, userID, current)
	if err != nil {
		logger.Error("Failed to load current window", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Gagal menghitung perkembangan mood.", "", err)
	}
	previousEntries, err := s.moodRepo.FindByRange(ctx, s.db, userID, previous)
	if err != nil {
		logger.Error("Failed to load previous window", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Gagal menghitung perkembangan mood.", "", err)
	}

	progress, err := analytics.ComputeProgress(currentEntries, previousEntries)
	if err != nil {
		logger.Error("Stored mood entries failed validation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Data mood tidak valid.", "", err)
	}
	progress.Period = analytics.DescribePeriod(days)
	return progress, nil
}

func (s *analyticsService) GetPatterns(ctx context.Context, userID uuid.UUID) (*model.PatternAnalysis, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	// 最低件数より窓が小さいと常にデータ不足になるため、多い方を取得する
	limit := max(s.cfg.Analytics.PatternWindow, s.cfg.Analytics.PatternMinEntries)
	entries, err := s.journalRepo.FindRecent(ctx, s.db, userID, limit)
	if err != nil {
		logger.Error("Failed to load journal entries", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Gagal menganalisis pola jurnal.", "", err)
	}

	result, err := s.extract(ctx, s.extractor, entries)
	if err != nil && s.extractor != s.fallback {
		logger.Warn("Pattern extractor failed, falling back to heuristic",
			"extractor", s.extractor.Name(),
			"error", err,
		)
		result, err = s.extract(ctx, s.fallback, entries)
	}
	if err != nil {
		logger.Error("Pattern extraction failed", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Gagal menganalisis pola jurnal.", "", err)
	}
	return result, nil
}

func (s *analyticsService) extract(ctx context.Context, e analytics.Extractor, entries []model.JournalEntry) (*model.PatternAnalysis, error) {
	if s.cfg.Extractor.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Extractor.Timeout)
		defer cancel()
	}
	return e.Extract(ctx, entries)
}

// BuildReport は分布・進捗・パターン・日別集計をまとめて返します (CLI の report 用)。
func (s *analyticsService) BuildReport(ctx context.Context, userID uuid.UUID, days int) (*model.AnalyticsReport, error) {
	if days <= 0 {
		days = s.cfg.Analytics.ProgressDays
	}
	window := model.LastDays(s.now(), days)

	dist, err := s.moodSvc.GetDistribution(ctx, userID, &window)
	if err != nil {
		return nil, err
	}
	progress, err := s.GetProgress(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	patterns, err := s.GetPatterns(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats, err := s.moodSvc.GetStatistics(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	return &model.AnalyticsReport{
		Distribution: dist,
		Progress:     progress,
		Patterns:     patterns,
		Statistics:   stats,
	}, nil
}
