// cmd/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"nuna/internal/analytics"
	"nuna/internal/config"
	"nuna/internal/handlers"
	"nuna/internal/repository"
	"nuna/internal/service"
)

var (
	configPath string
	logger     *slog.Logger
	logCloser  io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           config.AppName,
	Short:         "Mood and journal analytics API",
	Version:       config.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 設定ファイル読み込み用の一時的なロガー
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

		if err := config.LoadConfig(configPath); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger, logCloser = newLogger(&config.Cfg)
		slog.SetDefault(logger)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs", "Directory containing config.yaml")

	reportCmd.Flags().StringVar(&reportUser, "user", "", "User ID (UUID) to build the report for")
	reportCmd.Flags().IntVar(&reportDays, "days", 0, "Report window in days (default: analytics.progress_days)")
	_ = reportCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(reportCmd)
}

// app はコマンド間で共有する依存関係
type app struct {
	db           *gorm.DB
	moodSvc      service.MoodService
	journalSvc   service.JournalService
	analyticsSvc service.AnalyticsService
	loc          *time.Location
}

func openDB() (*gorm.DB, error) {
	db, err := repository.NewDB(config.Cfg.Database, config.Cfg.IsDev(), logger)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		slog.Error("Error closing database connection", slog.Any("error", err))
	} else {
		slog.Info("Database connection closed.")
	}
}

// newExtractor は extractor.type に従ってパターン抽出の戦略を選びます。
func newExtractor(cfg *config.Config) (analytics.Extractor, error) {
	opts := analytics.ExtractorOptions{
		Window:      cfg.Analytics.PatternWindow,
		MinEntries:  cfg.Analytics.PatternMinEntries,
		MaxPatterns: cfg.Analytics.MaxPatterns,
	}
	switch cfg.Extractor.Type {
	case config.ExtractorModel:
		llm, err := analytics.NewOpenAIModel(cfg.Extractor.APIKey, cfg.Extractor.BaseURL, cfg.Extractor.Model)
		if err != nil {
			return nil, err
		}
		return analytics.NewModelBackedExtractor(llm, opts), nil
	default:
		return analytics.NewHeuristicExtractor(opts), nil
	}
}

func buildApp(db *gorm.DB) (*app, error) {
	cfg := &config.Cfg
	loc, err := cfg.Analytics.Location()
	if err != nil {
		return nil, err
	}
	extractor, err := newExtractor(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing pattern extractor: %w", err)
	}
	slog.Info("Pattern extractor selected", slog.String("extractor", extractor.Name()))

	moodRepo := repository.NewGormMoodRepository()
	journalRepo := repository.NewGormJournalRepository()

	moodSvc := service.NewMoodService(db, moodRepo, cfg, loc)
	return &app{
		db:           db,
		moodSvc:      moodSvc,
		journalSvc:   service.NewJournalService(db, journalRepo),
		analyticsSvc: service.NewAnalyticsService(db, moodRepo, journalRepo, moodSvc, extractor, cfg),
		loc:          loc,
	}, nil
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(db)

		if err := repository.AutoMigrate(db); err != nil {
			return err
		}
		slog.Info("Migration completed")
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Info("Application starting...", slog.String("version", config.AppVersion))

		db, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(db)

		if config.Cfg.Database.Driver == config.DBDriverSQLite {
			// ローカル開発ではスキーマを自動作成する
			if err := repository.AutoMigrate(db); err != nil {
				return err
			}
		}

		a, err := buildApp(db)
		if err != nil {
			return err
		}

		router := handlers.NewRouter(&config.Cfg, logger, handlers.RouterDeps{
			Mood:      handlers.NewMoodHandler(a.moodSvc, a.loc, config.Cfg.Analytics.DistributionDays),
			Journal:   handlers.NewJournalHandler(a.journalSvc),
			Analytics: handlers.NewAnalyticsHandler(a.analyticsSvc),
			Health: func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			},
		})

		server := &http.Server{
			Addr:         config.Cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: config.Cfg.Extractor.Timeout + 10*time.Second,
			IdleTimeout:  120 * time.Second,
		}

		serverErr := make(chan error, 1)
		go func() {
			slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		// Graceful Shutdown
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-serverErr:
			if err != nil {
				slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
				return err
			}
		case <-quit:
		}
		slog.Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server forced to shutdown", slog.Any("error", err))
			return err
		}
		slog.Info("Server exiting")
		return nil
	},
}

var (
	reportUser string
	reportDays int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print an analytics report for one user as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := uuid.Parse(reportUser)
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer closeDB(db)

		a, err := buildApp(db)
		if err != nil {
			return err
		}

		report, err := a.analyticsSvc.BuildReport(cmd.Context(), userID, reportDays)
		if err != nil {
			return fmt.Errorf("building report: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}
