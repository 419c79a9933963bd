// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // コンテナに zoneinfo がなくても timezone を解決する

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres | sqlite
	URL    string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // 空ならファイル出力しない
}

type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// AnalyticsConfig は集計期間などのパラメータ
type AnalyticsConfig struct {
	ProgressDays      int `mapstructure:"progress_days"`
	StatsDays         int `mapstructure:"stats_days"`
	DistributionDays  int `mapstructure:"distribution_days"`
	PatternWindow     int `mapstructure:"pattern_window"`
	PatternMinEntries int `mapstructure:"pattern_min_entries"`
	MaxPatterns       int `mapstructure:"max_patterns"`
	// 日別集計と日付のみのクエリを解釈するタイムゾーン (例: Asia/Jakarta)
	Timezone string `mapstructure:"timezone"`
}

// Location は Timezone を読み込みます。空なら UTC。
func (a AnalyticsConfig) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid analytics.timezone %q: %w", a.Timezone, err)
	}
	return loc, nil
}

// ExtractorConfig はパターン抽出の戦略 (heuristic | model)
type ExtractorConfig struct {
	Type    string        `mapstructure:"type"`
	Model   string        `mapstructure:"model"`
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Config struct {
	Env       string          `mapstructure:"env"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Auth      AuthConfig      `mapstructure:"auth"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Extractor ExtractorConfig `mapstructure:"extractor"`
}

var Cfg Config

// LoadConfig は .env → config.yaml → 環境変数 (APP_*) の順に読み込み、
// 未設定の項目にデフォルト値を入れます。
func LoadConfig(path string) error {
	// .env は任意
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// APP_DATABASE_URL -> database.url
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		slog.Warn("Config file not found, using defaults and environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("error unmarshalling config: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	Cfg = cfg

	slog.Info("Config loaded successfully",
		"env", Cfg.Env,
		"db_driver", Cfg.Database.Driver,
		"port", Cfg.Server.Port,
		"auth_enabled", Cfg.Auth.Enabled,
		"extractor", Cfg.Extractor.Type,
	)
	return nil
}

// setDefaults は viper に既定値を登録します (AutomaticEnv で上書きできるように)。
func setDefaults(v *viper.Viper) {
	v.SetDefault("env", DefaultEnv)
	v.SetDefault("database.driver", DefaultDBDriver)
	v.SetDefault("database.url", "")
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Authorization", "Content-Type", "X-User-ID"})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("analytics.progress_days", DefaultProgressDays)
	v.SetDefault("analytics.stats_days", DefaultStatsDays)
	v.SetDefault("analytics.distribution_days", DefaultDistributionDays)
	v.SetDefault("analytics.pattern_window", DefaultPatternWindow)
	v.SetDefault("analytics.pattern_min_entries", DefaultPatternMinEntries)
	v.SetDefault("analytics.max_patterns", DefaultMaxPatterns)
	v.SetDefault("analytics.timezone", DefaultTimezone)
	v.SetDefault("extractor.type", ExtractorHeuristic)
	v.SetDefault("extractor.model", "")
	v.SetDefault("extractor.base_url", "")
	v.SetDefault("extractor.api_key", "")
	v.SetDefault("extractor.timeout", DefaultExtractorTimeout)
}

// applyDefaults は0や負の値など、使えない値を既定値に戻します。
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if !strings.HasPrefix(cfg.Server.Port, ":") && !strings.Contains(cfg.Server.Port, ":") {
		cfg.Server.Port = ":" + cfg.Server.Port
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DefaultDBDriver
	}
	if cfg.Database.Driver == DBDriverSQLite && cfg.Database.URL == "" {
		cfg.Database.URL = DefaultSQLitePath
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	a := &cfg.Analytics
	if a.ProgressDays <= 0 {
		a.ProgressDays = DefaultProgressDays
	}
	if a.StatsDays <= 0 {
		a.StatsDays = DefaultStatsDays
	}
	if a.DistributionDays <= 0 {
		a.DistributionDays = DefaultDistributionDays
	}
	if a.PatternWindow <= 0 {
		a.PatternWindow = DefaultPatternWindow
	}
	if a.PatternMinEntries <= 0 {
		a.PatternMinEntries = DefaultPatternMinEntries
	}
	if a.MaxPatterns <= 0 {
		a.MaxPatterns = DefaultMaxPatterns
	}
	if cfg.Extractor.Type == "" {
		cfg.Extractor.Type = ExtractorHeuristic
	}
	if cfg.Extractor.Timeout <= 0 {
		cfg.Extractor.Timeout = DefaultExtractorTimeout
	}
}

// Validate は起動できない組み合わせを検出します。
func (c Config) Validate() error {
	switch c.Database.Driver {
	case DBDriverPostgres:
		if c.Database.URL == "" {
			return errors.New("config: database.url is required for postgres")
		}
	case DBDriverSQLite:
	default:
		return fmt.Errorf("config: unsupported database.driver %q", c.Database.Driver)
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return errors.New("config: auth.jwt_secret is required when auth is enabled")
	}
	if _, err := c.Analytics.Location(); err != nil {
		return err
	}
	if c.Analytics.PatternMinEntries > c.Analytics.PatternWindow {
		return fmt.Errorf("config: analytics.pattern_min_entries (%d) must not exceed analytics.pattern_window (%d)",
			c.Analytics.PatternMinEntries, c.Analytics.PatternWindow)
	}
	switch c.Extractor.Type {
	case ExtractorHeuristic:
	case ExtractorModel:
		if c.Extractor.APIKey == "" {
			return errors.New("config: extractor.api_key is required for the model extractor")
		}
	default:
		return fmt.Errorf("config: unsupported extractor.type %q", c.Extractor.Type)
	}
	return nil
}

// IsDev は開発環境かどうか (ログを色付きにする等)
func (c Config) IsDev() bool {
	return c.Env == "dev" || c.Env == "development"
}
