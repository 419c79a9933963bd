// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "nuna"
	AppVersion = "0.3.0"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	ExtractorHeuristic = "heuristic"
	ExtractorModel     = "model"
)

// デフォルト設定値
const (
	DefaultEnv         = "production"
	DefaultServerPort  = ":8080"
	DefaultLogLevel    = "info"
	DefaultDBDriver    = DBDriverPostgres
	DefaultSQLitePath  = "nuna.db"
	DefaultAuthEnabled = true

	DefaultProgressDays      = 30
	DefaultStatsDays         = 7
	DefaultDistributionDays  = 30
	DefaultPatternWindow     = 30
	DefaultPatternMinEntries = 3
	DefaultMaxPatterns       = 5
	DefaultTimezone          = "UTC"

	DefaultExtractorTimeout = 20 * time.Second
)
