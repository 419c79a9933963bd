// internal/model/analytics.go
package model

import (
	"time"
)

// TimeRange は集計対象の期間です。Start と End の両端を含みます。
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange は検証済みの期間を返します。
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	r := TimeRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return TimeRange{}, err
	}
	return r, nil
}

// LastDays は now で終わる直近 days 日の期間
func LastDays(now time.Time, days int) TimeRange {
	return TimeRange{Start: now.AddDate(0, 0, -days), End: now}
}

// Previous は r の直前にある同じ長さの期間を返します (r.Start は含まない)。
func (r TimeRange) Previous() TimeRange {
	length := r.End.Sub(r.Start)
	end := r.Start.Add(-time.Nanosecond)
	return TimeRange{Start: end.Add(-length), End: end}
}

func (r TimeRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrInvalidInput
	}
	if r.End.Before(r.Start) {
		return &InvalidRangeError{Start: r.Start, End: r.End}
	}
	return nil
}

// Contains は t が期間内 (両端含む) かどうか
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// MoodDistribution は気分ごとの割合 (整数%) です。
// TotalEntries > 0 のとき Distribution の合計はちょうど100。
type MoodDistribution struct {
	TotalEntries int            `json:"totalEntries"`
	Distribution map[string]int `json:"distribution"`
}

// ProgressAnalysis は2つの期間のポジティブ率の比較結果です。
type ProgressAnalysis struct {
	Period                 string `json:"period"`
	PositiveMoodPercentage int    `json:"positiveMoodPercentage"`
	GrowthPercentage       string `json:"growthPercentage"` // 常に符号付き ("+12%", "-5%", "+0%")
	Message                string `json:"message"`
}

// PatternAnalysis は日記から見つかったパターン (1行1件, "- " 始まり) です。
type PatternAnalysis struct {
	Patterns         string `json:"patterns"`
	InsufficientData bool   `json:"insufficientData"`
	EntriesAnalyzed  int    `json:"entriesAnalyzed"`
}

// DailyMood は1日分の気分集計
type DailyMood struct {
	Date         string `json:"date"` // YYYY-MM-DD
	Count        int    `json:"count"`
	DominantMood Mood   `json:"dominantMood,omitempty"`
}

// MoodStatistics は直近N日の日別集計です。
type MoodStatistics struct {
	Days         int         `json:"days"`
	TotalEntries int         `json:"totalEntries"`
	MostFrequent Mood        `json:"mostFrequent,omitempty"`
	Daily        []DailyMood `json:"daily"`
}

// AnalyticsReport はCLIの report コマンドがまとめて出力する内容
type AnalyticsReport struct {
	Distribution *MoodDistribution `json:"distribution"`
	Progress     *ProgressAnalysis `json:"progress"`
	Patterns     *PatternAnalysis  `json:"patterns"`
	Statistics   *MoodStatistics   `json:"statistics"`
}
