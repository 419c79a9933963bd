// Package analytics は気分記録と日記から集計結果を計算する純粋関数群です。
// I/O は行わず、呼び出し側 (service) が取得済みのスライスを渡します。
package analytics

import (
	"fmt"
	"math"
	"sort"

	"nuna/internal/model"
)

// moodCount は1ラベル分の件数
type moodCount struct {
	mood  model.Mood
	count int
}

// ComputeDistribution は気分ごとの割合を計算します。
// entries は期間で絞り込み済みであること (FilterMoodEntries 参照)。
func ComputeDistribution(entries []model.MoodEntry) (*model.MoodDistribution, error) {
	if err := validateMoodEntries(entries); err != nil {
		return nil, err
	}

	result := &model.MoodDistribution{
		TotalEntries: len(entries),
		Distribution: map[string]int{},
	}
	if len(entries) == 0 {
		return result, nil
	}

	counts := countMoods(entries)
	shares := make([]int, len(counts))
	sum := 0
	last := len(counts) - 1
	for i := 0; i < last; i++ {
		shares[i] = percent(counts[i].count, len(entries))
		sum += shares[i]
	}
	// 丸め誤差は最後のラベルが吸収する
	shares[last] = 100 - sum
	for i := 0; shares[last] < 0 && i < last; i++ {
		take := min(shares[i], -shares[last])
		shares[i] -= take
		shares[last] += take
	}

	for i, c := range counts {
		result.Distribution[string(c.mood)] = shares[i]
	}
	return result, nil
}

// FilterMoodEntries は r に含まれる (両端含む) 記録だけを返します。
func FilterMoodEntries(entries []model.MoodEntry, r model.TimeRange) ([]model.MoodEntry, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	filtered := make([]model.MoodEntry, 0, len(entries))
	for _, e := range entries {
		if r.Contains(e.CreatedAt) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// countMoods は件数の多い順、同数ならラベル順に並べた集計を返します。
func countMoods(entries []model.MoodEntry) []moodCount {
	byMood := make(map[model.Mood]int)
	for _, e := range entries {
		byMood[e.Mood]++
	}
	counts := make([]moodCount, 0, len(byMood))
	for m, c := range byMood {
		counts = append(counts, moodCount{mood: m, count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].mood < counts[j].mood
	})
	return counts
}

func validateMoodEntries(entries []model.MoodEntry) error {
	for i, e := range entries {
		if !e.Mood.Valid() {
			return fmt.Errorf("mood entry %d: unknown mood %q: %w", i, e.Mood, model.ErrInvalidInput)
		}
		if e.CreatedAt.IsZero() {
			return fmt.Errorf("mood entry %d: missing createdAt: %w", i, model.ErrInvalidInput)
		}
	}
	return nil
}

// percent は part/total を四捨五入した整数%で返します。total が0なら0。
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}
