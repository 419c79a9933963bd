package analytics

import (
	"time"

	"nuna/internal/model"
)

const dateLayout = "2006-01-02"

// ComputeStatistics は r に含まれる各日 (loc の暦日) の件数と最多の気分を返します。
// 記録のない日も Count 0 で含める。
func ComputeStatistics(entries []model.MoodEntry, r model.TimeRange, loc *time.Location) (*model.MoodStatistics, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := validateMoodEntries(entries); err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.UTC
	}

	byDay := make(map[string]map[string]int)
	overall := make(map[string]int)
	total := 0
	for _, e := range entries {
		if !r.Contains(e.CreatedAt) {
			continue
		}
		day := e.CreatedAt.In(loc).Format(dateLayout)
		if byDay[day] == nil {
			byDay[day] = make(map[string]int)
		}
		byDay[day][string(e.Mood)]++
		overall[string(e.Mood)]++
		total++
	}

	stats := &model.MoodStatistics{TotalEntries: total, Daily: []model.DailyMood{}}
	start := startOfDay(r.Start.In(loc))
	end := startOfDay(r.End.In(loc))
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		daily := model.DailyMood{Date: key}
		if counts, ok := byDay[key]; ok {
			label, _ := dominantLabel(counts)
			daily.DominantMood = model.Mood(label)
			for _, c := range counts {
				daily.Count += c
			}
		}
		stats.Daily = append(stats.Daily, daily)
	}
	stats.Days = len(stats.Daily)
	if total > 0 {
		label, _ := dominantLabel(overall)
		stats.MostFrequent = model.Mood(label)
	}
	return stats, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
