package analytics

import (
	"fmt"

	"nuna/internal/model"
)

// メッセージ選択のしきい値 (ポジティブ率, %)
const (
	ThresholdDoingWell   = 60 // これ以上なら「順調」
	ThresholdSeekSupport = 30 // これ未満なら支援を勧める
)

type trend int

const (
	trendDown trend = iota - 1
	trendFlat
	trendUp
)

type band int

const (
	bandSupport band = iota
	bandSteady
	bandWell
)

const noDataMessage = "Belum ada catatan mood pada periode ini. Mulailah mencatat mood harianmu untuk melihat perkembanganmu."

// progressMessages の書式: %[1]d = 現在のポジティブ率, %[2]d = 変化幅 (絶対値)
var progressMessages = map[trend]map[band]string{
	trendUp: {
		bandWell:    "Kerja bagus! %[1]d%% mood kamu positif, naik %[2]d poin dibanding periode sebelumnya. Pertahankan kebiasaan baikmu.",
		bandSteady:  "Mood positifmu meningkat %[2]d poin menjadi %[1]d%%. Terus lanjutkan langkah kecil yang membantumu.",
		bandSupport: "Ada peningkatan %[2]d poin, tetapi mood positifmu baru %[1]d%%. Pertimbangkan untuk mencari dukungan dari orang terdekat atau tenaga profesional.",
	},
	trendFlat: {
		bandWell:    "Mood positifmu stabil di %[1]d%%. Kamu sedang dalam kondisi yang baik.",
		bandSteady:  "Mood positifmu stabil di %[1]d%%. Coba tambahkan aktivitas yang membuatmu senang.",
		bandSupport: "Mood positifmu bertahan di %[1]d%%. Pertimbangkan untuk mencari dukungan dari orang terdekat atau tenaga profesional.",
	},
	trendDown: {
		bandWell:    "Mood positifmu turun %[2]d poin, tetapi masih %[1]d%%. Perhatikan apa yang berubah akhir-akhir ini.",
		bandSteady:  "Mood positifmu turun %[2]d poin menjadi %[1]d%%. Luangkan waktu untuk beristirahat dan merawat diri.",
		bandSupport: "Mood positifmu turun %[2]d poin menjadi %[1]d%%. Pertimbangkan untuk mencari dukungan dari orang terdekat atau tenaga profesional.",
	},
}

// PositivePercentage はポジティブな記録の割合 (整数%)。空なら0。
func PositivePercentage(entries []model.MoodEntry) int {
	positive := 0
	for _, e := range entries {
		if e.Mood.IsPositive() {
			positive++
		}
	}
	return percent(positive, len(entries))
}

// ComputeProgress は current と、その直前の同じ長さの期間 previous を比較します。
// previous が空の場合はポジティブ率0%として扱う (growth = current の率)。
// Period は呼び出し側が設定する。
func ComputeProgress(current, previous []model.MoodEntry) (*model.ProgressAnalysis, error) {
	if err := validateMoodEntries(current); err != nil {
		return nil, fmt.Errorf("current window: %w", err)
	}
	if err := validateMoodEntries(previous); err != nil {
		return nil, fmt.Errorf("previous window: %w", err)
	}

	cur := PositivePercentage(current)
	prev := PositivePercentage(previous)
	growth := cur - prev

	return &model.ProgressAnalysis{
		PositiveMoodPercentage: cur,
		GrowthPercentage:       FormatGrowth(growth),
		Message:                progressMessage(len(current), cur, growth),
	}, nil
}

// FormatGrowth は常に符号付きで返します ("+12%", "-5%", "+0%")。
func FormatGrowth(delta int) string {
	return fmt.Sprintf("%+d%%", delta)
}

func progressMessage(total, positive, growth int) string {
	if total == 0 {
		return noDataMessage
	}
	t := trendFlat
	switch {
	case growth > 0:
		t = trendUp
	case growth < 0:
		t = trendDown
	}
	b := bandSteady
	switch {
	case positive >= ThresholdDoingWell:
		b = bandWell
	case positive < ThresholdSeekSupport:
		b = bandSupport
	}
	if growth < 0 {
		growth = -growth
	}
	return fmt.Sprintf(progressMessages[t][b], positive, growth)
}

// DescribePeriod は ProgressAnalysis.Period 用の表記
func DescribePeriod(days int) string {
	return fmt.Sprintf("%d hari terakhir", days)
}
