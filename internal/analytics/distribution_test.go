package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nuna/internal/model"
)

var baseTime = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

// moodEntries はラベルごとに1分ずつずらした記録を作ります。
func moodEntries(start time.Time, moods ...model.Mood) []model.MoodEntry {
	entries := make([]model.MoodEntry, 0, len(moods))
	for i, m := range moods {
		entries = append(entries, model.MoodEntry{
			MoodEntryID: uuid.New(),
			UserID:      uuid.Nil,
			Mood:        m,
			CreatedAt:   start.Add(time.Duration(i) * time.Minute),
		})
	}
	return entries
}

func repeatMood(m model.Mood, n int) []model.Mood {
	out := make([]model.Mood, n)
	for i := range out {
		out[i] = m
	}
	return out
}

func sumShares(d map[string]int) int {
	sum := 0
	for _, v := range d {
		sum += v
	}
	return sum
}

func TestComputeDistribution(t *testing.T) {
	var moods []model.Mood
	moods = append(moods, repeatMood(model.MoodBaik, 255)...)
	moods = append(moods, repeatMood(model.MoodBuruk, 254)...)
	moods = append(moods, repeatMood(model.MoodHebat, 245)...)
	moods = append(moods, repeatMood(model.MoodOke, 245)...)
	moods = append(moods, model.MoodSangatBuruk)

	tests := []struct {
		name      string
		entries   []model.MoodEntry
		wantTotal int
		want      map[string]int
		wantErr   error
	}{
		{
			name:      "正常系: 4件 (Hebat x2, Baik, Oke)",
			entries:   moodEntries(baseTime, model.MoodHebat, model.MoodHebat, model.MoodBaik, model.MoodOke),
			wantTotal: 4,
			want:      map[string]int{"Hebat": 50, "Baik": 25, "Oke": 25},
		},
		{
			name:      "正常系: 3等分は最後のラベルが端数を吸収",
			entries:   moodEntries(baseTime, model.MoodOke, model.MoodHebat, model.MoodBaik),
			wantTotal: 3,
			want:      map[string]int{"Baik": 33, "Hebat": 33, "Oke": 34},
		},
		{
			name:      "正常系: 1件のみ",
			entries:   moodEntries(baseTime, model.MoodSangatBuruk),
			wantTotal: 1,
			want:      map[string]int{"Sangat Buruk": 100},
		},
		{
			name:      "正常系: 切り上げ超過は最後のラベルを0にして調整",
			entries:   moodEntries(baseTime, moods...),
			wantTotal: 1000,
			want:      map[string]int{"Baik": 25, "Buruk": 25, "Hebat": 25, "Oke": 25, "Sangat Buruk": 0},
		},
		{
			name:      "正常系: 空",
			entries:   nil,
			wantTotal: 0,
			want:      map[string]int{},
		},
		{
			name:    "異常系: 未知のラベル",
			entries: moodEntries(baseTime, model.MoodBaik, model.Mood("Luar Biasa")),
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "異常系: createdAt がゼロ値",
			entries: []model.MoodEntry{{MoodEntryID: uuid.New(), Mood: model.MoodBaik}},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeDistribution(tt.entries)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, got.TotalEntries)
			assert.Equal(t, tt.want, got.Distribution)
			if tt.wantTotal > 0 {
				assert.Equal(t, 100, sumShares(got.Distribution))
			}
		})
	}
}

func TestComputeDistribution_SumsTo100(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		n := rng.Intn(250) + 1
		moods := make([]model.Mood, n)
		for j := range moods {
			moods[j] = model.CanonicalMoods[rng.Intn(len(model.CanonicalMoods))]
		}
		got, err := ComputeDistribution(moodEntries(baseTime, moods...))
		require.NoError(t, err)
		require.Equal(t, n, got.TotalEntries)
		require.Equal(t, 100, sumShares(got.Distribution), "moods=%v", got.Distribution)
		for label, share := range got.Distribution {
			require.GreaterOrEqual(t, share, 0, label)
			require.LessOrEqual(t, share, 100, label)
		}
	}
}

func TestComputeDistribution_OrderIndependent(t *testing.T) {
	entries := moodEntries(baseTime, model.MoodBaik, model.MoodOke, model.MoodHebat, model.MoodBaik, model.MoodBuruk, model.MoodOke, model.MoodSangatBuruk)
	want, err := ComputeDistribution(entries)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]model.MoodEntry(nil), entries...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, err := ComputeDistribution(shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestFilterMoodEntries(t *testing.T) {
	entries := moodEntries(baseTime, model.MoodBaik, model.MoodOke, model.MoodHebat, model.MoodBuruk)
	// 記録は baseTime, +1m, +2m, +3m

	t.Run("正常系: 両端を含む", func(t *testing.T) {
		r := model.TimeRange{Start: baseTime.Add(time.Minute), End: baseTime.Add(2 * time.Minute)}
		got, err := FilterMoodEntries(entries, r)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, model.MoodOke, got[0].Mood)
		assert.Equal(t, model.MoodHebat, got[1].Mood)
	})

	t.Run("正常系: 範囲外のみなら空", func(t *testing.T) {
		r := model.TimeRange{Start: baseTime.Add(time.Hour), End: baseTime.Add(2 * time.Hour)}
		got, err := FilterMoodEntries(entries, r)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("異常系: 終了が開始より前", func(t *testing.T) {
		r := model.TimeRange{Start: baseTime, End: baseTime.Add(-time.Second)}
		_, err := FilterMoodEntries(entries, r)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		var rangeErr *model.InvalidRangeError
		assert.ErrorAs(t, err, &rangeErr)
	})
}
