package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMood(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    Mood
		wantErr bool
	}{
		{"正常系: 正規ラベル", "Hebat", MoodHebat, false},
		{"正常系: 大文字小文字を区別しない", "sangat BURUK", MoodSangatBuruk, false},
		{"正常系: 余分な空白", "  Sangat   Buruk ", MoodSangatBuruk, false},
		{"正常系: アンダースコア表記", "sangat_buruk", MoodSangatBuruk, false},
		{"正常系: 日記ラベル Senang", "Senang", MoodHebat, false},
		{"正常系: 日記ラベル Produktif", "Produktif", MoodBaik, false},
		{"正常系: 日記ラベル Netral", "Netral", MoodOke, false},
		{"正常系: 日記ラベル Stres", "Stres", MoodBuruk, false},
		{"正常系: 日記ラベル Sedih", "Sedih", MoodSangatBuruk, false},
		{"正常系: 英語の別名", "anxious", MoodBuruk, false},
		{"異常系: 空文字", "", "", true},
		{"異常系: 未知のラベル", "Marah", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMood(tt.label)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeJournalMood(t *testing.T) {
	got, err := NormalizeJournalMood("stressed")
	require.NoError(t, err)
	assert.Equal(t, JournalMoodStres, got)

	got, err = NormalizeJournalMood("baik")
	require.NoError(t, err)
	assert.Equal(t, "Baik", got)

	_, err = NormalizeJournalMood("???")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPolarity(t *testing.T) {
	assert.Equal(t, PolarityPositive, MoodHebat.Polarity())
	assert.Equal(t, PolarityPositive, MoodBaik.Polarity())
	assert.Equal(t, PolarityNeutral, MoodOke.Polarity())
	assert.Equal(t, PolarityNegative, MoodBuruk.Polarity())
	assert.Equal(t, PolarityNegative, MoodSangatBuruk.Polarity())

	assert.Equal(t, PolarityPositive, PolarityOf("Tenang"))
	assert.Equal(t, PolarityNegative, PolarityOf("Cemas"))
	assert.Equal(t, PolarityNeutral, PolarityOf("unknown"))
	assert.Equal(t, "negative", PolarityNegative.String())

	// 日記ラベルはすべて正規スケールに対応している
	for _, label := range JournalMoods {
		assert.True(t, IsKnownMood(label), label)
	}
	for _, m := range CanonicalMoods {
		assert.True(t, m.Valid(), m)
	}
	assert.False(t, Mood("Senang").Valid())
}

func TestTimeRange(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)

	r, err := NewTimeRange(start, end)
	require.NoError(t, err)
	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(end))
	assert.False(t, r.Contains(end.Add(time.Nanosecond)))

	prev := r.Previous()
	assert.Equal(t, start.Add(-time.Nanosecond), prev.End)
	assert.Equal(t, r.End.Sub(r.Start), prev.End.Sub(prev.Start))
	assert.False(t, prev.Contains(start))

	last := LastDays(end, 30)
	assert.Equal(t, r, last)

	_, err = NewTimeRange(end, start)
	var rangeErr *InvalidRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, end, rangeErr.Start)

	_, err = NewTimeRange(time.Time{}, end)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAppError(t *testing.T) {
	err := NewAppError("NOT_FOUND", "Data tidak ditemukan", "", ErrNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "NOT_FOUND: Data tidak ditemukan: resource not found", err.Error())
}
