// internal/handlers/mood_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nuna/internal/model"
)

func TestMoodHandler_PostMood(t *testing.T) {
	userID := uuid.New()
	created := &model.MoodEntry{
		MoodEntryID: uuid.New(),
		UserID:      userID,
		Mood:        model.MoodHebat,
		CreatedAt:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name       string
		body       interface{}
		userID     uuid.UUID
		setupMock  func(env *testEnv)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "正常系: 気分を記録できる",
			body:   model.PostMoodRequest{Mood: "Senang"},
			userID: userID,
			setupMock: func(env *testEnv) {
				env.mood.On("RecordMood", mock.Anything, userID, mock.MatchedBy(func(req *model.PostMoodRequest) bool {
					return req.Mood == "Senang"
				})).Return(created, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "異常系: 未知の気分ラベル",
			body:       model.PostMoodRequest{Mood: "Marah"},
			userID:     userID,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "異常系: 壊れたJSON",
			body:       `{"mood":`,
			userID:     userID,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST_BODY",
		},
		{
			name:       "異常系: X-User-ID なし",
			body:       model.PostMoodRequest{Mood: "Oke"},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:   "異常系: 同時記録の競合",
			body:   model.PostMoodRequest{Mood: "Oke"},
			userID: userID,
			setupMock: func(env *testEnv) {
				env.mood.On("RecordMood", mock.Anything, userID, mock.Anything).
					Return(nil, model.NewAppError("CONFLICT", "x", "", model.ErrConflict)).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.setupMock != nil {
				tt.setupMock(env)
			}

			rec := env.do(t, http.MethodPost, "/api/v1/mood-history", tt.body, tt.userID)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}
			var got model.MoodEntry
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, created.MoodEntryID, got.MoodEntryID)
			assert.Equal(t, model.MoodHebat, got.Mood)
			assert.Nil(t, got.EndedAt)
		})
	}
}

func TestMoodHandler_GetActiveMood(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 現在の気分を返す", func(t *testing.T) {
		env := newTestEnv(t)
		active := &model.MoodEntry{MoodEntryID: uuid.New(), UserID: userID, Mood: model.MoodBaik}
		env.mood.On("GetActiveMood", mock.Anything, userID).Return(active, nil).Once()

		rec := env.do(t, http.MethodGet, "/api/v1/mood-history/active", nil, userID)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"mood":"Baik"`)
	})

	t.Run("異常系: 記録がなければ404", func(t *testing.T) {
		env := newTestEnv(t)
		env.mood.On("GetActiveMood", mock.Anything, userID).
			Return(nil, model.NewAppError("NOT_FOUND", "x", "", model.ErrNotFound)).Once()

		rec := env.do(t, http.MethodGet, "/api/v1/mood-history/active", nil, userID)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Code)
	})
}

func TestMoodHandler_GetMoodHistory(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 日付のみの終了日はその日の終わりまで含む", func(t *testing.T) {
		env := newTestEnv(t)
		wantStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC)
		env.mood.On("ListMoodHistory", mock.Anything, userID, mock.MatchedBy(func(r model.TimeRange) bool {
			return r.Start.Equal(wantStart) && r.End.Equal(wantEnd)
		})).Return([]model.MoodEntry{}, nil).Once()

		rec := env.do(t, http.MethodGet, "/api/v1/mood-history?startDate=2024-03-01&endDate=2024-03-31", nil, userID)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("正常系: 期間指定なしは直近30日", func(t *testing.T) {
		env := newTestEnv(t)
		env.mood.On("ListMoodHistory", mock.Anything, userID, mock.MatchedBy(func(r model.TimeRange) bool {
			return r.End.Sub(r.Start) == r.End.Sub(r.End.AddDate(0, 0, -30))
		})).Return([]model.MoodEntry{}, nil).Once()

		rec := env.do(t, http.MethodGet, "/api/v1/mood-history", nil, userID)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	tests := []struct {
		name     string
		query    string
		wantCode string
	}{
		{"異常系: 終了日が開始日より前", "?startDate=2024-03-10&endDate=2024-03-01", "INVALID_RANGE"},
		{"異常系: 日付の形式が不正", "?startDate=01-03-2024", "INVALID_DATE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.do(t, http.MethodGet, "/api/v1/mood-history"+tt.query, nil, userID)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestMoodHandler_GetDistribution(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 期間指定なしはサービスの既定期間", func(t *testing.T) {
		env := newTestEnv(t)
		dist := &model.MoodDistribution{
			TotalEntries: 4,
			Distribution: map[string]int{"Hebat": 50, "Baik": 25, "Buruk": 25},
		}
		env.mood.On("GetDistribution", mock.Anything, userID, (*model.TimeRange)(nil)).Return(dist, nil).Once()

		rec := env.do(t, http.MethodGet, "/api/v1/mood-history/distribution", nil, userID)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"totalEntries":4,"distribution":{"Hebat":50,"Baik":25,"Buruk":25}}`, rec.Body.String())
	})

	t.Run("正常系: 期間指定あり", func(t *testing.T) {
		env := newTestEnv(t)
		env.mood.On("GetDistribution", mock.Anything, userID, mock.MatchedBy(func(r *model.TimeRange) bool {
			return r != nil && r.Start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		})).Return(&model.MoodDistribution{Distribution: map[string]int{}}, nil).Once()

		rec := env.do(t, http.MethodGet, "/api/v1/mood-history/distribution?startDate=2024-01-01&endDate=2024-01-31", nil, userID)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMoodHandler_GetStatistics(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		query      string
		wantDays   int
		wantStatus int
	}{
		{"正常系: days 指定", "?days=14", 14, http.StatusOK},
		{"正常系: days なしは0 (既定値)", "", 0, http.StatusOK},
		{"異常系: days が0", "?days=0", -1, http.StatusBadRequest},
		{"異常系: days が数値でない", "?days=abc", -1, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.wantDays >= 0 {
				env.mood.On("GetStatistics", mock.Anything, userID, tt.wantDays).
					Return(&model.MoodStatistics{Days: 7, Daily: []model.DailyMood{}}, nil).Once()
			}
			rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/mood-history/stats%s", tt.query), nil, userID)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}
