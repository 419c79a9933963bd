// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"nuna/internal/config"
	"nuna/internal/handlers"
	"nuna/internal/model"
	"nuna/internal/service/mocks"
)

// testEnv はモックサービスを差し込んだルーター一式
type testEnv struct {
	router    *chi.Mux
	mood      *mocks.MoodService
	journal   *mocks.JournalService
	analytics *mocks.AnalyticsService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEnv は認証無効 (X-User-ID) のルーターを作ります。
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		mood:      mocks.NewMoodService(t),
		journal:   mocks.NewJournalService(t),
		analytics: mocks.NewAnalyticsService(t),
	}
	cfg := &config.Config{
		Auth: config.AuthConfig{Enabled: false},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	env.router = handlers.NewRouter(cfg, discardLogger(), handlers.RouterDeps{
		Mood:      handlers.NewMoodHandler(env.mood, time.UTC, 30),
		Journal:   handlers.NewJournalHandler(env.journal),
		Analytics: handlers.NewAnalyticsHandler(env.analytics),
	})
	return env
}

// do はリクエストを実行します。userID が Nil ならヘッダーを付けない。
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, userID uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != uuid.Nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decodeError はエラーレスポンスのコードを取り出します。
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Error
}
