package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nuna/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

// captureUser は下流ハンドラでコンテキストのユーザーIDを記録します。
func captureUser(got *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserIDFromContext(r.Context())
		if err == nil {
			*got = id
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	valid := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   uuid.UUID
	}{
		{"正常系: 有効なトークン", "Bearer " + valid, http.StatusNoContent, userID},
		{"正常系: bearer は小文字でもよい", "bearer " + valid, http.StatusNoContent, userID},
		{"異常系: ヘッダーなし", "", http.StatusUnauthorized, uuid.Nil},
		{"異常系: Bearer 以外", "Basic abc", http.StatusUnauthorized, uuid.Nil},
		{"異常系: 別の鍵で署名", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{
			"sub": userID.String(),
		}), http.StatusUnauthorized, uuid.Nil},
		{"異常系: 期限切れ", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"sub": userID.String(),
			"exp": time.Now().Add(-time.Minute).Unix(),
		}), http.StatusUnauthorized, uuid.Nil},
		{"異常系: sub がない", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		}), http.StatusUnauthorized, uuid.Nil},
		{"異常系: sub がUUIDでない", "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"sub": "user-1",
		}), http.StatusUnauthorized, uuid.Nil},
		{"異常系: HS512 は受け付けない", "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{
			"sub": userID.String(),
		}), http.StatusUnauthorized, uuid.Nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got uuid.UUID
			handler := JWTAuthMiddleware(testSecret)(captureUser(&got))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantUser, got)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), `"error"`)
			}
		})
	}
}

func TestDevUserContextMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   uuid.UUID
	}{
		{"正常系: X-User-ID を使う", userID.String(), http.StatusNoContent, userID},
		{"異常系: ヘッダーなし", "", http.StatusUnauthorized, uuid.Nil},
		{"異常系: UUIDでない", "abc", http.StatusUnauthorized, uuid.Nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got uuid.UUID
			handler := DevUserContextMiddleware(captureUser(&got))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("X-User-ID", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, got)
		})
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserIDFromContext(req.Context())
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var sawLogger bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = GetLogger(r.Context()) != slog.Default()
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hello"))
	})
	handler := chimiddleware.RequestID(LoggingMiddleware(logger)(inner))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/journals", bytes.NewBufferString(`{"content":"rahasia"}`))
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("X-User-ID", uuid.NewString())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.True(t, sawLogger)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Request completed"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"bytes_out":5`)
	assert.Contains(t, out, `"req_id"`)
	assert.Contains(t, out, "[SENSITIVE]")
	// ボディと秘匿ヘッダーの値はログに出ない
	assert.NotContains(t, out, "rahasia")
	assert.NotContains(t, out, "secret-token")
}
