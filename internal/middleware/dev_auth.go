// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"nuna/internal/model"
	"nuna/internal/webutil"
)

// DevUserContextMiddleware は開発時用ミドルウェアです (auth.enabled=false)。
// X-User-ID ヘッダーからUUIDを抽出し、検証なしでコンテキストに設定します。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			logger.Warn("[DEV AUTH] X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] Header X-User-ID wajib diisi.", "", model.ErrUnauthorized))
			return
		}
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-User-ID format", "value", userIDStr)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] Format X-User-ID tidak valid.", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] User ID set to context (no validation)", "user_id", userID)
		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
	})
}
