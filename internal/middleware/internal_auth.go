package middleware

import (
	"crypto/subtle"
	"net/http"

	"sentencebase/internal/model"
	"sentencebase/internal/webutil"
)

// InternalTokenMiddleware は内部エンドポイント用の共有トークン認証ミドルウェアです。
// イベント配送元 (Firestoreトリガーのリレー等) は X-Internal-Token ヘッダーを付与します。
func InternalTokenMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			got := r.Header.Get("X-Internal-Token")
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("Internal token auth failed", "remote_addr", r.RemoteAddr)
				appErr := model.NewAppError("FORBIDDEN", "このエンドポイントにはアクセスできません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
