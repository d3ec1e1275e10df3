// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"sentencebase/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
// これがアプリケーションのエラーハンドリングの中心となります。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	// エラーの根本原因に基づいてHTTPステータスコードを決定
	statusCode := MapErrorToStatusCode(err)

	var details []model.ErrorDetail
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		details = []model.ErrorDetail{appErr.Detail}
	} else {
		// AppError ではない、予期せぬエラーの場合
		logger.Error("Unhandled error", "error", err)
		details = []model.ErrorDetail{{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "サーバー内部でエラーが発生しました。",
		}}
	}

	RespondWithJSON(w, logger, statusCode, model.APIResponse{
		Success: false,
		Errors:  details,
	})
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	// AppErrorの場合は、ラップされたエラーで判定する
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput),
		errors.Is(err, model.ErrInvalidReference),
		errors.Is(err, model.ErrInvalidSelection),
		errors.Is(err, model.ErrMissingWord),
		errors.Is(err, model.ErrDuplicateIDs):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrLimitExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	default:
		// ハンドリングされていないエラーは内部サーバーエラーとして扱う
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, logger *slog.Logger, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"errors":[{"code":"INTERNAL_SERVER_ERROR","message":"レスポンス生成中にエラーが発生しました。"}]}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithSuccess は成功レスポンスを共通エンベロープで返します。
func RespondWithSuccess(w http.ResponseWriter, logger *slog.Logger, code int, data interface{}) {
	RespondWithJSON(w, logger, code, model.APIResponse{
		Success: true,
		Data:    data,
	})
}

// NewValidationErrorResponse はバリデーションエラーをフィールド別の詳細に展開します。
func NewValidationErrorResponse(errs validator.ValidationErrors) []model.ErrorDetail {
	details := make([]model.ErrorDetail, 0, len(errs))
	for _, fe := range errs {
		details = append(details, model.ErrorDetail{
			Code:    "VALIDATION_ERROR",
			Message: fe.Translate(Trans),
			Field:   fe.Field(),
		})
	}
	return details
}
