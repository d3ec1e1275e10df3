// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict")

	// 保留中の例文数が上限に達した (入場制御、429)
	ErrLimitExceeded = errors.New("pending sentences limit reached")
	// 参照された例文が存在しない・他ユーザー所有・状態不一致 (区別せず同一エラーにする)
	ErrInvalidReference = errors.New("invalid reference")
	// 指定されたID集合がストアの内容と完全一致しなかった
	ErrInvalidSelection = errors.New("invalid selection")
	// 選択された例文の参照先単語が存在しない、または既に採掘済み
	ErrMissingWord = errors.New("referenced word missing")
	// ID配列内の重複、またはID集合同士の交差
	ErrDuplicateIDs = errors.New("duplicate ids")
)

// ErrorDetail はクライアントに返すエラー1件分の詳細です。
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIResponse はAPI共通のレスポンスエンベロープです。
type APIResponse struct {
	Success bool          `json:"success"`
	Data    interface{}   `json:"data,omitempty"`
	Errors  []ErrorDetail `json:"errors,omitempty"`
}

// AppError はエラー詳細とラップ元のセンチネルエラーを束ねたカスタムエラーです。
// HTTPステータスへの変換はラップ元のエラーで判定します (webutil.MapErrorToStatusCode)。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Err: err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
