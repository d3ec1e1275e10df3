// internal/handlers/sentence_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"sentencebase/internal/middleware"
	"sentencebase/internal/model"
	"sentencebase/internal/service"
	"sentencebase/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type SentenceHandler struct {
	service service.SentenceService
	logger  *slog.Logger
}

func NewSentenceHandler(s service.SentenceService, logger *slog.Logger) *SentenceHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SentenceHandler{
		service: s,
		logger:  logger,
	}
}

// GetSentences は保留中の例文一覧を取得するためのハンドラ
func (h *SentenceHandler) GetSentences(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSentences"))

	userUID, err := middleware.GetUserUIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_uid", userUID))

	sentences, err := h.service.GetPendingSentences(r.Context(), userUID)
	if err != nil {
		logger.Error("Error listing pending sentences in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithSuccess(w, logger, http.StatusOK, sentences)
}

// PostSentence は例文を追加するためのハンドラ
func (h *SentenceHandler) PostSentence(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSentence"))

	userUID, err := middleware.GetUserUIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_uid", userUID))

	var req model.AddSentenceRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	// 前後の空白を落としてから検証する
	req.DictionaryForm = strings.TrimSpace(req.DictionaryForm)
	req.Reading = strings.TrimSpace(req.Reading)
	req.Sentence = strings.TrimSpace(req.Sentence)

	if !validateRequest(w, logger, req) {
		return
	}

	sentence, err := h.service.AddSentence(r.Context(), userUID, &req)
	if err != nil {
		logger.Error("Error adding sentence in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Sentence posted successfully", slog.String("sentence_id", sentence.SentenceID))
	webutil.RespondWithSuccess(w, logger, http.StatusCreated, sentence)
}

// EditSentence は保留中の例文を編集するためのハンドラ
func (h *SentenceHandler) EditSentence(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "EditSentence"))

	userUID, err := middleware.GetUserUIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_uid", userUID))

	sentenceID := chi.URLParam(r, "sentenceId")
	if sentenceID == "" {
		appErr := model.NewAppError("INVALID_SENTENCE_ID", "例文IDが指定されていません。", "sentenceId", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.EditSentenceRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	req.Sentence = strings.TrimSpace(req.Sentence)

	if !validateRequest(w, logger, req) {
		return
	}

	if err := h.service.EditSentence(r.Context(), userUID, sentenceID, &req); err != nil {
		logger.Error("Error editing sentence in service", slog.Any("error", err), slog.String("sentence_id", sentenceID))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithSuccess(w, logger, http.StatusOK, nil)
}

// DeleteSentence は保留中の例文を削除するためのハンドラ
func (h *SentenceHandler) DeleteSentence(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteSentence"))

	userUID, err := middleware.GetUserUIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_uid", userUID))

	sentenceID := chi.URLParam(r, "sentenceId")
	if sentenceID == "" {
		appErr := model.NewAppError("INVALID_SENTENCE_ID", "例文IDが指定されていません。", "sentenceId", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.service.DeleteSentence(r.Context(), userUID, sentenceID); err != nil {
		logger.Error("Error deleting sentence in service", slog.Any("error", err), slog.String("sentence_id", sentenceID))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithSuccess(w, logger, http.StatusOK, nil)
}

// validateRequest はリクエストDTOを検証し、失敗時はエラーレスポンスを書き込みます。
// 最初のバリデーションエラーを代表としてクライアントに返します。
func validateRequest(w http.ResponseWriter, logger *slog.Logger, req interface{}) bool {
	err := webutil.Validator.Struct(req)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))

		firstErr := validationErrors[0]
		translatedMsg := firstErr.Translate(webutil.Trans)

		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			translatedMsg,
			firstErr.Field(),
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
	} else {
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
	}
	return false
}
