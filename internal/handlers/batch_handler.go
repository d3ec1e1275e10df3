// internal/handlers/batch_handler.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"sentencebase/internal/config"
	"sentencebase/internal/middleware"
	"sentencebase/internal/model"
	"sentencebase/internal/service"
	"sentencebase/internal/webutil"
)

type BatchHandler struct {
	service service.BatchService
	cfg     *config.Config
	logger  *slog.Logger
}

func NewBatchHandler(s service.BatchService, cfg *config.Config, logger *slog.Logger) *BatchHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchHandler{
		service: s,
		cfg:     cfg,
		logger:  logger,
	}
}

type batchCreatedResponse struct {
	BatchID string `json:"batchId"`
}

// PostBatch は保留プールからバッチを作成するためのハンドラ
func (h *BatchHandler) PostBatch(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostBatch"))

	userUID, err := middleware.GetUserUIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_uid", userUID))

	var req model.CreateBatchRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}
	// 配列長の上限は設定値に依存するためここで検証する
	if len(req.Sentences) > h.cfg.App.MaximumPendingSentences {
		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			fmt.Sprintf("例文IDは%d件以下で指定してください。", h.cfg.App.MaximumPendingSentences),
			"sentences",
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
		return
	}

	batchID, err := h.service.CreateBatch(r.Context(), userUID, req.Sentences)
	if err != nil {
		logger.Error("Error creating batch in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Batch created successfully", slog.String("batch_id", batchID))
	webutil.RespondWithSuccess(w, logger, http.StatusCreated, batchCreatedResponse{BatchID: batchID})
}

// PostBacklogBatch はバックログからバッチを作成するためのハンドラ
func (h *BatchHandler) PostBacklogBatch(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostBacklogBatch"))

	userUID, err := middleware.GetUserUIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_uid", userUID))

	var req model.CreateBacklogBatchRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	batchID, err := h.service.CreateBatchFromBacklog(r.Context(), userUID, &req)
	if err != nil {
		logger.Error("Error creating backlog batch in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Backlog batch created successfully", slog.String("batch_id", batchID))
	webutil.RespondWithSuccess(w, logger, http.StatusCreated, batchCreatedResponse{BatchID: batchID})
}
