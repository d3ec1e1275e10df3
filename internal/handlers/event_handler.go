// internal/handlers/event_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"sentencebase/internal/model"
	"sentencebase/internal/service"
	"sentencebase/internal/webutil"
)

// EventHandler は変更通知の受信エンドポイントです。
// 認証は共有トークン (middleware.InternalTokenMiddleware) で行います。
type EventHandler struct {
	service service.CounterService
	logger  *slog.Logger
}

func NewEventHandler(s service.CounterService, logger *slog.Logger) *EventHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventHandler{
		service: s,
		logger:  logger,
	}
}

// PostChangeEvent はドキュメントの作成・削除通知を1件受け付けるハンドラ
func (h *EventHandler) PostChangeEvent(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostChangeEvent"))

	var req model.ChangeEventRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	if !validateRequest(w, logger, req) {
		return
	}

	// 未知のコレクション名はここで弾く。カウンタ側は閉じた列挙だけを扱う
	collection, err := model.ParseCollection(req.Collection)
	if err != nil {
		logger.Warn("Unknown collection in change event", slog.String("collection", req.Collection), slog.String("event_id", req.EventID))
		webutil.RespondWithJSON(w, logger, http.StatusUnprocessableEntity, model.APIResponse{
			Success: false,
			Errors: []model.ErrorDetail{{
				Code:    "UNKNOWN_COLLECTION",
				Message: "未知のコレクション名です。",
				Field:   "collection",
			}},
		})
		return
	}

	event := &model.ChangeEvent{
		EventID:    req.EventID,
		Collection: collection,
		DocumentID: req.DocumentID,
		Type:       model.ChangeType(req.ChangeType),
		UserUID:    req.UserUID,
	}

	if err := h.service.ApplyChangeEvent(r.Context(), event); err != nil {
		logger.Error("Error applying change event in service", slog.Any("error", err), slog.String("event_id", req.EventID))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Change event applied", slog.String("event_id", req.EventID), slog.String("collection", req.Collection))
	webutil.RespondWithSuccess(w, logger, http.StatusOK, nil)
}
