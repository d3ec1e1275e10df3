// internal/handlers/user_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"sentencebase/internal/middleware"
	"sentencebase/internal/model"
	"sentencebase/internal/service"
	"sentencebase/internal/webutil"
)

type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		service: s,
		logger:  logger,
	}
}

// PostUser は認証済みアイデンティティのユーザードキュメントを作成するためのハンドラ
func (h *UserHandler) PostUser(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostUser"))

	userUID, err := middleware.GetUserUIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_uid", userUID))

	if err := h.service.RegisterUser(r.Context(), userUID); err != nil {
		logger.Error("Error registering user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User registered successfully")
	webutil.RespondWithSuccess(w, logger, http.StatusCreated, nil)
}

// GetMe は自分のユーザードキュメントを取得するためのハンドラ
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMe"))

	userUID, err := middleware.GetUserUIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_uid", userUID))

	user, err := h.service.GetUser(r.Context(), userUID)
	if err != nil {
		logger.Error("Error fetching user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	user.UserUID = userUID

	webutil.RespondWithSuccess(w, logger, http.StatusOK, user)
}
