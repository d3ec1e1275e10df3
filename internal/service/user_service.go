//go:generate mockery --name UserService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"

	"sentencebase/internal/middleware"
	"sentencebase/internal/model"
	"sentencebase/internal/repository"
)

type UserService interface {
	RegisterUser(ctx context.Context, userUID string) error
	GetUser(ctx context.Context, userUID string) (*model.User, error)
}

type userService struct {
	runner   repository.TxRunner
	userRepo repository.UserRepository
}

func NewUserService(runner repository.TxRunner, userRepo repository.UserRepository) UserService {
	return &userService{
		runner:   runner,
		userRepo: userRepo,
	}
}

// RegisterUser は認証済みアイデンティティに対応するユーザードキュメントを作成します。
// 保留数キャッシュは0で初期化されます。既に登録済みの場合は409になります。
func (s *userService) RegisterUser(ctx context.Context, userUID string) error {
	logger := middleware.GetLogger(ctx)

	err := s.runner.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := s.userRepo.Get(ctx, tx, userUID)
		if err == nil {
			return model.NewAppError("USER_ALREADY_EXISTS", "ユーザーは既に登録されています。", "", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("get user: %w", err)
		}

		if err := s.userRepo.Create(ctx, tx, userUID); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})

	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return err
		}
		logger.Error("Transaction failed for RegisterUser", "error", err, "user_uid", userUID)
		return model.ErrInternalServer
	}

	logger.Info("User registered", "user_uid", userUID)
	return nil
}

// GetUser はユーザードキュメントを取得します。
func (s *userService) GetUser(ctx context.Context, userUID string) (*model.User, error) {
	user, err := s.userRepo.Get(ctx, nil, userUID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが登録されていません。", "", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Error fetching user", "error", err, "user_uid", userUID)
		return nil, model.ErrInternalServer
	}
	return user, nil
}
