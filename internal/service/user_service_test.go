// internal/service/user_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"sentencebase/internal/model"
	"sentencebase/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_userService_RegisterUser(t *testing.T) {
	ctx := context.Background()
	userUID := uuid.NewString()

	tests := []struct {
		name      string
		setupMock func(userRepo *mocks.UserRepository)
		wantErr   error
	}{
		{
			name: "正常系: 登録成功",
			setupMock: func(userRepo *mocks.UserRepository) {
				userRepo.On("Get", ctx, mock.Anything, userUID).
					Return(nil, model.ErrNotFound).Once()
				userRepo.On("Create", ctx, mock.Anything, userUID).
					Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 既に登録済み",
			setupMock: func(userRepo *mocks.UserRepository) {
				userRepo.On("Get", ctx, mock.Anything, userUID).
					Return(&model.User{UserUID: userUID}, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mocks.UserRepository)
			tt.setupMock(userRepo)

			s := NewUserService(passthroughTxRunner{}, userRepo)
			err := s.RegisterUser(ctx, userUID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			} else {
				require.NoError(t, err)
			}

			userRepo.AssertExpectations(t)
		})
	}
}

func Test_userService_GetUser(t *testing.T) {
	ctx := context.Background()
	userUID := "user-1"

	t.Run("正常系: 取得成功", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("Get", ctx, mock.Anything, userUID).
			Return(&model.User{UserUID: userUID, PendingSentences: 5}, nil).Once()

		s := NewUserService(passthroughTxRunner{}, userRepo)
		user, err := s.GetUser(ctx, userUID)

		require.NoError(t, err)
		assert.Equal(t, int64(5), user.PendingSentences)
		userRepo.AssertExpectations(t)
	})

	t.Run("異常系: 未登録", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("Get", ctx, mock.Anything, userUID).
			Return(nil, model.ErrNotFound).Once()

		s := NewUserService(passthroughTxRunner{}, userRepo)
		_, err := s.GetUser(ctx, userUID)

		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
		userRepo.AssertExpectations(t)
	})
}
