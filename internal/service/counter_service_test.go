// internal/service/counter_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"sentencebase/internal/config"
	"sentencebase/internal/model"
	"sentencebase/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCounterTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.EventIDRetention = time.Hour
	cfg.App.EventIDCleanupInterval = time.Hour
	return cfg
}

// --- Test ApplyChangeEvent ---
func Test_counterService_ApplyChangeEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		event     *model.ChangeEvent
		setupMock func(userRepo *mocks.UserRepository, metaRepo *mocks.MetaRepository, eventRepo *mocks.EventRepository)
		wantErr   error
	}{
		{
			name: "正常系: 作成イベントでカウンタが+1される",
			event: &model.ChangeEvent{
				EventID:    "ev-1",
				Collection: model.CollectionSentences,
				DocumentID: "s1",
				Type:       model.ChangeTypeCreate,
				UserUID:    "user-1",
			},
			setupMock: func(userRepo *mocks.UserRepository, metaRepo *mocks.MetaRepository, eventRepo *mocks.EventRepository) {
				eventRepo.On("Exists", ctx, mock.Anything, "ev-1").Return(false, nil).Once()
				userRepo.On("Get", ctx, mock.Anything, "user-1").
					Return(&model.User{UserUID: "user-1"}, nil).Once()
				userRepo.On("IncrementCounter", ctx, mock.Anything, "user-1", model.CollectionSentences, int64(1)).
					Return(nil).Once()
				metaRepo.On("IncrementCounter", ctx, mock.Anything, model.CollectionSentences, int64(1)).
					Return(nil).Once()
				eventRepo.On("Record", ctx, mock.Anything, "ev-1").Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "正常系: 削除イベントでカウンタが-1される",
			event: &model.ChangeEvent{
				EventID:    "ev-2",
				Collection: model.CollectionWords,
				DocumentID: "w1",
				Type:       model.ChangeTypeDelete,
				UserUID:    "user-1",
			},
			setupMock: func(userRepo *mocks.UserRepository, metaRepo *mocks.MetaRepository, eventRepo *mocks.EventRepository) {
				eventRepo.On("Exists", ctx, mock.Anything, "ev-2").Return(false, nil).Once()
				userRepo.On("Get", ctx, mock.Anything, "user-1").
					Return(&model.User{UserUID: "user-1"}, nil).Once()
				userRepo.On("IncrementCounter", ctx, mock.Anything, "user-1", model.CollectionWords, int64(-1)).
					Return(nil).Once()
				metaRepo.On("IncrementCounter", ctx, mock.Anything, model.CollectionWords, int64(-1)).
					Return(nil).Once()
				eventRepo.On("Record", ctx, mock.Anything, "ev-2").Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "正常系: 処理済みイベントの再配信は何も変えない",
			event: &model.ChangeEvent{
				EventID:    "ev-1",
				Collection: model.CollectionSentences,
				DocumentID: "s1",
				Type:       model.ChangeTypeCreate,
				UserUID:    "user-1",
			},
			setupMock: func(userRepo *mocks.UserRepository, metaRepo *mocks.MetaRepository, eventRepo *mocks.EventRepository) {
				eventRepo.On("Exists", ctx, mock.Anything, "ev-1").Return(true, nil).Once()
				// カウンタ更新も台帳追記も行われない
			},
			wantErr: nil,
		},
		{
			name: "正常系: ユーザーが消えていればグローバルカウンタのみ更新",
			event: &model.ChangeEvent{
				EventID:    "ev-3",
				Collection: model.CollectionSentences,
				DocumentID: "s2",
				Type:       model.ChangeTypeDelete,
				UserUID:    "user-gone",
			},
			setupMock: func(userRepo *mocks.UserRepository, metaRepo *mocks.MetaRepository, eventRepo *mocks.EventRepository) {
				eventRepo.On("Exists", ctx, mock.Anything, "ev-3").Return(false, nil).Once()
				userRepo.On("Get", ctx, mock.Anything, "user-gone").
					Return(nil, model.ErrNotFound).Once()
				metaRepo.On("IncrementCounter", ctx, mock.Anything, model.CollectionSentences, int64(-1)).
					Return(nil).Once()
				eventRepo.On("Record", ctx, mock.Anything, "ev-3").Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "正常系: userUid の無いイベントはグローバルのみ",
			event: &model.ChangeEvent{
				EventID:    "ev-4",
				Collection: model.CollectionBatches,
				DocumentID: "b1",
				Type:       model.ChangeTypeCreate,
			},
			setupMock: func(userRepo *mocks.UserRepository, metaRepo *mocks.MetaRepository, eventRepo *mocks.EventRepository) {
				eventRepo.On("Exists", ctx, mock.Anything, "ev-4").Return(false, nil).Once()
				metaRepo.On("IncrementCounter", ctx, mock.Anything, model.CollectionBatches, int64(1)).
					Return(nil).Once()
				eventRepo.On("Record", ctx, mock.Anything, "ev-4").Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "正常系: 対象外コレクション (eventIds) はスキップ",
			event: &model.ChangeEvent{
				EventID:    "ev-5",
				Collection: model.CollectionEventIDs,
				DocumentID: "ev-x",
				Type:       model.ChangeTypeCreate,
			},
			setupMock: func(userRepo *mocks.UserRepository, metaRepo *mocks.MetaRepository, eventRepo *mocks.EventRepository) {
				// 何も呼ばれない
			},
			wantErr: nil,
		},
		{
			name: "異常系: 不正な変更種別",
			event: &model.ChangeEvent{
				EventID:    "ev-6",
				Collection: model.CollectionSentences,
				DocumentID: "s1",
				Type:       model.ChangeType("update"),
			},
			setupMock: func(userRepo *mocks.UserRepository, metaRepo *mocks.MetaRepository, eventRepo *mocks.EventRepository) {
			},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mocks.UserRepository)
			metaRepo := new(mocks.MetaRepository)
			eventRepo := new(mocks.EventRepository)
			tt.setupMock(userRepo, metaRepo, eventRepo)

			s := NewCounterService(passthroughTxRunner{}, userRepo, metaRepo, eventRepo, newCounterTestConfig())
			err := s.ApplyChangeEvent(ctx, tt.event)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			} else {
				require.NoError(t, err)
			}

			userRepo.AssertExpectations(t)
			metaRepo.AssertExpectations(t)
			eventRepo.AssertExpectations(t)
		})
	}
}

// --- Test CleanupEventIDs ---
func Test_counterService_CleanupEventIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 期限切れの台帳エントリをページ単位で削除", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		metaRepo := new(mocks.MetaRepository)
		eventRepo := new(mocks.EventRepository)

		firstPage := []string{"ev-1", "ev-2"}
		eventRepo.On("FindExpired", ctx, mock.AnythingOfType("time.Time"), config.EventIDCleanupPageSize).
			Return(firstPage, nil).Once()
		eventRepo.On("DeleteMulti", ctx, firstPage).Return(nil).Once()
		eventRepo.On("FindExpired", ctx, mock.AnythingOfType("time.Time"), config.EventIDCleanupPageSize).
			Return([]string{}, nil).Once()

		s := NewCounterService(passthroughTxRunner{}, userRepo, metaRepo, eventRepo, newCounterTestConfig())
		err := s.CleanupEventIDs(ctx)

		require.NoError(t, err)
		eventRepo.AssertExpectations(t)
	})

	t.Run("正常系: 期限切れエントリが無ければ何もしない", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		metaRepo := new(mocks.MetaRepository)
		eventRepo := new(mocks.EventRepository)

		eventRepo.On("FindExpired", ctx, mock.AnythingOfType("time.Time"), config.EventIDCleanupPageSize).
			Return([]string{}, nil).Once()

		s := NewCounterService(passthroughTxRunner{}, userRepo, metaRepo, eventRepo, newCounterTestConfig())
		err := s.CleanupEventIDs(ctx)

		require.NoError(t, err)
		eventRepo.AssertExpectations(t)
	})
}
