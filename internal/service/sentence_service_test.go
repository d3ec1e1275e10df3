// internal/service/sentence_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"sentencebase/internal/config"
	"sentencebase/internal/model"
	"sentencebase/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.MaximumPendingSentences = 3
	return cfg
}

// --- Test AddSentence ---
func Test_sentenceService_AddSentence(t *testing.T) {
	ctx := context.Background()
	userUID := "user-1"

	validReq := &model.AddSentenceRequest{
		DictionaryForm: "学ぶ",
		Reading:        "まなぶ",
		Sentence:       "毎日日本語を学ぶ。",
		Tags:           []string{"textbook", "textbook", "chapter1"},
	}

	tests := []struct {
		name      string
		req       *model.AddSentenceRequest
		setupMock func(wordRepo *mocks.WordRepository, sentenceRepo *mocks.SentenceRepository, userRepo *mocks.UserRepository)
		wantErr   error
	}{
		{
			name: "正常系: 新規単語と例文の作成成功",
			req:  validReq,
			setupMock: func(wordRepo *mocks.WordRepository, sentenceRepo *mocks.SentenceRepository, userRepo *mocks.UserRepository) {
				userRepo.On("Get", ctx, mock.Anything, userUID).
					Return(&model.User{UserUID: userUID, PendingSentences: 0}, nil).Once()
				wordRepo.On("FindByForm", ctx, mock.Anything, userUID, "学ぶ", "まなぶ").
					Return(nil, model.ErrNotFound).Once()
				wordRepo.On("Create", ctx, mock.Anything, mock.AnythingOfType("*model.Word")).
					Run(func(args mock.Arguments) {
						word := args.Get(2).(*model.Word)
						assert.Equal(t, userUID, word.UserUID)
						assert.Equal(t, "学ぶ", word.DictionaryForm)
						assert.Equal(t, "まなぶ", word.Reading)
					}).Return("word-1", nil).Once()
				sentenceRepo.On("Create", ctx, mock.Anything, mock.AnythingOfType("*model.Sentence")).
					Run(func(args mock.Arguments) {
						sentence := args.Get(2).(*model.Sentence)
						assert.Equal(t, "word-1", sentence.WordID)
						assert.True(t, sentence.IsPending)
						assert.False(t, sentence.IsMined)
						// タグは重複が取り除かれているはず
						assert.Equal(t, []string{"textbook", "chapter1"}, sentence.Tags)
					}).Return("sentence-1", nil).Once()
				userRepo.On("IncrementPendingSentences", ctx, mock.Anything, userUID, int64(1)).
					Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "正常系: 既存単語の再浮上",
			req:  validReq,
			setupMock: func(wordRepo *mocks.WordRepository, sentenceRepo *mocks.SentenceRepository, userRepo *mocks.UserRepository) {
				userRepo.On("Get", ctx, mock.Anything, userUID).
					Return(&model.User{UserUID: userUID, PendingSentences: 1}, nil).Once()
				wordRepo.On("FindByForm", ctx, mock.Anything, userUID, "学ぶ", "まなぶ").
					Return(&model.Word{WordID: "word-1", Frequency: 2, IsMined: true}, nil).Once()
				wordRepo.On("Resurface", ctx, mock.Anything, "word-1").
					Return(nil).Once()
				sentenceRepo.On("Create", ctx, mock.Anything, mock.AnythingOfType("*model.Sentence")).
					Return("sentence-2", nil).Once()
				userRepo.On("IncrementPendingSentences", ctx, mock.Anything, userUID, int64(1)).
					Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 保留数の上限到達",
			req:  validReq,
			setupMock: func(wordRepo *mocks.WordRepository, sentenceRepo *mocks.SentenceRepository, userRepo *mocks.UserRepository) {
				userRepo.On("Get", ctx, mock.Anything, userUID).
					Return(&model.User{UserUID: userUID, PendingSentences: 3}, nil).Once()
			},
			wantErr: model.ErrLimitExceeded,
		},
		{
			name: "異常系: ユーザー未登録",
			req:  validReq,
			setupMock: func(wordRepo *mocks.WordRepository, sentenceRepo *mocks.SentenceRepository, userRepo *mocks.UserRepository) {
				userRepo.On("Get", ctx, mock.Anything, userUID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(mocks.WordRepository)
			sentenceRepo := new(mocks.SentenceRepository)
			userRepo := new(mocks.UserRepository)
			tt.setupMock(wordRepo, sentenceRepo, userRepo)

			s := NewSentenceService(passthroughTxRunner{}, wordRepo, sentenceRepo, userRepo, newTestConfig())
			sentence, err := s.AddSentence(ctx, userUID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				assert.Nil(t, sentence)
			} else {
				require.NoError(t, err)
				require.NotNil(t, sentence)
				assert.NotEmpty(t, sentence.SentenceID)
			}

			wordRepo.AssertExpectations(t)
			sentenceRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

// --- Test DeleteSentence ---
func Test_sentenceService_DeleteSentence(t *testing.T) {
	ctx := context.Background()
	userUID := "user-1"
	sentenceID := "sentence-1"

	tests := []struct {
		name      string
		setupMock func(wordRepo *mocks.WordRepository, sentenceRepo *mocks.SentenceRepository, userRepo *mocks.UserRepository)
		wantErr   error
	}{
		{
			name: "正常系: 削除成功",
			setupMock: func(wordRepo *mocks.WordRepository, sentenceRepo *mocks.SentenceRepository, userRepo *mocks.UserRepository) {
				sentenceRepo.On("GetPending", ctx, mock.Anything, userUID, sentenceID).
					Return(&model.Sentence{SentenceID: sentenceID, WordID: "word-1", IsPending: true}, nil).Once()
				sentenceRepo.On("Delete", ctx, mock.Anything, sentenceID).
					Return(nil).Once()
				wordRepo.On("DecrementFrequency", ctx, mock.Anything, "word-1").
					Return(nil).Once()
				userRepo.On("IncrementPendingSentences", ctx, mock.Anything, userUID, int64(-1)).
					Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 保留中の例文が見つからない",
			setupMock: func(wordRepo *mocks.WordRepository, sentenceRepo *mocks.SentenceRepository, userRepo *mocks.UserRepository) {
				sentenceRepo.On("GetPending", ctx, mock.Anything, userUID, sentenceID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(mocks.WordRepository)
			sentenceRepo := new(mocks.SentenceRepository)
			userRepo := new(mocks.UserRepository)
			tt.setupMock(wordRepo, sentenceRepo, userRepo)

			s := NewSentenceService(passthroughTxRunner{}, wordRepo, sentenceRepo, userRepo, newTestConfig())
			err := s.DeleteSentence(ctx, userUID, sentenceID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			} else {
				require.NoError(t, err)
			}

			wordRepo.AssertExpectations(t)
			sentenceRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

// --- Test EditSentence ---
func Test_sentenceService_EditSentence(t *testing.T) {
	ctx := context.Background()
	userUID := "user-1"
	sentenceID := "sentence-1"

	req := &model.EditSentenceRequest{
		Sentence: "新しい例文。",
		Tags:     []string{"a", "a", "b"},
	}

	tests := []struct {
		name      string
		setupMock func(sentenceRepo *mocks.SentenceRepository)
		wantErr   error
	}{
		{
			name: "正常系: 編集成功 (タグは重複排除される)",
			setupMock: func(sentenceRepo *mocks.SentenceRepository) {
				sentenceRepo.On("GetPending", ctx, mock.Anything, userUID, sentenceID).
					Return(&model.Sentence{SentenceID: sentenceID, IsPending: true}, nil).Once()
				sentenceRepo.On("UpdateText", ctx, mock.Anything, sentenceID, "新しい例文。", []string{"a", "b"}).
					Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 採掘済みの例文は編集できない (存在しない扱い)",
			setupMock: func(sentenceRepo *mocks.SentenceRepository) {
				sentenceRepo.On("GetPending", ctx, mock.Anything, userUID, sentenceID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := new(mocks.WordRepository)
			sentenceRepo := new(mocks.SentenceRepository)
			userRepo := new(mocks.UserRepository)
			tt.setupMock(sentenceRepo)

			s := NewSentenceService(passthroughTxRunner{}, wordRepo, sentenceRepo, userRepo, newTestConfig())
			err := s.EditSentence(ctx, userUID, sentenceID, req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			} else {
				require.NoError(t, err)
			}

			sentenceRepo.AssertExpectations(t)
		})
	}
}

// --- Test GetPendingSentences ---
func Test_sentenceService_GetPendingSentences(t *testing.T) {
	ctx := context.Background()
	userUID := "user-1"

	t.Run("正常系: 単語情報と結合して返す", func(t *testing.T) {
		wordRepo := new(mocks.WordRepository)
		sentenceRepo := new(mocks.SentenceRepository)
		userRepo := new(mocks.UserRepository)

		sentenceRepo.On("FindPendingByUser", ctx, mock.Anything, userUID).
			Return([]*model.Sentence{
				{SentenceID: "s1", WordID: "w1", Sentence: "例文1", Tags: []string{"t"}},
				{SentenceID: "s2", WordID: "w2", Sentence: "例文2"},
			}, nil).Once()
		wordRepo.On("GetMulti", ctx, mock.Anything, userUID, []string{"w1", "w2"}).
			Return(map[string]*model.Word{
				"w1": {WordID: "w1", DictionaryForm: "学ぶ", Reading: "まなぶ", Frequency: 3},
			}, nil).Once()

		s := NewSentenceService(passthroughTxRunner{}, wordRepo, sentenceRepo, userRepo, newTestConfig())
		got, err := s.GetPendingSentences(ctx, userUID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "学ぶ", got[0].DictionaryForm)
		assert.Equal(t, int64(3), got[0].Frequency)
		// 参照先の単語が消えていてもエントリ自体は返る
		assert.Equal(t, "unknown", got[1].DictionaryForm)
		assert.Equal(t, int64(0), got[1].Frequency)

		wordRepo.AssertExpectations(t)
		sentenceRepo.AssertExpectations(t)
	})

	t.Run("正常系: 保留中の例文が無い", func(t *testing.T) {
		wordRepo := new(mocks.WordRepository)
		sentenceRepo := new(mocks.SentenceRepository)
		userRepo := new(mocks.UserRepository)

		sentenceRepo.On("FindPendingByUser", ctx, mock.Anything, userUID).
			Return([]*model.Sentence{}, nil).Once()
		wordRepo.On("GetMulti", ctx, mock.Anything, userUID, []string{}).
			Return(map[string]*model.Word{}, nil).Once()

		s := NewSentenceService(passthroughTxRunner{}, wordRepo, sentenceRepo, userRepo, newTestConfig())
		got, err := s.GetPendingSentences(ctx, userUID)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
