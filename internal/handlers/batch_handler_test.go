// internal/handlers/batch_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sentencebase/internal/config"
	"sentencebase/internal/handlers"
	"sentencebase/internal/model"
	"sentencebase/internal/service/mocks"
)

func newBatchRouter(mockService *mocks.BatchService, userUID string) http.Handler {
	cfg := &config.Config{}
	cfg.App.MaximumPendingSentences = 3

	h := handlers.NewBatchHandler(mockService, cfg, testLogger())
	r := chi.NewRouter()
	r.Use(withUser(userUID))
	r.Post("/api/v1/batches", h.PostBatch)
	r.Post("/api/v1/batches/backlog", h.PostBacklogBatch)
	return r
}

func TestBatchHandler_PostBatch(t *testing.T) {
	userUID := "user-1"

	tests := []struct {
		name           string
		userUID        string
		body           interface{}
		setupMock      func(s *mocks.BatchService)
		expectedStatus int
	}{
		{
			name:    "正常系: バッチ作成成功",
			userUID: userUID,
			body:    model.CreateBatchRequest{Sentences: []string{"s1", "s2"}},
			setupMock: func(s *mocks.BatchService) {
				s.On("CreateBatch", mock.Anything, userUID, []string{"s1", "s2"}).
					Return("batch-1", nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: 空の例文ID配列",
			userUID:        userUID,
			body:           model.CreateBatchRequest{Sentences: []string{}},
			setupMock:      func(s *mocks.BatchService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 上限を超える例文ID配列",
			userUID:        userUID,
			body:           model.CreateBatchRequest{Sentences: []string{"s1", "s2", "s3", "s4"}},
			setupMock:      func(s *mocks.BatchService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "異常系: 重複IDはサービスで拒否される",
			userUID: userUID,
			body:    model.CreateBatchRequest{Sentences: []string{"s1", "s1"}},
			setupMock: func(s *mocks.BatchService) {
				s.On("CreateBatch", mock.Anything, userUID, []string{"s1", "s1"}).
					Return("", model.NewAppError("DUPLICATE_IDS", "例文IDが重複しています。", "sentences", model.ErrDuplicateIDs)).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 認証情報なし",
			userUID:        "",
			body:           model.CreateBatchRequest{Sentences: []string{"s1"}},
			setupMock:      func(s *mocks.BatchService) {},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.BatchService)
			tt.setupMock(mockService)
			router := newBatchRouter(mockService, tt.userUID)

			rec := doJSONRequest(t, router, http.MethodPost, "/api/v1/batches", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestBatchHandler_PostBacklogBatch(t *testing.T) {
	userUID := "user-1"

	t.Run("正常系: バックログからのバッチ作成成功", func(t *testing.T) {
		mockService := new(mocks.BatchService)
		mockService.On("CreateBatchFromBacklog", mock.Anything, userUID, mock.AnythingOfType("*model.CreateBacklogBatchRequest")).
			Return("batch-1", nil).Once()
		router := newBatchRouter(mockService, userUID)

		rec := doJSONRequest(t, router, http.MethodPost, "/api/v1/batches/backlog", model.CreateBacklogBatchRequest{
			Sentences:    []string{"s1"},
			MarkAsMined:  []string{"w2"},
			PushToTheEnd: []string{"w3"},
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeAPIResponse(t, rec)
		assert.True(t, resp.Success)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 例文ID配列が無い", func(t *testing.T) {
		mockService := new(mocks.BatchService)
		router := newBatchRouter(mockService, userUID)

		rec := doJSONRequest(t, router, http.MethodPost, "/api/v1/batches/backlog", model.CreateBacklogBatchRequest{
			MarkAsMined: []string{"w2"},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertExpectations(t)
	})
}
