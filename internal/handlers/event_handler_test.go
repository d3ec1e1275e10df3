// internal/handlers/event_handler_test.go
package handlers_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sentencebase/internal/handlers"
	"sentencebase/internal/model"
	"sentencebase/internal/service/mocks"
)

func newEventRouter(mockService *mocks.CounterService) http.Handler {
	h := handlers.NewEventHandler(mockService, testLogger())
	r := chi.NewRouter()
	r.Post("/internal/events", h.PostChangeEvent)
	return r
}

func TestEventHandler_PostChangeEvent(t *testing.T) {
	validBody := model.ChangeEventRequest{
		EventID:    "ev-1",
		Collection: "sentences",
		DocumentID: "s1",
		ChangeType: "create",
		UserUID:    "user-1",
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(s *mocks.CounterService)
		expectedStatus int
	}{
		{
			name: "正常系: イベント受理",
			body: validBody,
			setupMock: func(s *mocks.CounterService) {
				s.On("ApplyChangeEvent", mock.Anything, mock.AnythingOfType("*model.ChangeEvent")).
					Run(func(args mock.Arguments) {
						event := args.Get(1).(*model.ChangeEvent)
						assert.Equal(t, "ev-1", event.EventID)
						assert.Equal(t, model.CollectionSentences, event.Collection)
						assert.Equal(t, model.ChangeTypeCreate, event.Type)
						assert.Equal(t, "user-1", event.UserUID)
					}).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "異常系: 未知のコレクション名は422",
			body: model.ChangeEventRequest{
				EventID:    "ev-2",
				Collection: "unknownCollection",
				DocumentID: "x1",
				ChangeType: "create",
			},
			setupMock:      func(s *mocks.CounterService) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "異常系: 不正な変更種別",
			body: model.ChangeEventRequest{
				EventID:    "ev-3",
				Collection: "sentences",
				DocumentID: "s1",
				ChangeType: "update",
			},
			setupMock:      func(s *mocks.CounterService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: eventId が無い",
			body: model.ChangeEventRequest{
				Collection: "sentences",
				DocumentID: "s1",
				ChangeType: "create",
			},
			setupMock:      func(s *mocks.CounterService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.CounterService)
			tt.setupMock(mockService)
			router := newEventRouter(mockService)

			rec := doJSONRequest(t, router, http.MethodPost, "/internal/events", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			resp := decodeAPIResponse(t, rec)
			if tt.expectedStatus < 300 {
				assert.True(t, resp.Success)
			} else {
				assert.False(t, resp.Success)
				require.NotEmpty(t, resp.Errors)
			}
			mockService.AssertExpectations(t)
		})
	}
}
