package addRating

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"exploreWithMe/internal/http-server/handlers/rating/addRating/mocks"
	"exploreWithMe/internal/lib/logger/handlers/slogdiscard"
	"exploreWithMe/internal/models"
	"exploreWithMe/internal/service"
)

func TestAddRatingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	req := models.NewRatingRequest{EventID: 4, Rate: 8}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.RatingAdder)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"eventId": 4, "rate": 8}`,
			mockSetup: func(m *mocks.RatingAdder) {
				m.On("AddRating", mock.Anything, int64(2), req).
					Return(models.RatingDto{ID: 1, UserID: 2, EventID: 4, Rate: 8}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","rating":{"id":1,"userId":2,"eventId":4,"rate":8}}`,
		},
		{
			name:           "Rate out of range",
			requestBody:    `{"eventId": 4, "rate": 11}`,
			mockSetup:      func(m *mocks.RatingAdder) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Rate must be at most 10"}`,
		},
		{
			name:           "Missing event",
			requestBody:    `{"rate": 5}`,
			mockSetup:      func(m *mocks.RatingAdder) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field EventID is a required field"}`,
		},
		{
			name:        "Already rated",
			requestBody: `{"eventId": 4, "rate": 8}`,
			mockSetup: func(m *mocks.RatingAdder) {
				m.On("AddRating", mock.Anything, int64(2), req).
					Return(models.RatingDto{}, &service.Error{Kind: service.ErrConflict, Msg: "event already rated by user"})
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"event already rated by user"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockAdder := mocks.NewRatingAdder(t)
			tc.mockSetup(mockAdder)

			router := chi.NewRouter()
			router.Post("/users/{userId}/ratings", New(logger, mockAdder))

			httpReq, err := http.NewRequest(http.MethodPost, "/users/2/ratings", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httpReq)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
