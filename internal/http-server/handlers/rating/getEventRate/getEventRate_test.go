package getEventRate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"exploreWithMe/internal/http-server/handlers/rating/getEventRate/mocks"
	"exploreWithMe/internal/lib/logger/handlers/slogdiscard"
	"exploreWithMe/internal/models"
	"exploreWithMe/internal/service"
)

func TestGetEventRateHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(mock *mocks.EventRateGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			eventID: "4",
			mockSetup: func(m *mocks.EventRateGetter) {
				m.On("GetEventRating", mock.Anything, int64(4)).Return(models.EventRateDto{
					EventID:     4,
					Rate:        7.5,
					Description: "d",
					Annotation:  "a",
					Title:       "t",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","rate":{"eventId":4,"rate":7.5,"description":"d","annotation":"a","title":"t"}}`,
		},
		{
			name:    "No ratings yet",
			eventID: "5",
			mockSetup: func(m *mocks.EventRateGetter) {
				m.On("GetEventRating", mock.Anything, int64(5)).
					Return(models.EventRateDto{}, &service.Error{Kind: service.ErrNotFound, Msg: "event with id=5 has no ratings"})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event with id=5 has no ratings"}`,
		},
		{
			name:           "Invalid id",
			eventID:        "0",
			mockSetup:      func(m *mocks.EventRateGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid eventId format"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventRateGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Get("/events/rate/{eventId}", New(logger, mockGetter))

			req := httptest.NewRequest(http.MethodGet, "/events/rate/"+tc.eventID, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
