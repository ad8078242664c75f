package getEventRequests

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"exploreWithMe/internal/http-server/handlers/request/getEventRequests/mocks"
	"exploreWithMe/internal/lib/datetime"
	"exploreWithMe/internal/lib/logger/handlers/slogdiscard"
	"exploreWithMe/internal/models"
	"exploreWithMe/internal/service"
)

func TestGetEventRequestsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	created := datetime.New(time.Date(2026, time.March, 4, 18, 30, 0, 0, time.Local))

	testCases := []struct {
		name           string
		path           string
		mockSetup      func(mock *mocks.EventRequestsGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			path: "/users/1/events/7/requests",
			mockSetup: func(m *mocks.EventRequestsGetter) {
				m.On("GetEventRequests", mock.Anything, int64(1), int64(7)).
					Return([]models.ParticipationRequestDto{{
						ID: 11, Created: created, Event: 7, Requester: 4, Status: models.RequestStatusPending,
					}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","requests":[` +
				`{"id":11,"created":"2026-03-04 18:30:00","event":7,"requester":4,"status":"PENDING"}]}`,
		},
		{
			name: "Caller is not the initiator",
			path: "/users/2/events/7/requests",
			mockSetup: func(m *mocks.EventRequestsGetter) {
				m.On("GetEventRequests", mock.Anything, int64(2), int64(7)).
					Return(nil, &service.Error{Kind: service.ErrNotFound, Msg: "event with id=7 was not found"})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event with id=7 was not found"}`,
		},
		{
			name:           "Invalid user id",
			path:           "/users/x/events/7/requests",
			mockSetup:      func(m *mocks.EventRequestsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid userId format"}`,
		},
		{
			name:           "Invalid event id",
			path:           "/users/1/events/0/requests",
			mockSetup:      func(m *mocks.EventRequestsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid eventId format"}`,
		},
		{
			name: "Storage failure",
			path: "/users/1/events/7/requests",
			mockSetup: func(m *mocks.EventRequestsGetter) {
				m.On("GetEventRequests", mock.Anything, int64(1), int64(7)).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get event requests"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventRequestsGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Get("/users/{userId}/events/{eventId}/requests", New(logger, mockGetter))

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
