package updateAdminEvent

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"exploreWithMe/internal/http-server/handlers/event/updateAdminEvent/mocks"
	"exploreWithMe/internal/lib/logger/handlers/slogdiscard"
	"exploreWithMe/internal/models"
	"exploreWithMe/internal/service"
)

func TestUpdateAdminEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	publish := mock.MatchedBy(func(req models.UpdateEventAdminRequest) bool {
		return req.StateAction != nil && *req.StateAction == models.StateActionPublish && req.Title == nil
	})

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(mock *mocks.AdminEventUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Publish",
			eventID:     "4",
			requestBody: `{"stateAction": "PUBLISH_EVENT"}`,
			mockSetup: func(m *mocks.AdminEventUpdater) {
				m.On("UpdateEventByAdmin", mock.Anything, int64(4), publish).
					Return(models.EventFullDto{ID: 4, State: models.EventStatePublished}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"state":"PUBLISHED"`)
			},
		},
		{
			name:           "Unknown state action",
			eventID:        "4",
			requestBody:    `{"stateAction": "SEND_TO_REVIEW"}`,
			mockSetup:      func(m *mocks.AdminEventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "StateAction")
			},
		},
		{
			name:           "Title too short",
			eventID:        "4",
			requestBody:    `{"title": "ab"}`,
			mockSetup:      func(m *mocks.AdminEventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Title")
			},
		},
		{
			name:        "Already published",
			eventID:     "4",
			requestBody: `{"stateAction": "PUBLISH_EVENT"}`,
			mockSetup: func(m *mocks.AdminEventUpdater) {
				m.On("UpdateEventByAdmin", mock.Anything, int64(4), publish).
					Return(models.EventFullDto{}, &service.Error{Kind: service.ErrConflict, Msg: "event is not pending"})
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"event is not pending"}`,
		},
		{
			name:        "Missing event",
			eventID:     "40",
			requestBody: `{"stateAction": "PUBLISH_EVENT"}`,
			mockSetup: func(m *mocks.AdminEventUpdater) {
				m.On("UpdateEventByAdmin", mock.Anything, int64(40), publish).
					Return(models.EventFullDto{}, &service.Error{Kind: service.ErrNotFound, Msg: "event with id=40 was not found"})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event with id=40 was not found"}`,
		},
		{
			name:           "Invalid id",
			eventID:        "-1",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.AdminEventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid eventId format"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewAdminEventUpdater(t)
			tc.mockSetup(mockUpdater)

			router := chi.NewRouter()
			router.Patch("/admin/events/{eventId}", New(logger, mockUpdater))

			req, err := http.NewRequest(http.MethodPatch, "/admin/events/"+tc.eventID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
