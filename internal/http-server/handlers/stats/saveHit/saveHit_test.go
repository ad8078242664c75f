package saveHit

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"exploreWithMe/internal/http-server/handlers/stats/saveHit/mocks"
	"exploreWithMe/internal/lib/logger/handlers/slogdiscard"
	"exploreWithMe/internal/models"
)

func TestSaveHitHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	hit := mock.MatchedBy(func(h models.EndpointHit) bool {
		return h.App == "ewm-main-service" &&
			h.URI == "/events/1" &&
			h.IP == "192.163.0.1" &&
			h.Timestamp.Equal(time.Date(2030, 9, 6, 11, 0, 23, 0, time.Local))
	})

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.HitSaver)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"app":"ewm-main-service","uri":"/events/1","ip":"192.163.0.1","timestamp":"2030-09-06 11:00:23"}`,
			mockSetup: func(m *mocks.HitSaver) {
				m.On("SaveHit", mock.Anything, hit).Return(int64(1), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid ip",
			requestBody:    `{"app":"ewm-main-service","uri":"/events/1","ip":"not-an-ip","timestamp":"2030-09-06 11:00:23"}`,
			mockSetup:      func(m *mocks.HitSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field IP is not valid"}`,
		},
		{
			name:           "Missing app",
			requestBody:    `{"uri":"/events/1","ip":"192.163.0.1","timestamp":"2030-09-06 11:00:23"}`,
			mockSetup:      func(m *mocks.HitSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field App is a required field"}`,
		},
		{
			name:           "Missing timestamp",
			requestBody:    `{"app":"ewm-main-service","uri":"/events/1","ip":"192.163.0.1"}`,
			mockSetup:      func(m *mocks.HitSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Timestamp is a required field"}`,
		},
		{
			name:           "Bad timestamp format",
			requestBody:    `{"app":"ewm-main-service","uri":"/events/1","ip":"192.163.0.1","timestamp":"06.09.2030"}`,
			mockSetup:      func(m *mocks.HitSaver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Storage error",
			requestBody: `{"app":"ewm-main-service","uri":"/events/1","ip":"192.163.0.1","timestamp":"2030-09-06 11:00:23"}`,
			mockSetup: func(m *mocks.HitSaver) {
				m.On("SaveHit", mock.Anything, hit).Return(int64(0), errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to save hit"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSaver := mocks.NewHitSaver(t)
			tc.mockSetup(mockSaver)

			handler := New(logger, mockSaver)

			req, err := http.NewRequest(http.MethodPost, "/hit", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
