package getCompilations

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"exploreWithMe/internal/http-server/handlers/compilation/getCompilations/mocks"
	"exploreWithMe/internal/lib/logger/handlers/slogdiscard"
	"exploreWithMe/internal/models"
)

func TestGetCompilationsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(mock *mocks.CompilationsGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Pinned only",
			query: "?pinned=true&from=0&size=5",
			mockSetup: func(m *mocks.CompilationsGetter) {
				pinned := mock.MatchedBy(func(p *bool) bool { return p != nil && *p })
				m.On("GetCompilations", mock.Anything, pinned, 0, 5).
					Return([]models.CompilationDto{{ID: 1, Title: "Top", Pinned: true, Events: []models.EventShortDto{}}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","compilations":[{"id":1,"events":[],"pinned":true,"title":"Top"}]}`,
		},
		{
			name:  "Any pinned state",
			query: "",
			mockSetup: func(m *mocks.CompilationsGetter) {
				anyPinned := mock.MatchedBy(func(p *bool) bool { return p == nil })
				m.On("GetCompilations", mock.Anything, anyPinned, 0, 10).Return([]models.CompilationDto{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","compilations":[]}`,
		},
		{
			name:           "Invalid pinned",
			query:          "?pinned=maybe",
			mockSetup:      func(m *mocks.CompilationsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid pinned value \"maybe\""}`,
		},
		{
			name:           "Zero size",
			query:          "?size=0",
			mockSetup:      func(m *mocks.CompilationsGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"size must be a positive integer"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewCompilationsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req := httptest.NewRequest(http.MethodGet, "/compilations"+tc.query, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
