package getCompilation

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"exploreWithMe/internal/http-server/handlers/compilation/getCompilation/mocks"
	"exploreWithMe/internal/lib/logger/handlers/slogdiscard"
	"exploreWithMe/internal/models"
	"exploreWithMe/internal/service"
)

func TestGetCompilationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		compID         string
		mockSetup      func(mock *mocks.CompilationGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Empty compilation",
			compID: "3",
			mockSetup: func(m *mocks.CompilationGetter) {
				m.On("GetCompilation", mock.Anything, int64(3)).
					Return(models.CompilationDto{ID: 3, Title: "Summer", Pinned: true, Events: []models.EventShortDto{}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","compilation":{"id":3,"events":[],"pinned":true,"title":"Summer"}}`,
		},
		{
			name:   "Missing compilation",
			compID: "30",
			mockSetup: func(m *mocks.CompilationGetter) {
				m.On("GetCompilation", mock.Anything, int64(30)).
					Return(models.CompilationDto{}, &service.Error{Kind: service.ErrNotFound, Msg: "compilation with id=30 was not found"})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"compilation with id=30 was not found"}`,
		},
		{
			name:           "Invalid id",
			compID:         "summer",
			mockSetup:      func(m *mocks.CompilationGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid compId format"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewCompilationGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Get("/compilations/{compId}", New(logger, mockGetter))

			req := httptest.NewRequest(http.MethodGet, "/compilations/"+tc.compID, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
