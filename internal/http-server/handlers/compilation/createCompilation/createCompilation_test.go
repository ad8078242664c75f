package createCompilation

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"exploreWithMe/internal/http-server/handlers/compilation/createCompilation/mocks"
	"exploreWithMe/internal/lib/logger/handlers/slogdiscard"
	"exploreWithMe/internal/models"
	"exploreWithMe/internal/service"
)

func TestCreateCompilationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	summer := models.NewCompilationRequest{Events: []int64{3, 1}, Pinned: true, Title: "Summer"}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.CompilationCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"events": [3, 1], "pinned": true, "title": "Summer"}`,
			mockSetup: func(m *mocks.CompilationCreator) {
				m.On("AddCompilation", mock.Anything, summer).Return(models.CompilationDto{
					ID:     1,
					Events: []models.EventShortDto{},
					Pinned: true,
					Title:  "Summer",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","compilation":{"id":1,"events":[],"pinned":true,"title":"Summer"}}`,
		},
		{
			name:           "Missing title",
			requestBody:    `{"pinned": true}`,
			mockSetup:      func(m *mocks.CompilationCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Title is a required field"}`,
		},
		{
			name:           "Duplicate events",
			requestBody:    `{"events": [3, 3], "title": "Summer"}`,
			mockSetup:      func(m *mocks.CompilationCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Events is not valid"}`,
		},
		{
			name:        "Title taken",
			requestBody: `{"events": [3, 1], "pinned": true, "title": "Summer"}`,
			mockSetup: func(m *mocks.CompilationCreator) {
				m.On("AddCompilation", mock.Anything, summer).
					Return(models.CompilationDto{}, &service.Error{Kind: service.ErrConflict, Msg: "compilation already exists"})
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"compilation already exists"}`,
		},
		{
			name:        "Internal error",
			requestBody: `{"events": [3, 1], "pinned": true, "title": "Summer"}`,
			mockSetup: func(m *mocks.CompilationCreator) {
				m.On("AddCompilation", mock.Anything, summer).Return(models.CompilationDto{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add compilation"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewCompilationCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest(http.MethodPost, "/admin/compilations", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
