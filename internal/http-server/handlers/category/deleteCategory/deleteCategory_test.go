package deleteCategory

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"exploreWithMe/internal/http-server/handlers/category/deleteCategory/mocks"
	"exploreWithMe/internal/lib/logger/handlers/slogdiscard"
	"exploreWithMe/internal/service"
)

func TestDeleteCategoryHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		catID          string
		mockSetup      func(mock *mocks.CategoryDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Success",
			catID: "3",
			mockSetup: func(m *mocks.CategoryDeleter) {
				m.On("DeleteCategory", mock.Anything, int64(3)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:  "Category in use",
			catID: "3",
			mockSetup: func(m *mocks.CategoryDeleter) {
				m.On("DeleteCategory", mock.Anything, int64(3)).
					Return(&service.Error{Kind: service.ErrConflict, Msg: "category with id=3 is used by events"})
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"category with id=3 is used by events"}`,
		},
		{
			name:  "Missing category",
			catID: "9",
			mockSetup: func(m *mocks.CategoryDeleter) {
				m.On("DeleteCategory", mock.Anything, int64(9)).
					Return(&service.Error{Kind: service.ErrNotFound, Msg: "category with id=9 was not found"})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"category with id=9 was not found"}`,
		},
		{
			name:           "Invalid id",
			catID:          "abc",
			mockSetup:      func(m *mocks.CategoryDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid catId format"}`,
		},
		{
			name:  "Storage failure",
			catID: "3",
			mockSetup: func(m *mocks.CategoryDeleter) {
				m.On("DeleteCategory", mock.Anything, int64(3)).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete category"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewCategoryDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/admin/categories/{catId}", New(logger, mockDeleter))

			req, err := http.NewRequest(http.MethodDelete, "/admin/categories/"+tc.catID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}
