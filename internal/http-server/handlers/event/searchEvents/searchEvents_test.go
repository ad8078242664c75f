package searchEvents

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"exploreWithMe/internal/http-server/handlers/event/searchEvents/mocks"
	"exploreWithMe/internal/lib/logger/handlers/slogdiscard"
	"exploreWithMe/internal/models"
	"exploreWithMe/internal/service"
)

func TestSearchEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(mock *mocks.EventSearcher)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Full filter",
			query: "?text=Jazz&categories=1,2&paid=true&rangeStart=2030-01-01%2000:00:00&onlyAvailable=true&sort=VIEWS&from=10&size=5",
			mockSetup: func(m *mocks.EventSearcher) {
				f := mock.MatchedBy(func(f models.PublicEventFilter) bool {
					return f.Text == "Jazz" &&
						assert.ObjectsAreEqual([]int64{1, 2}, f.Categories) &&
						f.Paid != nil && *f.Paid &&
						f.RangeStart != nil && f.RangeStart.Equal(time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)) &&
						f.RangeEnd == nil &&
						f.OnlyAvailable &&
						f.Sort == models.SortByViews &&
						f.From == 10 && f.Size == 5
				})
				hit := models.HitInfo{URI: "/events", IP: "192.0.2.1"}
				m.On("FindEventsByPublic", mock.Anything, f, hit).Return([]models.EventShortDto{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","events":[]}`,
		},
		{
			name:  "Defaults",
			query: "",
			mockSetup: func(m *mocks.EventSearcher) {
				f := models.PublicEventFilter{Size: 10}
				m.On("FindEventsByPublic", mock.Anything, f, mock.Anything).
					Return([]models.EventShortDto{{ID: 1, Title: "Opera"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown sort",
			query:          "?sort=RANDOM",
			mockSetup:      func(m *mocks.EventSearcher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"unknown sort \"RANDOM\""}`,
		},
		{
			name:           "Bad date",
			query:          "?rangeEnd=tomorrow",
			mockSetup:      func(m *mocks.EventSearcher) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad category",
			query:          "?categories=x",
			mockSetup:      func(m *mocks.EventSearcher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid categories value \"x\""}`,
		},
		{
			name:  "Range inverted",
			query: "?rangeStart=2030-01-02%2000:00:00&rangeEnd=2030-01-01%2000:00:00",
			mockSetup: func(m *mocks.EventSearcher) {
				m.On("FindEventsByPublic", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, &service.Error{Kind: service.ErrValidation, Msg: "rangeStart must not be after rangeEnd"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"rangeStart must not be after rangeEnd"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSearcher := mocks.NewEventSearcher(t)
			tc.mockSetup(mockSearcher)

			handler := New(logger, mockSearcher)

			req := httptest.NewRequest(http.MethodGet, "/events"+tc.query, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}
		})
	}
}
