//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"backline/internal/handler/api"
	"backline/internal/pkg/config"
	"backline/tests/common/httptest"
	queriesmock "backline/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries, config.BookingConfig{
		DefaultBufferBeforeMin: 60,
		DefaultBufferAfterMin:  60,
	})

	s.router.GET("/items/:id/availability", s.handler.CheckItem)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestCheckItem() {
	validQuery := "?start=2026-06-01T10:00:00Z&end=2026-06-01T14:00:00Z"

	s.Run("success: returns availability verdict", func() {
		s.mockQueries.EXPECT().IsItemAvailable(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/1/availability"+validQuery, nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(1), body["itemId"])
		s.Equal(true, body["available"])
	})

	s.Run("error: 400 Bad Request on malformed parameters", func() {
		cases := []struct {
			name  string
			path  string
			query string
		}{
			{name: "non-numeric item id", path: "/items/abc/availability", query: validQuery},
			{name: "missing start", path: "/items/1/availability", query: "?end=2026-06-01T14:00:00Z"},
			{name: "non-RFC3339 end", path: "/items/1/availability", query: "?start=2026-06-01T10:00:00Z&end=tomorrow"},
			{name: "inverted window", path: "/items/1/availability", query: "?start=2026-06-01T14:00:00Z&end=2026-06-01T10:00:00Z"},
			{name: "non-integer buffer", path: "/items/1/availability", query: validQuery + "&buffer_before_min=soon"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path+tc.query, nil)
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 500 Internal Server Error when the lookup fails", func() {
		s.mockQueries.EXPECT().IsItemAvailable(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
			Return(false, fmt.Errorf("snapshot load failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/1/availability"+validQuery, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
