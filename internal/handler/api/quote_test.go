//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"backline/internal/domain/booking"
	"backline/internal/domain/schedule"
	"backline/internal/handler/api"
	"backline/internal/pkg/config"
	"backline/internal/usecase/commands"
	"backline/internal/usecase/queries"
	"backline/tests/common/builder"
	"backline/tests/common/httptest"
	commandsmock "backline/tests/mock/commands"
	queriesmock "backline/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQuoteCommands
	mockQueries  *queriesmock.MockQuoteQueries
	handler      *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuoteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockCommands, s.mockQueries, config.BookingConfig{
		DefaultBufferBeforeMin: 60,
		DefaultBufferAfterMin:  60,
	})

	s.router.POST("/quotes", s.handler.Create)
	s.router.GET("/quotes/:id", s.handler.Get)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func sampleQuote(t *testing.T) *booking.Quote {
	t.Helper()
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	w, err := schedule.NewWindow(start, start.Add(4*time.Hour))
	require.NoError(t, err)
	b, err := schedule.NewBuffers(60, 60)
	require.NoError(t, err)
	return &booking.Quote{
		ID:      uuid.New(),
		Title:   "Corporate Summer Party",
		Window:  w,
		Buffers: b,
		Lines: []booking.LineResult{
			{ModelID: 1, ModelName: "SM58", Requested: 2, ItemIDs: []int64{1, 2}},
		},
		Accessories: []booking.AccessoryLine{
			{ModelName: "XLR-Cable", Required: 2, ItemIDs: []int64{6, 7}},
		},
		CreatedAt: start.Add(-24 * time.Hour),
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *QuoteHandlerTestSuite) TestCreate() {
	url := "/quotes"
	reqBody := builder.NewQuoteBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the built quote", func() {
		quote := sampleQuote(s.T())
		s.mockCommands.EXPECT().BuildQuote(gomock.Any(), gomock.Any()).
			Return(quote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(quote.ID.String(), body["id"])
		s.Equal(false, body["hasShortfall"])
	})

	s.Run("error: 404 Not Found when a line names an unknown model", func() {
		s.mockCommands.EXPECT().BuildQuote(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUnknownModel).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Model not found")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(r *builder.QuoteBuilder)
		}{
			{name: "missing title", mutate: func(r *builder.QuoteBuilder) { r.Title = "" }},
			{name: "no lines", mutate: func(r *builder.QuoteBuilder) { r.Lines = nil }},
			{name: "zero quantity", mutate: func(r *builder.QuoteBuilder) { r.Lines[0].Qty = 0 }},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				b := builder.NewQuoteBuilder()
				tc.mutate(b)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO())
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 400 Bad Request when the window is inverted", func() {
		b := builder.NewQuoteBuilder()
		b.StartTime, b.EndTime = b.EndTime, b.StartTime
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "End time must be after start time")
	})

	s.Run("error: 400 Bad Request on negative buffers", func() {
		b := builder.NewQuoteBuilder().WithBuffers(-10, 0)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateRequestDTO())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Buffers must not be negative")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *QuoteHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK with the stored quote", func() {
		id := uuid.New()
		view := &queries.QuoteView{
			ID:    id,
			Title: "Corporate Summer Party",
		}
		s.mockQueries.EXPECT().GetQuote(gomock.Any(), id).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotes/"+id.String(), nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id.String(), body["id"])
	})

	s.Run("error: 404 Not Found for a missing quote", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetQuote(gomock.Any(), id).
			Return(nil, queries.ErrQuoteNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotes/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Quote not found")
	})

	s.Run("error: 400 Bad Request for a malformed quote ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/quotes/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid quote ID format")
	})
}
