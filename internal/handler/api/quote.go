package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "backline/internal/handler/dto/request"
	resdto "backline/internal/handler/dto/response"
	"backline/internal/handler/httperr"
	"backline/internal/pkg/config"
	"backline/internal/usecase/commands"
	"backline/internal/usecase/queries"
)

type QuoteHandler struct {
	cmds commands.QuoteCommands
	q    queries.QuoteQueries
	cfg  config.BookingConfig
}

func NewQuoteHandler(cmds commands.QuoteCommands, q queries.QuoteQueries, cfg config.BookingConfig) *QuoteHandler {
	return &QuoteHandler{cmds: cmds, q: q, cfg: cfg}
}

// @Summary Build quote
// @Description Resolve a cart against current availability and persist the result
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.CreateQuoteRequest true "Quote request"
// @Success 201 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req reqdto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	w, err := req.Window()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "End time must be after start time")
		return
	}
	b, err := req.Buffers(h.cfg)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Buffers must not be negative")
		return
	}

	lines := make([]commands.QuoteLine, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = commands.QuoteLine{ModelID: line.ModelID, Qty: line.Qty}
	}

	quote, err := h.cmds.BuildQuote(c.Request.Context(), commands.BuildQuoteParams{
		Title:   req.Title,
		Window:  w,
		Buffers: b,
		Lines:   lines,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnknownModel):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Model not found")
		case errors.Is(err, commands.ErrEmptyCart):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart has no lines")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromQuote(quote))
}

// @Summary Get quote
// @Description Get a previously built quote by ID
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quote ID format")
		return
	}

	view, err := h.q.GetQuote(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrQuoteNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Quote not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}
