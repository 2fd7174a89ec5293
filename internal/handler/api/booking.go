package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "backline/internal/handler/dto/request"
	resdto "backline/internal/handler/dto/response"
	"backline/internal/handler/httperr"
	"backline/internal/pkg/config"
	"backline/internal/usecase/commands"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	cfg  config.BookingConfig
}

func NewBookingHandler(cmds commands.BookingCommands, cfg config.BookingConfig) *BookingHandler {
	return &BookingHandler{cmds: cmds, cfg: cfg}
}

// @Summary Commit booking
// @Description Create the event and reserve the given units atomically
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
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

	result, err := h.cmds.CommitBooking(c.Request.Context(), commands.CommitBookingParams{
		Title:   req.Title,
		Window:  w,
		Buffers: b,
		Details: req.Details(),
		ItemIDs: req.ItemIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "One or more items are no longer available")
		case errors.Is(err, commands.ErrUnknownItem):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found")
		case errors.Is(err, commands.ErrItemNotUsable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Item is not in usable condition")
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}
