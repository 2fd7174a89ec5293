package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"backline/internal/domain/schedule"
	resdto "backline/internal/handler/dto/response"
	"backline/internal/handler/httperr"
	"backline/internal/pkg/config"
	"backline/internal/pkg/errs"
	"backline/internal/usecase/queries"
)

var errInvalidQuery = errs.New("invalid query parameter")

type AvailabilityHandler struct {
	q   queries.AvailabilityQueries
	cfg config.BookingConfig
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, cfg config.BookingConfig) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, cfg: cfg}
}

// @Summary Check item availability
// @Description Check whether one unit is free over a window, buffers included
// @Tags availability
// @Produce json
// @Param id path int true "Item ID"
// @Param start query string true "Window start (RFC3339)"
// @Param end query string true "Window end (RFC3339)"
// @Param buffer_before_min query int false "Setup buffer in minutes"
// @Param buffer_after_min query int false "Teardown buffer in minutes"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /items/{id}/availability [get]
func (h *AvailabilityHandler) CheckItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format")
		return
	}

	w, b, err := h.parseScheduleParams(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}

	available, err := h.q.IsItemAvailable(c.Request.Context(), itemID, w, b)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{ItemID: itemID, Available: available})
}

func (h *AvailabilityHandler) parseScheduleParams(c *gin.Context) (schedule.Window, schedule.Buffers, error) {
	var zeroW schedule.Window
	var zeroB schedule.Buffers

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		return zeroW, zeroB, errs.Wrap(errInvalidQuery, "start must be RFC3339")
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		return zeroW, zeroB, errs.Wrap(errInvalidQuery, "end must be RFC3339")
	}

	w, err := schedule.NewWindow(start, end)
	if err != nil {
		return zeroW, zeroB, err
	}

	before := h.cfg.DefaultBufferBeforeMin
	if raw := c.Query("buffer_before_min"); raw != "" {
		if before, err = strconv.Atoi(raw); err != nil {
			return zeroW, zeroB, errs.Wrap(errInvalidQuery, "buffer_before_min must be an integer")
		}
	}
	after := h.cfg.DefaultBufferAfterMin
	if raw := c.Query("buffer_after_min"); raw != "" {
		if after, err = strconv.Atoi(raw); err != nil {
			return zeroW, zeroB, errs.Wrap(errInvalidQuery, "buffer_after_min must be an integer")
		}
	}

	b, err := schedule.NewBuffers(before, after)
	if err != nil {
		return zeroW, zeroB, err
	}
	return w, b, nil
}
