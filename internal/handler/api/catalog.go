package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	resdto "backline/internal/handler/dto/response"
	"backline/internal/handler/httperr"
	"backline/internal/usecase/queries"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List models
// @Description List every rentable model with brand, category and unit count
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ModelResponse
// @Router /models [get]
func (h *CatalogHandler) ListModels(c *gin.Context) {
	views, err := h.q.ListModels(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromModelViews(views))
}

// @Summary List items
// @Description List physical units, optionally filtered by model
// @Tags catalog
// @Produce json
// @Param model_id query int false "Filter by model ID"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /items [get]
func (h *CatalogHandler) ListItems(c *gin.Context) {
	var modelID *int64
	if raw := c.Query("model_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "model_id must be an integer")
			return
		}
		modelID = &id
	}

	views, err := h.q.ListItems(c.Request.Context(), modelID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}
