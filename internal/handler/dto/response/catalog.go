package response

import (
	"log/slog"

	"github.com/jinzhu/copier"

	"backline/internal/usecase/queries"
)

type ModelResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	BrandName    string `json:"brandName"`
	CategoryName string `json:"categoryName"`
	UnitCount    int    `json:"unitCount"`
}

type ItemResponse struct {
	ID        int64  `json:"id"`
	ModelID   int64  `json:"modelId"`
	ModelName string `json:"modelName"`
	Condition string `json:"condition"`
}

type AvailabilityResponse struct {
	ItemID    int64 `json:"itemId"`
	Available bool  `json:"available"`
}

func FromModelViews(views []*queries.ModelView) []*ModelResponse {
	out := make([]*ModelResponse, 0, len(views))
	for _, v := range views {
		var resp ModelResponse
		if err := copier.Copy(&resp, v); err != nil {
			slog.Warn("failed to convert model view", "model_id", v.ID, "error", err.Error())
			continue
		}
		out = append(out, &resp)
	}
	return out
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, 0, len(views))
	for _, v := range views {
		var resp ItemResponse
		if err := copier.Copy(&resp, v); err != nil {
			slog.Warn("failed to convert item view", "item_id", v.ID, "error", err.Error())
			continue
		}
		out = append(out, &resp)
	}
	return out
}
