package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemmock/pkg/errhttp"
	"github.com/ghuser/itemmock/pkg/httpx"
	appsvcs "github.com/ghuser/itemmock/services/item/application/services"
)

// GetStatisticsHandler handles GET /statistics/{id} requests.
type GetStatisticsHandler struct {
	svc *appsvcs.Services
}

// NewGetStatisticsHandler returns a GetStatisticsHandler backed by the given services.
func NewGetStatisticsHandler(svc *appsvcs.Services) *GetStatisticsHandler {
	return &GetStatisticsHandler{svc: svc}
}

// Execute returns the counters of one item.
//
//	@Summary	Get item statistics
//	@Tags		statistics
//	@Produce	json
//	@Param		id	path		string	true	"Item id"
//	@Success	200	{object}	StatisticsEnvelope
//	@Failure	404	{object}	ErrorResponse
//	@Router		/statistics/{id} [get]
func (h *GetStatisticsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Item.GetStatistics(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, StatisticsEnvelope{Statistics: toStatisticsResponse(stats)})
}
