package handlers

import (
	"net/http"

	"github.com/ghuser/itemmock/pkg/errhttp"
	"github.com/ghuser/itemmock/pkg/httpx"
	appsvcs "github.com/ghuser/itemmock/services/item/application/services"
	"github.com/ghuser/itemmock/services/item/domain/models"
)

// ListItemsHandler handles GET /items?sellerId= requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists a seller's items, oldest first.
//
//	@Summary		List items of a seller
//	@Description	Items are ordered by createdAt ascending; an unknown seller yields an empty list.
//	@Tags			items
//	@Produce		json
//	@Param			sellerId	query		int	true	"Seller id, 111111-999999"
//	@Success		200			{object}	ItemsEnvelope
//	@Failure		400			{object}	ErrorResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	sellerID, err := models.ParseSellerID(r.URL.Query().Get("sellerId"))
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	items, err := h.svc.Item.ListBySeller(r.Context(), sellerID)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ItemsEnvelope{Items: toItemResponses(items)})
}
