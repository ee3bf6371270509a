package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/ghuser/itemmock/pkg/errhttp"
	"github.com/ghuser/itemmock/pkg/httpx"
	appsvcs "github.com/ghuser/itemmock/services/item/application/services"
	domainsvcs "github.com/ghuser/itemmock/services/item/domain/services"
)

// PostItemHandler handles POST /item requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Validates the payload and stores a new item with zeroed statistics.
//	@Description	Every violated rule is reported, in field order.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domainsvcs.CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemEnvelope
//	@Failure		400		{object}	ValidationErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Router			/item [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		// A truncated body is as unparsable as a malformed one.
		body = nil
	}

	draft, violations := domainsvcs.ValidateCreate(body)
	if len(violations) > 0 {
		h.svc.Item.RecordRejected(r.Context(), len(violations))
		httpx.JSONErrors(w, http.StatusBadRequest, violations)
		return
	}

	item, err := h.svc.Item.Create(r.Context(), draft)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ItemEnvelope{Item: toItemResponse(item)})
}
