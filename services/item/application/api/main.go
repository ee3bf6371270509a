package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemmock/pkg/app"
	"github.com/ghuser/itemmock/services/item/application/handlers"
	appsvcs "github.com/ghuser/itemmock/services/item/application/services"
)

// BasePath is the prefix every item endpoint is served under.
const BasePath = "/api/1"

// ItemRoutes registers item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/item", func(r chi.Router) {
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
		})
		r.Get("/items", handlers.NewListItemsHandler(svcs).Execute)
		r.Get("/statistics/{id}", handlers.NewGetStatisticsHandler(svcs).Execute)
	})
}

// Mount registers the item routes under BasePath.
func Mount(r chi.Router, a *app.Application) {
	r.Route(BasePath, func(r chi.Router) {
		ItemRoutes(r, a)
	})
}
