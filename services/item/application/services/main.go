package services

import (
	"github.com/ghuser/itemmock/pkg/app"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	var publisher Publisher
	if a.EventBus != nil {
		publisher = a.EventBus
	}
	return &Services{
		Item: NewItemService(a.Items, publisher, a.Logger),
	}
}
