package app

import (
	"github.com/ghuser/itemmock/pkg/events"
	"github.com/ghuser/itemmock/pkg/logger"
	"github.com/ghuser/itemmock/services/item/domain/repositories"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to publish", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Logger   logger.Logger
	Items    repositories.ItemRepository // in-memory; one per process or harness
	EventBus *events.EventBus
}
