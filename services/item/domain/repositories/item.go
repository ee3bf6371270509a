package repositories

import (
	"context"

	"github.com/ghuser/itemmock/services/item/domain/models"
)

// ItemRepository is the storage interface for the Item aggregate and its Statistics.
// The domain layer owns this interface; infrastructure implements it.
//
// Implementations must make every method appear atomic to concurrent callers:
// an Item and its Statistics become visible together, and a reader never
// observes one without the other.
type ItemRepository interface {
	// Create assigns an id and creation time to draft, stores the Item together
	// with zero-valued Statistics, and returns the stored Item.
	Create(ctx context.Context, draft models.ItemDraft) (*models.Item, error)

	// GetByID returns ErrItemNotFound when no item has the given id.
	GetByID(ctx context.Context, id string) (*models.Item, error)

	// FindBySellerID returns the seller's items in creation order.
	// An unknown seller yields an empty slice, not an error.
	FindBySellerID(ctx context.Context, sellerID int64) ([]*models.Item, error)

	// GetStatistics returns ErrStatisticsNotFound when no item has the given id.
	GetStatistics(ctx context.Context, itemID string) (*models.Statistics, error)

	// Count returns the number of stored items.
	Count(ctx context.Context) (int, error)

	// Ping reports whether the repository can serve requests.
	Ping(ctx context.Context) error
}
