package handlers

import (
	"github.com/samber/lo"

	"github.com/ghuser/itemmock/services/item/domain/models"
)

// ItemResponse is the wire form of an Item.
type ItemResponse struct {
	ID          string `json:"id"          example:"1"`
	Title       string `json:"title"       example:"Велосипед"`
	Description string `json:"description" example:"Горный, 21 скорость"`
	Price       int64  `json:"price"       example:"15000"`
	SellerID    int64  `json:"sellerId"    example:"123456"`
	CreatedAt   string `json:"createdAt"   example:"2025-03-01T12:00:00.123456Z"`
} // @name Item

// StatisticsResponse is the wire form of Statistics.
type StatisticsResponse struct {
	ItemID    string `json:"itemId"    example:"1"`
	Views     int64  `json:"views"     example:"0"`
	Contacts  int64  `json:"contacts"  example:"0"`
	Favorites int64  `json:"favorites" example:"0"`
} // @name Statistics

// ItemEnvelope wraps a single item: {"item": {...}}.
type ItemEnvelope struct {
	Item ItemResponse `json:"item"`
} // @name ItemEnvelope

// ItemsEnvelope wraps a listing: {"items": [...]}. Items is never null.
type ItemsEnvelope struct {
	Items []ItemResponse `json:"items"`
} // @name ItemsEnvelope

// StatisticsEnvelope wraps statistics: {"statistics": {...}}.
type StatisticsEnvelope struct {
	Statistics StatisticsResponse `json:"statistics"`
} // @name StatisticsEnvelope

// ErrorResponse is returned on lookup, query and routing errors.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// ValidationErrorResponse is returned when a create payload is rejected.
type ValidationErrorResponse struct {
	Errors []string `json:"errors" example:"missing field: title"`
} // @name ValidationErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Price:       item.Price,
		SellerID:    item.SellerID,
		CreatedAt:   item.CreatedAtString(),
	}
}

func toItemResponses(items []*models.Item) []ItemResponse {
	return lo.Map(items, func(item *models.Item, _ int) ItemResponse {
		return toItemResponse(item)
	})
}

func toStatisticsResponse(s *models.Statistics) StatisticsResponse {
	return StatisticsResponse{
		ItemID:    s.ItemID,
		Views:     s.Views,
		Contacts:  s.Contacts,
		Favorites: s.Favorites,
	}
}
