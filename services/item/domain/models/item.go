package models

import "time"

// TimestampLayout is the wire layout of Item.CreatedAt. It is fixed width, so
// comparing two formatted timestamps as strings orders them chronologically.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// Field limits for a marketplace listing. Lengths are counted in runes.
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 2000
)

// ItemDraft carries the validated fields of an item that has not been stored yet.
type ItemDraft struct {
	Title       string
	Description string
	Price       int64
	SellerID    int64
}

// Item is a single marketplace listing. It is never mutated after creation.
type Item struct {
	ID          string
	Title       string
	Description string
	Price       int64
	SellerID    int64
	CreatedAt   time.Time
}

// NewItem builds an Item from a draft, an assigned id and a creation time.
// The time is normalized to UTC with microsecond precision, matching TimestampLayout.
func NewItem(id string, draft ItemDraft, createdAt time.Time) *Item {
	return &Item{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		Price:       draft.Price,
		SellerID:    draft.SellerID,
		CreatedAt:   NormalizeTime(createdAt),
	}
}

// CreatedAtString returns CreatedAt formatted with TimestampLayout.
func (i *Item) CreatedAtString() string {
	return i.CreatedAt.Format(TimestampLayout)
}

// NormalizeTime converts t to UTC and drops precision below a microsecond.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// Statistics holds the engagement counters of one Item. A Statistics record is
// created together with its Item and all counters start at zero.
type Statistics struct {
	ItemID    string
	Views     int64
	Contacts  int64
	Favorites int64
}

// NewStatistics returns the zero-valued statistics for itemID.
func NewStatistics(itemID string) *Statistics {
	return &Statistics{ItemID: itemID}
}
