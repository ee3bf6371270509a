package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
// Their messages are part of the HTTP contract and are written verbatim.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrStatisticsNotFound indicates no statistics record exists for the item id.
	ErrStatisticsNotFound = errors.New("stats not found")

	// ErrSellerIDMissing indicates the sellerId query parameter was absent or blank.
	ErrSellerIDMissing = errors.New("sellerId is required")

	// ErrSellerIDNotInteger indicates a sellerId that does not parse as an integer.
	ErrSellerIDNotInteger = errors.New("sellerId must be integer")

	// ErrSellerIDOutOfRange indicates a sellerId outside 111111-999999.
	ErrSellerIDOutOfRange = errors.New("sellerId must be in range 111111-999999")
)
