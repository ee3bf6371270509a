package models

import (
	"fmt"
	"strconv"
	"strings"

	itemdomain "github.com/ghuser/itemmock/services/item/domain"
)

// Inclusive bounds of a seller identifier.
const (
	MinSellerID int64 = 111111
	MaxSellerID int64 = 999999
)

// ValidSellerID reports whether id lies in [MinSellerID, MaxSellerID].
func ValidSellerID(id int64) bool {
	return id >= MinSellerID && id <= MaxSellerID
}

// ParseSellerID parses a decimal seller id from a query string value.
// Failures wrap the domain ErrSellerID* sentinels.
func ParseSellerID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, itemdomain.ErrSellerIDMissing
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", itemdomain.ErrSellerIDNotInteger, s)
	}
	if !ValidSellerID(id) {
		return 0, fmt.Errorf("%w: %d", itemdomain.ErrSellerIDOutOfRange, id)
	}
	return id, nil
}
