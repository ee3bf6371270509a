package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrItemNotFound, "item not found"},
		{ErrStatisticsNotFound, "stats not found"},
		{ErrSellerIDMissing, "sellerId is required"},
		{ErrSellerIDNotInteger, "sellerId must be integer"},
		{ErrSellerIDOutOfRange, "sellerId must be in range 111111-999999"},
	}
	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Fatalf("unexpected message: %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get item: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}
	if errors.Is(wrapped, ErrStatisticsNotFound) {
		t.Fatal("wrapped ErrItemNotFound must not match ErrStatisticsNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %d", ErrSellerIDOutOfRange, 100)
	if !errors.Is(wrapped2, ErrSellerIDOutOfRange) {
		t.Fatal("errors.Is must match wrapped ErrSellerIDOutOfRange")
	}
}
