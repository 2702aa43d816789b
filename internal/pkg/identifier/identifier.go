// Package identifier generates the short human-typeable codes used on
// bookings and guest records. Codes are derived from UUIDs rather than a
// seeded PRNG so concurrent creation cannot collide.
package identifier

import (
	"strings"

	"github.com/google/uuid"
)

const (
	BookingPrefix = "MHS"
	GuestPrefix   = "GS"
)

// NewBookingCode returns a code like MHS-9F2C41AB.
func NewBookingCode() string {
	return BookingPrefix + "-" + token(8)
}

// NewGuestID returns a code like GS-4B7E21.
func NewGuestID() string {
	return GuestPrefix + "-" + token(6)
}

func token(n int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:n])
}
