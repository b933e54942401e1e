package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"goexplorer/internal/domain/booking"
)

// Read-side storage ports. Implementations live in internal/infra and return
// RepositoryError kinds; usecases translate those into sentinel errors.

type HotelReadStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*HotelSnapshot, error)
	List(ctx context.Context, filter HotelFilter) ([]*HotelSnapshot, error)
	RoomTypesByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomTypeSnapshot, error)
}

type RoomTypeReadStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*RoomTypeSnapshot, error)
}

// RateReadStore serves per-date rate and inventory overrides over the
// half-open range [from, to). Callers needing an inclusive reporting window
// pass to = end + one day.
type RateReadStore interface {
	DaysForRange(ctx context.Context, roomTypeID uuid.UUID, from, to time.Time) ([]RateDay, error)
}

// DiscountReadStore resolves a code scoped to a hotel. Lookup is exact and
// case-sensitive; a miss is a KindNotFound repository error.
type DiscountReadStore interface {
	ByCode(ctx context.Context, hotelID uuid.UUID, code string) (*DiscountSnapshot, error)
}

type BookingReadStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

// BookingRepository persists a booking and decrements per-date inventory in
// one transaction. Insufficient inventory inside the transaction surfaces as
// a KindConflict repository error; this closes the check-then-book race the
// read-side availability check cannot.
type BookingRepository interface {
	CreateWithInventory(ctx context.Context, b *booking.Booking) error
}

type HotelFilter struct {
	City       string
	StarRating int
	SortBy     string // name (default), price_asc, price_desc
}
