package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Storage snapshots decouple usecases from row types (repository pattern);
// repositories return these, usecases rebuild domain values from them.

type HotelSnapshot struct {
	ID            uuid.UUID
	Name          string
	City          string
	StarRating    int
	GSTPercentage decimal.Decimal
	Currency      string
	IsActive      bool
}

type RoomTypeSnapshot struct {
	ID            uuid.UUID
	HotelID       uuid.UUID
	HotelName     string
	City          string
	StarRating    int
	Name          string
	BasePrice     decimal.Decimal
	MaxOccupancy  int
	TotalRooms    int
	GSTPercentage decimal.Decimal
	Currency      string
}

type DiscountSnapshot struct {
	ID               uuid.UUID
	HotelID          uuid.UUID
	Code             string
	Kind             string
	Value            decimal.Decimal
	MaxDiscount      *decimal.Decimal
	MinBookingAmount decimal.Decimal
	ValidFrom        time.Time
	ValidTill        time.Time
	IsActive         bool
}

// RateDay is one per-date override row: nightly price and remaining units.
type RateDay struct {
	Date           time.Time
	Price          decimal.Decimal
	AvailableRooms int
}

type BookingSnapshot struct {
	ID             uuid.UUID
	HotelID        uuid.UUID
	RoomTypeID     uuid.UUID
	HotelName      string
	RoomTypeName   string
	GuestName      string
	GuestEmail     string
	CheckIn        time.Time
	CheckOut       time.Time
	NumRooms       int
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	GSTAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
	Currency       string
	Status         string
	CreatedAt      time.Time
}
