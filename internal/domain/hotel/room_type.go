package hotel

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRoomTypeName = errors.New("room type name cannot be empty")
	ErrNonPositivePrice  = errors.New("base price must be positive")
	ErrNonPositiveRooms  = errors.New("total rooms must be positive")
	ErrInvalidOccupancy  = errors.New("max occupancy must be positive")
)

// RoomType is a bookable unit type within a hotel. Immutable for the
// duration of a pricing calculation.
type RoomType struct {
	id           uuid.UUID
	hotelID      uuid.UUID
	name         string
	basePrice    decimal.Decimal
	maxOccupancy int
	totalRooms   int
}

func NewRoomType(id, hotelID uuid.UUID, name string, basePrice decimal.Decimal, maxOccupancy, totalRooms int) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomTypeName
	}
	if !basePrice.IsPositive() {
		return nil, ErrNonPositivePrice
	}
	if maxOccupancy < 1 {
		return nil, ErrInvalidOccupancy
	}
	if totalRooms < 1 {
		return nil, ErrNonPositiveRooms
	}

	return &RoomType{
		id:           id,
		hotelID:      hotelID,
		name:         name,
		basePrice:    basePrice,
		maxOccupancy: maxOccupancy,
		totalRooms:   totalRooms,
	}, nil
}

func (rt *RoomType) ID() uuid.UUID              { return rt.id }
func (rt *RoomType) HotelID() uuid.UUID         { return rt.hotelID }
func (rt *RoomType) Name() string               { return rt.name }
func (rt *RoomType) BasePrice() decimal.Decimal { return rt.basePrice }
func (rt *RoomType) MaxOccupancy() int          { return rt.maxOccupancy }
func (rt *RoomType) TotalRooms() int            { return rt.totalRooms }
