//go:build unit

package builder

import (
	domhotel "goexplorer/internal/domain/hotel"
	"goexplorer/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HotelBuilder struct {
	ID            uuid.UUID
	Name          string
	City          string
	StarRating    int
	GSTPercentage decimal.Decimal
	Currency      string
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:            uuid.New(),
		Name:          "Grand Palace",
		City:          "Mumbai",
		StarRating:    5,
		GSTPercentage: decimal.RequireFromString("18.00"),
		Currency:      "INR",
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

func (b *HotelBuilder) BuildDomain() (*domhotel.Hotel, error) {
	return domhotel.NewHotel(b.ID, b.Name, b.City, b.StarRating, b.GSTPercentage, b.Currency)
}

func (b *HotelBuilder) BuildSnapshot() *shared.HotelSnapshot {
	return &shared.HotelSnapshot{
		ID:            b.ID,
		Name:          b.Name,
		City:          b.City,
		StarRating:    b.StarRating,
		GSTPercentage: b.GSTPercentage,
		Currency:      b.Currency,
		IsActive:      true,
	}
}

type RoomTypeBuilder struct {
	ID           uuid.UUID
	Hotel        *HotelBuilder
	Name         string
	BasePrice    decimal.Decimal
	MaxOccupancy int
	TotalRooms   int
}

func NewRoomTypeBuilder() *RoomTypeBuilder {
	return &RoomTypeBuilder{
		ID:           uuid.New(),
		Hotel:        NewHotelBuilder(),
		Name:         "Deluxe",
		BasePrice:    decimal.RequireFromString("15000.00"),
		MaxOccupancy: 2,
		TotalRooms:   10,
	}
}

func (b *RoomTypeBuilder) With(mutate func(*RoomTypeBuilder)) *RoomTypeBuilder {
	mutate(b)
	return b
}

func (b *RoomTypeBuilder) BuildDomain() (*domhotel.RoomType, error) {
	return domhotel.NewRoomType(b.ID, b.Hotel.ID, b.Name, b.BasePrice, b.MaxOccupancy, b.TotalRooms)
}

func (b *RoomTypeBuilder) BuildSnapshot() *shared.RoomTypeSnapshot {
	return &shared.RoomTypeSnapshot{
		ID:            b.ID,
		HotelID:       b.Hotel.ID,
		HotelName:     b.Hotel.Name,
		City:          b.Hotel.City,
		StarRating:    b.Hotel.StarRating,
		GSTPercentage: b.Hotel.GSTPercentage,
		Currency:      b.Hotel.Currency,
		Name:          b.Name,
		BasePrice:     b.BasePrice,
		MaxOccupancy:  b.MaxOccupancy,
		TotalRooms:    b.TotalRooms,
	}
}
