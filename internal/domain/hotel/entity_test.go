//go:build unit

package hotel_test

import (
	"testing"

	"goexplorer/internal/domain/hotel"
	"goexplorer/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHotel(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Grand Palace", h.Name())
		assert.Equal(t, "Mumbai", h.City())
		assert.Equal(t, 5, h.StarRating())
		assert.Equal(t, "18.00", h.GSTPercentage().StringFixed(2))
		assert.Equal(t, "INR", h.Currency())
		assert.True(t, h.IsActive())
	})

	t.Run("name is trimmed and must not be empty", func(t *testing.T) {
		_, err := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
			b.Name = "   "
		}).BuildDomain()
		assert.ErrorIs(t, err, hotel.ErrEmptyHotelName)
	})

	t.Run("star rating bounds", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
				b.StarRating = rating
			}).BuildDomain()
			assert.ErrorIs(t, err, hotel.ErrInvalidStarRating)
		}
	})

	t.Run("zero gst falls back to default", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
			b.GSTPercentage = decimal.Zero
		}).BuildDomain()
		require.NoError(t, err)
		assert.True(t, h.GSTPercentage().Equal(hotel.DefaultGSTPercent))
	})

	t.Run("negative gst is rejected", func(t *testing.T) {
		_, err := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
			b.GSTPercentage = decimal.RequireFromString("-1")
		}).BuildDomain()
		assert.ErrorIs(t, err, hotel.ErrNegativeGSTPercent)
	})

	t.Run("empty currency falls back to default", func(t *testing.T) {
		h, err := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
			b.Currency = ""
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, hotel.DefaultCurrency, h.Currency())
	})
}

func TestNewRoomType(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		rt, err := builder.NewRoomTypeBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Deluxe", rt.Name())
		assert.Equal(t, "15000.00", rt.BasePrice().StringFixed(2))
		assert.Equal(t, 10, rt.TotalRooms())
	})

	t.Run("non-positive base price is rejected", func(t *testing.T) {
		_, err := builder.NewRoomTypeBuilder().With(func(b *builder.RoomTypeBuilder) {
			b.BasePrice = decimal.Zero
		}).BuildDomain()
		assert.ErrorIs(t, err, hotel.ErrNonPositivePrice)
	})

	t.Run("non-positive room count is rejected", func(t *testing.T) {
		_, err := builder.NewRoomTypeBuilder().With(func(b *builder.RoomTypeBuilder) {
			b.TotalRooms = 0
		}).BuildDomain()
		assert.ErrorIs(t, err, hotel.ErrNonPositiveRooms)
	})

	t.Run("non-positive occupancy is rejected", func(t *testing.T) {
		_, err := builder.NewRoomTypeBuilder().With(func(b *builder.RoomTypeBuilder) {
			b.MaxOccupancy = 0
		}).BuildDomain()
		assert.ErrorIs(t, err, hotel.ErrInvalidOccupancy)
	})
}
