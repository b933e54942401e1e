//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"goexplorer/internal/domain/pricing"
	"goexplorer/internal/pkg/clock"
	"goexplorer/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestCalculator(t *testing.T, hb *builder.HotelBuilder) *pricing.Calculator {
	t.Helper()
	h, err := hb.BuildDomain()
	require.NoError(t, err)
	return pricing.NewCalculator(h, clock.NewMockClock(testNow))
}

func mustStay(t *testing.T, checkIn, checkOut time.Time, numRooms int) pricing.Stay {
	t.Helper()
	stay, err := pricing.NewStay(checkIn, checkOut, numRooms)
	require.NoError(t, err)
	return stay
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateTotalPrice(t *testing.T) {
	t.Run("constant rate without discount", func(t *testing.T) {
		rtb := builder.NewRoomTypeBuilder()
		calc := newTestCalculator(t, rtb.Hotel)
		rt, err := rtb.BuildDomain()
		require.NoError(t, err)

		stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 13), 1)
		quote := calc.CalculateTotalPrice(rt, pricing.RateCalendar{}, stay, pricing.DiscountLookup{})

		assert.Equal(t, 3, quote.NumNights)
		assert.Equal(t, 1, quote.NumRooms)
		assert.Equal(t, "45000.00", quote.Subtotal.StringFixed(2))
		assert.Equal(t, "0.00", quote.DiscountAmount.StringFixed(2))
		assert.Equal(t, "45000.00", quote.SubtotalAfterDiscount.StringFixed(2))
		assert.Equal(t, "8100.00", quote.GSTAmount.StringFixed(2))
		assert.Equal(t, "53100.00", quote.TotalAmount.StringFixed(2))
		assert.Equal(t, "INR", quote.Currency)
		assert.Empty(t, quote.DiscountDetails.Error)
		assert.Empty(t, quote.DiscountDetails.Code)
	})

	t.Run("percentage discount capped at max discount", func(t *testing.T) {
		rtb := builder.NewRoomTypeBuilder().With(func(b *builder.RoomTypeBuilder) {
			b.BasePrice = decimal.RequireFromString("25000.00")
		})
		calc := newTestCalculator(t, rtb.Hotel)
		rt, err := rtb.BuildDomain()
		require.NoError(t, err)

		lookup := builder.NewDiscountBuilder().WithMaxDiscount("10000").BuildLookup()

		stay := mustStay(t, date(2026, 7, 1), date(2026, 7, 6), 2)
		quote := calc.CalculateTotalPrice(rt, pricing.RateCalendar{}, stay, lookup)

		// 25000 x 5 nights x 2 rooms = 250000; 20% would be 50000, cap wins
		assert.Equal(t, "250000.00", quote.Subtotal.StringFixed(2))
		assert.Equal(t, "10000.00", quote.DiscountAmount.StringFixed(2))
		assert.Equal(t, "240000.00", quote.SubtotalAfterDiscount.StringFixed(2))
		assert.Equal(t, "43200.00", quote.GSTAmount.StringFixed(2))
		assert.Equal(t, "283200.00", quote.TotalAmount.StringFixed(2))
		assert.Equal(t, "SAVE20", quote.DiscountDetails.Code)
		assert.Equal(t, pricing.DiscountPercentage, quote.DiscountDetails.Kind)
		assert.Empty(t, quote.DiscountDetails.Error)
	})

	t.Run("uncapped percentage discount", func(t *testing.T) {
		rtb := builder.NewRoomTypeBuilder()
		calc := newTestCalculator(t, rtb.Hotel)
		rt, err := rtb.BuildDomain()
		require.NoError(t, err)

		lookup := builder.NewDiscountBuilder().BuildLookup()

		stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 13), 1)
		quote := calc.CalculateTotalPrice(rt, pricing.RateCalendar{}, stay, lookup)

		assert.Equal(t, "9000.00", quote.DiscountAmount.StringFixed(2))
		assert.Equal(t, "36000.00", quote.SubtotalAfterDiscount.StringFixed(2))
		assert.Equal(t, "6480.00", quote.GSTAmount.StringFixed(2))
		assert.Equal(t, "42480.00", quote.TotalAmount.StringFixed(2))
	})

	t.Run("fixed discount clamps to subtotal", func(t *testing.T) {
		rtb := builder.NewRoomTypeBuilder().With(func(b *builder.RoomTypeBuilder) {
			b.BasePrice = decimal.RequireFromString("2000.00")
		})
		calc := newTestCalculator(t, rtb.Hotel)
		rt, err := rtb.BuildDomain()
		require.NoError(t, err)

		lookup := builder.NewDiscountBuilder().With(func(b *builder.DiscountBuilder) {
			b.Code = "FLAT5000"
			b.Kind = pricing.DiscountFixed
			b.Value = decimal.RequireFromString("5000")
		}).BuildLookup()

		stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 11), 1)
		quote := calc.CalculateTotalPrice(rt, pricing.RateCalendar{}, stay, lookup)

		assert.Equal(t, "2000.00", quote.Subtotal.StringFixed(2))
		assert.Equal(t, "2000.00", quote.DiscountAmount.StringFixed(2))
		assert.Equal(t, "0.00", quote.SubtotalAfterDiscount.StringFixed(2))
		assert.Equal(t, "0.00", quote.GSTAmount.StringFixed(2))
		assert.Equal(t, "0.00", quote.TotalAmount.StringFixed(2))
	})

	t.Run("unknown discount code is a soft failure", func(t *testing.T) {
		rtb := builder.NewRoomTypeBuilder()
		calc := newTestCalculator(t, rtb.Hotel)
		rt, err := rtb.BuildDomain()
		require.NoError(t, err)

		lookup := pricing.DiscountLookup{Requested: true, Code: "NOSUCHCODE"}

		stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 13), 1)
		quote := calc.CalculateTotalPrice(rt, pricing.RateCalendar{}, stay, lookup)

		assert.Equal(t, "0.00", quote.DiscountAmount.StringFixed(2))
		assert.Equal(t, "53100.00", quote.TotalAmount.StringFixed(2))
		assert.Equal(t, "NOSUCHCODE", quote.DiscountDetails.Code)
		assert.Equal(t, "invalid or expired discount code", quote.DiscountDetails.Error)
	})

	t.Run("expired discount is a soft failure", func(t *testing.T) {
		rtb := builder.NewRoomTypeBuilder()
		calc := newTestCalculator(t, rtb.Hotel)
		rt, err := rtb.BuildDomain()
		require.NoError(t, err)

		lookup := builder.NewDiscountBuilder().With(func(b *builder.DiscountBuilder) {
			b.ValidFrom = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			b.ValidTill = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		}).BuildLookup()

		stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 13), 1)
		quote := calc.CalculateTotalPrice(rt, pricing.RateCalendar{}, stay, lookup)

		assert.Equal(t, "0.00", quote.DiscountAmount.StringFixed(2))
		assert.Equal(t, "invalid or expired discount code", quote.DiscountDetails.Error)
	})

	t.Run("inactive discount is a soft failure", func(t *testing.T) {
		rtb := builder.NewRoomTypeBuilder()
		calc := newTestCalculator(t, rtb.Hotel)
		rt, err := rtb.BuildDomain()
		require.NoError(t, err)

		lookup := builder.NewDiscountBuilder().With(func(b *builder.DiscountBuilder) {
			b.IsActive = false
		}).BuildLookup()

		stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 13), 1)
		quote := calc.CalculateTotalPrice(rt, pricing.RateCalendar{}, stay, lookup)

		assert.Equal(t, "0.00", quote.DiscountAmount.StringFixed(2))
		assert.Equal(t, "invalid or expired discount code", quote.DiscountDetails.Error)
	})

	t.Run("booking below discount minimum is a soft failure", func(t *testing.T) {
		rtb := builder.NewRoomTypeBuilder()
		calc := newTestCalculator(t, rtb.Hotel)
		rt, err := rtb.BuildDomain()
		require.NoError(t, err)

		lookup := builder.NewDiscountBuilder().With(func(b *builder.DiscountBuilder) {
			b.MinBookingAmount = decimal.RequireFromString("100000")
		}).BuildLookup()

		stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 13), 1)
		quote := calc.CalculateTotalPrice(rt, pricing.RateCalendar{}, stay, lookup)

		assert.Equal(t, "0.00", quote.DiscountAmount.StringFixed(2))
		assert.Equal(t, "53100.00", quote.TotalAmount.StringFixed(2))
		assert.Equal(t, "SAVE20", quote.DiscountDetails.Code)
		assert.Equal(t, "booking amount below minimum for this discount", quote.DiscountDetails.Error)
	})

	t.Run("per-date overrides replace the base rate per night", func(t *testing.T) {
		rtb := builder.NewRoomTypeBuilder()
		calc := newTestCalculator(t, rtb.Hotel)
		rt, err := rtb.BuildDomain()
		require.NoError(t, err)

		cal := pricing.NewRateCalendar([]pricing.DayRate{
			{Date: date(2026, 7, 11), Price: decimal.RequireFromString("12000.00"), AvailableRooms: 5},
		})

		stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 13), 1)
		quote := calc.CalculateTotalPrice(rt, cal, stay, pricing.DiscountLookup{})

		// 15000 + 12000 + 15000
		assert.Equal(t, "42000.00", quote.Subtotal.StringFixed(2))
		assert.Equal(t, "7560.00", quote.GSTAmount.StringFixed(2))
		assert.Equal(t, "49560.00", quote.TotalAmount.StringFixed(2))
	})

	t.Run("multiple rooms multiply every night", func(t *testing.T) {
		rtb := builder.NewRoomTypeBuilder()
		calc := newTestCalculator(t, rtb.Hotel)
		rt, err := rtb.BuildDomain()
		require.NoError(t, err)

		stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 12), 3)
		quote := calc.CalculateTotalPrice(rt, pricing.RateCalendar{}, stay, pricing.DiscountLookup{})

		assert.Equal(t, "90000.00", quote.Subtotal.StringFixed(2))
		assert.Equal(t, 2, quote.NumNights)
		assert.Equal(t, 3, quote.NumRooms)
	})
}

func TestCheckAvailability(t *testing.T) {
	t.Run("no overrides means full inventory every night", func(t *testing.T) {
		rtb := builder.NewRoomTypeBuilder().With(func(b *builder.RoomTypeBuilder) {
			b.TotalRooms = 3
		})
		calc := newTestCalculator(t, rtb.Hotel)
		rt, err := rtb.BuildDomain()
		require.NoError(t, err)

		stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 13), 2)
		avail := calc.CheckAvailability(rt, pricing.RateCalendar{}, stay)

		assert.True(t, avail.IsAvailable)
		assert.Equal(t, 3, avail.MinAvailableRooms)
		assert.Equal(t, 2, avail.RequestedRooms)
	})

	t.Run("one constrained night binds the whole stay", func(t *testing.T) {
		rtb := builder.NewRoomTypeBuilder().With(func(b *builder.RoomTypeBuilder) {
			b.TotalRooms = 3
		})
		calc := newTestCalculator(t, rtb.Hotel)
		rt, err := rtb.BuildDomain()
		require.NoError(t, err)

		cal := pricing.NewRateCalendar([]pricing.DayRate{
			{Date: date(2026, 7, 11), Price: decimal.RequireFromString("15000.00"), AvailableRooms: 1},
		})

		stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 13), 2)
		avail := calc.CheckAvailability(rt, cal, stay)

		assert.False(t, avail.IsAvailable)
		assert.Equal(t, 1, avail.MinAvailableRooms)
	})

	t.Run("checkout date does not constrain the stay", func(t *testing.T) {
		rtb := builder.NewRoomTypeBuilder().With(func(b *builder.RoomTypeBuilder) {
			b.TotalRooms = 3
		})
		calc := newTestCalculator(t, rtb.Hotel)
		rt, err := rtb.BuildDomain()
		require.NoError(t, err)

		cal := pricing.NewRateCalendar([]pricing.DayRate{
			{Date: date(2026, 7, 13), Price: decimal.RequireFromString("15000.00"), AvailableRooms: 0},
		})

		stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 13), 2)
		avail := calc.CheckAvailability(rt, cal, stay)

		assert.True(t, avail.IsAvailable)
		assert.Equal(t, 3, avail.MinAvailableRooms)
	})
}
