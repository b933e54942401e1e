//go:build unit

package occupancy_test

import (
	"testing"
	"time"

	"goexplorer/internal/domain/occupancy"
	"goexplorer/internal/domain/pricing"
	"goexplorer/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func usage(totalRooms int, days ...pricing.DayRate) occupancy.RoomTypeUsage {
	return occupancy.RoomTypeUsage{
		RoomTypeID: uuid.New(),
		Name:       "Deluxe",
		TotalRooms: totalRooms,
		Calendar:   pricing.NewRateCalendar(days),
	}
}

func TestSummarize(t *testing.T) {
	hotelID := uuid.New()

	t.Run("window endpoints are inclusive", func(t *testing.T) {
		s, err := occupancy.Summarize(hotelID, []occupancy.RoomTypeUsage{usage(10)}, date(2026, 7, 1), date(2026, 7, 3))
		require.NoError(t, err)

		assert.Len(t, s.Days, 3)
		assert.Equal(t, 30, s.TotalRoomNights)
		assert.Equal(t, 0, s.BookedRoomNights)
		assert.Equal(t, "0", s.OccupancyPercentage.String())
	})

	t.Run("single-day window", func(t *testing.T) {
		s, err := occupancy.Summarize(hotelID, []occupancy.RoomTypeUsage{usage(10)}, date(2026, 7, 1), date(2026, 7, 1))
		require.NoError(t, err)
		assert.Len(t, s.Days, 1)
		assert.Equal(t, 10, s.TotalRoomNights)
	})

	t.Run("booked units come from calendar shortfall", func(t *testing.T) {
		u := usage(10,
			pricing.DayRate{Date: date(2026, 7, 1), Price: decimal.RequireFromString("5000"), AvailableRooms: 4},
			pricing.DayRate{Date: date(2026, 7, 2), Price: decimal.RequireFromString("5000"), AvailableRooms: 10},
		)

		s, err := occupancy.Summarize(hotelID, []occupancy.RoomTypeUsage{u}, date(2026, 7, 1), date(2026, 7, 2))
		require.NoError(t, err)

		assert.Equal(t, 20, s.TotalRoomNights)
		assert.Equal(t, 6, s.BookedRoomNights)
		assert.Equal(t, "30", s.OccupancyPercentage.String())

		wantDays := []occupancy.DayOccupancy{
			{Date: date(2026, 7, 1), TotalRooms: 10, BookedRooms: 6},
			{Date: date(2026, 7, 2), TotalRooms: 10, BookedRooms: 0},
		}
		if diff := cmp.Diff(wantDays, s.Days); diff != "" {
			t.Errorf("per-day breakdown mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("percentage rounds to one decimal place", func(t *testing.T) {
		u := usage(3,
			pricing.DayRate{Date: date(2026, 7, 1), Price: decimal.RequireFromString("5000"), AvailableRooms: 2},
		)

		s, err := occupancy.Summarize(hotelID, []occupancy.RoomTypeUsage{u}, date(2026, 7, 1), date(2026, 7, 1))
		require.NoError(t, err)

		// 1 of 3 room-nights
		assert.Equal(t, "33.3", s.OccupancyPercentage.String())
	})

	t.Run("aggregates across room types", func(t *testing.T) {
		u1 := usage(5,
			pricing.DayRate{Date: date(2026, 7, 1), Price: decimal.RequireFromString("5000"), AvailableRooms: 0},
		)
		u2 := usage(5)

		s, err := occupancy.Summarize(hotelID, []occupancy.RoomTypeUsage{u1, u2}, date(2026, 7, 1), date(2026, 7, 1))
		require.NoError(t, err)

		assert.Equal(t, 10, s.TotalRoomNights)
		assert.Equal(t, 5, s.BookedRoomNights)
		assert.Equal(t, "50", s.OccupancyPercentage.String())
	})

	t.Run("oversold calendar rows clamp to zero booked", func(t *testing.T) {
		u := usage(5,
			pricing.DayRate{Date: date(2026, 7, 1), Price: decimal.RequireFromString("5000"), AvailableRooms: 8},
		)

		s, err := occupancy.Summarize(hotelID, []occupancy.RoomTypeUsage{u}, date(2026, 7, 1), date(2026, 7, 1))
		require.NoError(t, err)
		assert.Equal(t, 0, s.BookedRoomNights)
	})

	t.Run("negative availability clamps to fully booked", func(t *testing.T) {
		u := usage(5,
			pricing.DayRate{Date: date(2026, 7, 1), Price: decimal.RequireFromString("5000"), AvailableRooms: -2},
		)

		s, err := occupancy.Summarize(hotelID, []occupancy.RoomTypeUsage{u}, date(2026, 7, 1), date(2026, 7, 1))
		require.NoError(t, err)
		assert.Equal(t, 5, s.BookedRoomNights)
		assert.Equal(t, "100", s.OccupancyPercentage.String())
	})

	t.Run("no room types reports zero percent", func(t *testing.T) {
		s, err := occupancy.Summarize(hotelID, nil, date(2026, 7, 1), date(2026, 7, 3))
		require.NoError(t, err)
		assert.Equal(t, 0, s.TotalRoomNights)
		assert.True(t, s.OccupancyPercentage.IsZero())
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		_, err := occupancy.Summarize(hotelID, nil, date(2026, 7, 3), date(2026, 7, 1))
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})
}
