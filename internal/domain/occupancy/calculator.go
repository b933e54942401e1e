package occupancy

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"goexplorer/internal/domain/pricing"
	"goexplorer/internal/pkg/errs"
)

// RoomTypeUsage is the per-room-type inventory snapshot the summary is
// computed from. Booked units for a date are the total minus whatever the
// calendar still reports as available.
type RoomTypeUsage struct {
	RoomTypeID uuid.UUID
	Name       string
	TotalRooms int
	Calendar   pricing.RateCalendar
}

type DayOccupancy struct {
	Date        time.Time
	TotalRooms  int
	BookedRooms int
}

// Summary aggregates booked-vs-total room-nights into an occupancy
// percentage over an inclusive reporting window. This is deliberately a
// different convention from the half-open stay range: both endpoint dates
// count.
type Summary struct {
	HotelID             uuid.UUID
	StartDate           time.Time
	EndDate             time.Time
	TotalRoomNights     int
	BookedRoomNights    int
	OccupancyPercentage decimal.Decimal
	Days                []DayOccupancy
}

// Summarize walks every date in [start, end] across the hotel's room types.
// The percentage is rounded to one decimal place, is always within [0, 100],
// and reports 0 when the window holds no room-nights at all.
func Summarize(hotelID uuid.UUID, usage []RoomTypeUsage, start, end time.Time) (*Summary, error) {
	start = toDate(start)
	end = toDate(end)
	if start.After(end) {
		return nil, errs.ErrInvalidDateRange
	}

	summary := &Summary{
		HotelID:   hotelID,
		StartDate: start,
		EndDate:   end,
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := DayOccupancy{Date: d}
		for _, u := range usage {
			available := u.TotalRooms
			if override, ok := u.Calendar.Lookup(d); ok {
				available = override.AvailableRooms
			}
			booked := u.TotalRooms - available
			if booked < 0 {
				booked = 0
			}
			if booked > u.TotalRooms {
				booked = u.TotalRooms
			}
			day.TotalRooms += u.TotalRooms
			day.BookedRooms += booked
		}
		summary.TotalRoomNights += day.TotalRooms
		summary.BookedRoomNights += day.BookedRooms
		summary.Days = append(summary.Days, day)
	}

	if summary.TotalRoomNights > 0 {
		summary.OccupancyPercentage = decimal.NewFromInt(int64(summary.BookedRoomNights)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(summary.TotalRoomNights))).
			Round(1)
	} else {
		summary.OccupancyPercentage = decimal.Zero
	}

	return summary, nil
}

func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
