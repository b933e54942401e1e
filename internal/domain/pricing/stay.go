package pricing

import (
	"time"

	"goexplorer/internal/pkg/errs"
)

// Stay is the (check-in, check-out, room-count) tuple defining a pricing or
// availability request. Nights are counted over the half-open range
// [check-in, check-out): the check-out night is not occupied.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
	numRooms int
}

func NewStay(checkIn, checkOut time.Time, numRooms int) (Stay, error) {
	checkIn = toDate(checkIn)
	checkOut = toDate(checkOut)

	if !checkOut.After(checkIn) {
		return Stay{}, errs.ErrInvalidDateRange
	}
	if numRooms < 1 {
		return Stay{}, errs.ErrInvalidRoomCount
	}

	return Stay{
		checkIn:  checkIn,
		checkOut: checkOut,
		numRooms: numRooms,
	}, nil
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }
func (s Stay) NumRooms() int       { return s.numRooms }

func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Dates returns every occupied night, i.e. [check-in, check-out).
func (s Stay) Dates() []time.Time {
	dates := make([]time.Time, 0, s.Nights())
	for d := s.checkIn; d.Before(s.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
