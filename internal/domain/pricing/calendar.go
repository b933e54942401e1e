package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

const dateKeyFormat = "2006-01-02"

// DayRate is a per-date override of nightly price and unit availability for
// one room type. Dates without an override fall back to the room type's base
// price and total unit count.
type DayRate struct {
	Date           time.Time
	Price          decimal.Decimal
	AvailableRooms int
}

// RateCalendar is a read-only snapshot of the per-date overrides covering a
// requested range. A calculation is pure given a Stay and a calendar.
type RateCalendar struct {
	days map[string]DayRate
}

func NewRateCalendar(days []DayRate) RateCalendar {
	m := make(map[string]DayRate, len(days))
	for _, d := range days {
		m[d.Date.Format(dateKeyFormat)] = d
	}
	return RateCalendar{days: m}
}

func (c RateCalendar) Lookup(date time.Time) (DayRate, bool) {
	d, ok := c.days[date.Format(dateKeyFormat)]
	return d, ok
}

// HasOverrides reports whether any per-date rate exists; when false the
// constant-rate fast path applies.
func (c RateCalendar) HasOverrides() bool {
	return len(c.days) > 0
}
