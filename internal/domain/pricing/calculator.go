package pricing

import (
	"github.com/shopspring/decimal"

	"goexplorer/internal/domain/hotel"
	"goexplorer/internal/pkg/clock"
)

var hundred = decimal.NewFromInt(100)

// DiscountLookup carries the outcome of resolving a requested code against
// storage. Discount is nil when the code did not resolve to a record for the
// hotel being priced.
type DiscountLookup struct {
	Requested bool
	Code      string
	Discount  *Discount
}

// DiscountDetails is the soft-failure channel of the pricing contract: an
// unknown, expired or ineligible code never aborts a quote, it surfaces here.
type DiscountDetails struct {
	Code  string           `json:"code,omitempty"`
	Kind  DiscountKind     `json:"type,omitempty"`
	Value *decimal.Decimal `json:"value,omitempty"`
	Error string           `json:"error,omitempty"`
}

// Quote is the deterministic price breakdown for a candidate stay. All
// monetary fields are exact decimals.
type Quote struct {
	NumNights             int
	NumRooms              int
	BasePrice             decimal.Decimal
	Subtotal              decimal.Decimal
	DiscountAmount        decimal.Decimal
	DiscountDetails       DiscountDetails
	SubtotalAfterDiscount decimal.Decimal
	GSTAmount             decimal.Decimal
	TotalAmount           decimal.Decimal
	Currency              string
}

type Availability struct {
	IsAvailable       bool
	MinAvailableRooms int
	RequestedRooms    int
}

// Calculator computes price breakdowns and inventory sufficiency for one
// hotel. It holds no mutable state; every call is pure given its inputs.
type Calculator struct {
	gstPercentage decimal.Decimal
	currency      string
	clock         clock.Clock
}

func NewCalculator(h *hotel.Hotel, clk clock.Clock) *Calculator {
	return &Calculator{
		gstPercentage: h.GSTPercentage(),
		currency:      h.Currency(),
		clock:         clk,
	}
}

// CalculateTotalPrice prices a stay for the given room type. The stay has
// already been validated at construction, so the only failure modes left are
// soft discount failures reported through DiscountDetails.
func (c *Calculator) CalculateTotalPrice(rt *hotel.RoomType, cal RateCalendar, stay Stay, lookup DiscountLookup) *Quote {
	subtotal := c.subtotal(rt, cal, stay)

	discountAmount, details := c.resolveDiscount(lookup, subtotal)

	subtotalAfterDiscount := subtotal.Sub(discountAmount)
	gstAmount := subtotalAfterDiscount.Mul(c.gstPercentage).Div(hundred).Round(2)

	return &Quote{
		NumNights:             stay.Nights(),
		NumRooms:              stay.NumRooms(),
		BasePrice:             rt.BasePrice(),
		Subtotal:              subtotal,
		DiscountAmount:        discountAmount,
		DiscountDetails:       details,
		SubtotalAfterDiscount: subtotalAfterDiscount,
		GSTAmount:             gstAmount,
		TotalAmount:           subtotalAfterDiscount.Add(gstAmount),
		Currency:              c.currency,
	}
}

// CheckAvailability reports whether every night of the stay has at least the
// requested number of units. MinAvailableRooms is the binding constraint
// across the half-open range.
func (c *Calculator) CheckAvailability(rt *hotel.RoomType, cal RateCalendar, stay Stay) *Availability {
	minAvailable := rt.TotalRooms()
	for _, date := range stay.Dates() {
		available := rt.TotalRooms()
		if day, ok := cal.Lookup(date); ok {
			available = day.AvailableRooms
		}
		if available < minAvailable {
			minAvailable = available
		}
	}

	return &Availability{
		IsAvailable:       minAvailable >= stay.NumRooms(),
		MinAvailableRooms: minAvailable,
		RequestedRooms:    stay.NumRooms(),
	}
}

func (c *Calculator) subtotal(rt *hotel.RoomType, cal RateCalendar, stay Stay) decimal.Decimal {
	numRooms := decimal.NewFromInt(int64(stay.NumRooms()))

	// Constant-rate fast path when no per-date override exists.
	if !cal.HasOverrides() {
		return rt.BasePrice().Mul(decimal.NewFromInt(int64(stay.Nights()))).Mul(numRooms)
	}

	subtotal := decimal.Zero
	for _, date := range stay.Dates() {
		rate := rt.BasePrice()
		if day, ok := cal.Lookup(date); ok {
			rate = day.Price
		}
		subtotal = subtotal.Add(rate.Mul(numRooms))
	}
	return subtotal
}

func (c *Calculator) resolveDiscount(lookup DiscountLookup, subtotal decimal.Decimal) (decimal.Decimal, DiscountDetails) {
	if !lookup.Requested {
		return decimal.Zero, DiscountDetails{}
	}

	d := lookup.Discount
	if d == nil || !d.IsValidAt(c.clock.Now()) {
		return decimal.Zero, DiscountDetails{
			Code:  lookup.Code,
			Error: "invalid or expired discount code",
		}
	}

	if !d.MeetsMinimum(subtotal) {
		return decimal.Zero, DiscountDetails{
			Code:  d.Code(),
			Error: "booking amount below minimum for this discount",
		}
	}

	value := d.Value()
	return d.AmountFor(subtotal), DiscountDetails{
		Code:  d.Code(),
		Kind:  d.Kind(),
		Value: &value,
	}
}
