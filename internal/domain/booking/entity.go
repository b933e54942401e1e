package booking

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"goexplorer/internal/domain/pricing"
)

var (
	ErrEmptyGuestName  = errors.New("guest name cannot be empty")
	ErrEmptyGuestEmail = errors.New("guest email cannot be empty")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// Booking is a confirmed stay stamped with the quote that priced it. The
// charged amounts are copied at creation time so later rate or discount
// changes never alter an existing booking.
type Booking struct {
	id             uuid.UUID
	hotelID        uuid.UUID
	roomTypeID     uuid.UUID
	guestName      string
	guestEmail     string
	stay           pricing.Stay
	subtotal       decimal.Decimal
	discountAmount decimal.Decimal
	gstAmount      decimal.Decimal
	totalAmount    decimal.Decimal
	currency       string
	status         Status
}

func NewBooking(
	hotelID, roomTypeID uuid.UUID,
	guestName, guestEmail string,
	stay pricing.Stay,
	quote *pricing.Quote,
) (*Booking, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, ErrEmptyGuestName
	}
	guestEmail = strings.TrimSpace(guestEmail)
	if guestEmail == "" {
		return nil, ErrEmptyGuestEmail
	}

	return &Booking{
		id:             uuid.New(),
		hotelID:        hotelID,
		roomTypeID:     roomTypeID,
		guestName:      guestName,
		guestEmail:     guestEmail,
		stay:           stay,
		subtotal:       quote.Subtotal,
		discountAmount: quote.DiscountAmount,
		gstAmount:      quote.GSTAmount,
		totalAmount:    quote.TotalAmount,
		currency:       quote.Currency,
		status:         StatusConfirmed,
	}, nil
}

func (b *Booking) ID() uuid.UUID                   { return b.id }
func (b *Booking) HotelID() uuid.UUID              { return b.hotelID }
func (b *Booking) RoomTypeID() uuid.UUID           { return b.roomTypeID }
func (b *Booking) GuestName() string               { return b.guestName }
func (b *Booking) GuestEmail() string              { return b.guestEmail }
func (b *Booking) Stay() pricing.Stay              { return b.stay }
func (b *Booking) Subtotal() decimal.Decimal       { return b.subtotal }
func (b *Booking) DiscountAmount() decimal.Decimal { return b.discountAmount }
func (b *Booking) GSTAmount() decimal.Decimal      { return b.gstAmount }
func (b *Booking) TotalAmount() decimal.Decimal    { return b.totalAmount }
func (b *Booking) Currency() string                { return b.currency }
func (b *Booking) Status() Status                  { return b.status }
