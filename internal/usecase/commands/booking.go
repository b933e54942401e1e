package commands

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"goexplorer/internal/domain/booking"
	"goexplorer/internal/domain/pricing"
	"goexplorer/internal/infra"
	"goexplorer/internal/pkg/clock"
	"goexplorer/internal/pkg/config"
	"goexplorer/internal/pkg/errs"
	"goexplorer/internal/usecase/shared"
)

type CreateBookingInput struct {
	RoomTypeID   uuid.UUID
	CheckIn      time.Time
	CheckOut     time.Time
	NumRooms     int
	GuestName    string
	GuestEmail   string
	DiscountCode *string
}

type BookingCommands interface {
	Create(ctx context.Context, input CreateBookingInput) (*shared.BookingSnapshot, error)
}

type bookingCommandsImpl struct {
	roomTypes shared.RoomTypeReadStore
	rates     shared.RateReadStore
	discounts shared.DiscountReadStore
	bookings  shared.BookingRepository
	clock     clock.Clock
	defaults  config.PricingConfig
}

func NewBookingCommands(
	roomTypes shared.RoomTypeReadStore,
	rates shared.RateReadStore,
	discounts shared.DiscountReadStore,
	bookings shared.BookingRepository,
	clk clock.Clock,
	pricingCfg config.PricingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		roomTypes: roomTypes,
		rates:     rates,
		discounts: discounts,
		bookings:  bookings,
		clock:     clk,
		defaults:  pricingCfg,
	}
}

// Create prices the stay, then hands the booking to the repository, which
// re-checks and decrements inventory under row locks in one transaction.
// The read-side availability check here only fails fast; the transactional
// re-check is what actually prevents oversubscription.
func (c *bookingCommandsImpl) Create(ctx context.Context, input CreateBookingInput) (*shared.BookingSnapshot, error) {
	stay, err := pricing.NewStay(input.CheckIn, input.CheckOut, input.NumRooms)
	if err != nil {
		return nil, err
	}

	snap, err := c.roomTypes.ByID(ctx, input.RoomTypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomTypeNotFound
		}
		return nil, errs.Wrap(err, "failed to find room type")
	}

	hotelEntity, err := snap.ToHotel(c.defaults)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	roomType, err := snap.ToRoomType()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	days, err := c.rates.DaysForRange(ctx, roomType.ID(), stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return nil, errs.Wrap(err, "failed to load rate calendar")
	}
	calendar := shared.ToCalendar(days)

	calc := pricing.NewCalculator(hotelEntity, c.clock)

	if avail := calc.CheckAvailability(roomType, calendar, stay); !avail.IsAvailable {
		return nil, errs.ErrRoomsNotAvailable
	}

	lookup, err := c.resolveDiscountCode(ctx, snap.HotelID, input.DiscountCode)
	if err != nil {
		return nil, err
	}
	quote := calc.CalculateTotalPrice(roomType, calendar, stay, lookup)

	b, err := booking.NewBooking(snap.HotelID, roomType.ID(), input.GuestName, input.GuestEmail, stay, quote)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	if err := c.bookings.CreateWithInventory(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrRoomsNotAvailable
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return toBookingSnapshot(b, snap, c.clock.Now()), nil
}

func (c *bookingCommandsImpl) resolveDiscountCode(ctx context.Context, hotelID uuid.UUID, code *string) (pricing.DiscountLookup, error) {
	if code == nil {
		return pricing.DiscountLookup{}, nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return pricing.DiscountLookup{}, nil
	}

	lookup := pricing.DiscountLookup{Requested: true, Code: trimmed}

	snap, err := c.discounts.ByCode(ctx, hotelID, trimmed)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return lookup, nil
		}
		return pricing.DiscountLookup{}, errs.Wrap(err, "failed to find discount code")
	}

	discount, err := snap.ToDiscount()
	if err != nil {
		return pricing.DiscountLookup{}, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	lookup.Discount = discount
	return lookup, nil
}

func toBookingSnapshot(b *booking.Booking, rt *shared.RoomTypeSnapshot, createdAt time.Time) *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:             b.ID(),
		HotelID:        b.HotelID(),
		RoomTypeID:     b.RoomTypeID(),
		HotelName:      rt.HotelName,
		RoomTypeName:   rt.Name,
		GuestName:      b.GuestName(),
		GuestEmail:     b.GuestEmail(),
		CheckIn:        b.Stay().CheckIn(),
		CheckOut:       b.Stay().CheckOut(),
		NumRooms:       b.Stay().NumRooms(),
		Subtotal:       b.Subtotal(),
		DiscountAmount: b.DiscountAmount(),
		GSTAmount:      b.GSTAmount(),
		TotalAmount:    b.TotalAmount(),
		Currency:       b.Currency(),
		Status:         b.Status().String(),
		CreatedAt:      createdAt,
	}
}
