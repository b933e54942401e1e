package queries

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"goexplorer/internal/domain/pricing"
	"goexplorer/internal/infra"
	"goexplorer/internal/pkg/clock"
	"goexplorer/internal/pkg/config"
	"goexplorer/internal/pkg/errs"
	"goexplorer/internal/usecase/shared"
)

type QuoteInput struct {
	RoomTypeID   uuid.UUID
	CheckIn      time.Time
	CheckOut     time.Time
	NumRooms     int
	DiscountCode *string
}

type AvailabilityInput struct {
	RoomTypeID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	NumRooms   int
}

type PricingQueries interface {
	Quote(ctx context.Context, input QuoteInput) (*pricing.Quote, error)
	Availability(ctx context.Context, input AvailabilityInput) (*pricing.Availability, error)
}

type pricingQueriesImpl struct {
	roomTypes shared.RoomTypeReadStore
	rates     shared.RateReadStore
	discounts shared.DiscountReadStore
	clock     clock.Clock
	defaults  config.PricingConfig
}

func NewPricingQueries(
	roomTypes shared.RoomTypeReadStore,
	rates shared.RateReadStore,
	discounts shared.DiscountReadStore,
	clk clock.Clock,
	pricingCfg config.PricingConfig,
) PricingQueries {
	return &pricingQueriesImpl{
		roomTypes: roomTypes,
		rates:     rates,
		discounts: discounts,
		clock:     clk,
		defaults:  pricingCfg,
	}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, input QuoteInput) (*pricing.Quote, error) {
	stay, err := pricing.NewStay(input.CheckIn, input.CheckOut, input.NumRooms)
	if err != nil {
		return nil, err
	}

	snap, err := q.findRoomType(ctx, input.RoomTypeID)
	if err != nil {
		return nil, err
	}

	hotelEntity, err := snap.ToHotel(q.defaults)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	roomType, err := snap.ToRoomType()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	calendar, err := q.loadCalendar(ctx, roomType.ID(), stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return nil, err
	}

	lookup, err := q.resolveDiscountCode(ctx, snap.HotelID, input.DiscountCode)
	if err != nil {
		return nil, err
	}

	calc := pricing.NewCalculator(hotelEntity, q.clock)
	return calc.CalculateTotalPrice(roomType, calendar, stay, lookup), nil
}

func (q *pricingQueriesImpl) Availability(ctx context.Context, input AvailabilityInput) (*pricing.Availability, error) {
	stay, err := pricing.NewStay(input.CheckIn, input.CheckOut, input.NumRooms)
	if err != nil {
		return nil, err
	}

	snap, err := q.findRoomType(ctx, input.RoomTypeID)
	if err != nil {
		return nil, err
	}

	hotelEntity, err := snap.ToHotel(q.defaults)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	roomType, err := snap.ToRoomType()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	calendar, err := q.loadCalendar(ctx, roomType.ID(), stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return nil, err
	}

	calc := pricing.NewCalculator(hotelEntity, q.clock)
	return calc.CheckAvailability(roomType, calendar, stay), nil
}

func (q *pricingQueriesImpl) findRoomType(ctx context.Context, id uuid.UUID) (*shared.RoomTypeSnapshot, error) {
	snap, err := q.roomTypes.ByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomTypeNotFound
		}
		return nil, errs.Wrap(err, "failed to find room type")
	}
	return snap, nil
}

func (q *pricingQueriesImpl) loadCalendar(ctx context.Context, roomTypeID uuid.UUID, from, to time.Time) (pricing.RateCalendar, error) {
	days, err := q.rates.DaysForRange(ctx, roomTypeID, from, to)
	if err != nil {
		return pricing.RateCalendar{}, errs.Wrap(err, "failed to load rate calendar")
	}
	return shared.ToCalendar(days), nil
}

// resolveDiscountCode performs the storage half of discount resolution. A
// miss is not an error; the calculator reports it through DiscountDetails.
func (q *pricingQueriesImpl) resolveDiscountCode(ctx context.Context, hotelID uuid.UUID, code *string) (pricing.DiscountLookup, error) {
	if code == nil {
		return pricing.DiscountLookup{}, nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return pricing.DiscountLookup{}, nil
	}

	lookup := pricing.DiscountLookup{Requested: true, Code: trimmed}

	snap, err := q.discounts.ByCode(ctx, hotelID, trimmed)
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
