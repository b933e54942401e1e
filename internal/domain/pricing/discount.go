package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscountKind  = errors.New("discount kind must be percentage or fixed")
	ErrInvalidDiscountValue = errors.New("discount value must be positive")
	ErrPercentOutOfRange    = errors.New("percentage discount must be between 0 and 100")
)

type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

func (k DiscountKind) IsValid() bool {
	switch k {
	case DiscountPercentage, DiscountFixed:
		return true
	default:
		return false
	}
}

// Discount is a promotional code scoped to a hotel. Percentage discounts may
// carry a cap; both kinds may carry a minimum-booking eligibility floor.
type Discount struct {
	id               uuid.UUID
	hotelID          uuid.UUID
	code             string
	kind             DiscountKind
	value            decimal.Decimal
	maxDiscount      *decimal.Decimal
	minBookingAmount decimal.Decimal
	validFrom        time.Time
	validTill        time.Time
	isActive         bool
}

func NewDiscount(
	id, hotelID uuid.UUID,
	code string,
	kind DiscountKind,
	value decimal.Decimal,
	maxDiscount *decimal.Decimal,
	minBookingAmount decimal.Decimal,
	validFrom, validTill time.Time,
	isActive bool,
) (*Discount, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidDiscountKind
	}
	if !value.IsPositive() {
		return nil, ErrInvalidDiscountValue
	}
	if kind == DiscountPercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrPercentOutOfRange
	}
	if minBookingAmount.IsNegative() {
		minBookingAmount = decimal.Zero
	}

	return &Discount{
		id:               id,
		hotelID:          hotelID,
		code:             code,
		kind:             kind,
		value:            value,
		maxDiscount:      maxDiscount,
		minBookingAmount: minBookingAmount,
		validFrom:        validFrom,
		validTill:        validTill,
		isActive:         isActive,
	}, nil
}

func (d *Discount) ID() uuid.UUID                     { return d.id }
func (d *Discount) HotelID() uuid.UUID                { return d.hotelID }
func (d *Discount) Code() string                      { return d.code }
func (d *Discount) Kind() DiscountKind                { return d.kind }
func (d *Discount) Value() decimal.Decimal            { return d.value }
func (d *Discount) MaxDiscount() *decimal.Decimal     { return d.maxDiscount }
func (d *Discount) MinBookingAmount() decimal.Decimal { return d.minBookingAmount }
func (d *Discount) ValidFrom() time.Time              { return d.validFrom }
func (d *Discount) ValidTill() time.Time              { return d.validTill }
func (d *Discount) IsActive() bool                    { return d.isActive }

func (d *Discount) IsValidAt(t time.Time) bool {
	if !d.isActive {
		return false
	}
	return !t.Before(d.validFrom) && !t.After(d.validTill)
}

// MeetsMinimum reports whether a subtotal satisfies the eligibility floor.
func (d *Discount) MeetsMinimum(subtotal decimal.Decimal) bool {
	return subtotal.GreaterThanOrEqual(d.minBookingAmount)
}

// AmountFor computes the discount against a pre-tax subtotal. Percentage
// discounts are capped by maxDiscount when set; fixed discounts clamp to the
// subtotal so a quote can never go negative.
func (d *Discount) AmountFor(subtotal decimal.Decimal) decimal.Decimal {
	switch d.kind {
	case DiscountPercentage:
		raw := subtotal.Mul(d.value).Div(decimal.NewFromInt(100)).Round(2)
		if d.maxDiscount != nil && raw.GreaterThan(*d.maxDiscount) {
			return *d.maxDiscount
		}
		return raw
	case DiscountFixed:
		if d.value.GreaterThan(subtotal) {
			return subtotal
		}
		return d.value
	default:
		return decimal.Zero
	}
}
