//go:build unit

package builder

import (
	"time"

	"goexplorer/internal/domain/pricing"
	"goexplorer/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountBuilder struct {
	ID               uuid.UUID
	HotelID          uuid.UUID
	Code             string
	Kind             pricing.DiscountKind
	Value            decimal.Decimal
	MaxDiscount      *decimal.Decimal
	MinBookingAmount decimal.Decimal
	ValidFrom        time.Time
	ValidTill        time.Time
	IsActive         bool
}

func NewDiscountBuilder() *DiscountBuilder {
	return &DiscountBuilder{
		ID:               uuid.New(),
		HotelID:          uuid.New(),
		Code:             "SAVE20",
		Kind:             pricing.DiscountPercentage,
		Value:            decimal.RequireFromString("20"),
		MinBookingAmount: decimal.Zero,
		ValidFrom:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTill:        time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		IsActive:         true,
	}
}

func (b *DiscountBuilder) With(mutate func(*DiscountBuilder)) *DiscountBuilder {
	mutate(b)
	return b
}

func (b *DiscountBuilder) WithMaxDiscount(s string) *DiscountBuilder {
	d := decimal.RequireFromString(s)
	b.MaxDiscount = &d
	return b
}

func (b *DiscountBuilder) BuildDomain() (*pricing.Discount, error) {
	return pricing.NewDiscount(
		b.ID, b.HotelID, b.Code, b.Kind, b.Value,
		b.MaxDiscount, b.MinBookingAmount, b.ValidFrom, b.ValidTill, b.IsActive,
	)
}

func (b *DiscountBuilder) BuildSnapshot() *shared.DiscountSnapshot {
	return &shared.DiscountSnapshot{
		ID:               b.ID,
		HotelID:          b.HotelID,
		Code:             b.Code,
		Kind:             string(b.Kind),
		Value:            b.Value,
		MaxDiscount:      b.MaxDiscount,
		MinBookingAmount: b.MinBookingAmount,
		ValidFrom:        b.ValidFrom,
		ValidTill:        b.ValidTill,
		IsActive:         b.IsActive,
	}
}

func (b *DiscountBuilder) BuildLookup() pricing.DiscountLookup {
	d, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return pricing.DiscountLookup{Requested: true, Code: b.Code, Discount: d}
}
