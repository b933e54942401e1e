package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"goexplorer/internal/infra"
	"goexplorer/internal/pkg/pgconv"
	"goexplorer/internal/usecase/shared"
)

type DiscountReadStore struct {
	pool *pgxpool.Pool
}

func NewDiscountReadStore(pool *pgxpool.Pool) *DiscountReadStore {
	return &DiscountReadStore{pool: pool}
}

// Code match is exact and case-sensitive, scoped to the hotel owning the
// room type being priced. Active/validity-window filtering is domain logic,
// not a query concern.
const discountByCodeQuery = `
SELECT id, hotel_id, code, discount_type, discount_value, max_discount,
       min_booking_amount, valid_from, valid_till, is_active
FROM hotel_discounts
WHERE hotel_id = $1 AND code = $2`

func (r *DiscountReadStore) ByCode(ctx context.Context, hotelID uuid.UUID, code string) (*shared.DiscountSnapshot, error) {
	row := r.pool.QueryRow(ctx, discountByCodeQuery, hotelID, code)

	var (
		snap       shared.DiscountSnapshot
		value      pgtype.Numeric
		maxDisc    pgtype.Numeric
		minBooking pgtype.Numeric
		validFrom  pgtype.Timestamptz
		validTill  pgtype.Timestamptz
	)
	err := row.Scan(
		&snap.ID, &snap.HotelID, &snap.Code, &snap.Kind, &value, &maxDisc,
		&minBooking, &validFrom, &validTill, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount by code", err)
	}

	if snap.Value, err = pgconv.DecimalFromNumeric(value); err != nil {
		return nil, infra.WrapRepoErr("failed to convert discount value", err)
	}
	if snap.MaxDiscount, err = pgconv.DecimalPtrFromNumeric(maxDisc); err != nil {
		return nil, infra.WrapRepoErr("failed to convert max discount", err)
	}
	if minBooking.Valid {
		min, err := pgconv.DecimalFromNumeric(minBooking)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert min booking amount", err)
		}
		snap.MinBookingAmount = min
	}
	snap.ValidFrom = pgconv.TimeFromPgtype(validFrom)
	snap.ValidTill = pgconv.TimeFromPgtype(validTill)

	return &snap, nil
}
