package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"goexplorer/internal/infra"
	"goexplorer/internal/pkg/pgconv"
	"goexplorer/internal/usecase/shared"
)

type RateReadStore struct {
	pool *pgxpool.Pool
}

func NewRateReadStore(pool *pgxpool.Pool) *RateReadStore {
	return &RateReadStore{pool: pool}
}

const ratesForRangeQuery = `
SELECT date, price, available_rooms
FROM room_availability
WHERE room_type_id = $1 AND date >= $2 AND date < $3
ORDER BY date ASC`

// DaysForRange returns the per-date overrides in [from, to). Dates without a
// row fall back to the room type's base price and total unit count.
func (r *RateReadStore) DaysForRange(ctx context.Context, roomTypeID uuid.UUID, from, to time.Time) ([]shared.RateDay, error) {
	rows, err := r.pool.Query(ctx, ratesForRangeQuery, roomTypeID, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load rate days", err)
	}
	defer rows.Close()

	var days []shared.RateDay
	for rows.Next() {
		var (
			day   shared.RateDay
			date  pgtype.Date
			price pgtype.Numeric
		)
		if err := rows.Scan(&date, &price, &day.AvailableRooms); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rate day row", err)
		}
		day.Date = pgconv.DateFromPgtype(date)
		if day.Price, err = pgconv.DecimalFromNumeric(price); err != nil {
			return nil, infra.WrapRepoErr("failed to convert rate day price", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rate day rows", err)
	}
	return days, nil
}
