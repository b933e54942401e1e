package writerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"goexplorer/internal/domain/booking"
	"goexplorer/internal/infra"
	"goexplorer/internal/infra/db"
	"goexplorer/internal/pkg/pgconv"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Dates without an override row get one seeded from the room type's defaults
// so the decrement below always has a row to lock.
const seedAvailabilityStmt = `
INSERT INTO room_availability (room_type_id, date, price, available_rooms)
SELECT rt.id, d, rt.base_price, rt.total_rooms
FROM room_types rt, unnest($2::date[]) AS d
WHERE rt.id = $1
ON CONFLICT (room_type_id, date) DO NOTHING`

const lockAvailabilityQuery = `
SELECT available_rooms
FROM room_availability
WHERE room_type_id = $1 AND date = ANY($2::date[])
FOR UPDATE`

const decrementAvailabilityStmt = `
UPDATE room_availability
SET available_rooms = available_rooms - $3
WHERE room_type_id = $1 AND date = ANY($2::date[])`

const insertBookingStmt = `
INSERT INTO bookings (
	id, hotel_id, room_type_id, guest_name, guest_email,
	check_in, check_out, num_rooms,
	subtotal, discount_amount, gst_amount, total_amount, currency, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

// CreateWithInventory re-checks sufficiency under row locks and decrements
// inventory in the same transaction that persists the booking. Two
// concurrent bookings for the same dates serialize on the row locks, so the
// second one sees the decremented counts and conflicts instead of
// oversubscribing.
func (r *BookingRepository) CreateWithInventory(ctx context.Context, b *booking.Booking) error {
	stay := b.Stay()
	dates := make([]pgtype.Date, 0, stay.Nights())
	for _, d := range stay.Dates() {
		dates = append(dates, pgconv.DateToPgtype(d))
	}

	_, err := db.RunInTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		if _, err := tx.Exec(ctx, seedAvailabilityStmt, b.RoomTypeID(), dates); err != nil {
			return zero, infra.WrapRepoErr("failed to seed availability rows", err)
		}

		rows, err := tx.Query(ctx, lockAvailabilityQuery, b.RoomTypeID(), dates)
		if err != nil {
			return zero, infra.WrapRepoErr("failed to lock availability rows", err)
		}
		defer rows.Close()

		minAvailable := -1
		for rows.Next() {
			var available int
			if err := rows.Scan(&available); err != nil {
				return zero, infra.WrapRepoErr("failed to scan availability row", err)
			}
			if minAvailable < 0 || available < minAvailable {
				minAvailable = available
			}
		}
		if err := rows.Err(); err != nil {
			return zero, infra.WrapRepoErr("failed to iterate availability rows", err)
		}
		rows.Close()

		if minAvailable < stay.NumRooms() {
			return zero, infra.WrapRepoErr("insufficient rooms for requested dates", nil, infra.KindConflict)
		}

		if _, err := tx.Exec(ctx, decrementAvailabilityStmt, b.RoomTypeID(), dates, stay.NumRooms()); err != nil {
			return zero, infra.WrapRepoErr("failed to decrement availability", err)
		}

		_, err = tx.Exec(ctx, insertBookingStmt,
			b.ID(), b.HotelID(), b.RoomTypeID(), b.GuestName(), b.GuestEmail(),
			pgconv.DateToPgtype(stay.CheckIn()), pgconv.DateToPgtype(stay.CheckOut()), stay.NumRooms(),
			pgconv.NumericFromDecimal(b.Subtotal()), pgconv.NumericFromDecimal(b.DiscountAmount()),
			pgconv.NumericFromDecimal(b.GSTAmount()), pgconv.NumericFromDecimal(b.TotalAmount()),
			b.Currency(), b.Status().String(),
		)
		if err != nil {
			return zero, infra.WrapRepoErr("failed to insert booking", err)
		}

		return zero, nil
	})
	return err
}
