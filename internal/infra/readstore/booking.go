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

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingByIDQuery = `
SELECT b.id, b.hotel_id, b.room_type_id, h.name, rt.name, b.guest_name, b.guest_email,
       b.check_in, b.check_out, b.num_rooms, b.subtotal, b.discount_amount,
       b.gst_amount, b.total_amount, b.currency, b.status, b.created_at
FROM bookings b
JOIN hotels h ON h.id = b.hotel_id
JOIN room_types rt ON rt.id = b.room_type_id
WHERE b.id = $1`

func (r *BookingReadStore) ByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row := r.pool.QueryRow(ctx, bookingByIDQuery, id)

	var (
		snap           shared.BookingSnapshot
		checkIn        pgtype.Date
		checkOut       pgtype.Date
		subtotal       pgtype.Numeric
		discountAmount pgtype.Numeric
		gstAmount      pgtype.Numeric
		totalAmount    pgtype.Numeric
		createdAt      pgtype.Timestamptz
	)
	err := row.Scan(
		&snap.ID, &snap.HotelID, &snap.RoomTypeID, &snap.HotelName, &snap.RoomTypeName,
		&snap.GuestName, &snap.GuestEmail, &checkIn, &checkOut, &snap.NumRooms,
		&subtotal, &discountAmount, &gstAmount, &totalAmount, &snap.Currency,
		&snap.Status, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	snap.CheckIn = pgconv.DateFromPgtype(checkIn)
	snap.CheckOut = pgconv.DateFromPgtype(checkOut)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	if snap.Subtotal, err = pgconv.DecimalFromNumeric(subtotal); err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking subtotal", err)
	}
	if snap.DiscountAmount, err = pgconv.DecimalFromNumeric(discountAmount); err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking discount", err)
	}
	if snap.GSTAmount, err = pgconv.DecimalFromNumeric(gstAmount); err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking gst", err)
	}
	if snap.TotalAmount, err = pgconv.DecimalFromNumeric(totalAmount); err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking total", err)
	}

	return &snap, nil
}
