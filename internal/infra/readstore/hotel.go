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

type HotelReadStore struct {
	pool *pgxpool.Pool
}

func NewHotelReadStore(pool *pgxpool.Pool) *HotelReadStore {
	return &HotelReadStore{pool: pool}
}

const hotelByIDQuery = `
SELECT id, name, city, star_rating, gst_percentage, currency, is_active
FROM hotels
WHERE id = $1 AND is_active = TRUE`

func (r *HotelReadStore) ByID(ctx context.Context, id uuid.UUID) (*shared.HotelSnapshot, error) {
	row := r.pool.QueryRow(ctx, hotelByIDQuery, id)

	snap, err := scanHotel(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}
	return snap, nil
}

const hotelListQuery = `
SELECT h.id, h.name, h.city, h.star_rating, h.gst_percentage, h.currency, h.is_active
FROM hotels h
WHERE h.is_active = TRUE
  AND ($1 = '' OR h.city ILIKE $1)
  AND ($2 = 0 OR h.star_rating = $2)
ORDER BY
  CASE WHEN $3 = 'price_asc' THEN (SELECT MIN(rt.base_price) FROM room_types rt WHERE rt.hotel_id = h.id) END ASC,
  CASE WHEN $3 = 'price_desc' THEN (SELECT MIN(rt.base_price) FROM room_types rt WHERE rt.hotel_id = h.id) END DESC,
  h.name ASC`

func (r *HotelReadStore) List(ctx context.Context, filter shared.HotelFilter) ([]*shared.HotelSnapshot, error) {
	rows, err := r.pool.Query(ctx, hotelListQuery, filter.City, filter.StarRating, filter.SortBy)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	var hotels []*shared.HotelSnapshot
	for rows.Next() {
		snap, err := scanHotel(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel row", err)
		}
		hotels = append(hotels, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hotel rows", err)
	}
	return hotels, nil
}

const roomTypesByHotelQuery = `
SELECT rt.id, rt.hotel_id, h.name, h.city, h.star_rating, rt.name, rt.base_price,
       rt.max_occupancy, rt.total_rooms, h.gst_percentage, h.currency
FROM room_types rt
JOIN hotels h ON h.id = rt.hotel_id
WHERE rt.hotel_id = $1 AND rt.is_active = TRUE
ORDER BY rt.base_price ASC`

func (r *HotelReadStore) RoomTypesByHotel(ctx context.Context, hotelID uuid.UUID) ([]*shared.RoomTypeSnapshot, error) {
	rows, err := r.pool.Query(ctx, roomTypesByHotelQuery, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	var roomTypes []*shared.RoomTypeSnapshot
	for rows.Next() {
		snap, err := scanRoomType(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		roomTypes = append(roomTypes, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room type rows", err)
	}
	return roomTypes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHotel(row rowScanner) (*shared.HotelSnapshot, error) {
	var (
		snap shared.HotelSnapshot
		gst  pgtype.Numeric
	)
	if err := row.Scan(&snap.ID, &snap.Name, &snap.City, &snap.StarRating, &gst, &snap.Currency, &snap.IsActive); err != nil {
		return nil, err
	}

	gstDec, err := pgconv.DecimalFromNumeric(gst)
	if err != nil {
		return nil, err
	}
	snap.GSTPercentage = gstDec
	return &snap, nil
}

func scanRoomType(row rowScanner) (*shared.RoomTypeSnapshot, error) {
	var (
		snap      shared.RoomTypeSnapshot
		basePrice pgtype.Numeric
		gst       pgtype.Numeric
	)
	err := row.Scan(
		&snap.ID, &snap.HotelID, &snap.HotelName, &snap.City, &snap.StarRating,
		&snap.Name, &basePrice, &snap.MaxOccupancy, &snap.TotalRooms, &gst, &snap.Currency,
	)
	if err != nil {
		return nil, err
	}

	if snap.BasePrice, err = pgconv.DecimalFromNumeric(basePrice); err != nil {
		return nil, err
	}
	if snap.GSTPercentage, err = pgconv.DecimalFromNumeric(gst); err != nil {
		return nil, err
	}
	return &snap, nil
}
