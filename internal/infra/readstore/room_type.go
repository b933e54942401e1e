package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"goexplorer/internal/infra"
	"goexplorer/internal/pkg/pgconv"
	"goexplorer/internal/usecase/shared"
)

type RoomTypeReadStore struct {
	pool *pgxpool.Pool
}

func NewRoomTypeReadStore(pool *pgxpool.Pool) *RoomTypeReadStore {
	return &RoomTypeReadStore{pool: pool}
}

const roomTypeByIDQuery = `
SELECT rt.id, rt.hotel_id, h.name, h.city, h.star_rating, rt.name, rt.base_price,
       rt.max_occupancy, rt.total_rooms, h.gst_percentage, h.currency
FROM room_types rt
JOIN hotels h ON h.id = rt.hotel_id
WHERE rt.id = $1 AND rt.is_active = TRUE AND h.is_active = TRUE`

func (r *RoomTypeReadStore) ByID(ctx context.Context, id uuid.UUID) (*shared.RoomTypeSnapshot, error) {
	row := r.pool.QueryRow(ctx, roomTypeByIDQuery, id)

	snap, err := scanRoomType(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type by ID", err)
	}
	return snap, nil
}
