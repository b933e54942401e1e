package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDateFormat = errors.New("dates must be in YYYY-MM-DD format")

const dateFormat = "2006-01-02"

type PricingRequest struct {
	RoomTypeID   uuid.UUID `json:"room_type_id" binding:"required"`
	CheckIn      string    `json:"check_in" binding:"required"`
	CheckOut     string    `json:"check_out" binding:"required"`
	NumRooms     *int      `json:"num_rooms,omitempty"`
	DiscountCode *string   `json:"discount_code,omitempty"`
}

type AvailabilityRequest struct {
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	CheckIn    string    `json:"check_in" binding:"required"`
	CheckOut   string    `json:"check_out" binding:"required"`
	NumRooms   *int      `json:"num_rooms,omitempty"`
}

// GetNumRooms defaults to a single room when the field is omitted; explicit
// values pass through untouched so invalid counts still reach validation.
func (r PricingRequest) GetNumRooms() int {
	return numRoomsOrDefault(r.NumRooms)
}

func (r AvailabilityRequest) GetNumRooms() int {
	return numRoomsOrDefault(r.NumRooms)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

func numRoomsOrDefault(n *int) int {
	if n == nil {
		return 1
	}
	return *n
}
