package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomTypeID   uuid.UUID `json:"room_type_id" binding:"required"`
	CheckIn      string    `json:"check_in" binding:"required"`
	CheckOut     string    `json:"check_out" binding:"required"`
	NumRooms     *int      `json:"num_rooms,omitempty"`
	GuestName    string    `json:"guest_name" binding:"required"`
	GuestEmail   string    `json:"guest_email" binding:"required,email"`
	DiscountCode *string   `json:"discount_code,omitempty"`
}

func (r CreateBookingRequest) GetNumRooms() int {
	return numRoomsOrDefault(r.NumRooms)
}
