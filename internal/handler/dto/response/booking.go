package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"goexplorer/internal/usecase/shared"
)

type BookingResponse struct {
	ID             uuid.UUID       `json:"id"`
	HotelID        uuid.UUID       `json:"hotel_id"`
	HotelName      string          `json:"hotel_name"`
	RoomTypeID     uuid.UUID       `json:"room_type_id"`
	RoomTypeName   string          `json:"room_type_name"`
	GuestName      string          `json:"guest_name"`
	GuestEmail     string          `json:"guest_email"`
	CheckIn        string          `json:"check_in"`
	CheckOut       string          `json:"check_out"`
	NumRooms       int             `json:"num_rooms"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	GSTAmount      decimal.Decimal `json:"gst_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

func FromBookingSnapshot(s *shared.BookingSnapshot) BookingResponse {
	return BookingResponse{
		ID:             s.ID,
		HotelID:        s.HotelID,
		HotelName:      s.HotelName,
		RoomTypeID:     s.RoomTypeID,
		RoomTypeName:   s.RoomTypeName,
		GuestName:      s.GuestName,
		GuestEmail:     s.GuestEmail,
		CheckIn:        s.CheckIn.Format(dateFormat),
		CheckOut:       s.CheckOut.Format(dateFormat),
		NumRooms:       s.NumRooms,
		Subtotal:       s.Subtotal,
		DiscountAmount: s.DiscountAmount,
		GSTAmount:      s.GSTAmount,
		TotalAmount:    s.TotalAmount,
		Currency:       s.Currency,
		Status:         s.Status,
		CreatedAt:      s.CreatedAt,
	}
}
