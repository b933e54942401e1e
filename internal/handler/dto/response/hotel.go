package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"goexplorer/internal/domain/occupancy"
	"goexplorer/internal/usecase/queries"
	"goexplorer/internal/usecase/shared"
)

type HotelResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	City       string    `json:"city"`
	StarRating int       `json:"star_rating"`
	Currency   string    `json:"currency"`
}

type RoomTypeResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	BasePrice    decimal.Decimal `json:"base_price"`
	MaxOccupancy int             `json:"max_occupancy"`
	TotalRooms   int             `json:"total_rooms"`
}

type HotelDetailResponse struct {
	HotelResponse
	RoomTypes []RoomTypeResponse `json:"room_types"`
}

type DayOccupancyResult struct {
	Date        string `json:"date"`
	TotalRooms  int    `json:"total_rooms"`
	BookedRooms int    `json:"booked_rooms"`
}

type OccupancySummary struct {
	HotelID             uuid.UUID            `json:"hotel_id"`
	StartDate           string               `json:"start_date"`
	EndDate             string               `json:"end_date"`
	TotalRoomNights     int                  `json:"total_room_nights"`
	BookedRoomNights    int                  `json:"booked_room_nights"`
	OccupancyPercentage decimal.Decimal      `json:"occupancy_percentage"`
	Days                []DayOccupancyResult `json:"days"`
}

type OccupancyResponse struct {
	Success   bool             `json:"success"`
	Occupancy OccupancySummary `json:"occupancy"`
}

const dateFormat = "2006-01-02"

func FromHotelSnapshot(s *shared.HotelSnapshot) HotelResponse {
	return HotelResponse{
		ID:         s.ID,
		Name:       s.Name,
		City:       s.City,
		StarRating: s.StarRating,
		Currency:   s.Currency,
	}
}

func FromHotelDetail(d *queries.HotelDetail) HotelDetailResponse {
	resp := HotelDetailResponse{
		HotelResponse: FromHotelSnapshot(d.Hotel),
		RoomTypes:     make([]RoomTypeResponse, 0, len(d.RoomTypes)),
	}
	for _, rt := range d.RoomTypes {
		resp.RoomTypes = append(resp.RoomTypes, RoomTypeResponse{
			ID:           rt.ID,
			Name:         rt.Name,
			BasePrice:    rt.BasePrice,
			MaxOccupancy: rt.MaxOccupancy,
			TotalRooms:   rt.TotalRooms,
		})
	}
	return resp
}

func FromOccupancySummary(s *occupancy.Summary) OccupancyResponse {
	days := make([]DayOccupancyResult, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, DayOccupancyResult{
			Date:        d.Date.Format(dateFormat),
			TotalRooms:  d.TotalRooms,
			BookedRooms: d.BookedRooms,
		})
	}
	return OccupancyResponse{
		Success: true,
		Occupancy: OccupancySummary{
			HotelID:             s.HotelID,
			StartDate:           s.StartDate.Format(dateFormat),
			EndDate:             s.EndDate.Format(dateFormat),
			TotalRoomNights:     s.TotalRoomNights,
			BookedRoomNights:    s.BookedRoomNights,
			OccupancyPercentage: s.OccupancyPercentage,
			Days:                days,
		},
	}
}
