package shared

import (
	"goexplorer/internal/domain/hotel"
	"goexplorer/internal/domain/pricing"
	"goexplorer/internal/pkg/config"
)

// Rebuild domain values from storage snapshots. Snapshot data that fails
// domain validation is a data problem, not caller input, so callers mark
// these errors as ErrDomainValidationFailed.

// ToHotel rebuilds the hotel, substituting the configured property-level
// defaults for a blank tax rate or currency before entity validation runs.
func (s *RoomTypeSnapshot) ToHotel(defaults config.PricingConfig) (*hotel.Hotel, error) {
	gst := s.GSTPercentage
	if gst.IsZero() {
		gst = defaults.DefaultGSTPercent
	}
	currency := s.Currency
	if currency == "" {
		currency = defaults.DefaultCurrency
	}
	return hotel.NewHotel(s.HotelID, s.HotelName, s.City, s.StarRating, gst, currency)
}

func (s *RoomTypeSnapshot) ToRoomType() (*hotel.RoomType, error) {
	return hotel.NewRoomType(s.ID, s.HotelID, s.Name, s.BasePrice, s.MaxOccupancy, s.TotalRooms)
}

func (s *DiscountSnapshot) ToDiscount() (*pricing.Discount, error) {
	return pricing.NewDiscount(
		s.ID,
		s.HotelID,
		s.Code,
		pricing.DiscountKind(s.Kind),
		s.Value,
		s.MaxDiscount,
		s.MinBookingAmount,
		s.ValidFrom,
		s.ValidTill,
		s.IsActive,
	)
}

func ToCalendar(days []RateDay) pricing.RateCalendar {
	overrides := make([]pricing.DayRate, 0, len(days))
	for _, d := range days {
		overrides = append(overrides, pricing.DayRate{
			Date:           d.Date,
			Price:          d.Price,
			AvailableRooms: d.AvailableRooms,
		})
	}
	return pricing.NewRateCalendar(overrides)
}
