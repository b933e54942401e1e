package response

import (
	"github.com/shopspring/decimal"

	"goexplorer/internal/domain/pricing"
)

type DiscountDetails struct {
	Code  string           `json:"code,omitempty"`
	Type  string           `json:"type,omitempty"`
	Value *decimal.Decimal `json:"value,omitempty"`
	Error string           `json:"error,omitempty"`
}

type PricingBreakdown struct {
	NumNights             int              `json:"num_nights"`
	NumRooms              int              `json:"num_rooms"`
	BasePrice             decimal.Decimal  `json:"base_price"`
	Subtotal              decimal.Decimal  `json:"subtotal"`
	DiscountAmount        decimal.Decimal  `json:"discount_amount"`
	DiscountDetails       *DiscountDetails `json:"discount_details,omitempty"`
	SubtotalAfterDiscount decimal.Decimal  `json:"subtotal_after_discount"`
	GSTAmount             decimal.Decimal  `json:"gst_amount"`
	TotalAmount           decimal.Decimal  `json:"total_amount"`
	Currency              string           `json:"currency"`
}

type PricingResponse struct {
	Success bool             `json:"success"`
	Pricing PricingBreakdown `json:"pricing"`
}

type AvailabilityResult struct {
	IsAvailable       bool `json:"is_available"`
	MinAvailableRooms int  `json:"min_available_rooms"`
	RequestedRooms    int  `json:"requested_rooms"`
}

type AvailabilityResponse struct {
	Success      bool               `json:"success"`
	Availability AvailabilityResult `json:"availability"`
}

func FromQuote(q *pricing.Quote) PricingResponse {
	breakdown := PricingBreakdown{
		NumNights:             q.NumNights,
		NumRooms:              q.NumRooms,
		BasePrice:             q.BasePrice,
		Subtotal:              q.Subtotal,
		DiscountAmount:        q.DiscountAmount,
		SubtotalAfterDiscount: q.SubtotalAfterDiscount,
		GSTAmount:             q.GSTAmount,
		TotalAmount:           q.TotalAmount,
		Currency:              q.Currency,
	}

	d := q.DiscountDetails
	if d.Code != "" || d.Error != "" {
		breakdown.DiscountDetails = &DiscountDetails{
			Code:  d.Code,
			Type:  string(d.Kind),
			Value: d.Value,
			Error: d.Error,
		}
	}

	return PricingResponse{Success: true, Pricing: breakdown}
}

func FromAvailability(a *pricing.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		Success: true,
		Availability: AvailabilityResult{
			IsAvailable:       a.IsAvailable,
			MinAvailableRooms: a.MinAvailableRooms,
			RequestedRooms:    a.RequestedRooms,
		},
	}
}
