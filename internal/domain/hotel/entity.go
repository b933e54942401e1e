package hotel

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyHotelName     = errors.New("hotel name cannot be empty")
	ErrInvalidStarRating  = errors.New("star rating must be between 1 and 5")
	ErrNegativeGSTPercent = errors.New("gst percentage cannot be negative")
)

// DefaultGSTPercent is the property-level tax fallback observed across
// seeded data when a hotel carries no explicit rate.
var DefaultGSTPercent = decimal.RequireFromString("18.00")

const DefaultCurrency = "INR"

type Hotel struct {
	id            uuid.UUID
	name          string
	city          string
	starRating    int
	gstPercentage decimal.Decimal
	currency      string
	isActive      bool
}

func NewHotel(id uuid.UUID, name, city string, starRating int, gstPercentage decimal.Decimal, currency string) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyHotelName
	}
	if starRating < 1 || starRating > 5 {
		return nil, ErrInvalidStarRating
	}
	if gstPercentage.IsNegative() {
		return nil, ErrNegativeGSTPercent
	}
	if gstPercentage.IsZero() {
		gstPercentage = DefaultGSTPercent
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Hotel{
		id:            id,
		name:          name,
		city:          city,
		starRating:    starRating,
		gstPercentage: gstPercentage,
		currency:      currency,
		isActive:      true,
	}, nil
}

func (h *Hotel) ID() uuid.UUID                  { return h.id }
func (h *Hotel) Name() string                   { return h.name }
func (h *Hotel) City() string                   { return h.city }
func (h *Hotel) StarRating() int                { return h.starRating }
func (h *Hotel) GSTPercentage() decimal.Decimal { return h.gstPercentage }
func (h *Hotel) Currency() string               { return h.currency }
func (h *Hotel) IsActive() bool                 { return h.isActive }
