package api

import (
	"errors"
	"net/http"

	reqdto "goexplorer/internal/handler/dto/request"
	resdto "goexplorer/internal/handler/dto/response"
	"goexplorer/internal/pkg/errs"
	"goexplorer/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingQueries queries.PricingQueries
}

func NewPricingHandler(pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{
		pricingQueries: pricingQueries,
	}
}

// @Summary Calculate stay price
// @Description Calculate the full price breakdown for a stay, including discount and GST
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.PricingRequest true "Pricing request"
// @Success 200 {object} resdto.PricingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/calculate-price [post]
func (h *PricingHandler) CalculatePrice(c *gin.Context) {
	var req reqdto.PricingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	checkIn, checkOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	input := queries.QuoteInput{
		RoomTypeID:   req.RoomTypeID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		NumRooms:     req.GetNumRooms(),
		DiscountCode: req.DiscountCode,
	}

	quote, err := h.pricingQueries.Quote(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out date must be after check-in date",
			})
		case errors.Is(err, errs.ErrInvalidRoomCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Number of rooms must be at least 1",
			})
		case errors.Is(err, errs.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Check room availability
// @Description Check whether the requested number of rooms is available for every night of the stay
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.AvailabilityRequest true "Availability request"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/check-availability [post]
func (h *PricingHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.AvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	checkIn, checkOut, err := parseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	input := queries.AvailabilityInput{
		RoomTypeID: req.RoomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		NumRooms:   req.GetNumRooms(),
	}

	availability, err := h.pricingQueries.Availability(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out date must be after check-in date",
			})
		case errors.Is(err, errs.ErrInvalidRoomCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Number of rooms must be at least 1",
			})
		case errors.Is(err, errs.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailability(availability))
}
