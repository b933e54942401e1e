package api

import (
	"errors"
	"net/http"

	reqdto "goexplorer/internal/handler/dto/request"
	resdto "goexplorer/internal/handler/dto/response"
	"goexplorer/internal/pkg/errs"
	"goexplorer/internal/usecase/commands"
	"goexplorer/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Price the stay and confirm a booking, decrementing room inventory
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
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

	input := commands.CreateBookingInput{
		RoomTypeID:   req.RoomTypeID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		NumRooms:     req.GetNumRooms(),
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		DiscountCode: req.DiscountCode,
	}

	snap, err := h.bookingCommands.Create(c.Request.Context(), input)
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
		case errors.Is(err, errs.ErrRoomsNotAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested rooms are not available for the selected dates",
			})
		case errors.Is(err, errs.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingSnapshot(snap))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	snap, err := h.bookingQueries.ByID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, errs.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snap))
}
