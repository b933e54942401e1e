package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "goexplorer/internal/handler/dto/response"
	"goexplorer/internal/pkg/errs"
	"goexplorer/internal/usecase/queries"
	"goexplorer/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelHandler struct {
	hotelQueries queries.HotelQueries
}

func NewHotelHandler(hotelQueries queries.HotelQueries) *HotelHandler {
	return &HotelHandler{
		hotelQueries: hotelQueries,
	}
}

// @Summary List hotels
// @Description List active hotels, optionally filtered by city and star rating
// @Tags hotels
// @Produce json
// @Param city query string false "Filter by city (case-insensitive)"
// @Param star_rating query int false "Filter by star rating (1-5)"
// @Param sort_by query string false "Sort order: name, price_asc, price_desc"
// @Success 200 {array} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Router /hotels [get]
func (h *HotelHandler) ListHotels(c *gin.Context) {
	filter := shared.HotelFilter{
		City:   c.Query("city"),
		SortBy: c.Query("sort_by"),
	}

	if raw := c.Query("star_rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil || rating < 1 || rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "star_rating must be an integer between 1 and 5",
			})
			return
		}
		filter.StarRating = rating
	}

	hotels, err := h.hotelQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]resdto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		responses = append(responses, resdto.FromHotelSnapshot(hotel))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get hotel detail
// @Description Get a hotel with its room types
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [get]
func (h *HotelHandler) GetHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID",
		})
		return
	}

	detail, err := h.hotelQueries.Detail(c.Request.Context(), hotelID)
	if err != nil {
		if errors.Is(err, errs.ErrHotelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelDetail(detail))
}

// @Summary Hotel occupancy report
// @Description Per-date and aggregate occupancy over an inclusive date window
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Param start_date query string true "Window start (YYYY-MM-DD)"
// @Param end_date query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id}/occupancy [get]
func (h *HotelHandler) GetOccupancy(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID",
		})
		return
	}

	startRaw := c.Query("start_date")
	endRaw := c.Query("end_date")
	if startRaw == "" || endRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start_date and end_date are required",
		})
		return
	}

	start, end, err := parseStayDates(startRaw, endRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	summary, err := h.hotelQueries.Occupancy(c.Request.Context(), hotelID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "end_date must not be before start_date",
			})
		case errors.Is(err, errs.ErrHotelNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Hotel not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOccupancySummary(summary))
}
