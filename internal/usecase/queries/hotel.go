package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"goexplorer/internal/domain/occupancy"
	"goexplorer/internal/infra"
	"goexplorer/internal/pkg/errs"
	"goexplorer/internal/usecase/shared"
)

type HotelQueries interface {
	List(ctx context.Context, filter shared.HotelFilter) ([]*shared.HotelSnapshot, error)
	Detail(ctx context.Context, id uuid.UUID) (*HotelDetail, error)
	Occupancy(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (*occupancy.Summary, error)
}

type HotelDetail struct {
	Hotel     *shared.HotelSnapshot
	RoomTypes []*shared.RoomTypeSnapshot
}

type hotelQueriesImpl struct {
	hotels shared.HotelReadStore
	rates  shared.RateReadStore
}

func NewHotelQueries(hotels shared.HotelReadStore, rates shared.RateReadStore) HotelQueries {
	return &hotelQueriesImpl{
		hotels: hotels,
		rates:  rates,
	}
}

func (q *hotelQueriesImpl) List(ctx context.Context, filter shared.HotelFilter) ([]*shared.HotelSnapshot, error) {
	hotels, err := q.hotels.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list hotels")
	}
	return hotels, nil
}

func (q *hotelQueriesImpl) Detail(ctx context.Context, id uuid.UUID) (*HotelDetail, error) {
	hotelSnap, err := q.findHotel(ctx, id)
	if err != nil {
		return nil, err
	}

	roomTypes, err := q.hotels.RoomTypesByHotel(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load room types")
	}

	return &HotelDetail{
		Hotel:     hotelSnap,
		RoomTypes: roomTypes,
	}, nil
}

// Occupancy aggregates booked-vs-total room-nights over the inclusive window
// [start, end]. The rate store works on half-open ranges, so the fetch runs
// to end + one day.
func (q *hotelQueriesImpl) Occupancy(ctx context.Context, hotelID uuid.UUID, start, end time.Time) (*occupancy.Summary, error) {
	if start.After(end) {
		return nil, errs.ErrInvalidDateRange
	}

	if _, err := q.findHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	roomTypes, err := q.hotels.RoomTypesByHotel(ctx, hotelID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load room types")
	}

	usage := make([]occupancy.RoomTypeUsage, 0, len(roomTypes))
	for _, rt := range roomTypes {
		days, err := q.rates.DaysForRange(ctx, rt.ID, start, end.AddDate(0, 0, 1))
		if err != nil {
			return nil, errs.Wrap(err, "failed to load rate calendar")
		}
		usage = append(usage, occupancy.RoomTypeUsage{
			RoomTypeID: rt.ID,
			Name:       rt.Name,
			TotalRooms: rt.TotalRooms,
			Calendar:   shared.ToCalendar(days),
		})
	}

	return occupancy.Summarize(hotelID, usage, start, end)
}

func (q *hotelQueriesImpl) findHotel(ctx context.Context, id uuid.UUID) (*shared.HotelSnapshot, error) {
	snap, err := q.hotels.ByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrHotelNotFound
		}
		return nil, errs.Wrap(err, "failed to find hotel")
	}
	return snap, nil
}
