package queries

import (
	"context"

	"github.com/google/uuid"

	"goexplorer/internal/infra"
	"goexplorer/internal/pkg/errs"
	"goexplorer/internal/usecase/shared"
)

type BookingQueries interface {
	ByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error)
}

type bookingQueriesImpl struct {
	bookings shared.BookingReadStore
}

func NewBookingQueries(bookings shared.BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) ByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := q.bookings.ByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return snap, nil
}
