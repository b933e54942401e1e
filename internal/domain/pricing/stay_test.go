//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"goexplorer/internal/domain/pricing"
	"goexplorer/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStay(t *testing.T) {
	t.Run("valid stay", func(t *testing.T) {
		stay, err := pricing.NewStay(date(2026, 7, 10), date(2026, 7, 13), 2)
		require.NoError(t, err)

		assert.Equal(t, 3, stay.Nights())
		assert.Equal(t, 2, stay.NumRooms())
		assert.Equal(t, date(2026, 7, 10), stay.CheckIn())
		assert.Equal(t, date(2026, 7, 13), stay.CheckOut())
	})

	t.Run("time-of-day is truncated before comparison", func(t *testing.T) {
		checkIn := time.Date(2026, 7, 10, 23, 30, 0, 0, time.UTC)
		checkOut := time.Date(2026, 7, 11, 0, 15, 0, 0, time.UTC)

		stay, err := pricing.NewStay(checkIn, checkOut, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, stay.Nights())
	})

	t.Run("same-day stay is rejected", func(t *testing.T) {
		_, err := pricing.NewStay(date(2026, 7, 10), date(2026, 7, 10), 1)
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})

	t.Run("checkout before checkin is rejected", func(t *testing.T) {
		_, err := pricing.NewStay(date(2026, 7, 13), date(2026, 7, 10), 1)
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})

	t.Run("zero rooms is rejected", func(t *testing.T) {
		_, err := pricing.NewStay(date(2026, 7, 10), date(2026, 7, 13), 0)
		assert.ErrorIs(t, err, errs.ErrInvalidRoomCount)
	})

	t.Run("negative rooms is rejected", func(t *testing.T) {
		_, err := pricing.NewStay(date(2026, 7, 10), date(2026, 7, 13), -1)
		assert.ErrorIs(t, err, errs.ErrInvalidRoomCount)
	})
}

func TestStayDates(t *testing.T) {
	stay, err := pricing.NewStay(date(2026, 7, 10), date(2026, 7, 13), 1)
	require.NoError(t, err)

	dates := stay.Dates()
	require.Len(t, dates, 3)
	assert.Equal(t, date(2026, 7, 10), dates[0])
	assert.Equal(t, date(2026, 7, 11), dates[1])
	assert.Equal(t, date(2026, 7, 12), dates[2])
}
