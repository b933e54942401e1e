//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"goexplorer/internal/infra"
	"goexplorer/internal/pkg/clock"
	"goexplorer/internal/pkg/config"
	"goexplorer/internal/pkg/errs"
	"goexplorer/internal/usecase/queries"
	"goexplorer/internal/usecase/shared"
	"goexplorer/tests/common/builder"
	sharedmock "goexplorer/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRoomTypes *sharedmock.MockRoomTypeReadStore
	mockRates     *sharedmock.MockRateReadStore
	mockDiscounts *sharedmock.MockDiscountReadStore
	clock         *clock.MockClock
	queries       queries.PricingQueries
}

func (s *PricingQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomTypes = sharedmock.NewMockRoomTypeReadStore(s.mockCtrl)
	s.mockRates = sharedmock.NewMockRateReadStore(s.mockCtrl)
	s.mockDiscounts = sharedmock.NewMockDiscountReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC))
	s.queries = queries.NewPricingQueries(s.mockRoomTypes, s.mockRates, s.mockDiscounts, s.clock, config.NewTestConfig().Pricing)
}

func (s *PricingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingQueriesSuite(t *testing.T) {
	suite.Run(t, new(PricingQueriesTestSuite))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *PricingQueriesTestSuite) TestQuote() {
	s.Run("success without discount code", func() {
		rtb := builder.NewRoomTypeBuilder()
		snap := rtb.BuildSnapshot()

		s.mockRoomTypes.EXPECT().ByID(gomock.Any(), rtb.ID).Return(snap, nil)
		s.mockRates.EXPECT().DaysForRange(gomock.Any(), rtb.ID, date(2026, 7, 10), date(2026, 7, 13)).
			Return(nil, nil)

		quote, err := s.queries.Quote(context.Background(), queries.QuoteInput{
			RoomTypeID: rtb.ID,
			CheckIn:    date(2026, 7, 10),
			CheckOut:   date(2026, 7, 13),
			NumRooms:   1,
		})
		s.Require().NoError(err)
		s.Equal("45000.00", quote.Subtotal.StringFixed(2))
		s.Equal("53100.00", quote.TotalAmount.StringFixed(2))
		s.Equal("INR", quote.Currency)
	})

	s.Run("success with resolved discount code", func() {
		rtb := builder.NewRoomTypeBuilder()
		snap := rtb.BuildSnapshot()
		discount := builder.NewDiscountBuilder().With(func(b *builder.DiscountBuilder) {
			b.HotelID = rtb.Hotel.ID
		})

		s.mockRoomTypes.EXPECT().ByID(gomock.Any(), rtb.ID).Return(snap, nil)
		s.mockRates.EXPECT().DaysForRange(gomock.Any(), rtb.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
		s.mockDiscounts.EXPECT().ByCode(gomock.Any(), rtb.Hotel.ID, "SAVE20").
			Return(discount.BuildSnapshot(), nil)

		code := "SAVE20"
		quote, err := s.queries.Quote(context.Background(), queries.QuoteInput{
			RoomTypeID:   rtb.ID,
			CheckIn:      date(2026, 7, 10),
			CheckOut:     date(2026, 7, 13),
			NumRooms:     1,
			DiscountCode: &code,
		})
		s.Require().NoError(err)
		s.Equal("9000.00", quote.DiscountAmount.StringFixed(2))
		s.Equal("SAVE20", quote.DiscountDetails.Code)
		s.Empty(quote.DiscountDetails.Error)
	})

	s.Run("unknown discount code degrades to soft failure", func() {
		rtb := builder.NewRoomTypeBuilder()
		snap := rtb.BuildSnapshot()

		s.mockRoomTypes.EXPECT().ByID(gomock.Any(), rtb.ID).Return(snap, nil)
		s.mockRates.EXPECT().DaysForRange(gomock.Any(), rtb.ID, gomock.Any(), gomock.Any()).Return(nil, nil)
		s.mockDiscounts.EXPECT().ByCode(gomock.Any(), rtb.Hotel.ID, "NOPE").
			Return(nil, infra.WrapRepoErr("discount not found", nil, infra.KindNotFound))

		code := "NOPE"
		quote, err := s.queries.Quote(context.Background(), queries.QuoteInput{
			RoomTypeID:   rtb.ID,
			CheckIn:      date(2026, 7, 10),
			CheckOut:     date(2026, 7, 13),
			NumRooms:     1,
			DiscountCode: &code,
		})
		s.Require().NoError(err)
		s.Equal("0.00", quote.DiscountAmount.StringFixed(2))
		s.Equal("NOPE", quote.DiscountDetails.Code)
		s.Equal("invalid or expired discount code", quote.DiscountDetails.Error)
	})

	s.Run("blank discount code is ignored", func() {
		rtb := builder.NewRoomTypeBuilder()
		snap := rtb.BuildSnapshot()

		s.mockRoomTypes.EXPECT().ByID(gomock.Any(), rtb.ID).Return(snap, nil)
		s.mockRates.EXPECT().DaysForRange(gomock.Any(), rtb.ID, gomock.Any(), gomock.Any()).Return(nil, nil)

		code := "   "
		quote, err := s.queries.Quote(context.Background(), queries.QuoteInput{
			RoomTypeID:   rtb.ID,
			CheckIn:      date(2026, 7, 10),
			CheckOut:     date(2026, 7, 13),
			NumRooms:     1,
			DiscountCode: &code,
		})
		s.Require().NoError(err)
		s.Empty(quote.DiscountDetails.Code)
		s.Empty(quote.DiscountDetails.Error)
	})

	s.Run("per-date overrides flow into the subtotal", func() {
		rtb := builder.NewRoomTypeBuilder()
		snap := rtb.BuildSnapshot()

		s.mockRoomTypes.EXPECT().ByID(gomock.Any(), rtb.ID).Return(snap, nil)
		s.mockRates.EXPECT().DaysForRange(gomock.Any(), rtb.ID, gomock.Any(), gomock.Any()).
			Return([]shared.RateDay{
				{Date: date(2026, 7, 11), Price: decimal.RequireFromString("12000.00"), AvailableRooms: 5},
			}, nil)

		quote, err := s.queries.Quote(context.Background(), queries.QuoteInput{
			RoomTypeID: rtb.ID,
			CheckIn:    date(2026, 7, 10),
			CheckOut:   date(2026, 7, 13),
			NumRooms:   1,
		})
		s.Require().NoError(err)
		s.Equal("42000.00", quote.Subtotal.StringFixed(2))
	})

	s.Run("configured defaults fill a blank hotel tax rate and currency", func() {
		rtb := builder.NewRoomTypeBuilder().With(func(b *builder.RoomTypeBuilder) {
			b.Hotel.GSTPercentage = decimal.Zero
			b.Hotel.Currency = ""
		})
		snap := rtb.BuildSnapshot()

		q := queries.NewPricingQueries(s.mockRoomTypes, s.mockRates, s.mockDiscounts, s.clock, config.PricingConfig{
			DefaultGSTPercent: decimal.RequireFromString("12.00"),
			DefaultCurrency:   "USD",
		})

		s.mockRoomTypes.EXPECT().ByID(gomock.Any(), rtb.ID).Return(snap, nil)
		s.mockRates.EXPECT().DaysForRange(gomock.Any(), rtb.ID, gomock.Any(), gomock.Any()).Return(nil, nil)

		quote, err := q.Quote(context.Background(), queries.QuoteInput{
			RoomTypeID: rtb.ID,
			CheckIn:    date(2026, 7, 10),
			CheckOut:   date(2026, 7, 13),
			NumRooms:   1,
		})
		s.Require().NoError(err)
		s.Equal("5400.00", quote.GSTAmount.StringFixed(2))
		s.Equal("50400.00", quote.TotalAmount.StringFixed(2))
		s.Equal("USD", quote.Currency)
	})

	s.Run("room type not found", func() {
		rtb := builder.NewRoomTypeBuilder()

		s.mockRoomTypes.EXPECT().ByID(gomock.Any(), rtb.ID).
			Return(nil, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound))

		_, err := s.queries.Quote(context.Background(), queries.QuoteInput{
			RoomTypeID: rtb.ID,
			CheckIn:    date(2026, 7, 10),
			CheckOut:   date(2026, 7, 13),
			NumRooms:   1,
		})
		s.ErrorIs(err, errs.ErrRoomTypeNotFound)
	})

	s.Run("invalid stay fails before any store call", func() {
		_, err := s.queries.Quote(context.Background(), queries.QuoteInput{
			RoomTypeID: builder.NewRoomTypeBuilder().ID,
			CheckIn:    date(2026, 7, 13),
			CheckOut:   date(2026, 7, 10),
			NumRooms:   1,
		})
		s.ErrorIs(err, errs.ErrInvalidDateRange)
	})
}

func (s *PricingQueriesTestSuite) TestAvailability() {
	s.Run("constrained night makes the stay unavailable", func() {
		rtb := builder.NewRoomTypeBuilder().With(func(b *builder.RoomTypeBuilder) {
			b.TotalRooms = 3
		})
		snap := rtb.BuildSnapshot()

		s.mockRoomTypes.EXPECT().ByID(gomock.Any(), rtb.ID).Return(snap, nil)
		s.mockRates.EXPECT().DaysForRange(gomock.Any(), rtb.ID, gomock.Any(), gomock.Any()).
			Return([]shared.RateDay{
				{Date: date(2026, 7, 11), Price: decimal.RequireFromString("15000.00"), AvailableRooms: 1},
			}, nil)

		avail, err := s.queries.Availability(context.Background(), queries.AvailabilityInput{
			RoomTypeID: rtb.ID,
			CheckIn:    date(2026, 7, 10),
			CheckOut:   date(2026, 7, 13),
			NumRooms:   2,
		})
		s.Require().NoError(err)
		s.False(avail.IsAvailable)
		s.Equal(1, avail.MinAvailableRooms)
		s.Equal(2, avail.RequestedRooms)
	})

	s.Run("full inventory when no overrides", func() {
		rtb := builder.NewRoomTypeBuilder()
		snap := rtb.BuildSnapshot()

		s.mockRoomTypes.EXPECT().ByID(gomock.Any(), rtb.ID).Return(snap, nil)
		s.mockRates.EXPECT().DaysForRange(gomock.Any(), rtb.ID, gomock.Any(), gomock.Any()).Return(nil, nil)

		avail, err := s.queries.Availability(context.Background(), queries.AvailabilityInput{
			RoomTypeID: rtb.ID,
			CheckIn:    date(2026, 7, 10),
			CheckOut:   date(2026, 7, 13),
			NumRooms:   2,
		})
		s.Require().NoError(err)
		s.True(avail.IsAvailable)
		s.Equal(10, avail.MinAvailableRooms)
	})
}
