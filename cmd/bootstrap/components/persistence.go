package components

import (
	"goexplorer/internal/infra/readstore"
	"goexplorer/internal/infra/writerepo"
	"goexplorer/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	writerepoModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(shared.HotelReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomTypeReadStore,
			fx.As(new(shared.RoomTypeReadStore)),
		),
		fx.Annotate(
			readstore.NewRateReadStore,
			fx.As(new(shared.RateReadStore)),
		),
		fx.Annotate(
			readstore.NewDiscountReadStore,
			fx.As(new(shared.DiscountReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(shared.BookingReadStore)),
		),
	),
)

var writerepoModule = fx.Module("persistence/writerepo",
	fx.Provide(
		fx.Annotate(
			writerepo.NewBookingRepository,
			fx.As(new(shared.BookingRepository)),
		),
	),
)
