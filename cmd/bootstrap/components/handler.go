package components

import (
	"goexplorer/internal/handler"
	"goexplorer/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHotelHandler,
		api.NewPricingHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
