package components

import (
	"slotbook/internal/handler"
	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewAppointmentHandler,
		api.NewServiceHandler,
		api.NewTimeOffHandler,
		api.NewBusinessHoursHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	appointmentHandler *api.AppointmentHandler,
	serviceHandler *api.ServiceHandler,
	timeOffHandler *api.TimeOffHandler,
	businessHoursHandler *api.BusinessHoursHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:          authHandler,
		Availability:  availabilityHandler,
		Appointment:   appointmentHandler,
		Service:       serviceHandler,
		TimeOff:       timeOffHandler,
		BusinessHours: businessHoursHandler,
	}
}
