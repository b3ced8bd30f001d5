package components

import (
	"time"

	"slotbook/internal/domain/appointment"
	"slotbook/internal/domain/schedule"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBusinessLocation,
	NewBookingPolicy,
	schedule.NewCalendar,
	schedule.NewResolver,
	appointment.NewFactory,
)

func NewBusinessLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Booking.TimeZone)
}

func NewBookingPolicy(cfg config.Config) schedule.BookingPolicy {
	return schedule.BookingPolicy{
		AllowSameDayBooking:    cfg.Booking.AllowSameDayBooking,
		MinAdvanceHours:        cfg.Booking.MinAdvanceHours,
		MaxAdvanceDays:         cfg.Booking.MaxAdvanceDays,
		SlotGranularityMinutes: cfg.Booking.SlotGranularityMinutes,
	}
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAppointmentCommands,
		commands.NewTimeOffCommands,
		commands.NewBusinessHoursCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAvailabilityQueries,
		queries.NewAppointmentQueries,
		queries.NewServiceQueries,
		queries.NewTimeOffQueries,
		queries.NewBusinessHoursQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
