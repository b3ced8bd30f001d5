package components

import (
	"slotbook/internal/infra/db"
	"slotbook/internal/infra/repository"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Schedule read side feeds the availability resolver
		fx.Annotate(
			repository.NewScheduleRepository,
			fx.As(new(queries.ScheduleReadStore)),
		),
		// Service catalog
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(new(commands.ServiceRepository)),
		),
		fx.Annotate(
			repository.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		// Appointment
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
		),
		fx.Annotate(
			repository.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		// Time-off
		fx.Annotate(
			repository.NewTimeOffRepository,
			fx.As(new(commands.TimeOffRepository)),
		),
		fx.Annotate(
			repository.NewTimeOffReadStore,
			fx.As(new(queries.TimeOffReadStore)),
		),
		// Business hours
		fx.Annotate(
			repository.NewBusinessHoursRepository,
			fx.As(new(commands.BusinessHoursRepository)),
		),
		// User serves both the auth write path and read queries
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
