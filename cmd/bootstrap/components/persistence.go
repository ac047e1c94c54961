package components

import (
	"hotel-back-office/internal/infra/db"
	"hotel-back-office/internal/infra/readstore"
	"hotel-back-office/internal/infra/uow"
	"hotel-back-office/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Write side: repositories are reached through the unit of work only.
		uow.NewPostgresUoW,
		// Read side
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
