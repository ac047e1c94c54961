package shared

import (
	"context"

	"hotel-back-office/internal/domain/booking"
	"hotel-back-office/internal/domain/order"
	"hotel-back-office/internal/domain/room"
	"hotel-back-office/internal/domain/user"
	"hotel-back-office/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Orders() OrderRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*ServiceSnapshot, error)
}

type RoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, rm *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, rm *room.Room) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// FindByIDForUpdate locks the room row; concurrent booking writes for the
	// same room serialize on this lock.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*room.Room, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	// HasActiveOverlap re-checks the half-open interval invariant under the
	// room lock before inserting.
	HasActiveOverlap(ctx context.Context, tx db.DBTX, roomID uuid.UUID, stay booking.StayWindow) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.ServiceOrder) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, o *order.ServiceOrder) error
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*order.ServiceOrder, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
