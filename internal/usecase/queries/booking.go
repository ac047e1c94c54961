package queries

import (
	"context"

	"hotel-back-office/internal/domain/user"
	"hotel-back-office/internal/infra"
	"hotel-back-office/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingQueries interface {
	// GetByID enforces ownership: customers may only read their own bookings.
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !actorRole.IsStaff() && view.CustomerID != actorID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*BookingListItem, error) {
	return q.readStore.FindByCustomerID(ctx, customerID)
}

func (q *bookingQueriesImpl) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*BookingListItem, error) {
	return q.readStore.FindByRoomID(ctx, roomID)
}
