package queries

import (
	"context"

	"hotel-back-office/internal/infra"
	"hotel-back-office/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("service order not found")

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*OrderView, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*OrderView, error) {
	return q.readStore.FindByBookingID(ctx, bookingID)
}
