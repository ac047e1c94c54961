package queries

import (
	"context"
	"time"

	"hotel-back-office/internal/infra"
	"hotel-back-office/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errs.New("room not found")

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomListItem, error)
	// CheckAvailability reports whether the room can take a [checkIn, checkOut)
	// stay: static status must be available and no active booking may overlap.
	CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time, filters RoomSearchFilters) ([]*RoomListItem, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindAll(ctx context.Context) ([]*RoomListItem, error)
	// HasActiveConflict reports whether any pending/confirmed/checked_in
	// booking on the room overlaps the half-open interval.
	HasActiveConflict(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
	// FindAvailable returns rooms with status available, matching the filters,
	// minus the conflict set for the interval.
	FindAvailable(ctx context.Context, checkIn, checkOut time.Time, filters RoomSearchFilters) ([]*RoomListItem, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomListItem, error) {
	return q.readStore.FindAll(ctx)
}

func (q *roomQueriesImpl) CheckAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	view, err := q.readStore.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrRoomNotFound
		}
		return false, err
	}

	if view.Status != "available" {
		return false, nil
	}

	conflict, err := q.readStore.HasActiveConflict(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}

func (q *roomQueriesImpl) ListAvailable(ctx context.Context, checkIn, checkOut time.Time, filters RoomSearchFilters) ([]*RoomListItem, error) {
	return q.readStore.FindAvailable(ctx, checkIn, checkOut, filters)
}
