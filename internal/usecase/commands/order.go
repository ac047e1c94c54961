package commands

import (
	"context"
	"time"

	dombooking "hotel-back-office/internal/domain/booking"
	domorder "hotel-back-office/internal/domain/order"
	"hotel-back-office/internal/infra"
	"hotel-back-office/internal/pkg/clock"
	"hotel-back-office/internal/pkg/errs"
	"hotel-back-office/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errs.New("service order not found")
	ErrBookingNotOrderable = errs.New("booking cannot accept service orders")
	ErrServiceUnavailable = errs.New("service unavailable or quantity out of range")
	ErrOrderTransition    = errs.New("invalid order status transition")
)

type CreateOrderCommand struct {
	BookingID   uuid.UUID
	Items       []OrderItemCommand
	RequestedAt *time.Time
}

type OrderItemCommand struct {
	ServiceID uuid.UUID
	Quantity  int
}

type OrderCommands interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand, actorID uuid.UUID) (uuid.UUID, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, clock: clk}
}

// CreateOrder attaches a service purchase to an active stay and folds the
// order total into the booking's billed amount.
func (uc *orderCommandsImpl) CreateOrder(ctx context.Context, cmd CreateOrderCommand, actorID uuid.UUID) (uuid.UUID, error) {
	requestedAt := uc.clock.Now()
	if cmd.RequestedAt != nil {
		requestedAt = *cmd.RequestedAt
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), cmd.BookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		if b.Status() != dombooking.StatusConfirmed && b.Status() != dombooking.StatusCheckedIn {
			return ErrBookingNotOrderable
		}

		ids := make([]uuid.UUID, len(cmd.Items))
		requests := make([]domorder.ItemRequest, len(cmd.Items))
		for i, item := range cmd.Items {
			ids[i] = item.ServiceID
			requests[i] = domorder.ItemRequest{ServiceID: item.ServiceID, Quantity: item.Quantity}
		}

		snapshots, derr := tx.Reads().ServicesByIDs(ctx, ids)
		if derr != nil {
			return derr
		}
		catalog := make(map[uuid.UUID]domorder.ServiceSpec, len(snapshots))
		for _, s := range snapshots {
			catalog[s.ID] = domorder.ServiceSpec{
				ID:          s.ID,
				Name:        s.Name,
				PriceCents:  s.PriceCents,
				MaxQuantity: s.MaxQuantity,
				IsActive:    s.IsActive,
			}
		}

		ord, derr := domorder.NewServiceOrder(b.ID(), requests, catalog, requestedAt)
		if derr != nil {
			return errs.Mark(derr, ErrServiceUnavailable)
		}

		id, derr := tx.Orders().Create(ctx, tx.DB(), ord)
		if derr != nil {
			return derr
		}

		charge, derr := dombooking.NewMoney(ord.TotalCents())
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		if derr = b.ApplyServiceCharge(charge); derr != nil {
			return ErrBookingNotOrderable
		}
		if derr = tx.Bookings().Update(ctx, tx.DB(), b); derr != nil {
			return derr
		}

		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *orderCommandsImpl) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	to, err := domorder.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ord, derr := tx.Orders().FindByIDForUpdate(ctx, tx.DB(), orderID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return derr
		}

		if derr = ord.TransitionTo(to); derr != nil {
			return errs.Mark(derr, ErrOrderTransition)
		}
		return tx.Orders().Update(ctx, tx.DB(), ord)
	})
}
