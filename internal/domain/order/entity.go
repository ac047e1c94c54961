package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrNoItems            = errors.New("order must contain at least one item")
	ErrServiceInactive    = errors.New("service is not active")
	ErrQuantityOutOfRange = errors.New("item quantity out of range")
)

// ServiceSpec is the catalog slice needed to validate and price one item.
type ServiceSpec struct {
	ID          uuid.UUID
	Name        string
	PriceCents  int64
	MaxQuantity int
	IsActive    bool
}

type Item struct {
	ServiceID      uuid.UUID
	ServiceName    string
	Quantity       int
	UnitPriceCents int64
}

func (i Item) TotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

type ItemRequest struct {
	ServiceID uuid.UUID
	Quantity  int
}

type ServiceOrder struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	status      Status
	requestedAt time.Time
	items       []Item
	totalCents  int64
	createdAt   time.Time
	updatedAt   time.Time
}

// NewServiceOrder validates each requested item against its catalog entry and
// totals the order. The booking-status precondition is the caller's concern.
func NewServiceOrder(bookingID uuid.UUID, requests []ItemRequest, catalog map[uuid.UUID]ServiceSpec, requestedAt time.Time) (*ServiceOrder, error) {
	if len(requests) == 0 {
		return nil, ErrNoItems
	}

	items := make([]Item, 0, len(requests))
	var total int64
	for _, req := range requests {
		spec, ok := catalog[req.ServiceID]
		if !ok || !spec.IsActive {
			return nil, ErrServiceInactive
		}
		if req.Quantity < 1 || req.Quantity > spec.MaxQuantity {
			return nil, ErrQuantityOutOfRange
		}
		item := Item{
			ServiceID:      spec.ID,
			ServiceName:    spec.Name,
			Quantity:       req.Quantity,
			UnitPriceCents: spec.PriceCents,
		}
		items = append(items, item)
		total += item.TotalCents()
	}

	return &ServiceOrder{
		id:          uuid.New(),
		bookingID:   bookingID,
		status:      StatusPending,
		requestedAt: requestedAt,
		items:       items,
		totalCents:  total,
	}, nil
}

func ReconstructServiceOrder(
	id, bookingID uuid.UUID,
	status Status,
	requestedAt time.Time,
	items []Item,
	totalCents int64,
	createdAt, updatedAt time.Time,
) *ServiceOrder {
	return &ServiceOrder{
		id:          id,
		bookingID:   bookingID,
		status:      status,
		requestedAt: requestedAt,
		items:       items,
		totalCents:  totalCents,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (o *ServiceOrder) ID() uuid.UUID          { return o.id }
func (o *ServiceOrder) BookingID() uuid.UUID   { return o.bookingID }
func (o *ServiceOrder) Status() Status         { return o.status }
func (o *ServiceOrder) RequestedAt() time.Time { return o.requestedAt }
func (o *ServiceOrder) Items() []Item          { return o.items }
func (o *ServiceOrder) TotalCents() int64      { return o.totalCents }
func (o *ServiceOrder) CreatedAt() time.Time   { return o.createdAt }
func (o *ServiceOrder) UpdatedAt() time.Time   { return o.updatedAt }

func (o *ServiceOrder) TransitionTo(to Status) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !o.status.CanTransitionTo(to) {
		return ErrInvalidTransition
	}
	o.status = to
	return nil
}
