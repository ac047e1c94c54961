//go:build unit || e2e

package builder

import (
	"time"

	"hotel-back-office/internal/domain/order"
	reqdto "hotel-back-office/internal/handler/dto/request"
	"hotel-back-office/internal/usecase/queries"
	"hotel-back-office/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	BookingID   uuid.UUID
	ServiceID   uuid.UUID
	ServiceName string
	PriceCents  int64
	MaxQuantity int
	IsActive    bool
	Quantity    int
	RequestedAt time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		BookingID:   uuid.New(),
		ServiceID:   uuid.New(),
		ServiceName: "Room Service Breakfast",
		PriceCents:  45_000,
		MaxQuantity: 10,
		IsActive:    true,
		Quantity:    2,
		RequestedAt: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

// Build methods
func (o *OrderBuilder) BuildDomain() (*order.ServiceOrder, error) {
	return order.NewServiceOrder(
		o.BookingID,
		[]order.ItemRequest{{ServiceID: o.ServiceID, Quantity: o.Quantity}},
		o.BuildCatalog(),
		o.RequestedAt,
	)
}

func (o *OrderBuilder) BuildCatalog() map[uuid.UUID]order.ServiceSpec {
	return map[uuid.UUID]order.ServiceSpec{
		o.ServiceID: {
			ID:          o.ServiceID,
			Name:        o.ServiceName,
			PriceCents:  o.PriceCents,
			MaxQuantity: o.MaxQuantity,
			IsActive:    o.IsActive,
		},
	}
}

func (o *OrderBuilder) BuildSnapshot() *shared.ServiceSnapshot {
	return &shared.ServiceSnapshot{
		ID:          o.ServiceID,
		Name:        o.ServiceName,
		PriceCents:  o.PriceCents,
		MaxQuantity: o.MaxQuantity,
		IsActive:    o.IsActive,
	}
}

func (o *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		Items: []reqdto.OrderItemRequest{
			{ServiceID: o.ServiceID, Quantity: o.Quantity},
		},
	}
}

func (o *OrderBuilder) BuildViewQuery() *queries.OrderView {
	return &queries.OrderView{
		ID:          uuid.New(),
		BookingID:   o.BookingID,
		Status:      "pending",
		RequestedAt: o.RequestedAt,
		Items: []queries.OrderItemView{
			{
				ServiceID:      o.ServiceID,
				ServiceName:    o.ServiceName,
				Quantity:       o.Quantity,
				UnitPriceCents: o.PriceCents,
			},
		},
		TotalCents: o.PriceCents * int64(o.Quantity),
		CreatedAt:  o.RequestedAt,
		UpdatedAt:  o.RequestedAt,
	}
}

// Fluent builder methods
func (o *OrderBuilder) WithBookingID(id uuid.UUID) *OrderBuilder {
	o.BookingID = id
	return o
}

func (o *OrderBuilder) WithQuantity(quantity int) *OrderBuilder {
	o.Quantity = quantity
	return o
}

func (o *OrderBuilder) WithMaxQuantity(max int) *OrderBuilder {
	o.MaxQuantity = max
	return o
}

func (o *OrderBuilder) WithPriceCents(cents int64) *OrderBuilder {
	o.PriceCents = cents
	return o
}

func (o *OrderBuilder) AsInactiveService() *OrderBuilder {
	o.IsActive = false
	return o
}
