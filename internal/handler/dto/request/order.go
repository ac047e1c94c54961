package request

import (
	"time"

	"hotel-back-office/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items       []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	RequestedAt *time.Time         `json:"requested_at,omitempty"`
}

func (r CreateOrderRequest) ToCommand(bookingID uuid.UUID) commands.CreateOrderCommand {
	items := make([]commands.OrderItemCommand, len(r.Items))
	for i, item := range r.Items {
		items[i] = commands.OrderItemCommand{ServiceID: item.ServiceID, Quantity: item.Quantity}
	}
	return commands.CreateOrderCommand{
		BookingID:   bookingID,
		Items:       items,
		RequestedAt: r.RequestedAt,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed in_progress completed cancelled"`
}
