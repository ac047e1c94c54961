package response

import (
	"time"

	"hotel-back-office/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	BookingID   uuid.UUID           `json:"booking_id"`
	Status      string              `json:"status"`
	RequestedAt time.Time           `json:"requested_at"`
	Items       []OrderItemResponse `json:"items"`
	TotalCents  int64               `json:"total_cents"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type OrderItemResponse struct {
	ServiceID      uuid.UUID `json:"service_id"`
	ServiceName    string    `json:"service_name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = OrderItemResponse{
			ServiceID:      item.ServiceID,
			ServiceName:    item.ServiceName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		}
	}
	return &OrderResponse{
		ID:          view.ID,
		BookingID:   view.BookingID,
		Status:      view.Status,
		RequestedAt: view.RequestedAt,
		Items:       items,
		TotalCents:  view.TotalCents,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}
