package repository

import (
	"context"

	"hotel-back-office/internal/domain/order"
	"hotel-back-office/internal/infra"
	"hotel-back-office/internal/infra/db"
	"hotel-back-office/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.ServiceOrder) (uuid.UUID, error) {
	const orderQuery = `
		INSERT INTO service_orders (id, booking_id, status, requested_at, total_cents)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, orderQuery,
		o.ID(),
		o.BookingID(),
		o.Status().String(),
		o.RequestedAt(),
		o.TotalCents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapDBErr("failed to create service order", err)
	}

	const itemQuery = `
		INSERT INTO service_order_items (order_id, seq, service_id, service_name, quantity, unit_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for seq, item := range o.Items() {
		_, err := tx.Exec(ctx, itemQuery,
			id, seq, item.ServiceID, item.ServiceName, item.Quantity, item.UnitPriceCents,
		)
		if err != nil {
			return uuid.Nil, wrapDBErr("failed to create service order item", err)
		}
	}

	return id, nil
}

// Update persists status changes only; items are immutable once ordered.
func (r *OrderRepository) Update(ctx context.Context, tx db.DBTX, o *order.ServiceOrder) error {
	const query = `
		UPDATE service_orders SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, o.ID(), o.Status().String())
	if err != nil {
		return wrapDBErr("failed to update service order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service order not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *OrderRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*order.ServiceOrder, error) {
	const query = `
		SELECT id, booking_id, status, requested_at, total_cents, created_at, updated_at
		FROM service_orders
		WHERE id = $1
		FOR UPDATE`

	var (
		orderID     uuid.UUID
		bookingID   uuid.UUID
		status      string
		requestedAt pgtype.Timestamptz
		totalCents  int64
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx, query, id).Scan(
		&orderID, &bookingID, &status, &requestedAt, &totalCents, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, wrapDBErr("failed to find service order for update", err)
	}

	items, err := r.loadItems(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	st, err := order.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid order status in storage", err)
	}

	return order.ReconstructServiceOrder(
		orderID, bookingID, st,
		pgconv.TimeFromPgtype(requestedAt),
		items, totalCents,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *OrderRepository) loadItems(ctx context.Context, tx db.DBTX, orderID uuid.UUID) ([]order.Item, error) {
	const query = `
		SELECT service_id, service_name, quantity, unit_price_cents
		FROM service_order_items
		WHERE order_id = $1
		ORDER BY seq`

	rows, err := tx.Query(ctx, query, orderID)
	if err != nil {
		return nil, wrapDBErr("failed to load service order items", err)
	}
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var item order.Item
		if err := rows.Scan(&item.ServiceID, &item.ServiceName, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, wrapDBErr("failed to scan service order item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr("failed to iterate service order items", err)
	}

	return items, nil
}
