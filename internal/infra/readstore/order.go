package readstore

import (
	"context"

	"hotel-back-office/internal/infra"
	"hotel-back-office/internal/infra/db"
	"hotel-back-office/internal/pkg/pgconv"
	"hotel-back-office/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	const query = `
		SELECT id, booking_id, status, requested_at, total_cents, created_at, updated_at
		FROM service_orders
		WHERE id = $1`

	var (
		view        queries.OrderView
		requestedAt pgtype.Timestamptz
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.BookingID, &view.Status, &requestedAt, &view.TotalCents, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service order by ID", err)
	}

	view.RequestedAt = pgconv.TimeFromPgtype(requestedAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	items, err := r.loadItems(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	view.Items = items

	return &view, nil
}

func (r *OrderReadStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*queries.OrderView, error) {
	const query = `
		SELECT id, booking_id, status, requested_at, total_cents, created_at, updated_at
		FROM service_orders
		WHERE booking_id = $1
		ORDER BY requested_at`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service orders", err)
	}
	defer rows.Close()

	var result []*queries.OrderView
	for rows.Next() {
		var (
			view        queries.OrderView
			requestedAt pgtype.Timestamptz
			createdAt   pgtype.Timestamptz
			updatedAt   pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.BookingID, &view.Status, &requestedAt, &view.TotalCents, &createdAt, &updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service order row", err)
		}
		view.RequestedAt = pgconv.TimeFromPgtype(requestedAt)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service order rows", err)
	}

	for _, view := range result {
		items, err := r.loadItems(ctx, view.ID)
		if err != nil {
			return nil, err
		}
		view.Items = items
	}

	return result, nil
}

func (r *OrderReadStore) loadItems(ctx context.Context, orderID uuid.UUID) ([]queries.OrderItemView, error) {
	const query = `
		SELECT service_id, service_name, quantity, unit_price_cents
		FROM service_order_items
		WHERE order_id = $1
		ORDER BY seq`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load service order items", err)
	}
	defer rows.Close()

	var items []queries.OrderItemView
	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(&item.ServiceID, &item.ServiceName, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service order item row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service order item rows", err)
	}

	return items, nil
}
