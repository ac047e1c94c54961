package readstore

import (
	"context"

	"hotel-back-office/internal/infra"
	"hotel-back-office/internal/infra/db"
	"hotel-back-office/internal/usecase/shared"

	"github.com/google/uuid"
)

// ServiceReadStore looks up the service catalog for order validation.
type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(db db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: db}
}

func (r *ServiceReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*shared.ServiceSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const query = `
		SELECT id, name, price_cents, max_quantity, is_active
		FROM services
		WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find services by IDs", err)
	}
	defer rows.Close()

	var result []*shared.ServiceSnapshot
	for rows.Next() {
		var snap shared.ServiceSnapshot
		if err := rows.Scan(&snap.ID, &snap.Name, &snap.PriceCents, &snap.MaxQuantity, &snap.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}

	return result, nil
}
