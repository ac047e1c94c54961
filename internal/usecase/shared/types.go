package shared

import (
	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type ServiceSnapshot struct {
	ID          uuid.UUID
	Name        string
	PriceCents  int64
	MaxQuantity int
	IsActive    bool
}
