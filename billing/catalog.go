package billing

import (
	"context"

	"backend/models"
)

// Catalog resolves client and product references. Implementations return a
// *NotFoundError when the id does not resolve.
type Catalog interface {
	GetClient(ctx context.Context, id string) (*models.Client, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// NoteSource lists stored remitos matching a filter, in storage order.
type NoteSource interface {
	ListRemitos(ctx context.Context, f Filter) ([]models.Remito, error)
}
