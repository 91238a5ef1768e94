package billing

import (
	"context"
	"time"

	"backend/models"
)

// Item is one (product, quantity) pair requested for a new remito.
type Item struct {
	Producto string
	Cantidad float64
}

// Build validates the request, snapshots the unit price of every line from
// the product field selected by tier and returns the remito with per-line
// subtotals and the exact sum as total. It performs no writes; persisting
// the result is the caller's job. An unresolvable client or product makes
// the whole build fail with a ValidationError.
func Build(ctx context.Context, cat Catalog, clienteID string, tier PriceTier, items []Item) (*models.Remito, error) {
	if len(items) == 0 {
		return nil, Validationf("el remito debe tener al menos un producto")
	}
	for _, it := range items {
		if it.Cantidad <= 0 {
			return nil, Validationf("cantidad debe ser mayor a 0 para el producto %s", it.Producto)
		}
	}

	client, err := cat.GetClient(ctx, clienteID)
	if err != nil {
		if IsNotFound(err) {
			return nil, Validationf("cliente %s no existe", clienteID)
		}
		return nil, err
	}

	remito := &models.Remito{
		Cliente:    client.ID,
		TipoPrecio: string(tier),
		Fecha:      time.Now(),
	}

	var total float64
	for _, it := range items {
		product, err := cat.GetProduct(ctx, it.Producto)
		if err != nil {
			if IsNotFound(err) {
				return nil, Validationf("producto %s no existe", it.Producto)
			}
			return nil, err
		}

		unitPrice := tier.UnitPriceFor(product)
		subtotal := it.Cantidad * unitPrice
		remito.Productos = append(remito.Productos, models.RemitoProducto{
			Producto:       product.ID,
			Cantidad:       it.Cantidad,
			PrecioUnitario: unitPrice,
			Subtotal:       subtotal,
		})
		total += subtotal
	}

	// Sum first, format only for display: the stored total is the exact sum
	// of the line subtotals.
	remito.Total = total
	return remito, nil
}
