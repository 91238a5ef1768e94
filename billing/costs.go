package billing

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeletedClientLabel replaces the client name on cost rows whose client no
// longer exists.
const DeletedClientLabel = "Cliente eliminado"

type CostRow struct {
	ID         primitive.ObjectID `json:"_id"`
	Cliente    string             `json:"cliente"`
	Fecha      time.Time          `json:"fecha"`
	TotalCosto float64            `json:"totalCosto"`
}

type CostReport struct {
	TotalCostos float64   `json:"totalCostos"`
	Remitos     []CostRow `json:"remitos"`
}

// ComputeCosts recomputes the cost of every remito matching f from the
// product's current costo, whatever tier the remito was billed at. A line
// whose product was deleted contributes 0 but never drops the remito from
// the report. Rows keep the order the source returned.
func ComputeCosts(ctx context.Context, src NoteSource, cat Catalog, f Filter) (*CostReport, error) {
	remitos, err := src.ListRemitos(ctx, f)
	if err != nil {
		return nil, err
	}

	report := &CostReport{Remitos: []CostRow{}}
	clientNames := map[string]string{}

	for _, r := range remitos {
		var noteCost float64
		for _, line := range r.Productos {
			product, err := cat.GetProduct(ctx, line.Producto.Hex())
			if err != nil {
				if IsNotFound(err) {
					continue
				}
				return nil, err
			}
			noteCost += line.Cantidad * product.Costo
		}

		name, ok := clientNames[r.Cliente.Hex()]
		if !ok {
			client, err := cat.GetClient(ctx, r.Cliente.Hex())
			switch {
			case err == nil:
				name = client.Nombre
			case IsNotFound(err):
				name = DeletedClientLabel
			default:
				return nil, err
			}
			clientNames[r.Cliente.Hex()] = name
		}

		report.Remitos = append(report.Remitos, CostRow{
			ID:         r.ID,
			Cliente:    name,
			Fecha:      r.Fecha,
			TotalCosto: noteCost,
		})
		report.TotalCostos += noteCost
	}

	return report, nil
}
