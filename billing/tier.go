package billing

import "backend/models"

// PriceTier selects which product price field supplies the unit price for a
// remito's lines.
type PriceTier string

const (
	TierCosto           PriceTier = "costo"
	TierConsumidorFinal PriceTier = "precioConsumidorFinal"
	TierRevendedor      PriceTier = "precioRevendedor"
)

// UnitPriceFor resolves the unit price for p under the tier. An unrecognized
// tier resolves to 0 instead of failing; keeping that as an explicit branch
// makes the fallback auditable.
func (t PriceTier) UnitPriceFor(p *models.Product) float64 {
	switch t {
	case TierCosto:
		return p.Costo
	case TierConsumidorFinal:
		return p.PrecioConsumidorFinal
	case TierRevendedor:
		return p.PrecioRevendedor
	default:
		return 0
	}
}
