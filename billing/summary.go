package billing

import (
	"sort"
	"time"

	"backend/models"
)

type MonthlySales struct {
	Mes             string  `json:"mes"`
	ConsumidorFinal float64 `json:"consumidorFinal"`
	Revendedor      float64 `json:"revendedor"`
}

type Summary struct {
	RemitosHoy      int            `json:"remitosHoy"`
	VentasHoy       float64        `json:"ventasHoy"`
	VentasMensuales []MonthlySales `json:"ventasMensuales"`
}

// Summarize groups billed totals by month and client type for the dashboard.
// It only reads total, tipoCliente and fecha from each remito, so the report
// layer needs no state of its own.
func Summarize(remitos []models.Remito, now time.Time) Summary {
	s := Summary{VentasMensuales: []MonthlySales{}}
	byMonth := map[string]*MonthlySales{}

	for _, r := range remitos {
		if sameDay(r.Fecha, now) {
			s.RemitosHoy++
			s.VentasHoy += r.Total
		}

		mes := r.Fecha.Format("2006-01")
		row, ok := byMonth[mes]
		if !ok {
			row = &MonthlySales{Mes: mes}
			byMonth[mes] = row
		}
		switch r.TipoCliente {
		case models.ClientTypeConsumidorFinal:
			row.ConsumidorFinal += r.Total
		case models.ClientTypeRevendedor:
			row.Revendedor += r.Total
		}
	}

	for _, row := range byMonth {
		s.VentasMensuales = append(s.VentasMensuales, *row)
	}
	sort.Slice(s.VentasMensuales, func(i, j int) bool {
		return s.VentasMensuales[i].Mes < s.VentasMensuales[j].Mes
	})
	return s
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
