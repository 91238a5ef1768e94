package utils

import (
	"context"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"backend/billing"
	"backend/repository"
)

var (
	RemitoCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "remitos_total",
		Help: "Number of stored remitos",
	})
	RemitoRevenue = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "remitos_revenue_total",
		Help: "Sum of billed remito totals",
	})
	RemitoCostBasis = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "remitos_cost_basis_total",
		Help: "Sum of remito costs at current product cost",
	})
)

func RegisterReportMetrics() {
	prometheus.MustRegister(RemitoCount, RemitoRevenue, RemitoCostBasis)
}

// RefreshReportMetrics recomputes the domain gauges from the database. It is
// scheduled daily and runs once at startup.
func RefreshReportMetrics() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store := repository.NewRemitoStore()
	catalog := repository.NewCatalog()

	remitos, err := store.List(ctx, billing.Filter{})
	if err != nil {
		log.Printf("report metrics: listing remitos failed: %v", err)
		return
	}

	var revenue float64
	for _, r := range remitos {
		revenue += r.Total
	}

	report, err := billing.ComputeCosts(ctx, store, catalog, billing.Filter{})
	if err != nil {
		log.Printf("report metrics: cost aggregation failed: %v", err)
		return
	}

	RemitoCount.Set(float64(len(remitos)))
	RemitoRevenue.Set(revenue)
	RemitoCostBasis.Set(report.TotalCostos)
	log.Printf("report metrics refreshed: %d remitos", len(remitos))
}
