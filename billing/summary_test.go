package billing

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/models"
)

func TestSummarizeGroupsByMonthAndClientType(t *testing.T) {
	c := primitive.NewObjectID()
	remitos := []models.Remito{
		{Cliente: c, Total: 100, TipoCliente: models.ClientTypeConsumidorFinal,
			Fecha: time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)},
		{Cliente: c, Total: 50, TipoCliente: models.ClientTypeRevendedor,
			Fecha: time.Date(2024, 4, 20, 10, 0, 0, 0, time.UTC)},
		{Cliente: c, Total: 70, TipoCliente: models.ClientTypeConsumidorFinal,
			Fecha: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
	}

	now := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	s := Summarize(remitos, now)

	if s.RemitosHoy != 1 || s.VentasHoy != 70 {
		t.Fatalf("unexpected today counters: %+v", s)
	}
	if len(s.VentasMensuales) != 2 {
		t.Fatalf("expected 2 monthly rows, got %+v", s.VentasMensuales)
	}
	april := s.VentasMensuales[0]
	if april.Mes != "2024-04" || april.ConsumidorFinal != 100 || april.Revendedor != 50 {
		t.Fatalf("unexpected april row: %+v", april)
	}
	may := s.VentasMensuales[1]
	if may.Mes != "2024-05" || may.ConsumidorFinal != 70 || may.Revendedor != 0 {
		t.Fatalf("unexpected may row: %+v", may)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, time.Now())
	if s.RemitosHoy != 0 || s.VentasHoy != 0 || len(s.VentasMensuales) != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}
