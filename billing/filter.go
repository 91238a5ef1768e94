package billing

import (
	"time"

	"backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const dateOnly = "2006-01-02"

// Filter restricts a remito listing. Zero-valued fields are open bounds.
type Filter struct {
	ClienteID   string
	FechaInicio time.Time
	FechaFin    time.Time
}

// ParseFilter builds a Filter from the raw query values. Dates accept
// "2006-01-02" or RFC3339; a date-only fechaFin is pushed to the end of that
// day so the upper bound stays inclusive.
func ParseFilter(clienteID, fechaInicio, fechaFin string) (Filter, error) {
	var f Filter

	if clienteID != "" {
		if _, err := primitive.ObjectIDFromHex(clienteID); err != nil {
			return f, Validationf("clienteId inválido: %s", clienteID)
		}
		f.ClienteID = clienteID
	}

	if fechaInicio != "" {
		t, _, err := parseDate(fechaInicio)
		if err != nil {
			return f, Validationf("fechaInicio inválida: %s", fechaInicio)
		}
		f.FechaInicio = t
	}

	if fechaFin != "" {
		t, dayOnly, err := parseDate(fechaFin)
		if err != nil {
			return f, Validationf("fechaFin inválida: %s", fechaFin)
		}
		if dayOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		f.FechaFin = t
	}

	return f, nil
}

func parseDate(s string) (t time.Time, dayOnly bool, err error) {
	if t, err = time.Parse(dateOnly, s); err == nil {
		return t, true, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	return t, false, err
}

// Matches reports whether r falls inside the filter. Mongo-backed listings
// translate the same semantics to a query document; this form is what the
// in-memory implementations and the tests use.
func (f Filter) Matches(r models.Remito) bool {
	if f.ClienteID != "" && r.Cliente.Hex() != f.ClienteID {
		return false
	}
	if !f.FechaInicio.IsZero() && r.Fecha.Before(f.FechaInicio) {
		return false
	}
	if !f.FechaFin.IsZero() && r.Fecha.After(f.FechaFin) {
		return false
	}
	return true
}
