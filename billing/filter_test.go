package billing

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/models"
)

func remitoAt(cliente primitive.ObjectID, fecha time.Time) models.Remito {
	return models.Remito{
		ID:      primitive.NewObjectID(),
		Cliente: cliente,
		Fecha:   fecha,
		Total:   1,
	}
}

func TestParseFilterDates(t *testing.T) {
	f, err := ParseFilter("", "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.FechaInicio != time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected fechaInicio: %v", f.FechaInicio)
	}
	// Date-only upper bound covers the whole final day.
	if !f.FechaFin.After(time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("fechaFin not inclusive of final day: %v", f.FechaFin)
	}
}

func TestParseFilterRejectsBadInput(t *testing.T) {
	if _, err := ParseFilter("not-an-id", "", ""); !IsValidation(err) {
		t.Fatalf("expected validation error for bad clienteId, got %v", err)
	}
	if _, err := ParseFilter("", "31/03/2024", ""); !IsValidation(err) {
		t.Fatalf("expected validation error for bad fechaInicio, got %v", err)
	}
	if _, err := ParseFilter("", "", "yesterday"); !IsValidation(err) {
		t.Fatalf("expected validation error for bad fechaFin, got %v", err)
	}
}

func TestFilterMatchesClient(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	now := time.Now()

	all := []models.Remito{remitoAt(a, now), remitoAt(b, now), remitoAt(a, now)}
	f := Filter{ClienteID: a.Hex()}

	var matched int
	for _, r := range all {
		if f.Matches(r) {
			matched++
			if r.Cliente != a {
				t.Fatalf("matched remito of wrong client")
			}
		}
	}
	if matched != 2 {
		t.Fatalf("expected 2 matches, got %d", matched)
	}
}

func TestFilterMatchesDateRangeInclusive(t *testing.T) {
	c := primitive.NewObjectID()
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	f := Filter{FechaInicio: from, FechaFin: to}

	if !f.Matches(remitoAt(c, from)) {
		t.Error("lower bound must be inclusive")
	}
	if !f.Matches(remitoAt(c, to)) {
		t.Error("upper bound must be inclusive")
	}
	if f.Matches(remitoAt(c, from.Add(-time.Second))) {
		t.Error("matched before lower bound")
	}
	if f.Matches(remitoAt(c, to.Add(time.Second))) {
		t.Error("matched after upper bound")
	}
}

func TestFilterOpenBounds(t *testing.T) {
	c := primitive.NewObjectID()
	old := remitoAt(c, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	if !(Filter{}).Matches(old) {
		t.Error("empty filter must match everything")
	}
	if !(Filter{FechaFin: time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)}).Matches(old) {
		t.Error("open lower bound must match")
	}
	if !(Filter{FechaInicio: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)}).Matches(old) {
		t.Error("open upper bound must match")
	}
}
