package repository

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/billing"
)

func TestFilterQueryEmpty(t *testing.T) {
	query := FilterQuery(billing.Filter{})
	if len(query) != 0 {
		t.Fatalf("empty filter must produce an empty query, got %v", query)
	}
}

func TestFilterQueryCliente(t *testing.T) {
	id := primitive.NewObjectID()
	query := FilterQuery(billing.Filter{ClienteID: id.Hex()})

	got, ok := query["cliente"].(primitive.ObjectID)
	if !ok || got != id {
		t.Fatalf("expected cliente %s in query, got %v", id.Hex(), query)
	}
	if _, ok := query["fecha"]; ok {
		t.Fatalf("unexpected fecha clause: %v", query)
	}
}

func TestFilterQueryDateBounds(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)

	query := FilterQuery(billing.Filter{FechaInicio: from, FechaFin: to})
	fecha, ok := query["fecha"].(bson.M)
	if !ok {
		t.Fatalf("expected fecha clause, got %v", query)
	}
	if fecha["$gte"] != from || fecha["$lte"] != to {
		t.Fatalf("unexpected bounds: %v", fecha)
	}

	query = FilterQuery(billing.Filter{FechaInicio: from})
	fecha = query["fecha"].(bson.M)
	if _, ok := fecha["$lte"]; ok {
		t.Fatalf("open upper bound must not emit $lte: %v", fecha)
	}
}
