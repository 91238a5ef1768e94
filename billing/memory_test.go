package billing

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/models"
)

// memCatalog backs the builder and aggregator tests without a database.
type memCatalog struct {
	clients  map[string]models.Client
	products map[string]models.Product
}

func newMemCatalog() *memCatalog {
	return &memCatalog{
		clients:  map[string]models.Client{},
		products: map[string]models.Product{},
	}
}

func (m *memCatalog) addClient(nombre, tipo string) models.Client {
	c := models.Client{ID: primitive.NewObjectID(), Nombre: nombre, Tipo: tipo}
	m.clients[c.ID.Hex()] = c
	return c
}

func (m *memCatalog) addProduct(nombre string, costo, final, revendedor float64) models.Product {
	p := models.Product{
		ID:                    primitive.NewObjectID(),
		Nombre:                nombre,
		Costo:                 costo,
		PrecioConsumidorFinal: final,
		PrecioRevendedor:      revendedor,
	}
	m.products[p.ID.Hex()] = p
	return p
}

func (m *memCatalog) GetClient(_ context.Context, id string) (*models.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, &NotFoundError{Resource: "cliente", ID: id}
	}
	return &c, nil
}

func (m *memCatalog) GetProduct(_ context.Context, id string) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, &NotFoundError{Resource: "producto", ID: id}
	}
	return &p, nil
}

// memNotes is a NoteSource over a slice, applying Filter.Matches in order.
type memNotes struct {
	remitos []models.Remito
}

func (m *memNotes) ListRemitos(_ context.Context, f Filter) ([]models.Remito, error) {
	var out []models.Remito
	for _, r := range m.remitos {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}
