package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RemitoProducto is one line of a remito. PrecioUnitario is snapshotted from
// the product at creation time; later price edits never touch stored lines.
type RemitoProducto struct {
	Producto       primitive.ObjectID `bson:"producto" json:"producto"`
	Cantidad       float64            `bson:"cantidad" json:"cantidad"`
	PrecioUnitario float64            `bson:"preciounitario" json:"precioUnitario"`
	Subtotal       float64            `bson:"subtotal" json:"subtotal"`
}

// Remito is immutable after creation; the only write operations on the
// collection are insert and delete.
type Remito struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Cliente    primitive.ObjectID `bson:"cliente" json:"cliente"`
	Productos  []RemitoProducto   `bson:"productos" json:"productos"`
	TipoPrecio string             `bson:"tipoprecio" json:"tipoPrecio"`
	Total      float64            `bson:"total" json:"total"`
	Fecha      time.Time          `bson:"fecha" json:"fecha"`

	// TipoCliente is joined from the client at read time, never stored.
	TipoCliente string `bson:"-" json:"tipoCliente,omitempty"`
}

type RemitoProductoInput struct {
	Producto string  `json:"producto" binding:"required"`
	Cantidad float64 `json:"cantidad"`
	// Accepted for wire compatibility with older clients; the server always
	// resolves the unit price from the product and the selected tier.
	PrecioUnitario *float64 `json:"precioUnitario,omitempty"`
}

type RemitoInput struct {
	Cliente    string                `json:"cliente" binding:"required"`
	Productos  []RemitoProductoInput `json:"productos"`
	TipoPrecio string                `json:"tipoPrecio" binding:"required"`
}
