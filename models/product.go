package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nombre                string             `bson:"nombre" json:"nombre"`
	Costo                 float64            `bson:"costo" json:"costo"`
	PrecioConsumidorFinal float64            `bson:"precioconsumidorfinal" json:"precioConsumidorFinal"`
	PrecioRevendedor      float64            `bson:"preciorevendedor" json:"precioRevendedor"`
	CreatedAt             time.Time          `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt             time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// ProductInput uses pointers for the money fields so a missing field can be
// told apart from an explicit 0.
type ProductInput struct {
	Nombre                string   `json:"nombre" binding:"required"`
	Costo                 *float64 `json:"costo" binding:"required"`
	PrecioConsumidorFinal *float64 `json:"precioConsumidorFinal" binding:"required"`
	PrecioRevendedor      *float64 `json:"precioRevendedor" binding:"required"`
}

type UpdateProduct struct {
	Nombre                string   `json:"nombre,omitempty"`
	Costo                 *float64 `json:"costo,omitempty"`
	PrecioConsumidorFinal *float64 `json:"precioConsumidorFinal,omitempty"`
	PrecioRevendedor      *float64 `json:"precioRevendedor,omitempty"`
}
