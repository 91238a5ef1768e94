package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ClientTypeConsumidorFinal = "Consumidor Final"
	ClientTypeRevendedor      = "Revendedor"
)

type Client struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nombre    string             `bson:"nombre" json:"nombre" binding:"required"`
	Tipo      string             `bson:"tipo" json:"tipo" binding:"required"`
	Telefono  string             `bson:"telefono,omitempty" json:"telefono,omitempty"`
	Ubicacion string             `bson:"ubicacion,omitempty" json:"ubicacion,omitempty"`
}

type UpdateClient struct {
	Nombre    string `json:"nombre,omitempty"`
	Tipo      string `json:"tipo,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Ubicacion string `json:"ubicacion,omitempty"`
}

// ValidClientType reports whether tipo is one of the two recognized
// client categories.
func ValidClientType(tipo string) bool {
	return tipo == ClientTypeConsumidorFinal || tipo == ClientTypeRevendedor
}
