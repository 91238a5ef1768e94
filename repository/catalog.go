package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/billing"
	"backend/config"
	"backend/models"
)

// Catalog is the mongo-backed billing.Catalog over the clients and products
// collections.
type Catalog struct{}

func NewCatalog() Catalog { return Catalog{} }

func (Catalog) GetClient(ctx context.Context, id string) (*models.Client, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &billing.NotFoundError{Resource: "cliente", ID: id}
	}

	var client models.Client
	err = config.ClientCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&client)
	if err == mongo.ErrNoDocuments {
		return nil, &billing.NotFoundError{Resource: "cliente", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (Catalog) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &billing.NotFoundError{Resource: "producto", ID: id}
	}

	var product models.Product
	err = config.ProductCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, &billing.NotFoundError{Resource: "producto", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
