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

// RemitoStore persists remitos. List enriches each remito with the client's
// tipo at read time; the field is never stored, so client edits are always
// reflected.
type RemitoStore struct{}

func NewRemitoStore() *RemitoStore { return &RemitoStore{} }

func (s *RemitoStore) Create(ctx context.Context, remito *models.Remito) error {
	res, err := config.RemitoCollection.InsertOne(ctx, remito)
	if err != nil {
		return err
	}
	remito.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *RemitoStore) Get(ctx context.Context, id string) (*models.Remito, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &billing.NotFoundError{Resource: "remito", ID: id}
	}

	var remito models.Remito
	err = config.RemitoCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&remito)
	if err == mongo.ErrNoDocuments {
		return nil, &billing.NotFoundError{Resource: "remito", ID: id}
	}
	if err != nil {
		return nil, err
	}
	s.joinTipoCliente(ctx, &remito)
	return &remito, nil
}

func (s *RemitoStore) List(ctx context.Context, f billing.Filter) ([]models.Remito, error) {
	cursor, err := config.RemitoCollection.Find(ctx, FilterQuery(f))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	remitos := []models.Remito{}
	if err = cursor.All(ctx, &remitos); err != nil {
		return nil, err
	}

	for i := range remitos {
		s.joinTipoCliente(ctx, &remitos[i])
	}
	return remitos, nil
}

// ListRemitos satisfies billing.NoteSource.
func (s *RemitoStore) ListRemitos(ctx context.Context, f billing.Filter) ([]models.Remito, error) {
	return s.List(ctx, f)
}

func (s *RemitoStore) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &billing.NotFoundError{Resource: "remito", ID: id}
	}

	res, err := config.RemitoCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &billing.NotFoundError{Resource: "remito", ID: id}
	}
	return nil
}

// FilterQuery translates a billing.Filter into the equivalent find document.
// Kept as a pure function so the translation is testable without a database.
func FilterQuery(f billing.Filter) bson.M {
	query := bson.M{}

	if f.ClienteID != "" {
		// ParseFilter already validated the hex.
		objID, err := primitive.ObjectIDFromHex(f.ClienteID)
		if err == nil {
			query["cliente"] = objID
		}
	}

	fecha := bson.M{}
	if !f.FechaInicio.IsZero() {
		fecha["$gte"] = f.FechaInicio
	}
	if !f.FechaFin.IsZero() {
		fecha["$lte"] = f.FechaFin
	}
	if len(fecha) > 0 {
		query["fecha"] = fecha
	}

	return query
}

func (s *RemitoStore) joinTipoCliente(ctx context.Context, remito *models.Remito) {
	var client struct {
		Tipo string `bson:"tipo"`
	}
	err := config.ClientCollection.FindOne(ctx, bson.M{"_id": remito.Cliente}).Decode(&client)
	if err != nil {
		// A deleted client just leaves the field empty; listing never fails
		// over a dangling reference.
		return
	}
	remito.TipoCliente = client.Tipo
}
