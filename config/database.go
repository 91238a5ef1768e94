package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client            *mongo.Client
	UserCollection    *mongo.Collection
	ClientCollection  *mongo.Collection
	ProductCollection *mongo.Collection
	RemitoCollection  *mongo.Collection
)

func ConnectDatabase() {
	client, err := mongo.NewClient(options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal(err)
	}

	Client = client
	UserCollection = client.Database("remitos").Collection("users")
	ClientCollection = client.Database("remitos").Collection("clients")
	ProductCollection = client.Database("remitos").Collection("products")
	RemitoCollection = client.Database("remitos").Collection("remitos")
	log.Println("Connected to MongoDB")
}
