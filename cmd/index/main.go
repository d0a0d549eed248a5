package main

import (
	"context"
	"log"
	"time"

	"myflix-api/internal/config"
	"myflix-api/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes. The unique username index is what makes registration
	// conflict-safe: concurrent duplicate inserts fail at the storage layer.
	createIndex(ctx, db, "users", bson.D{{Key: "username", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, nil)

	// Movies indexes
	createIndex(ctx, db, "movies", bson.D{{Key: "title", Value: 1}}, nil)
	createIndex(ctx, db, "movies", bson.D{{Key: "genre.name", Value: 1}}, nil)
	createIndex(ctx, db, "movies", bson.D{{Key: "director.name", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	model := mongo.IndexModel{Keys: keys}
	if opts != nil {
		model.Options = opts
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, model)
	if err != nil {
		log.Fatalf("Failed to create index on %s: %v", collection, err)
	}
	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}
