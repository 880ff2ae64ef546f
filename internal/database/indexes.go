package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureFoodIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("foods").Indexes()

	categoryIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}},
		Options: options.Index().SetName("category_index"),
	}

	log.Println("EnsureFoodIndexes: creating category_index")
	_, err := indexes.CreateOne(ctx, categoryIndex)
	if err != nil {
		log.Println("EnsureFoodIndexes: category index error:", err)
		return err
	}
	return nil
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	createdAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_index"),
	}

	log.Println("EnsureOrderIndexes: creating createdAt_index")
	_, err := indexes.CreateOne(ctx, createdAtIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: createdAt index error:", err)
		return err
	}
	return nil
}
