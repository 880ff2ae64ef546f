package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a snapshot of a basket line at submission time. It is
// decoupled from the live food document on purpose.
type OrderItem struct {
	Title    string `bson:"title" json:"title"`
	Quantity int    `bson:"quantity" json:"quantity"`
	Price    int64  `bson:"price" json:"price"`
}

// Order defines the persisted order document. Total and Date come from the
// client; there is no status field, deletion is the only "done" signal.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	CustomerPhone string             `bson:"customerPhone" json:"customerPhone"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Total         int64              `bson:"total" json:"total"`
	Date          string             `bson:"date" json:"date"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
