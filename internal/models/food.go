package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a single menu entry. Img holds either an external URL or an
// embedded data URI produced by the admin panel.
type Food struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Price     int64              `bson:"price" json:"price"`
	Category  string             `bson:"category" json:"category"`
	Img       string             `bson:"img" json:"img"`
	Time      string             `bson:"time" json:"time"`
	Rating    string             `bson:"rating" json:"rating"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
