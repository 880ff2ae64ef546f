package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"zsmenu/internal/middleware"
	"zsmenu/internal/models"
)

const (
	defaultPrepTime = "15 daqiqa"
	defaultRating   = "5.0"
)

type foodRequest struct {
	Title    string `json:"title" binding:"required"`
	Price    int64  `json:"price"`
	Category string `json:"category" binding:"required"`
	Img      string `json:"img" binding:"required"`
	Time     string `json:"time"`
	Rating   string `json:"rating"`
}

// buildFoodFromRequest trims and defaults the incoming payload. The admin
// panel always sends time/rating, but older clients may omit them.
func buildFoodFromRequest(req foodRequest) (models.Food, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Food{}, errors.New("title is required")
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		return models.Food{}, errors.New("category is required")
	}

	if req.Price < 0 {
		return models.Food{}, errors.New("price cannot be negative")
	}

	if strings.TrimSpace(req.Img) == "" {
		return models.Food{}, errors.New("img is required")
	}

	prepTime := strings.TrimSpace(req.Time)
	if prepTime == "" {
		prepTime = defaultPrepTime
	}
	rating := strings.TrimSpace(req.Rating)
	if rating == "" {
		rating = defaultRating
	}

	return models.Food{
		Title:     title,
		Price:     req.Price,
		Category:  category,
		Img:       req.Img,
		Time:      prepTime,
		Rating:    rating,
		CreatedAt: time.Now(),
	}, nil
}

/*
GET /api/foods
- full list, newest first, no pagination (the menu is small by design)
*/
func GetFoods(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/foods"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := db.Collection("foods").Find(ctx, bson.M{}, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		foods := make([]models.Food, 0)
		if err := cursor.All(ctx, &foods); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, foods)
	}
}

/*
POST /api/foods
*/
func CreateFood(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/foods"
		defer handlePanic(c, route)

		if err := pingDatabase(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req foodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		food, err := buildFoodFromRequest(req)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("foods").InsertOne(ctx, food)
		if err != nil {
			middleware.RecordFoodOperation("create", false)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := result.InsertedID.(primitive.ObjectID); ok {
			food.ID = id
		}

		middleware.RecordFoodOperation("create", true)
		log.Printf("[%s] food created: %s (%s)", route, food.Title, food.ID.Hex())
		c.JSON(http.StatusCreated, food)
	}
}

/*
PUT /api/foods/:id
- full replacement; the admin panel resubmits the whole draft
*/
func UpdateFood(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/foods/:id"
		defer handlePanic(c, route)

		foodID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req foodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		food, err := buildFoodFromRequest(req)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		update := bson.M{"$set": bson.M{
			"title":    food.Title,
			"price":    food.Price,
			"category": food.Category,
			"img":      food.Img,
			"time":     food.Time,
			"rating":   food.Rating,
		}}

		var updated models.Food
		err = db.Collection("foods").
			FindOneAndUpdate(
				ctx,
				bson.M{"_id": foodID},
				update,
				options.FindOneAndUpdate().SetReturnDocument(options.After),
			).
			Decode(&updated)

		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "food not found")
			return
		}
		if err != nil {
			middleware.RecordFoodOperation("update", false)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		middleware.RecordFoodOperation("update", true)
		c.JSON(http.StatusOK, updated)
	}
}

/*
DELETE /api/foods/:id
*/
func DeleteFood(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/foods/:id"
		defer handlePanic(c, route)

		foodID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("foods").DeleteOne(ctx, bson.M{"_id": foodID})
		if err != nil {
			middleware.RecordFoodOperation("delete", false)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if result.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "food not found")
			return
		}

		middleware.RecordFoodOperation("delete", true)
		c.JSON(http.StatusOK, gin.H{"message": "food deleted"})
	}
}
