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

/* =========================
   REQUEST DTOs
========================= */

type createOrderItemRequest struct {
	Title    string `json:"title" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Price    int64  `json:"price"`
}

type createOrderRequest struct {
	CustomerName  string                   `json:"customerName" binding:"required"`
	CustomerPhone string                   `json:"customerPhone" binding:"required"`
	Items         []createOrderItemRequest `json:"items" binding:"required"`
	Total         int64                    `json:"total"`
	Date          string                   `json:"date"`
}

// buildOrderFromRequest validates shape only. The total is whatever the
// customer screen computed; this API trusts client-side totals by design
// and never recomputes them.
func buildOrderFromRequest(req createOrderRequest) (models.Order, error) {
	name := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.CustomerPhone)
	if name == "" || phone == "" {
		return models.Order{}, errors.New("customerName and customerPhone are required")
	}

	if len(req.Items) == 0 {
		return models.Order{}, errors.New("at least one item is required")
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if strings.TrimSpace(item.Title) == "" {
			return models.Order{}, errors.New("item title is required")
		}
		if item.Quantity <= 0 {
			return models.Order{}, errors.New("quantity must be greater than zero")
		}
		if item.Price < 0 {
			return models.Order{}, errors.New("price cannot be negative")
		}
		items = append(items, models.OrderItem{
			Title:    strings.TrimSpace(item.Title),
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = time.Now().Format("2006-01-02 15:04:05")
	}

	return models.Order{
		CustomerName:  name,
		CustomerPhone: phone,
		Items:         items,
		Total:         req.Total,
		Date:          date,
		CreatedAt:     time.Now(),
	}, nil
}

/* =========================
   CREATE ORDER
========================= */

func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/orders"
		defer handlePanic(c, route)

		if err := pingDatabase(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		order, err := buildOrderFromRequest(req)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("orders").InsertOne(ctx, order)
		if err != nil {
			middleware.RecordOrderOperation("create", false)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := result.InsertedID.(primitive.ObjectID); ok {
			order.ID = id
		}

		middleware.RecordOrderOperation("create", true)
		log.Printf("[%s] order created for %s, %d items, total %d",
			route, order.CustomerName, len(order.Items), order.Total)
		c.JSON(http.StatusCreated, order)
	}
}

/* =========================
   GET ORDERS
========================= */

func GetOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/orders"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := db.Collection("orders").Find(ctx, bson.M{}, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		orders := make([]models.Order, 0)
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

/* =========================
   DELETE ORDER (acknowledge)
========================= */

func DeleteOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/orders/:id"
		defer handlePanic(c, route)

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("orders").DeleteOne(ctx, bson.M{"_id": orderID})
		if err != nil {
			middleware.RecordOrderOperation("delete", false)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if result.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}

		middleware.RecordOrderOperation("delete", true)
		c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
	}
}
