package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const dbPingTimeout = 2 * time.Second

// handlePanic keeps a misbehaving handler from taking down the process.
func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] recovered from panic: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pingDatabase is a cheap pre-flight before mutating handlers touch their
// collections, so a down database fails fast as 503 instead of a write
// timeout.
func pingDatabase(ctx context.Context, db *mongo.Database) error {
	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	return db.Client().Ping(pingCtx, readpref.Primary())
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
