package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"zsmenu/internal/config"
	"zsmenu/internal/database"
	"zsmenu/internal/handlers"
	"zsmenu/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureFoodIndexes(db); err != nil {
		log.Printf("food index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}

	r := gin.Default()
	r.Use(middleware.Prometheus())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/foods", handlers.GetFoods(db))
		api.POST("/foods", handlers.CreateFood(db))
		api.PUT("/foods/:id", handlers.UpdateFood(db))
		api.DELETE("/foods/:id", handlers.DeleteFood(db))

		api.GET("/orders", handlers.GetOrders(db))
		api.POST("/orders", handlers.CreateOrder(db))
		api.DELETE("/orders/:id", handlers.DeleteOrder(db))
	}

	r.Run(":" + config.AppEnv.Port)
}
