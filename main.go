package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"tourism-backend/configs"
	"tourism-backend/middlewares"
	"tourism-backend/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedStaff(); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// Redis is optional; catalog responses are simply uncached without it.
	rdb := configs.NewRedisClient(cfg)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded check-in photos and catalog covers
	r.Static("/uploads", "./uploads")

	routes.RegisterRoutes(r, db, rdb, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
