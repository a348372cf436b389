package main

import (
	"context"
	"fmt"
	"log"

	"burgerhouse/configs"
	"burgerhouse/routes"
	"burgerhouse/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal(err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedLookups(db); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if cfg.CatalogFile != "" {
		if err := configs.SeedCatalog(db, cfg.CatalogFile); err != nil {
			log.Fatalf("seed catalog failed: %v", err)
		}
	}

	// order status push
	hub := ws.NewOrderHub()
	go hub.Run(context.Background())

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
