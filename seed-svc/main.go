package main

import (
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"fooddash/config"
	"fooddash/seed-svc/internal/generator"
	"fooddash/seed-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	totalOrders := 5000
	if v := os.Getenv("SEED_ORDERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatal("Invalid SEED_ORDERS value:", err)
		}
		totalOrders = n
	}

	store := storage.NewSeedStore(db)

	restaurantIDs, err := store.RestaurantIDs()
	if err != nil {
		log.Fatal("Failed to fetch restaurants:", err)
	}
	if len(restaurantIDs) == 0 {
		log.Fatal("No restaurants found; seed reference data first")
	}

	menus, err := store.MenusByRestaurant(restaurantIDs)
	if err != nil {
		log.Fatal("Failed to fetch menus:", err)
	}

	gen := generator.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	orders := gen.Generate(generator.Config{
		TotalOrders: totalOrders,
		UserRange:   500,
		Window:      180 * 24 * time.Hour,
		Now:         time.Now(),
	}, restaurantIDs, menus)

	log.Printf("[seed] generated %d orders (%d requested)", len(orders), totalOrders)

	if err := store.InsertOrders(orders); err != nil {
		log.Fatal("Failed to insert orders:", err)
	}

	log.Printf("[seed] data generation completed")
}
