package main

import (
	"log"
	"os"

	httpapi "fooddash/api-svc/internal/api/http"
	"fooddash/api-svc/internal/service"
	"fooddash/api-svc/internal/storage"
	"fooddash/config"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	repo := storage.NewPostgresRepository(db)
	publisher := storage.NewEventPublisher(config.NewKafkaWriter("order-events"))
	defer publisher.Close()

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	catalogSvc := service.NewCatalogService(repo)
	orderSvc := service.NewOrderService(repo, publisher, service.DefaultQRGenerator{BaseURL: baseURL})
	reviewSvc := service.NewReviewService(repo, publisher)

	handler := httpapi.NewHandler(catalogSvc, orderSvc, reviewSvc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpapi.StartServer(":"+port, httpapi.NewRouter(handler))
}
