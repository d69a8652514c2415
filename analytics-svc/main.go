package main

import (
	"context"

	"fooddash/analytics-svc/internal/service"
	"fooddash/analytics-svc/internal/storage"
	"fooddash/config"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("order-events", "analytics-svc")
	defer reader.Close()

	store := storage.NewStore(db, rdb)
	consumer := service.NewConsumer(reader, store)

	consumer.Start(context.Background())
}
