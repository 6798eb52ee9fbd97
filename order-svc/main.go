package main

import (
	"context"
	"log"

	"foodordering/config"
	httpapi "foodordering/order-svc/internal/api/http"
	"foodordering/order-svc/internal/service"
	"foodordering/order-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to prepare order schema:", err)
	}

	publisher := storage.NewKafkaPublisher(config.NewKafkaWriter("order_events"))
	orderService := service.NewOrderService(repo, publisher)

	consumer := service.NewPaymentEventConsumer(
		config.NewKafkaReader("order_events", "order-svc"),
		orderService,
	)
	go func() {
		if err := consumer.Run(context.Background()); err != nil {
			log.Println("[order-svc] payment events consumer stopped:", err)
		}
	}()

	handler := httpapi.NewHandler(orderService)

	addr := ":" + config.Getenv("PORT", "8082")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
