package main

import (
	"context"
	"log"

	"foodordering/config"
	grpcapi "foodordering/payment-svc/internal/api/grpc"
	httpapi "foodordering/payment-svc/internal/api/http"
	"foodordering/payment-svc/internal/service"
	"foodordering/payment-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to prepare payment schema:", err)
	}
	methodRepo := storage.NewPaymentMethodPostgresRepository(db)

	publisher := storage.NewKafkaPublisher(config.NewKafkaWriter("order_events"))
	paymentService := service.NewPaymentService(repo, methodRepo, publisher)

	grpcAddr := ":" + config.Getenv("GRPC_PORT", "50051")
	go grpcapi.StartServer(grpcAddr, paymentService)

	handler := httpapi.NewHandler(paymentService)

	addr := ":" + config.Getenv("PORT", "8083")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
