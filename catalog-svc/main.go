package main

import (
	"context"
	"log"

	httpapi "foodordering/catalog-svc/internal/api/http"
	"foodordering/catalog-svc/internal/service"
	"foodordering/catalog-svc/internal/storage"
	"foodordering/config"
)

func main() {
	config.LoadEnv()

	db := config.MustInitMongo(config.Getenv("MONGO_DB", "food_ordering"))
	redisClient := config.MustInitRedis()

	restaurantRepo := storage.NewRestaurantMongoRepository(db)
	restaurantRepo.EnsureIndexes(context.Background())
	menuRepo := storage.NewMenuItemMongoRepository(db)
	menuRepo.EnsureIndexes(context.Background())

	publisher := storage.NewKafkaPublisher(config.NewKafkaWriter("catalog_events"))
	popularity := storage.NewRedisPopularityStore(redisClient)

	restaurantService := service.NewRestaurantService(restaurantRepo, publisher)
	menuService := service.NewMenuService(restaurantRepo, menuRepo, popularity, publisher)

	consumer := service.NewOrderEventConsumer(
		config.NewKafkaReader("order_events", "catalog-svc"),
		menuRepo,
		popularity,
	)
	go func() {
		if err := consumer.Run(context.Background()); err != nil {
			log.Println("[catalog-svc] order events consumer stopped:", err)
		}
	}()

	handler := httpapi.NewHandler(restaurantService, menuService)

	addr := ":" + config.Getenv("PORT", "8081")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
