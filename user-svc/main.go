package main

import (
	"context"

	"foodordering/config"
	httpapi "foodordering/user-svc/internal/api/http"
	"foodordering/user-svc/internal/service"
	"foodordering/user-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitMongo(config.Getenv("MONGO_DB", "food_ordering"))

	repo := storage.NewMongoRepository(db)
	repo.EnsureIndexes(context.Background())

	userService := service.NewUserService(repo)
	handler := httpapi.NewHandler(userService)

	addr := ":" + config.Getenv("PORT", "8084")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
