package main

import (
	"log"
	"net/http"
	"time"

	"foodordering/api-gateway/internal/proxy"
	"foodordering/config"

	"github.com/rs/cors"
)

func main() {
	config.LoadEnv()

	routes := []proxy.Route{
		{Prefix: "/api/users", Target: config.Getenv("USER_SVC_URL", "http://localhost:8084")},
		{Prefix: "/api/restaurants", Target: config.Getenv("CATALOG_SVC_URL", "http://localhost:8081")},
		{Prefix: "/api/orders", Target: config.Getenv("ORDER_SVC_URL", "http://localhost:8082")},
		{Prefix: "/api/payments", Target: config.Getenv("PAYMENT_SVC_URL", "http://localhost:8083")},
	}

	client := &http.Client{Timeout: 30 * time.Second}
	gateway := proxy.NewGateway(routes, client)

	handler := cors.Default().Handler(gateway)

	addr := ":" + config.Getenv("PORT", "8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
