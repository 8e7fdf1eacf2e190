package main

import (
	"log"
	"net/http"
	"time"

	httpapi "tableside/internal/api/http"
	"tableside/internal/config"
	"tableside/internal/metrics"
	"tableside/internal/storage"
	"tableside/internal/store"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	metrics.Register()

	var publisher store.EventPublisher
	if writer := config.NewKafkaWriter("orders"); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		log.Println("Order event stream enabled")
	}

	var popularity store.PopularityRecorder
	if client := config.NewRedisClient(); client != nil {
		defer client.Close()
		popularity = storage.NewPopularityCache(client, 7*24*time.Hour)
		log.Println("Popularity leaderboard enabled")
	}

	s := store.New(publisher, popularity)
	s.Seed()

	port := config.GetEnv("PORT", "3000")
	publicURL := config.GetEnv("PUBLIC_URL", "http://localhost:"+port)

	r := mux.NewRouter()
	httpapi.NewHandler(s, publicURL).RegisterRoutes(r)
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	handler := cors.Default().Handler(r)

	log.Printf("Restaurant Management API running on port %s", port)
	log.Printf("Health check: http://localhost:%s/health", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
