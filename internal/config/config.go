package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// NewRedisClient connects to Redis when REDIS_HOST is set. The
// popularity leaderboard is optional, so an unreachable Redis only logs
// a warning and disables the feature instead of failing startup.
func NewRedisClient() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + GetEnv("REDIS_PORT", "6379"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: failed to connect to Redis at %s, popularity leaderboard disabled: %v", host, err)
		client.Close()
		return nil
	}
	return client
}

// NewKafkaWriter builds a writer for the given topic when KAFKA_BROKER
// is set, otherwise the order event stream stays disabled.
func NewKafkaWriter(topic string) *kafka.Writer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
