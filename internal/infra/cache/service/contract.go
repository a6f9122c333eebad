package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Repository источник данных, который оборачивает кеш
type Repository interface {
	FindService(ctx context.Context, salonID, serviceID uuid.UUID) (*domain.Service, error)
}

// Client подмножество команд Redis, используемое кешем (реализуется *redis.Client)
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// MetricsRecorder интерфейс для метрик кеша
type MetricsRecorder interface {
	ObserveCache(cache, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
