package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const (
	cacheName = "service"
	keyPrefix = "availability:service"

	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// Cache read-through кеш услуг поверх репозитория
// Ошибки Redis не прерывают запрос: данные читаются из репозитория
type Cache struct {
	next    Repository
	client  Client
	ttl     time.Duration
	metrics MetricsRecorder
	logger  Logger
}

// NewCache создает кеш услуг
func NewCache(next Repository, client Client, ttl time.Duration, metrics MetricsRecorder, logger Logger) *Cache {
	return &Cache{
		next:    next,
		client:  client,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// cachedService представление услуги в Redis
type cachedService struct {
	ID              uuid.UUID `json:"id"`
	SalonID         uuid.UUID `json:"salonId"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	Timezone        string    `json:"timezone"`
}

// Key ключ Redis для услуги салона
func Key(salonID, serviceID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, salonID, serviceID)
}

// FindService возвращает услугу из кеша или из репозитория
// Ошибки репозитория (включая "не найдено") возвращаются как есть и не кешируются
func (c *Cache) FindService(ctx context.Context, salonID, serviceID uuid.UUID) (*domain.Service, error) {
	key := Key(salonID, serviceID)

	if service, ok := c.get(ctx, key); ok {
		return service, nil
	}

	service, err := c.next.FindService(ctx, salonID, serviceID)
	if err != nil {
		return nil, err
	}

	c.set(ctx, key, service)
	return service, nil
}

func (c *Cache) get(ctx context.Context, key string) (*domain.Service, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.ObserveCache(cacheName, resultMiss)
		return nil, false
	}
	if err != nil {
		c.metrics.ObserveCache(cacheName, resultError)
		c.logger.Warn("ServiceCache: failed to get key=%s: %v", key, err)
		return nil, false
	}

	var cached cachedService
	if err := json.Unmarshal(data, &cached); err != nil {
		c.metrics.ObserveCache(cacheName, resultError)
		c.logger.Warn("ServiceCache: corrupted value for key=%s: %v", key, err)
		return nil, false
	}

	c.metrics.ObserveCache(cacheName, resultHit)
	return &domain.Service{
		ID:              cached.ID,
		SalonID:         cached.SalonID,
		Name:            cached.Name,
		DurationMinutes: cached.DurationMinutes,
		Timezone:        cached.Timezone,
	}, true
}

func (c *Cache) set(ctx context.Context, key string, service *domain.Service) {
	data, err := json.Marshal(cachedService{
		ID:              service.ID,
		SalonID:         service.SalonID,
		Name:            service.Name,
		DurationMinutes: service.DurationMinutes,
		Timezone:        service.Timezone,
	})
	if err != nil {
		c.logger.Warn("ServiceCache: failed to encode service id=%s: %v", service.ID, err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("ServiceCache: failed to set key=%s: %v", key, err)
	}
}
