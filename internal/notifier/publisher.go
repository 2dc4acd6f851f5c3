package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ipetrova/family_tracking_system/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	alertQueueKey = "alert_events"
)

// AlertEvent - структура события о созданном оповещении
type AlertEvent struct {
	Alert     *models.Alert `json:"alert"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Timestamp time.Time     `json:"timestamp"`
}

// AlertPublisher - интерфейс для публикации событий оповещений
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует событие оповещения в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
