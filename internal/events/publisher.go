package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fleet_incident_tracker/internal/models"
)

const DefaultQueueKey = "incident_events"

// IncidentEvent - запись журнала инцидента, опубликованная после фиксации транзакции
type IncidentEvent struct {
	IncidentID int64             `json:"incidentId"`
	UserID     int64             `json:"userId"`
	UpdateType models.UpdateType `json:"updateType"`
	Message    string            `json:"message"`
	Timestamp  time.Time         `json:"timestamp"`
}

// NewIncidentEvent строит событие из строки журнала
func NewIncidentEvent(update *models.IncidentUpdate) IncidentEvent {
	ts := update.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return IncidentEvent{
		IncidentID: update.IncidentID,
		UserID:     update.UserID,
		UpdateType: update.UpdateType,
		Message:    update.Message,
		Timestamp:  ts,
	}
}

// EventPublisher - интерфейс для публикации событий журнала
type EventPublisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая список Redis как очередь
type RedisEventPublisher struct {
	redisClient *redis.Client
	queueKey    string
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client, queueKey string) *RedisEventPublisher {
	if queueKey == "" {
		queueKey = DefaultQueueKey
	}
	return &RedisEventPublisher{
		redisClient: client,
		queueKey:    queueKey,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	// LPUSH: потребители забирают события с правого конца (BRPOP)
	if err := p.redisClient.LPush(ctx, p.queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}
