package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fleet_incident_tracker/internal/models"
)

func incidentCacheKey(id int64) string {
	return fmt.Sprintf("incident:%d", id)
}

// Версия растет при каждой инвалидации; запись в кеш проходит только при неизменной версии
func incidentVersionKey(id int64) string {
	return fmt.Sprintf("incident:%d:version", id)
}

// GetIncidentFromCache пытается получить инцидент из Redis, промах кеша - (nil, nil)
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id int64) (*models.Incident, error) {
	if r.redisClient == nil {
		return nil, nil
	}
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// IncidentCacheVersion возвращает текущую версию кеша инцидента, ее нужно взять до чтения из бд
func (r *IncidentRepository) IncidentCacheVersion(ctx context.Context, id int64) (int64, error) {
	if r.redisClient == nil {
		return 0, nil
	}
	version, err := r.redisClient.Get(ctx, incidentVersionKey(id)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to get incident cache version: %w", err)
	}
	return version, nil
}

// SetIncidentCache сохраняет инцидент в Redis, если с момента чтения version его не инвалидировали
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident, version int64) error {
	if r.redisClient == nil || r.cacheTTL <= 0 {
		return nil
	}
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}

	versionKey := incidentVersionKey(incident.ID)
	err = r.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			// Инцидент изменился после чтения, устаревшие данные не кешируем
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, incidentCacheKey(incident.ID), val, r.cacheTTL)
			return nil
		})
		return err
	}, versionKey)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return nil
		}
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша и увеличивает его версию
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id int64) error {
	if r.redisClient == nil {
		return nil
	}
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, incidentCacheKey(id))
		pipe.Incr(ctx, incidentVersionKey(id))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
