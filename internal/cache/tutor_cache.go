package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

const tutorListKey = keyPrefix + "tutors:all"

func tutorKey(id int64) string {
	return fmt.Sprintf("%stutor:%d", keyPrefix, id)
}

// TutorCache снимки репетиторов: весь список и отдельные профили
type TutorCache struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

func NewTutorCache(store Store, ttl time.Duration, logger *zap.Logger) *TutorCache {
	return &TutorCache{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// GetTutors возвращает закешированный список или ErrCacheMiss
func (c *TutorCache) GetTutors(ctx context.Context) ([]*model.Tutor, error) {
	var tutors []*model.Tutor
	if err := c.get(ctx, tutorListKey, &tutors); err != nil {
		return nil, err
	}
	return tutors, nil
}

// SetTutors сохраняет список репетиторов
func (c *TutorCache) SetTutors(ctx context.Context, tutors []*model.Tutor) error {
	return c.set(ctx, tutorListKey, tutors)
}

// GetTutor возвращает закешированный профиль или ErrCacheMiss
func (c *TutorCache) GetTutor(ctx context.Context, id int64) (*model.Tutor, error) {
	var tutor model.Tutor
	if err := c.get(ctx, tutorKey(id), &tutor); err != nil {
		return nil, err
	}
	return &tutor, nil
}

// SetTutor сохраняет профиль репетитора
func (c *TutorCache) SetTutor(ctx context.Context, tutor *model.Tutor) error {
	return c.set(ctx, tutorKey(tutor.ID), tutor)
}

// Invalidate сбрасывает профиль репетитора и общий список
func (c *TutorCache) Invalidate(ctx context.Context, tutorID int64) error {
	if err := c.store.Delete(ctx, tutorKey(tutorID), tutorListKey); err != nil {
		c.logger.Warn("Failed to invalidate tutor cache",
			zap.Int64("tutor_id", tutorID),
			zap.Error(err))
		return fmt.Errorf("invalidate tutor %d: %w", tutorID, err)
	}
	return nil
}

func (c *TutorCache) get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// Битое значение удаляем, дальше работаем как с промахом
		c.logger.Warn("Corrupted cache entry", zap.String("key", key), zap.Error(err))
		_ = c.store.Delete(ctx, key)
		return ErrCacheMiss
	}

	return nil
}

func (c *TutorCache) set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}
