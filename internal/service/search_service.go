package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/cache"
	"github.com/v7s7/DaresniCheckUpdated/internal/matching"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

// TutorSource хранилище снимков репетиторов
type TutorSource interface {
	ListTutors(ctx context.Context) ([]*model.Tutor, error)
	GetTutor(ctx context.Context, id int64) (*model.Tutor, error)
}

// TutorCache кеш снимков; реализуется cache.TutorCache
type TutorCache interface {
	GetTutors(ctx context.Context) ([]*model.Tutor, error)
	SetTutors(ctx context.Context, tutors []*model.Tutor) error
	GetTutor(ctx context.Context, id int64) (*model.Tutor, error)
	SetTutor(ctx context.Context, tutor *model.Tutor) error
	Invalidate(ctx context.Context, tutorID int64) error
}

type SearchService struct {
	tutors TutorSource
	cache  TutorCache // nil = кеш выключен
	engine *matching.Engine
	ranker *matching.Ranker
	logger *zap.Logger
}

func NewSearchService(tutors TutorSource, tutorCache TutorCache, engine *matching.Engine, workers int, logger *zap.Logger) *SearchService {
	if engine == nil {
		engine = matching.DefaultEngine()
	}
	return &SearchService{
		tutors: tutors,
		cache:  tutorCache,
		engine: engine,
		ranker: matching.NewRanker(engine, workers),
		logger: logger,
	}
}

// Weights веса движка подбора
func (s *SearchService) Weights() matching.Weights {
	return s.engine.Weights()
}

// Search отбирает репетиторов по жёстким фильтрам и ранжирует оставшихся
func (s *SearchService) Search(ctx context.Context, criteria model.SearchCriteria) ([]matching.Ranked, error) {
	requestID := uuid.NewString()
	started := time.Now()

	tutors, err := s.LoadTutors(ctx)
	if err != nil {
		s.logger.Error("Failed to load tutors for search",
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, err
	}

	candidates := Prefilter(tutors, criteria)
	ranked := s.ranker.Rank(candidates, criteria)

	s.logger.Info("Search completed",
		zap.String("request_id", requestID),
		zap.String("subject", criteria.Subject),
		zap.String("budget", criteria.Budget),
		zap.String("language", criteria.Language),
		zap.Int("total", len(tutors)),
		zap.Int("candidates", len(candidates)),
		zap.Duration("took", time.Since(started)))

	return ranked, nil
}

// Evaluate объясняет, насколько конкретный репетитор подходит под критерии
func (s *SearchService) Evaluate(ctx context.Context, tutorID int64, criteria model.SearchCriteria) (*matching.Ranked, error) {
	tutor, err := s.GetTutor(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	return &matching.Ranked{
		Tutor: tutor,
		Match: s.engine.Evaluate(tutor, criteria),
	}, nil
}

// LoadTutors читает снимки из кеша, при промахе из хранилища с заполнением кеша
func (s *SearchService) LoadTutors(ctx context.Context) ([]*model.Tutor, error) {
	if s.cache != nil {
		tutors, err := s.cache.GetTutors(ctx)
		if err == nil {
			return tutors, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("Tutor cache unavailable, falling back to storage", zap.Error(err))
		}
	}

	tutors, err := s.tutors.ListTutors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}

	if s.cache != nil {
		// Ошибка записи в кеш не мешает поиску
		_ = s.cache.SetTutors(ctx, tutors)
	}

	return tutors, nil
}

// GetTutor снимок одного репетитора, через кеш если он включён
func (s *SearchService) GetTutor(ctx context.Context, tutorID int64) (*model.Tutor, error) {
	if s.cache != nil {
		if tutor, err := s.cache.GetTutor(ctx, tutorID); err == nil {
			return tutor, nil
		}
	}

	tutor, err := s.tutors.GetTutor(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("get tutor %d: %w", tutorID, err)
	}

	if s.cache != nil {
		_ = s.cache.SetTutor(ctx, tutor)
	}

	return tutor, nil
}

// WarmCache перечитывает список репетиторов из хранилища в кеш
func (s *SearchService) WarmCache(ctx context.Context) (int, error) {
	if s.cache == nil {
		return 0, nil
	}

	tutors, err := s.tutors.ListTutors(ctx)
	if err != nil {
		return 0, fmt.Errorf("list tutors: %w", err)
	}

	if err := s.cache.SetTutors(ctx, tutors); err != nil {
		return 0, fmt.Errorf("store tutors in cache: %w", err)
	}

	return len(tutors), nil
}

// Prefilter жёсткие фильтры страницы поиска. Порядок кандидатов сохраняется.
func Prefilter(tutors []*model.Tutor, c model.SearchCriteria) []*model.Tutor {
	out := make([]*model.Tutor, 0, len(tutors))
	for _, t := range tutors {
		if passesFilters(t, c) {
			out = append(out, t)
		}
	}
	return out
}

func passesFilters(t *model.Tutor, c model.SearchCriteria) bool {
	if c.MinPrice > 0 || c.MaxPrice > 0 {
		// Без указанной цены в ценовой диапазон не попасть
		if t.PricePerHour <= 0 || t.PricePerHour < c.MinPrice {
			return false
		}
		if c.MaxPrice > 0 && t.PricePerHour > c.MaxPrice {
			return false
		}
	}

	if c.MinRating > 0 && t.RatingAvg < c.MinRating {
		return false
	}

	if c.Subject != "" && !t.HasSubjectLike(c.Subject) {
		return false
	}

	if c.Language != "" && !t.SpeaksLanguage(c.Language) {
		return false
	}

	if c.VerifiedOnly && !t.Verified {
		return false
	}

	if c.Level != "" && !t.HasSubjectAtLevel(c.Level) {
		return false
	}

	return true
}
