package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/availability"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
	"github.com/v7s7/DaresniCheckUpdated/internal/render"
	"github.com/v7s7/DaresniCheckUpdated/internal/repository"
)

var (
	// ErrNotATutor редактировать расписание может только репетитор
	ErrNotATutor = errors.New("user is not a tutor")

	// ErrNoEditSession нет открытого редактора расписания
	ErrNoEditSession = errors.New("no availability edit session")
)

// AvailabilityStore хранилище недельного расписания
type AvailabilityStore interface {
	GetWeekly(ctx context.Context, tutorID int64) ([]model.AvailabilitySlot, error)
	ReplaceWeekly(ctx context.Context, tutorID int64, slots []model.AvailabilitySlot) error
}

// TutorLookup поиск репетитора по Telegram ID и по ID
type TutorLookup interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.Tutor, error)
	GetTutor(ctx context.Context, id int64) (*model.Tutor, error)
}

// CacheInvalidator сброс закешированного снимка репетитора
type CacheInvalidator interface {
	Invalidate(ctx context.Context, tutorID int64) error
}

type AvailabilityService struct {
	store  AvailabilityStore
	tutors TutorLookup
	cache  CacheInvalidator // nil = кеш выключен
	logger *zap.Logger
}

func NewAvailabilityService(store AvailabilityStore, tutors TutorLookup, invalidator CacheInvalidator, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		store:  store,
		tutors: tutors,
		cache:  invalidator,
		logger: logger,
	}
}

// Open открывает редактор поверх сохранённого расписания репетитора
func (s *AvailabilityService) Open(ctx context.Context, telegramID int64) (*availability.Editor, error) {
	tutor, err := s.tutors.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrTutorNotFound) {
			return nil, ErrNotATutor
		}
		return nil, fmt.Errorf("get tutor: %w", err)
	}

	slots, err := s.store.GetWeekly(ctx, tutor.ID)
	if err != nil {
		return nil, fmt.Errorf("get weekly availability: %w", err)
	}

	s.logger.Info("Availability editor opened",
		zap.Int64("tutor_id", tutor.ID),
		zap.Int("slots", len(slots)))

	return availability.NewEditor(tutor.ID, slots), nil
}

// Commit сохраняет расписание редактора целиком и сбрасывает кеш
func (s *AvailabilityService) Commit(ctx context.Context, editor *availability.Editor) error {
	if editor == nil {
		return ErrNoEditSession
	}

	slots := editor.Slots()
	if err := s.store.ReplaceWeekly(ctx, editor.TutorID(), slots); err != nil {
		return fmt.Errorf("save availability: %w", err)
	}
	editor.MarkCommitted()

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, editor.TutorID()); err != nil {
			// Снимок устареет не дольше чем на TTL
			s.logger.Warn("Failed to invalidate tutor cache after commit",
				zap.Int64("tutor_id", editor.TutorID()),
				zap.Error(err))
		}
	}

	s.logger.Info("Availability committed",
		zap.Int64("tutor_id", editor.TutorID()),
		zap.Int("slots", len(slots)))

	return nil
}

// WeekImage рисует недельную доступность репетитора с подсветкой выбранных часов
func (s *AvailabilityService) WeekImage(ctx context.Context, tutorID int64, selection *availability.Selection) ([]byte, error) {
	tutor, err := s.tutors.GetTutor(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("get tutor %d: %w", tutorID, err)
	}

	img, err := render.GenerateWeekImage(tutor.Name, tutor.Availability, selection)
	if err != nil {
		return nil, fmt.Errorf("render week image: %w", err)
	}

	return img, nil
}
