package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
	"github.com/v7s7/DaresniCheckUpdated/internal/repository"
)

const (
	maxSubjects      = 10
	maxSubjectLength = 64
	maxBioLength     = 500
	maxPricePerHour  = 10000
)

// ErrInvalidProfile данные профиля не прошли проверку
var ErrInvalidProfile = errors.New("invalid tutor profile")

// SubjectStore хранилище предметов репетитора
type SubjectStore interface {
	Create(ctx context.Context, subject *model.Subject) error
	GetByTutorID(ctx context.Context, tutorID int64) ([]model.Subject, error)
	Delete(ctx context.Context, tutorID, subjectID int64) error
}

// ProfileStore изменение полей профиля
type ProfileStore interface {
	UpdateProfile(ctx context.Context, tutorID int64, upd model.ProfileUpdate) error
}

// ProfileService управление профилем репетитора: цена, языки, описание и предметы
type ProfileService struct {
	tutors   TutorLookup
	subjects SubjectStore
	profiles ProfileStore
	cache    CacheInvalidator // nil = кеш выключен
	logger   *zap.Logger
}

func NewProfileService(tutors TutorLookup, subjects SubjectStore, profiles ProfileStore, invalidator CacheInvalidator, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		tutors:   tutors,
		subjects: subjects,
		profiles: profiles,
		cache:    invalidator,
		logger:   logger,
	}
}

// Profile снимок репетитора для пользователя Telegram
func (s *ProfileService) Profile(ctx context.Context, telegramID int64) (*model.Tutor, error) {
	tutor, err := s.tutors.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrTutorNotFound) {
			return nil, ErrNotATutor
		}
		return nil, fmt.Errorf("get tutor: %w", err)
	}
	return tutor, nil
}

// UpdateProfile проверяет и сохраняет изменения профиля
func (s *ProfileService) UpdateProfile(ctx context.Context, telegramID int64, upd model.ProfileUpdate) error {
	upd, err := normalizeProfileUpdate(upd)
	if err != nil {
		return err
	}

	tutor, err := s.Profile(ctx, telegramID)
	if err != nil {
		return err
	}

	if err := s.profiles.UpdateProfile(ctx, tutor.ID, upd); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	s.invalidate(ctx, tutor.ID)
	return nil
}

// AddSubject добавляет предмет в конец списка
func (s *ProfileService) AddSubject(ctx context.Context, telegramID int64, name, level string, priceOverride *float64) (*model.Subject, error) {
	name = strings.TrimSpace(name)
	level = strings.TrimSpace(level)

	if name == "" {
		return nil, fmt.Errorf("%w: subject name is empty", ErrInvalidProfile)
	}
	if utf8.RuneCountInString(name) > maxSubjectLength || utf8.RuneCountInString(level) > maxSubjectLength {
		return nil, fmt.Errorf("%w: subject name or level is too long", ErrInvalidProfile)
	}
	if priceOverride != nil && (*priceOverride <= 0 || *priceOverride > maxPricePerHour) {
		return nil, fmt.Errorf("%w: subject price must be in (0, %d]", ErrInvalidProfile, maxPricePerHour)
	}

	tutor, err := s.Profile(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	if len(tutor.Subjects) >= maxSubjects {
		return nil, fmt.Errorf("%w: at most %d subjects", ErrInvalidProfile, maxSubjects)
	}
	for _, existing := range tutor.Subjects {
		if strings.EqualFold(existing.Name, name) && strings.EqualFold(existing.Level, level) {
			return nil, fmt.Errorf("%w: subject %q already added", ErrInvalidProfile, name)
		}
	}

	subject := &model.Subject{
		TutorID:       tutor.ID,
		Name:          name,
		Level:         level,
		PriceOverride: priceOverride,
	}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, err
	}

	s.invalidate(ctx, tutor.ID)
	return subject, nil
}

// Subjects предметы репетитора в порядке профиля
func (s *ProfileService) Subjects(ctx context.Context, telegramID int64) ([]model.Subject, error) {
	tutor, err := s.Profile(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	subjects, err := s.subjects.GetByTutorID(ctx, tutor.ID)
	if err != nil {
		return nil, fmt.Errorf("get subjects: %w", err)
	}
	return subjects, nil
}

// RemoveSubject удаляет предмет репетитора
func (s *ProfileService) RemoveSubject(ctx context.Context, telegramID, subjectID int64) error {
	tutor, err := s.Profile(ctx, telegramID)
	if err != nil {
		return err
	}

	if err := s.subjects.Delete(ctx, tutor.ID, subjectID); err != nil {
		return err
	}

	s.logger.Info("Subject removed",
		zap.Int64("tutor_id", tutor.ID),
		zap.Int64("subject_id", subjectID))

	s.invalidate(ctx, tutor.ID)
	return nil
}

func (s *ProfileService) invalidate(ctx context.Context, tutorID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, tutorID); err != nil {
		s.logger.Warn("Failed to invalidate tutor cache after profile change",
			zap.Int64("tutor_id", tutorID),
			zap.Error(err))
	}
}

func normalizeProfileUpdate(upd model.ProfileUpdate) (model.ProfileUpdate, error) {
	if upd.IsEmpty() {
		return upd, fmt.Errorf("%w: nothing to update", ErrInvalidProfile)
	}

	if upd.Bio != nil {
		bio := strings.TrimSpace(*upd.Bio)
		if utf8.RuneCountInString(bio) > maxBioLength {
			return upd, fmt.Errorf("%w: bio is longer than %d characters", ErrInvalidProfile, maxBioLength)
		}
		upd.Bio = &bio
	}

	if upd.PricePerHour != nil && (*upd.PricePerHour < 0 || *upd.PricePerHour > maxPricePerHour) {
		return upd, fmt.Errorf("%w: price must be between 0 and %d", ErrInvalidProfile, maxPricePerHour)
	}

	if upd.Languages != nil {
		langs := make([]string, 0, len(upd.Languages))
		seen := make(map[string]bool, len(upd.Languages))
		for _, raw := range upd.Languages {
			code := strings.ToLower(strings.TrimSpace(raw))
			if code == "" || seen[code] {
				continue
			}
			if !isLanguageCode(code) {
				return upd, fmt.Errorf("%w: bad language code %q", ErrInvalidProfile, raw)
			}
			seen[code] = true
			langs = append(langs, code)
		}
		upd.Languages = langs
	}

	return upd, nil
}

// isLanguageCode двух- или трёхбуквенный код ISO 639
func isLanguageCode(code string) bool {
	if len(code) < 2 || len(code) > 3 {
		return false
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
