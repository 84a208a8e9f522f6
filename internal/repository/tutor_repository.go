package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
	"github.com/v7s7/DaresniCheckUpdated/internal/repository/base"
)

// ErrTutorNotFound репетитор не найден или пользователь не является репетитором
var ErrTutorNotFound = errors.New("tutor not found")

// TutorRepository собирает снимки репетиторов: профиль, предметы и недельное расписание
type TutorRepository struct {
	db           *base.Repository
	subjects     *SubjectRepository
	availability *AvailabilityRepository
	logger       *zap.Logger
}

func NewTutorRepository(pool *pgxpool.Pool, subjects *SubjectRepository, availability *AvailabilityRepository, logger *zap.Logger) *TutorRepository {
	return &TutorRepository{
		db:           base.NewRepository(pool),
		subjects:     subjects,
		availability: availability,
		logger:       logger,
	}
}

const tutorSelect = `
	SELECT u.id, u.telegram_id,
		TRIM(u.first_name || ' ' || u.last_name) AS name,
		p.bio, p.price_per_hour, p.rating_avg, p.rating_count, p.languages, p.verified
	FROM users u
	JOIN tutor_profiles p ON p.user_id = u.id
	WHERE u.role = 'tutor'
`

func scanTutor(row pgx.Row) (*model.Tutor, error) {
	var tutor model.Tutor
	err := row.Scan(
		&tutor.ID,
		&tutor.TelegramID,
		&tutor.Name,
		&tutor.Bio,
		&tutor.PricePerHour,
		&tutor.RatingAvg,
		&tutor.RatingCount,
		&tutor.Languages,
		&tutor.Verified,
	)
	if err != nil {
		return nil, err
	}
	return &tutor, nil
}

// ListTutors получает снимки всех репетиторов
func (r *TutorRepository) ListTutors(ctx context.Context) ([]*model.Tutor, error) {
	rows, err := r.db.Query(ctx, tutorSelect+` ORDER BY u.id`)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	defer rows.Close()

	var tutors []*model.Tutor
	for rows.Next() {
		tutor, err := scanTutor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tutor: %w", err)
		}
		tutors = append(tutors, tutor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tutors: %w", err)
	}

	if err := r.attachDetails(ctx, tutors); err != nil {
		return nil, err
	}

	r.logger.Debug("Tutors loaded", zap.Int("count", len(tutors)))

	return tutors, nil
}

// GetTutor получает снимок репетитора по ID пользователя
func (r *TutorRepository) GetTutor(ctx context.Context, id int64) (*model.Tutor, error) {
	return r.getOne(ctx, tutorSelect+` AND u.id = $1`, id)
}

// GetByTelegramID получает снимок репетитора по Telegram ID
func (r *TutorRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.Tutor, error) {
	return r.getOne(ctx, tutorSelect+` AND u.telegram_id = $1`, telegramID)
}

func (r *TutorRepository) getOne(ctx context.Context, query string, arg int64) (*model.Tutor, error) {
	tutor, err := scanTutor(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, ErrTutorNotFound
		}
		return nil, fmt.Errorf("get tutor: %w", err)
	}

	if err := r.attachDetails(ctx, []*model.Tutor{tutor}); err != nil {
		return nil, err
	}

	return tutor, nil
}

// CreateProfile создаёт пустой профиль репетитора, если его ещё нет
func (r *TutorRepository) CreateProfile(ctx context.Context, userID int64) error {
	query := `INSERT INTO tutor_profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`

	if _, err := r.db.ExecAffected(ctx, query, userID); err != nil {
		return fmt.Errorf("create tutor profile: %w", err)
	}

	return nil
}

// UpdateProfile меняет только заданные поля профиля
func (r *TutorRepository) UpdateProfile(ctx context.Context, tutorID int64, upd model.ProfileUpdate) error {
	query := `
		UPDATE tutor_profiles
		SET bio = COALESCE($2, bio),
			price_per_hour = COALESCE($3, price_per_hour),
			languages = COALESCE($4, languages),
			updated_at = NOW()
		WHERE user_id = $1
	`

	affected, err := r.db.ExecAffected(ctx, query, tutorID, upd.Bio, upd.PricePerHour, upd.Languages)
	if err != nil {
		return fmt.Errorf("update tutor profile: %w", err)
	}
	if affected == 0 {
		return ErrTutorNotFound
	}

	r.logger.Info("Tutor profile updated", zap.Int64("tutor_id", tutorID))

	return nil
}

// attachDetails дозагружает предметы и расписание двумя запросами на весь список
func (r *TutorRepository) attachDetails(ctx context.Context, tutors []*model.Tutor) error {
	if len(tutors) == 0 {
		return nil
	}

	ids := make([]int64, len(tutors))
	for i, t := range tutors {
		ids[i] = t.ID
	}

	subjects, err := r.subjects.GetByTutorIDs(ctx, ids)
	if err != nil {
		return err
	}

	slots, err := r.availability.GetWeeklyByTutorIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, t := range tutors {
		t.Subjects = subjects[t.ID]
		t.Availability = slots[t.ID]
	}

	return nil
}
