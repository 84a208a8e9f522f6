package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

// ErrSubjectNotFound предмета нет или он принадлежит другому репетитору
var ErrSubjectNotFound = errors.New("subject not found")

type SubjectRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewSubjectRepository(pool *pgxpool.Pool, logger *zap.Logger) *SubjectRepository {
	return &SubjectRepository{
		pool:   pool,
		logger: logger,
	}
}

// Create добавляет предмет в конец списка предметов репетитора
func (r *SubjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	query := `
		INSERT INTO tutor_subjects (tutor_id, name, level, price_override, position)
		VALUES ($1, $2, $3, $4,
			(SELECT COALESCE(MAX(position) + 1, 0) FROM tutor_subjects WHERE tutor_id = $1))
		RETURNING id
	`

	err := r.pool.QueryRow(
		ctx, query,
		subject.TutorID,
		subject.Name,
		subject.Level,
		subject.PriceOverride,
	).Scan(&subject.ID)

	if err != nil {
		r.logger.Error("Failed to insert subject into DB",
			zap.Int64("tutor_id", subject.TutorID),
			zap.String("name", subject.Name),
			zap.Error(err))
		return fmt.Errorf("create subject: %w", err)
	}

	r.logger.Info("Subject inserted",
		zap.Int64("subject_id", subject.ID),
		zap.Int64("tutor_id", subject.TutorID),
		zap.String("name", subject.Name))

	return nil
}

// GetByTutorID получает предметы репетитора в порядке профиля
func (r *SubjectRepository) GetByTutorID(ctx context.Context, tutorID int64) ([]model.Subject, error) {
	byTutor, err := r.GetByTutorIDs(ctx, []int64{tutorID})
	if err != nil {
		return nil, err
	}
	return byTutor[tutorID], nil
}

// GetByTutorIDs получает предметы сразу нескольких репетиторов одним запросом
func (r *SubjectRepository) GetByTutorIDs(ctx context.Context, tutorIDs []int64) (map[int64][]model.Subject, error) {
	query := `
		SELECT id, tutor_id, name, level, price_override
		FROM tutor_subjects
		WHERE tutor_id = ANY($1)
		ORDER BY tutor_id, position, id
	`

	rows, err := r.pool.Query(ctx, query, tutorIDs)
	if err != nil {
		return nil, fmt.Errorf("get subjects by tutors: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]model.Subject, len(tutorIDs))
	for rows.Next() {
		var subject model.Subject
		err := rows.Scan(
			&subject.ID,
			&subject.TutorID,
			&subject.Name,
			&subject.Level,
			&subject.PriceOverride,
		)
		if err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		result[subject.TutorID] = append(result[subject.TutorID], subject)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subjects: %w", err)
	}

	return result, nil
}

// Delete удаляет предмет репетитора
func (r *SubjectRepository) Delete(ctx context.Context, tutorID, subjectID int64) error {
	query := `DELETE FROM tutor_subjects WHERE id = $1 AND tutor_id = $2`

	result, err := r.pool.Exec(ctx, query, subjectID, tutorID)
	if err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSubjectNotFound
	}

	return nil
}
