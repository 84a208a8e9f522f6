package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
	"github.com/v7s7/DaresniCheckUpdated/internal/repository/base"
)

// availabilityDB часть base.Repository, нужная расписанию
type availabilityDB interface {
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// AvailabilityRepository хранит недельное расписание свободного времени репетиторов
type AvailabilityRepository struct {
	db     availabilityDB
	logger *zap.Logger
}

func NewAvailabilityRepository(pool *pgxpool.Pool, logger *zap.Logger) *AvailabilityRepository {
	return newAvailabilityRepository(base.NewRepository(pool), logger)
}

func newAvailabilityRepository(db availabilityDB, logger *zap.Logger) *AvailabilityRepository {
	return &AvailabilityRepository{
		db:     db,
		logger: logger,
	}
}

// GetWeekly получает слоты репетитора, отсортированные по дню и началу
func (r *AvailabilityRepository) GetWeekly(ctx context.Context, tutorID int64) ([]model.AvailabilitySlot, error) {
	byTutor, err := r.GetWeeklyByTutorIDs(ctx, []int64{tutorID})
	if err != nil {
		return nil, err
	}
	return byTutor[tutorID], nil
}

// GetWeeklyByTutorIDs получает расписания нескольких репетиторов одним запросом
func (r *AvailabilityRepository) GetWeeklyByTutorIDs(ctx context.Context, tutorIDs []int64) (map[int64][]model.AvailabilitySlot, error) {
	query := `
		SELECT tutor_id, weekday, start_minutes, end_minutes
		FROM weekly_availability
		WHERE tutor_id = ANY($1)
		ORDER BY tutor_id, weekday, start_minutes
	`

	rows, err := r.db.Query(ctx, query, tutorIDs)
	if err != nil {
		return nil, fmt.Errorf("get weekly availability: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]model.AvailabilitySlot, len(tutorIDs))
	for rows.Next() {
		var (
			tutorID    int64
			weekday    int
			start, end int
		)
		if err := rows.Scan(&tutorID, &weekday, &start, &end); err != nil {
			return nil, fmt.Errorf("scan availability slot: %w", err)
		}
		result[tutorID] = append(result[tutorID], model.AvailabilitySlot{
			Weekday:      model.Weekday(weekday),
			StartMinutes: start,
			EndMinutes:   end,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate availability slots: %w", err)
	}

	return result, nil
}

// ReplaceWeekly заменяет расписание репетитора целиком в одной транзакции
func (r *AvailabilityRepository) ReplaceWeekly(ctx context.Context, tutorID int64, slots []model.AvailabilitySlot) error {
	for _, slot := range slots {
		if !slot.IsValid() {
			return fmt.Errorf("replace weekly availability: invalid slot %s", slot)
		}
	}

	deleteQuery := `DELETE FROM weekly_availability WHERE tutor_id = $1`
	insertQuery := `
		INSERT INTO weekly_availability (id, tutor_id, weekday, start_minutes, end_minutes)
		VALUES ($1, $2, $3, $4, $5)
	`
	touchQuery := `UPDATE tutor_profiles SET updated_at = NOW() WHERE user_id = $1`

	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteQuery, tutorID); err != nil {
			return fmt.Errorf("delete old slots: %w", err)
		}

		batch := &pgx.Batch{}
		for _, slot := range slots {
			batch.Queue(insertQuery, uuid.New(), tutorID, int(slot.Weekday), slot.StartMinutes, slot.EndMinutes)
		}
		batch.Queue(touchQuery, tutorID)

		results := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("insert slot %d: %w", i, err)
			}
		}
		return results.Close()
	})
	if err != nil {
		r.logger.Error("Failed to replace weekly availability",
			zap.Int64("tutor_id", tutorID),
			zap.Int("slots", len(slots)),
			zap.Error(err))
		return fmt.Errorf("replace weekly availability: %w", err)
	}

	r.logger.Info("Weekly availability replaced",
		zap.Int64("tutor_id", tutorID),
		zap.Int("slots", len(slots)))

	return nil
}
