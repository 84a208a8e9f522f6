package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

type execCall struct {
	sql  string
	args []interface{}
}

// fakeTx записывает Exec и пакеты; остальные методы pgx.Tx не вызываются
type fakeTx struct {
	pgx.Tx
	execs    []execCall
	batches  []*pgx.Batch
	execErr  error
	batchErr error
	failAt   int
}

func (tx *fakeTx) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	tx.execs = append(tx.execs, execCall{sql: sql, args: args})
	if tx.execErr != nil {
		return pgconn.CommandTag{}, tx.execErr
	}
	return pgconn.NewCommandTag("DELETE 2"), nil
}

func (tx *fakeTx) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	tx.batches = append(tx.batches, b)
	return &fakeBatchResults{tx: tx}
}

type fakeBatchResults struct {
	pgx.BatchResults
	tx     *fakeTx
	n      int
	closed bool
}

func (r *fakeBatchResults) Exec() (pgconn.CommandTag, error) {
	defer func() { r.n++ }()
	if r.tx.batchErr != nil && r.n == r.tx.failAt {
		return pgconn.CommandTag{}, r.tx.batchErr
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (r *fakeBatchResults) Close() error {
	r.closed = true
	return nil
}

// fakeDB повторяет контракт base.Repository.WithTx: коммит при успехе, откат при ошибке
type fakeDB struct {
	tx         *fakeTx
	began      int
	committed  bool
	rolledBack bool
}

func (db *fakeDB) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, errors.New("not used")
}

func (db *fakeDB) WithTx(_ context.Context, fn func(tx pgx.Tx) error) error {
	db.began++
	if err := fn(db.tx); err != nil {
		db.rolledBack = true
		return err
	}
	db.committed = true
	return nil
}

func TestReplaceWeeklyDeletesThenInsertsInOneTx(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{}}
	repo := newAvailabilityRepository(db, zap.NewNop())

	slots := []model.AvailabilitySlot{
		{Weekday: model.Monday, StartMinutes: 540, EndMinutes: 600},
		{Weekday: model.Thursday, StartMinutes: 1380, EndMinutes: 1440},
	}
	require.NoError(t, repo.ReplaceWeekly(context.Background(), 42, slots))

	assert.Equal(t, 1, db.began)
	assert.True(t, db.committed)
	assert.False(t, db.rolledBack)

	require.Len(t, db.tx.execs, 1)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(db.tx.execs[0].sql), "DELETE FROM weekly_availability"))
	assert.Equal(t, []interface{}{int64(42)}, db.tx.execs[0].args)

	require.Len(t, db.tx.batches, 1)
	queued := db.tx.batches[0].QueuedQueries
	require.Len(t, queued, 3)

	for i, slot := range slots {
		args := queued[i].Arguments
		require.Len(t, args, 5)
		assert.IsType(t, uuid.UUID{}, args[0])
		assert.Equal(t, []interface{}{int64(42), int(slot.Weekday), slot.StartMinutes, slot.EndMinutes}, args[1:])
	}
	assert.Contains(t, queued[2].SQL, "UPDATE tutor_profiles")
}

func TestReplaceWeeklyEmptyScheduleOnlyDeletes(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{}}
	repo := newAvailabilityRepository(db, zap.NewNop())

	require.NoError(t, repo.ReplaceWeekly(context.Background(), 7, nil))

	assert.True(t, db.committed)
	require.Len(t, db.tx.batches, 1)
	assert.Equal(t, 1, db.tx.batches[0].Len(), "only the profile touch is queued")
}

func TestReplaceWeeklyRollsBackOnInsertError(t *testing.T) {
	insertErr := errors.New("unique violation")
	db := &fakeDB{tx: &fakeTx{batchErr: insertErr, failAt: 1}}
	repo := newAvailabilityRepository(db, zap.NewNop())

	err := repo.ReplaceWeekly(context.Background(), 42, []model.AvailabilitySlot{
		{Weekday: model.Monday, StartMinutes: 540, EndMinutes: 600},
		{Weekday: model.Monday, StartMinutes: 600, EndMinutes: 660},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, insertErr)
	assert.Contains(t, err.Error(), "insert slot 1")
	assert.True(t, db.rolledBack)
	assert.False(t, db.committed)
}

func TestReplaceWeeklyRollsBackOnDeleteError(t *testing.T) {
	deleteErr := errors.New("connection reset")
	db := &fakeDB{tx: &fakeTx{execErr: deleteErr}}
	repo := newAvailabilityRepository(db, zap.NewNop())

	err := repo.ReplaceWeekly(context.Background(), 42, []model.AvailabilitySlot{
		{Weekday: model.Monday, StartMinutes: 540, EndMinutes: 600},
	})

	assert.ErrorIs(t, err, deleteErr)
	assert.True(t, db.rolledBack)
	assert.Empty(t, db.tx.batches)
}

func TestReplaceWeeklyRejectsInvalidSlotBeforeTx(t *testing.T) {
	db := &fakeDB{tx: &fakeTx{}}
	repo := newAvailabilityRepository(db, zap.NewNop())

	err := repo.ReplaceWeekly(context.Background(), 42, []model.AvailabilitySlot{
		{Weekday: model.Monday, StartMinutes: 600, EndMinutes: 540},
	})

	require.Error(t, err)
	assert.Equal(t, 0, db.began)
}
