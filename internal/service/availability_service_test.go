package service

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/availability"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

func tutorWithSlots() *model.Tutor {
	t := tutor(7, "Layla", 25, 4.2, "Chemistry")
	t.Availability = []model.AvailabilitySlot{
		{Weekday: model.Wednesday, StartMinutes: 600, EndMinutes: 660},
	}
	return t
}

func TestOpenLoadsPersistedSlots(t *testing.T) {
	source := newFakeTutors(tutorWithSlots())
	svc := NewAvailabilityService(source, source, nil, zap.NewNop())

	editor, err := svc.Open(context.Background(), 700)
	require.NoError(t, err)

	assert.Equal(t, int64(7), editor.TutorID())
	assert.False(t, editor.Dirty())
	assert.Equal(t, availability.CellAvailable, editor.State(availability.Cell{Weekday: model.Wednesday, Hour: 10}))
}

func TestOpenRejectsNonTutor(t *testing.T) {
	source := newFakeTutors(tutorWithSlots())
	svc := NewAvailabilityService(source, source, nil, zap.NewNop())

	_, err := svc.Open(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotATutor)
}

func TestCommitReplacesScheduleAndInvalidatesCache(t *testing.T) {
	source := newFakeTutors(tutorWithSlots())
	c := newFakeCache()
	svc := NewAvailabilityService(source, source, c, zap.NewNop())
	ctx := context.Background()

	editor, err := svc.Open(ctx, 700)
	require.NoError(t, err)

	_, err = editor.Toggle(availability.Cell{Weekday: model.Wednesday, Hour: 10})
	require.NoError(t, err)
	_, err = editor.Toggle(availability.Cell{Weekday: model.Friday, Hour: 18})
	require.NoError(t, err)
	require.True(t, editor.Dirty())

	require.NoError(t, svc.Commit(ctx, editor))

	assert.Equal(t, []model.AvailabilitySlot{
		{Weekday: model.Friday, StartMinutes: 1080, EndMinutes: 1140},
	}, source.replaced[7])
	assert.False(t, editor.Dirty())
	assert.Equal(t, []int64{7}, c.invalidated)
}

func TestCommitClearedEditorStoresEmptySchedule(t *testing.T) {
	source := newFakeTutors(tutorWithSlots())
	svc := NewAvailabilityService(source, source, nil, zap.NewNop())
	ctx := context.Background()

	editor, err := svc.Open(ctx, 700)
	require.NoError(t, err)
	editor.Clear()

	require.NoError(t, svc.Commit(ctx, editor))
	assert.Empty(t, source.replaced[7])
	assert.Contains(t, source.replaced, int64(7))
}

func TestCommitErrors(t *testing.T) {
	source := newFakeTutors(tutorWithSlots())
	svc := NewAvailabilityService(source, source, nil, zap.NewNop())
	ctx := context.Background()

	assert.ErrorIs(t, svc.Commit(ctx, nil), ErrNoEditSession)

	editor, err := svc.Open(ctx, 700)
	require.NoError(t, err)
	editor.Clear()

	source.err = errors.New("tx aborted")
	assert.ErrorIs(t, svc.Commit(ctx, editor), source.err)
	assert.True(t, editor.Dirty())
}

func TestCommitIgnoresCacheFailure(t *testing.T) {
	source := newFakeTutors(tutorWithSlots())
	c := newFakeCache()
	c.err = errors.New("redis down")
	svc := NewAvailabilityService(source, source, c, zap.NewNop())
	ctx := context.Background()

	editor, err := svc.Open(ctx, 700)
	require.NoError(t, err)

	assert.NoError(t, svc.Commit(ctx, editor))
	assert.Equal(t, []int64{7}, c.invalidated)
}

func TestWeekImage(t *testing.T) {
	source := newFakeTutors(tutorWithSlots())
	svc := NewAvailabilityService(source, source, nil, zap.NewNop())
	ctx := context.Background()

	selection := availability.NewSelection(availability.Cell{Weekday: model.Wednesday, Hour: 10})
	data, err := svc.WeekImage(ctx, 7, selection)
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)

	_, err = svc.WeekImage(ctx, 99, nil)
	assert.Error(t, err)
}
