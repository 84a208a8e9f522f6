package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
	"github.com/v7s7/DaresniCheckUpdated/internal/repository"
)

func ptr[T any](v T) *T {
	return &v
}

func newProfileFixture() (*ProfileService, *fakeTutors, *fakeCache) {
	source := newFakeTutors(&model.Tutor{ID: 5, TelegramID: 500, Name: "Mona"})
	c := newFakeCache()
	return NewProfileService(source, source, source, c, zap.NewNop()), source, c
}

func TestProfileRejectsNonTutor(t *testing.T) {
	svc, _, _ := newProfileFixture()

	_, err := svc.Profile(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotATutor)

	_, err = svc.AddSubject(context.Background(), 999, "Math", "", nil)
	assert.ErrorIs(t, err, ErrNotATutor)
}

func TestUpdateProfileNormalizes(t *testing.T) {
	svc, source, c := newProfileFixture()

	err := svc.UpdateProfile(context.Background(), 500, model.ProfileUpdate{
		Bio:          ptr("  Calculus and algebra  "),
		PricePerHour: ptr(25.0),
		Languages:    []string{"EN", " ar", "en", ""},
	})
	require.NoError(t, err)

	upd := source.updates[5]
	require.NotNil(t, upd.Bio)
	assert.Equal(t, "Calculus and algebra", *upd.Bio)
	assert.Equal(t, 25.0, *upd.PricePerHour)
	assert.Equal(t, []string{"en", "ar"}, upd.Languages)
	assert.Equal(t, []int64{5}, c.invalidated)
}

func TestUpdateProfileValidation(t *testing.T) {
	tests := []struct {
		name string
		upd  model.ProfileUpdate
	}{
		{"empty", model.ProfileUpdate{}},
		{"negative price", model.ProfileUpdate{PricePerHour: ptr(-1.0)}},
		{"huge price", model.ProfileUpdate{PricePerHour: ptr(1e6)}},
		{"bad language", model.ProfileUpdate{Languages: []string{"english"}}},
		{"digits in language", model.ProfileUpdate{Languages: []string{"e1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, source, _ := newProfileFixture()
			err := svc.UpdateProfile(context.Background(), 500, tt.upd)
			assert.ErrorIs(t, err, ErrInvalidProfile)
			assert.Empty(t, source.updates)
		})
	}
}

func TestAddAndRemoveSubject(t *testing.T) {
	svc, _, c := newProfileFixture()
	ctx := context.Background()

	subject, err := svc.AddSubject(ctx, 500, " Math ", "University", ptr(30.0))
	require.NoError(t, err)
	assert.Equal(t, "Math", subject.Name)
	assert.Equal(t, int64(5), subject.TutorID)

	_, err = svc.AddSubject(ctx, 500, "Physics", "", nil)
	require.NoError(t, err)

	subjects, err := svc.Subjects(ctx, 500)
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Math", subjects[0].Name)
	assert.Equal(t, "Physics", subjects[1].Name)

	require.NoError(t, svc.RemoveSubject(ctx, 500, subject.ID))
	subjects, err = svc.Subjects(ctx, 500)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "Physics", subjects[0].Name)

	err = svc.RemoveSubject(ctx, 500, subject.ID)
	assert.ErrorIs(t, err, repository.ErrSubjectNotFound)

	assert.Len(t, c.invalidated, 3)
}

func TestAddSubjectValidation(t *testing.T) {
	svc, _, _ := newProfileFixture()
	ctx := context.Background()

	_, err := svc.AddSubject(ctx, 500, "   ", "", nil)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = svc.AddSubject(ctx, 500, "Math", "", ptr(0.0))
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = svc.AddSubject(ctx, 500, "Math", "School", nil)
	require.NoError(t, err)
	_, err = svc.AddSubject(ctx, 500, "math", "school", nil)
	assert.ErrorIs(t, err, ErrInvalidProfile, "duplicate subject")

	for i := 1; i < maxSubjects; i++ {
		_, err = svc.AddSubject(ctx, 500, "Subject", string(rune('A'+i)), nil)
		require.NoError(t, err)
	}
	_, err = svc.AddSubject(ctx, 500, "One more", "", nil)
	assert.ErrorIs(t, err, ErrInvalidProfile)
}
