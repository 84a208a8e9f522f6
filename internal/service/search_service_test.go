package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/matching"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
	"github.com/v7s7/DaresniCheckUpdated/internal/repository"
)

func tutor(id int64, name string, price, rating float64, subjects ...string) *model.Tutor {
	t := &model.Tutor{
		ID:           id,
		TelegramID:   id * 100,
		Name:         name,
		PricePerHour: price,
		RatingAvg:    rating,
		Languages:    []string{"en"},
	}
	for _, s := range subjects {
		t.Subjects = append(t.Subjects, model.Subject{Name: s})
	}
	return t
}

func names(ranked []*model.Tutor) []string {
	out := make([]string, len(ranked))
	for i, t := range ranked {
		out[i] = t.Name
	}
	return out
}

func TestPrefilter(t *testing.T) {
	ahmed := tutor(1, "Ahmed", 20, 4.8, "Mathematics")
	ahmed.Verified = true
	ahmed.Subjects[0].Level = "University"
	sara := tutor(2, "Sara", 40, 3.9, "Physics")
	sara.Languages = []string{"ar"}
	noPrice := tutor(3, "Omar", 0, 4.5, "Math")
	all := []*model.Tutor{ahmed, sara, noPrice}

	tests := []struct {
		name     string
		criteria model.SearchCriteria
		want     []string
	}{
		{"no filters", model.SearchCriteria{}, []string{"Ahmed", "Sara", "Omar"}},
		{"max price", model.SearchCriteria{MaxPrice: 30}, []string{"Ahmed"}},
		{"min price", model.SearchCriteria{MinPrice: 25}, []string{"Sara"}},
		{"min rating", model.SearchCriteria{MinRating: 4.5}, []string{"Ahmed", "Omar"}},
		{"subject substring", model.SearchCriteria{Subject: "math"}, []string{"Ahmed", "Omar"}},
		{"language", model.SearchCriteria{Language: "ar"}, []string{"Sara"}},
		{"verified only", model.SearchCriteria{VerifiedOnly: true}, []string{"Ahmed"}},
		{"level", model.SearchCriteria{Level: "university"}, []string{"Ahmed"}},
		{"nothing matches", model.SearchCriteria{Subject: "chemistry"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Prefilter(all, tt.criteria)))
		})
	}
}

func TestSearchRanksCandidates(t *testing.T) {
	weak := tutor(1, "Weak", 100, 2, "Mathematics")
	strong := tutor(2, "Strong", 20, 5, "Math")
	strong.Verified = true
	source := newFakeTutors(weak, strong)

	svc := NewSearchService(source, nil, nil, 4, zap.NewNop())
	ranked, err := svc.Search(context.Background(), model.SearchCriteria{Subject: "math", Budget: "10-30"})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "Strong", ranked[0].Tutor.Name)
	assert.GreaterOrEqual(t, ranked[0].Match.Score, ranked[1].Match.Score)
	assert.Contains(t, ranked[0].Match.Reasons, "Perfect subject match")
}

func TestSearchUsesCache(t *testing.T) {
	source := newFakeTutors(tutor(1, "Ahmed", 20, 4, "Math"))
	c := newFakeCache()
	svc := NewSearchService(source, c, nil, 1, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Search(ctx, model.SearchCriteria{})
	require.NoError(t, err)
	_, err = svc.Search(ctx, model.SearchCriteria{})
	require.NoError(t, err)

	assert.Equal(t, 1, source.listCalls)
	assert.Len(t, c.list, 1)
}

func TestSearchFallsBackWhenCacheFails(t *testing.T) {
	source := newFakeTutors(tutor(1, "Ahmed", 20, 4, "Math"))
	c := newFakeCache()
	c.err = errors.New("redis down")
	svc := NewSearchService(source, c, nil, 1, zap.NewNop())

	ranked, err := svc.Search(context.Background(), model.SearchCriteria{})
	require.NoError(t, err)
	assert.Len(t, ranked, 1)
	assert.Equal(t, 1, source.listCalls)
}

func TestSearchStorageError(t *testing.T) {
	source := newFakeTutors()
	source.err = errors.New("db down")
	svc := NewSearchService(source, nil, nil, 1, zap.NewNop())

	_, err := svc.Search(context.Background(), model.SearchCriteria{})
	assert.ErrorIs(t, err, source.err)
}

func TestEvaluate(t *testing.T) {
	source := newFakeTutors(tutor(1, "Ahmed", 20, 5, "Math"))
	svc := NewSearchService(source, newFakeCache(), nil, 1, zap.NewNop())
	ctx := context.Background()

	got, err := svc.Evaluate(ctx, 1, model.SearchCriteria{Subject: "Math"})
	require.NoError(t, err)
	assert.Equal(t, "Ahmed", got.Tutor.Name)
	assert.Equal(t, 1.0, got.Match.Breakdown.Get(matching.FactorSubject))

	_, err = svc.Evaluate(ctx, 42, model.SearchCriteria{})
	assert.ErrorIs(t, err, repository.ErrTutorNotFound)
}

func TestWarmCache(t *testing.T) {
	source := newFakeTutors(tutor(1, "A", 10, 4), tutor(2, "B", 10, 4))
	c := newFakeCache()
	svc := NewSearchService(source, c, nil, 1, zap.NewNop())

	n, err := svc.WarmCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, c.list, 2)

	disabled := NewSearchService(source, nil, nil, 1, zap.NewNop())
	n, err = disabled.WarmCache(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
