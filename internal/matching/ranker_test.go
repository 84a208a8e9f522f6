package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

func names(ranked []Ranked) []string {
	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Tutor.Name)
	}
	return out
}

func TestRankerStableOnTies(t *testing.T) {
	a := perfectTutor()
	a.Name = "A"
	b := &model.Tutor{Name: "B", Subjects: subjects("History")}
	c := perfectTutor()
	c.Name = "C"

	criteria := model.SearchCriteria{Subject: "Math", Budget: "25-50"}

	for _, workers := range []int{1, 4} {
		ranked := NewRanker(DefaultEngine(), workers).Rank([]*model.Tutor{a, b, c}, criteria)

		require.Len(t, ranked, 3)
		assert.Equal(t, []string{"A", "C", "B"}, names(ranked), "workers=%d", workers)
		assert.Equal(t, ranked[0].Match.Score, ranked[1].Match.Score)
		assert.Greater(t, ranked[1].Match.Score, ranked[2].Match.Score)
	}
}

func TestRankerParallelMatchesSerial(t *testing.T) {
	var tutors []*model.Tutor
	for i := 0; i < 200; i++ {
		tutors = append(tutors, &model.Tutor{
			ID:           int64(i),
			Name:         string(rune('a' + i%26)),
			PricePerHour: float64(10 + i%60),
			RatingAvg:    float64(i%6) * 0.9,
			Verified:     i%3 == 0,
			Languages:    []string{"en"},
			Subjects:     subjects("Mathematics"),
		})
	}
	criteria := model.SearchCriteria{Subject: "Math", Budget: "20-40", Language: "en"}

	serial := NewRanker(nil, 1).Rank(tutors, criteria)
	parallel := NewRanker(nil, 8).Rank(tutors, criteria)

	require.Len(t, parallel, len(serial))
	for i := range serial {
		assert.Equal(t, serial[i].Tutor.ID, parallel[i].Tutor.ID)
		assert.Equal(t, serial[i].Match, parallel[i].Match)
	}
	for i := 1; i < len(parallel); i++ {
		assert.GreaterOrEqual(t, parallel[i-1].Match.Score, parallel[i].Match.Score)
	}
}

func TestRankerEmptyInput(t *testing.T) {
	assert.Empty(t, NewRanker(nil, 4).Rank(nil, model.SearchCriteria{}))
}

func TestTop(t *testing.T) {
	ranked := make([]Ranked, 5)

	assert.Len(t, Top(ranked, 3), 3)
	assert.Len(t, Top(ranked, 10), 5)
	assert.Len(t, Top(ranked, -1), 5)
}
