package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scoresOf(subject, availability, rating, price, language, verified float64) Scores {
	return Scores{subject, availability, rating, price, language, verified}
}

func TestGenerateReasons(t *testing.T) {
	tests := []struct {
		name   string
		scores Scores
		want   []string
	}{
		{
			name:   "nothing qualifies",
			scores: scoresOf(0, 0.5, 0.4, 0.5, 0.5, 0),
			want:   []string{},
		},
		{
			name:   "good subject only",
			scores: scoresOf(0.7, 0.5, 0, 0.5, 0.5, 0),
			want:   []string{ReasonGoodSubject},
		},
		{
			name:   "priority order and cap",
			scores: scoresOf(1, 1, 1, 1, 1, 1),
			want:   []string{ReasonPerfectSubject, ReasonHighlyRated, ReasonWithinBudget},
		},
		{
			name:   "skipped conditions make room for later ones",
			scores: scoresOf(0, 1, 0.2, 0.1, 1, 1),
			want:   []string{ReasonAvailable, ReasonVerified},
		},
		{
			name:   "cheaper than budget still counts",
			scores: scoresOf(0, 0.2, 0, 0.8, 0, 0),
			want:   []string{ReasonWithinBudget},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateReasons(tt.scores)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), 3)
		})
	}
}
