package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

func perfectTutor() *model.Tutor {
	return &model.Tutor{
		ID:           1,
		Name:         "Layla",
		PricePerHour: 30,
		RatingAvg:    5,
		RatingCount:  12,
		Languages:    []string{"en", "ar"},
		Verified:     true,
		Subjects:     subjects("Math"),
		Availability: []model.AvailabilitySlot{
			{Weekday: model.Monday, StartMinutes: 540, EndMinutes: 600},
		},
	}
}

func TestEngineEvaluatePerfectMatch(t *testing.T) {
	engine := DefaultEngine()

	result := engine.Evaluate(perfectTutor(), model.SearchCriteria{
		Subject:      "math",
		Budget:       "25-50",
		Language:     "en",
		Availability: []model.Weekday{model.Monday},
	})

	assert.Equal(t, 1.0, result.Score)
	assert.Equal(t, []string{ReasonPerfectSubject, ReasonHighlyRated, ReasonWithinBudget}, result.Reasons)
	for _, f := range AllFactors() {
		assert.Equal(t, 1.0, result.Breakdown.Get(f), f.String())
	}
}

func TestEngineEvaluateEmptyCriteriaIsNeutral(t *testing.T) {
	engine := DefaultEngine()

	result := engine.Evaluate(&model.Tutor{ID: 2}, model.SearchCriteria{})

	// availability 0.5*0.25 + price 0.5*0.15 + language 0.5*0.07
	assert.InDelta(t, 0.235, result.Score, 1e-12)
	assert.Empty(t, result.Reasons)
	assert.Equal(t, 0.0, result.Breakdown.Get(FactorSubject))
	assert.Equal(t, 0.5, result.Breakdown.Get(FactorAvailability))
	assert.Equal(t, 0.5, result.Breakdown.Get(FactorPrice))
	assert.Equal(t, 0.5, result.Breakdown.Get(FactorLanguage))
}

func TestEngineScoreAlwaysInRange(t *testing.T) {
	engine := DefaultEngine()
	tutors := []*model.Tutor{
		perfectTutor(),
		{PricePerHour: 1000, RatingAvg: 9, Subjects: subjects("")},
		{PricePerHour: -5, RatingAvg: -3},
	}
	criteria := []model.SearchCriteria{
		{},
		{Subject: "Math", Budget: "1-2"},
		{Budget: "garbage", Language: "xx", Availability: []model.Weekday{model.Sunday}},
	}

	for _, tutor := range tutors {
		for _, c := range criteria {
			result := engine.Evaluate(tutor, c)
			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 1.0)
			assert.LessOrEqual(t, len(result.Reasons), 3)
		}
	}
}

func TestEngineResultsAreIndependent(t *testing.T) {
	engine := DefaultEngine()
	tutor := perfectTutor()
	c := model.SearchCriteria{Subject: "Math"}

	first := engine.Evaluate(tutor, c)
	first.Reasons[0] = "changed"
	first.Breakdown[FactorSubject] = 0

	second := engine.Evaluate(tutor, c)
	assert.Equal(t, ReasonPerfectSubject, second.Reasons[0])
	assert.Equal(t, 1.0, second.Breakdown.Get(FactorSubject))
}

func TestScoresMarshalJSON(t *testing.T) {
	data, err := Scores{1, 0.5, 0.9, 0.8, 0.3, 0}.MarshalJSON()
	require.NoError(t, err)

	assert.JSONEq(t, `{"subject":1,"availability":0.5,"rating":0.9,"price":0.8,"language":0.3,"verified":0}`, string(data))
}
