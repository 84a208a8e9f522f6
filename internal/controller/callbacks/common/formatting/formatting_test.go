package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/v7s7/DaresniCheckUpdated/internal/matching"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

func TestPluralize(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{1, "репетитор"},
		{2, "репетитора"},
		{5, "репетиторов"},
		{11, "репетиторов"},
		{21, "репетитор"},
		{112, "репетиторов"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PluralizeTutors(tt.count), "count=%d", tt.count)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "цена не указана", FormatPrice(0))
	assert.Equal(t, "25 $/ч", FormatPrice(25))
	assert.Equal(t, "12.50 $/ч", FormatPrice(12.5))
}

func TestFormatWeekSummary(t *testing.T) {
	assert.Equal(t, "свободное время не указано", FormatWeekSummary(nil))

	summary := FormatWeekSummary([]model.AvailabilitySlot{
		{Weekday: model.Monday, StartMinutes: 540, EndMinutes: 600},
		{Weekday: model.Monday, StartMinutes: 780, EndMinutes: 840},
		{Weekday: model.Sunday, StartMinutes: 1380, EndMinutes: 1440},
	})
	assert.Equal(t, "Пн: 09:00-10:00, 13:00-14:00\nВс: 23:00-24:00", summary)
}

func TestFormatSlotAndWeekday(t *testing.T) {
	assert.Equal(t, "Ср 06:30-07:30", FormatSlot(model.AvailabilitySlot{Weekday: model.Wednesday, StartMinutes: 390, EndMinutes: 450}))
	assert.Equal(t, "Пятница", GetWeekdayName(model.Friday))
	assert.Equal(t, "?", GetWeekdayShort(model.Weekday(9)))
}

func TestFormatRanked(t *testing.T) {
	r := matching.Ranked{
		Tutor: &model.Tutor{
			Name:         "Sara <3",
			PricePerHour: 20,
			RatingAvg:    4.8,
			RatingCount:  3,
			Languages:    []string{"en"},
			Verified:     true,
			Subjects:     []model.Subject{{Name: "Math"}},
		},
		Match: matching.MatchResult{Score: 0.873, Reasons: []string{matching.ReasonPerfectSubject}},
	}

	text := FormatRanked(1, r)
	assert.Contains(t, text, "<b>1. Sara &lt;3</b> · 87%")
	assert.Contains(t, text, "⭐ 4.8 (3 отзыва)")
	assert.Contains(t, text, "📚 Math")
	assert.Contains(t, text, "• Perfect subject match")
}

func TestFormatBreakdown(t *testing.T) {
	engine := matching.DefaultEngine()
	tutor := &model.Tutor{Name: "Omar", Subjects: []model.Subject{{Name: "Physics"}}}
	r := matching.Ranked{Tutor: tutor, Match: engine.Evaluate(tutor, model.SearchCriteria{Subject: "physics"})}

	text := FormatBreakdown(r, engine.Weights())
	assert.Contains(t, text, "Предмет: 1.00 × 0.30")
	assert.Contains(t, text, "Проверен: 0.00 × 0.03")
}

func TestFormatProfile(t *testing.T) {
	tutor := &model.Tutor{
		ID:           3,
		Name:         "Sara <Ali>",
		Bio:          "Physics & chemistry",
		PricePerHour: 18,
		Languages:    []string{"en"},
		Subjects:     []model.Subject{{Name: "Physics", Level: "High School"}},
		Availability: []model.AvailabilitySlot{{Weekday: model.Tuesday, StartMinutes: 600, EndMinutes: 660}},
	}

	text := FormatProfile(tutor)
	assert.Contains(t, text, "Sara &lt;Ali&gt;")
	assert.Contains(t, text, "(ID 3)")
	assert.Contains(t, text, "Physics &amp; chemistry")
	assert.Contains(t, text, "1. Physics (High School) · 18 $/ч")
	assert.Contains(t, text, "Вт: 10:00-11:00")

	empty := FormatProfile(&model.Tutor{ID: 1, Name: "New"})
	assert.Contains(t, empty, "не указаны")
	assert.Contains(t, empty, "свободное время не указано")
}
