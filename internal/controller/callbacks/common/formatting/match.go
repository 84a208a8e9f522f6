package formatting

import (
	"fmt"
	"html"
	"strings"

	"github.com/v7s7/DaresniCheckUpdated/internal/matching"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

var factorNames = map[matching.Factor]string{
	matching.FactorSubject:      "Предмет",
	matching.FactorAvailability: "Время",
	matching.FactorRating:       "Рейтинг",
	matching.FactorPrice:        "Цена",
	matching.FactorLanguage:     "Язык",
	matching.FactorVerified:     "Проверен",
}

// FormatScore оценка в процентах: 0.873 -> "87%"
func FormatScore(score float64) string {
	return fmt.Sprintf("%.0f%%", score*100)
}

// FormatTutorLine краткая строка о репетиторе
func FormatTutorLine(t *model.Tutor) string {
	parts := []string{FormatPrice(t.PricePerHour)}
	if t.RatingCount > 0 {
		parts = append(parts, fmt.Sprintf("⭐ %.1f (%d %s)", t.RatingAvg, t.RatingCount, PluralizeReviews(t.RatingCount)))
	}
	if len(t.Languages) > 0 {
		parts = append(parts, "🗣 "+strings.Join(t.Languages, ", "))
	}
	if t.Verified {
		parts = append(parts, "✔️")
	}
	return strings.Join(parts, " · ")
}

// FormatRanked элемент выдачи поиска в HTML
func FormatRanked(position int, r matching.Ranked) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>%d. %s</b> · %s\n", position, html.EscapeString(r.Tutor.Name), FormatScore(r.Match.Score))
	sb.WriteString("   " + FormatTutorLine(r.Tutor) + "\n")

	if len(r.Tutor.Subjects) > 0 {
		names := make([]string, len(r.Tutor.Subjects))
		for i, s := range r.Tutor.Subjects {
			names[i] = html.EscapeString(s.Name)
		}
		sb.WriteString("   📚 " + strings.Join(names, ", ") + "\n")
	}

	for _, reason := range r.Match.Reasons {
		sb.WriteString("   • " + reason + "\n")
	}

	return sb.String()
}

// FormatBreakdown подробная оценка по факторам с весами
func FormatBreakdown(r matching.Ranked, weights matching.Weights) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<b>%s</b>\n", html.EscapeString(r.Tutor.Name))
	fmt.Fprintf(&sb, "Общая оценка: <b>%s</b> (%.3f)\n\n", FormatScore(r.Match.Score), r.Match.Score)

	for _, f := range matching.AllFactors() {
		fmt.Fprintf(&sb, "%s: %.2f × %.2f\n", factorNames[f], r.Match.Breakdown.Get(f), weights.Of(f))
	}

	if len(r.Match.Reasons) > 0 {
		sb.WriteString("\n")
		for _, reason := range r.Match.Reasons {
			sb.WriteString("• " + reason + "\n")
		}
	}

	return sb.String()
}
