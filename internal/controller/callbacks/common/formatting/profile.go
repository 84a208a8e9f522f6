package formatting

import (
	"fmt"
	"html"
	"strings"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

// FormatSubject строка предмета: "1. Math (University) · 30 $/ч"
func FormatSubject(n int, s model.Subject, tutorPrice float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d. %s", n, html.EscapeString(s.Name))
	if s.Level != "" {
		fmt.Fprintf(&sb, " (%s)", html.EscapeString(s.Level))
	}
	sb.WriteString(" · ")
	sb.WriteString(FormatPrice(s.EffectivePrice(tutorPrice)))
	return sb.String()
}

// FormatProfile карточка профиля репетитора
func FormatProfile(t *model.Tutor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🎓 <b>%s</b> (ID %d)\n", html.EscapeString(t.Name), t.ID)
	sb.WriteString(FormatTutorLine(t))
	sb.WriteString("\n")

	if t.Bio != "" {
		fmt.Fprintf(&sb, "\n%s\n", html.EscapeString(t.Bio))
	}

	sb.WriteString("\n<b>Предметы:</b>\n")
	if len(t.Subjects) == 0 {
		sb.WriteString("не указаны\n")
	}
	for i, s := range t.Subjects {
		sb.WriteString(FormatSubject(i+1, s, t.PricePerHour))
		sb.WriteString("\n")
	}

	sb.WriteString("\n<b>Свободное время:</b>\n")
	sb.WriteString(FormatWeekSummary(t.Availability))

	return sb.String()
}
