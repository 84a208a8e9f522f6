package common

import (
	"fmt"
	"html"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/v7s7/DaresniCheckUpdated/internal/availability"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/common/formatting"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/common/keyboard"
	"github.com/v7s7/DaresniCheckUpdated/internal/matching"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

const (
	hoursPerRow    = 3
	SearchPageSize = 5
)

// dayRow ряд выбора дня, текущий день помечен точкой
func dayRow(current model.Weekday, data func(model.Weekday) string) []models.InlineKeyboardButton {
	row := make([]models.InlineKeyboardButton, 0, model.DaysInWeek)
	for day := model.Monday; day <= model.Sunday; day++ {
		label := formatting.GetWeekdayShort(day)
		if day == current {
			label = "• " + label
		}
		row = append(row, keyboard.Button(label, data(day)))
	}
	return row
}

// BuildEditorScreen экран редактора доступности для выбранного дня
func BuildEditorScreen(editor *availability.Editor, day model.Weekday) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("🗓 <b>Моё свободное время</b>\n\n")
	fmt.Fprintf(&sb, "День: <b>%s</b>\n", formatting.GetWeekdayName(day))
	sb.WriteString("Нажмите на час, чтобы отметить или снять его.\n\n")
	sb.WriteString(formatting.FormatWeekSummary(editor.Slots()))
	if editor.Dirty() {
		sb.WriteString("\n\n✏️ Есть несохранённые изменения")
	}

	cells := make([]models.InlineKeyboardButton, 0, len(availability.GridHours()))
	for _, hour := range availability.GridHours() {
		cell := availability.Cell{Weekday: day, Hour: hour}
		mark := "▫️"
		if editor.State(cell) == availability.CellAvailable {
			mark = "✅"
		}
		cells = append(cells, keyboard.Button(mark+" "+cell.Label(), EditorCellData(cell)))
	}

	kb := keyboard.NewBuilder().
		Row(dayRow(day, EditorDayData)...).
		Grid(cells, hoursPerRow).
		Row(
			keyboard.Button("🧹 Очистить всё", EditorClear),
			keyboard.Button("💾 Сохранить", EditorSave),
			keyboard.Button("✖️ Отменить", EditorDiscard),
		).
		Build()

	return sb.String(), kb
}

// BuildWeekViewScreen просмотр недели репетитора с выбором удобных часов.
// Выбрать можно только свободный час, модель доступности не меняется.
func BuildWeekViewScreen(tutor *model.Tutor, sel *WeekSelection) (string, *models.InlineKeyboardMarkup) {
	m := availability.NewModel(tutor.Availability)
	selection := sel.Selection()

	var sb strings.Builder
	fmt.Fprintf(&sb, "🗓 <b>%s</b>\n\n", html.EscapeString(tutor.Name))
	sb.WriteString(formatting.FormatWeekSummary(m.Slots()))
	fmt.Fprintf(&sb, "\n\nДень: <b>%s</b>\n", formatting.GetWeekdayName(sel.Day))
	fmt.Fprintf(&sb, "Выбрано часов: %d", selection.Len())

	cells := make([]models.InlineKeyboardButton, 0, len(availability.GridHours()))
	for _, hour := range availability.GridHours() {
		cell := availability.Cell{Weekday: sel.Day, Hour: hour}
		switch {
		case selection.IsSelected(cell.Weekday, cell.Hour):
			cells = append(cells, keyboard.Button("🔵 "+cell.Label(), WeekSelectData(tutor.ID, cell)))
		case availability.CanSelect(m, cell):
			cells = append(cells, keyboard.Button("🟢 "+cell.Label(), WeekSelectData(tutor.ID, cell)))
		default:
			cells = append(cells, keyboard.Noop("· "+cell.Label()))
		}
	}

	kb := keyboard.NewBuilder().
		Row(dayRow(sel.Day, func(d model.Weekday) string { return WeekDayData(tutor.ID, d) })...).
		Grid(cells, hoursPerRow).
		Row(
			keyboard.Button("🖼 Картинка недели", fmt.Sprintf("%s%d", WeekImage, tutor.ID)),
			keyboard.Button("↩️ Сбросить выбор", fmt.Sprintf("%s%d", WeekReset, tutor.ID)),
		).
		Build()

	return sb.String(), kb
}

// BuildSearchResultsScreen страница выдачи поиска
func BuildSearchResultsScreen(ranked []matching.Ranked, page int) (string, *models.InlineKeyboardMarkup) {
	if len(ranked) == 0 {
		return "😔 Никого не нашлось. Попробуйте смягчить фильтры.", nil
	}

	totalPages := (len(ranked) + SearchPageSize - 1) / SearchPageSize
	if page < 0 {
		page = 0
	}
	if page >= totalPages {
		page = totalPages - 1
	}

	start := page * SearchPageSize
	end := start + SearchPageSize
	if end > len(ranked) {
		end = len(ranked)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔎 Найдено: %d %s\n\n", len(ranked), formatting.PluralizeTutors(len(ranked)))

	kb := keyboard.NewBuilder()
	for i := start; i < end; i++ {
		r := ranked[i]
		sb.WriteString(formatting.FormatRanked(i+1, r))
		sb.WriteString("\n")

		kb.Row(
			keyboard.Button(fmt.Sprintf("ℹ️ %d. Почему", i+1), fmt.Sprintf("%s%d", WhyTutor, r.Tutor.ID)),
			keyboard.Button(fmt.Sprintf("🗓 %d. Неделя", i+1), fmt.Sprintf("%s%d", ViewWeek, r.Tutor.ID)),
		)
	}
	kb.AddPagination(SearchPage, page, totalPages)

	return strings.TrimRight(sb.String(), "\n"), kb.Build()
}

// BuildSubjectsScreen список предметов репетитора с кнопками удаления
func BuildSubjectsScreen(subjects []model.Subject, tutorPrice float64) (string, *models.InlineKeyboardMarkup) {
	if len(subjects) == 0 {
		return "📚 Предметов пока нет.\n\nДобавить: <code>/addsubject предмет; уровень; цена</code>", nil
	}

	var sb strings.Builder
	sb.WriteString("📚 <b>Мои предметы</b>\n\n")

	kb := keyboard.NewBuilder()
	for i, s := range subjects {
		sb.WriteString(formatting.FormatSubject(i+1, s, tutorPrice))
		sb.WriteString("\n")
		kb.Row(keyboard.Button("🗑 "+s.Name, SubjectDeleteData(s.ID)))
	}
	sb.WriteString("\nДобавить ещё: <code>/addsubject предмет; уровень; цена</code>")

	return sb.String(), kb.Build()
}
