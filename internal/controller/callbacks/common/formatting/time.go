package formatting

import (
	"fmt"
	"strings"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

var weekdayNames = [...]string{
	"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота", "Воскресенье",
}

var weekdayShort = [...]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

// GetWeekdayName возвращает название дня недели на русском (0 = понедельник)
func GetWeekdayName(day model.Weekday) string {
	if !day.IsValid() {
		return "?"
	}
	return weekdayNames[day]
}

// GetWeekdayShort короткое название дня
func GetWeekdayShort(day model.Weekday) string {
	if !day.IsValid() {
		return "?"
	}
	return weekdayShort[day]
}

// FormatMinutes минуты от полуночи в "15:04"
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/model.MinutesPerHour, minutes%model.MinutesPerHour)
}

// FormatSlot "Пн 09:00-10:00"
func FormatSlot(slot model.AvailabilitySlot) string {
	return fmt.Sprintf("%s %s-%s",
		GetWeekdayShort(slot.Weekday),
		FormatMinutes(slot.StartMinutes),
		FormatMinutes(slot.EndMinutes))
}

// FormatWeekSummary сводка доступности по дням, слоты в порядке модели
func FormatWeekSummary(slots []model.AvailabilitySlot) string {
	if len(slots) == 0 {
		return "свободное время не указано"
	}

	byDay := make(map[model.Weekday][]string)
	for _, slot := range slots {
		byDay[slot.Weekday] = append(byDay[slot.Weekday],
			FormatMinutes(slot.StartMinutes)+"-"+FormatMinutes(slot.EndMinutes))
	}

	var lines []string
	for day := model.Monday; day <= model.Sunday; day++ {
		if ranges, ok := byDay[day]; ok {
			lines = append(lines, fmt.Sprintf("%s: %s", GetWeekdayShort(day), strings.Join(ranges, ", ")))
		}
	}
	return strings.Join(lines, "\n")
}
