package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownWeekday = errors.New("unknown weekday")

var weekdayAliases = map[string]Weekday{
	"mon": Monday, "monday": Monday, "пн": Monday, "понедельник": Monday,
	"tue": Tuesday, "tuesday": Tuesday, "вт": Tuesday, "вторник": Tuesday,
	"wed": Wednesday, "wednesday": Wednesday, "ср": Wednesday, "среда": Wednesday,
	"thu": Thursday, "thursday": Thursday, "чт": Thursday, "четверг": Thursday,
	"fri": Friday, "friday": Friday, "пт": Friday, "пятница": Friday,
	"sat": Saturday, "saturday": Saturday, "сб": Saturday, "суббота": Saturday,
	"sun": Sunday, "sunday": Sunday, "вс": Sunday, "воскресенье": Sunday,
}

// ParseWeekday принимает mon..sun, пн..вс, полные названия или номер 1..7 (1 = понедельник)
func ParseWeekday(s string) (Weekday, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	if day, ok := weekdayAliases[token]; ok {
		return day, nil
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 || n > DaysInWeek {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
	}
	return Weekday(n - 1), nil
}

// ParseWeekdays разбирает список дней через запятую или пробел, повторы отбрасываются
func ParseWeekdays(s string) ([]Weekday, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})

	days := make([]Weekday, 0, len(tokens))
	seen := make(map[Weekday]bool, len(tokens))
	for _, token := range tokens {
		day, err := ParseWeekday(token)
		if err != nil {
			return nil, err
		}
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	return days, nil
}
