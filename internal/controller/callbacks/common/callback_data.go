package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/v7s7/DaresniCheckUpdated/internal/availability"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

// Форматы callback data
const (
	Noop = "noop"

	// Редактор доступности репетитора
	EditorDay     = "av_day:"  // av_day:2
	EditorCell    = "av_cell:" // av_cell:2:14
	EditorClear   = "av_clear"
	EditorSave    = "av_save"
	EditorDiscard = "av_discard"

	// Профиль репетитора
	SubjectDelete = "subj_del:" // subj_del:subjectID

	// Просмотр недели репетитора студентом
	WeekDay    = "wk_day:"   // wk_day:tutorID:2
	WeekSelect = "wk_sel:"   // wk_sel:tutorID:2:14
	WeekImage  = "wk_img:"   // wk_img:tutorID
	WeekReset  = "wk_reset:" // wk_reset:tutorID

	// Выдача поиска
	SearchPage = "search_page:" // search_page:1
	WhyTutor   = "why:"         // why:tutorID
	ViewWeek   = "view_week:"   // view_week:tutorID
)

func EditorDayData(day model.Weekday) string {
	return fmt.Sprintf("%s%d", EditorDay, day)
}

func EditorCellData(c availability.Cell) string {
	return fmt.Sprintf("%s%d:%d", EditorCell, c.Weekday, c.Hour)
}

func WeekDayData(tutorID int64, day model.Weekday) string {
	return fmt.Sprintf("%s%d:%d", WeekDay, tutorID, day)
}

func WeekSelectData(tutorID int64, c availability.Cell) string {
	return fmt.Sprintf("%s%d:%d:%d", WeekSelect, tutorID, c.Weekday, c.Hour)
}

// ParseDay разбирает "prefix<day>"
func ParseDay(data, prefix string) (model.Weekday, error) {
	n, err := parseInts(data, prefix, 1)
	if err != nil {
		return 0, err
	}
	day := model.Weekday(n[0])
	if !day.IsValid() {
		return 0, fmt.Errorf("%w: weekday %d", availability.ErrCellOutOfGrid, n[0])
	}
	return day, nil
}

// ParseCell разбирает "prefix<day>:<hour>" и проверяет границы сетки
func ParseCell(data, prefix string) (availability.Cell, error) {
	n, err := parseInts(data, prefix, 2)
	if err != nil {
		return availability.Cell{}, err
	}
	return availability.NewCell(model.Weekday(n[0]), int(n[1]))
}

// ParseTutorDay разбирает "prefix<tutorID>:<day>"
func ParseTutorDay(data, prefix string) (int64, model.Weekday, error) {
	n, err := parseInts(data, prefix, 2)
	if err != nil {
		return 0, 0, err
	}
	day := model.Weekday(n[1])
	if !day.IsValid() {
		return 0, 0, fmt.Errorf("%w: weekday %d", availability.ErrCellOutOfGrid, n[1])
	}
	return n[0], day, nil
}

// ParseTutorCell разбирает "prefix<tutorID>:<day>:<hour>"
func ParseTutorCell(data, prefix string) (int64, availability.Cell, error) {
	n, err := parseInts(data, prefix, 3)
	if err != nil {
		return 0, availability.Cell{}, err
	}
	cell, err := availability.NewCell(model.Weekday(n[1]), int(n[2]))
	if err != nil {
		return 0, availability.Cell{}, err
	}
	return n[0], cell, nil
}

func parseInts(data, prefix string, count int) ([]int64, error) {
	if !strings.HasPrefix(data, prefix) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}

	parts := strings.Split(strings.TrimPrefix(data, prefix), ":")
	if len(parts) != count {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}

	out := make([]int64, count)
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, data)
		}
		out[i] = n
	}
	return out, nil
}

func SubjectDeleteData(subjectID int64) string {
	return fmt.Sprintf("%s%d", SubjectDelete, subjectID)
}
