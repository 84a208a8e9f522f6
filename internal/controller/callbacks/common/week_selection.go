package common

import (
	"fmt"

	"github.com/v7s7/DaresniCheckUpdated/internal/availability"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

// WeekSelection часы, выбранные студентом при просмотре недели репетитора
type WeekSelection struct {
	TutorID int64
	Day     model.Weekday
	Cells   []availability.Cell
}

// Toggle добавляет или убирает ячейку из выбора
func (w *WeekSelection) Toggle(c availability.Cell) bool {
	for i, selected := range w.Cells {
		if selected == c {
			w.Cells = append(w.Cells[:i], w.Cells[i+1:]...)
			return false
		}
	}
	w.Cells = append(w.Cells, c)
	return true
}

// Select переключает ячейку в выборе. Добавить можно только час, когда репетитор свободен,
// убрать выбранный час можно всегда.
func (w *WeekSelection) Select(m *availability.Model, c availability.Cell) (bool, error) {
	if !w.isSelected(c) && !availability.CanSelect(m, c) {
		return false, fmt.Errorf("%w: %s %s", availability.ErrSlotUnavailable, c.Weekday, c.Label())
	}
	return w.Toggle(c), nil
}

func (w *WeekSelection) isSelected(c availability.Cell) bool {
	for _, selected := range w.Cells {
		if selected == c {
			return true
		}
	}
	return false
}

// Selection выбор для отрисовки
func (w *WeekSelection) Selection() *availability.Selection {
	if w == nil {
		return nil
	}
	return availability.NewSelection(w.Cells...)
}
