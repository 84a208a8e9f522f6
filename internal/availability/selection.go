package availability

import (
	"errors"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

var ErrSlotUnavailable = errors.New("tutor is not available at this time")

// Selection ячейки, выбранные студентом при бронировании.
// Только подсветка: модель доступности не меняется.
type Selection struct {
	cells map[Cell]struct{}
}

func NewSelection(cells ...Cell) *Selection {
	s := &Selection{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

// IsSelected проверяет, выбрана ли ячейка
func (s *Selection) IsSelected(weekday model.Weekday, hour int) bool {
	if s == nil {
		return false
	}
	_, ok := s.cells[Cell{Weekday: weekday, Hour: hour}]
	return ok
}

// Len количество выбранных ячеек
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// CanSelect в режиме просмотра выбрать можно только свободную ячейку
func CanSelect(m *Model, c Cell) bool {
	return c.Validate() == nil && m.IsAvailable(c.Weekday, c.Minute())
}
