package availability

import (
	"errors"
	"fmt"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

// Сетка редактора: часовые ячейки с 06:00 до 22:00 на каждый день недели
const (
	FirstHour = 6
	LastHour  = 22
)

var ErrCellOutOfGrid = errors.New("cell is outside of the availability grid")

// Cell ячейка сетки: день недели и час начала
type Cell struct {
	Weekday model.Weekday
	Hour    int
}

// NewCell создаёт ячейку, проверяя, что она лежит в сетке
func NewCell(weekday model.Weekday, hour int) (Cell, error) {
	c := Cell{Weekday: weekday, Hour: hour}
	if err := c.Validate(); err != nil {
		return Cell{}, err
	}
	return c, nil
}

// Validate проверяет границы ячейки
func (c Cell) Validate() error {
	if !c.Weekday.IsValid() {
		return fmt.Errorf("%w: weekday %d", ErrCellOutOfGrid, int(c.Weekday))
	}
	if c.Hour < FirstHour || c.Hour > LastHour {
		return fmt.Errorf("%w: hour %d", ErrCellOutOfGrid, c.Hour)
	}
	return nil
}

// Minute минута дня, с которой начинается ячейка
func (c Cell) Minute() int {
	return c.Hour * model.MinutesPerHour
}

// Label подпись часа в 12-часовом формате, как на сетке: "9:00 AM", "12:00 PM"
func (c Cell) Label() string {
	return HourLabel(c.Hour)
}

// GridHours возвращает все часы сетки по порядку
func GridHours() []int {
	hours := make([]int, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// HourLabel форматирует час сетки
func HourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12:00 AM"
	case hour < 12:
		return fmt.Sprintf("%d:00 AM", hour)
	case hour == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
}
