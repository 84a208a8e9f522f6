// Package availability хранит еженедельную доступность репетитора и логику её редактирования.
package availability

import (
	"sort"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

// Model набор непересекающихся еженедельных интервалов доступности.
// Не потокобезопасна: одна модель принадлежит одной сессии редактирования.
type Model struct {
	slots []model.AvailabilitySlot
}

// NewModel создаёт модель из сохранённых слотов. Невалидные слоты отбрасываются.
func NewModel(slots []model.AvailabilitySlot) *Model {
	m := &Model{slots: make([]model.AvailabilitySlot, 0, len(slots))}
	for _, s := range slots {
		if s.IsValid() {
			m.slots = append(m.slots, s)
		}
	}
	return m
}

// IsAvailable проверяет, свободен ли репетитор в указанную минуту дня
func (m *Model) IsAvailable(weekday model.Weekday, minute int) bool {
	return m.indexOf(weekday, minute) >= 0
}

// Toggle переключает ячейку: если минуту покрывает слот, он удаляется целиком,
// иначе добавляется часовой слот [minute, minute+60).
// Возвращает true, если слот был добавлен.
func (m *Model) Toggle(weekday model.Weekday, minute int) bool {
	if idx := m.indexOf(weekday, minute); idx >= 0 {
		m.slots = append(m.slots[:idx], m.slots[idx+1:]...)
		return false
	}

	end := minute + model.MinutesPerHour
	if end > model.MinutesInDay {
		end = model.MinutesInDay
	}
	// Минута свободна, значит пересечься может только слот, начинающийся внутри нового часа
	for _, s := range m.slots {
		if s.Weekday == weekday && s.StartMinutes > minute && s.StartMinutes < end {
			end = s.StartMinutes
		}
	}

	m.slots = append(m.slots, model.AvailabilitySlot{
		Weekday:      weekday,
		StartMinutes: minute,
		EndMinutes:   end,
	})
	return true
}

// Clear удаляет все слоты
func (m *Model) Clear() {
	m.slots = m.slots[:0]
}

// Len количество слотов
func (m *Model) Len() int {
	return len(m.slots)
}

// IsEmpty проверяет, пуста ли модель
func (m *Model) IsEmpty() bool {
	return len(m.slots) == 0
}

// Slots возвращает копию слотов, отсортированную по дню и времени начала
func (m *Model) Slots() []model.AvailabilitySlot {
	out := make([]model.AvailabilitySlot, len(m.slots))
	copy(out, m.slots)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weekday != out[j].Weekday {
			return out[i].Weekday < out[j].Weekday
		}
		return out[i].StartMinutes < out[j].StartMinutes
	})
	return out
}

// HasAnyWeekday проверяет, есть ли хотя бы один слот в одном из указанных дней
func (m *Model) HasAnyWeekday(days []model.Weekday) bool {
	for _, s := range m.slots {
		for _, d := range days {
			if s.Weekday == d {
				return true
			}
		}
	}
	return false
}

func (m *Model) indexOf(weekday model.Weekday, minute int) int {
	for i, s := range m.slots {
		if s.Covers(weekday, minute) {
			return i
		}
	}
	return -1
}
