package availability

import "github.com/v7s7/DaresniCheckUpdated/internal/model"

// CellState состояние ячейки редактора
type CellState int

const (
	CellUnavailable CellState = iota
	CellAvailable
)

func (s CellState) String() string {
	if s == CellAvailable {
		return "available"
	}
	return "unavailable"
}

// Editor сессия редактирования доступности одного репетитора.
// Работает с локальной копией, в хранилище результат уходит только через Slots() при сохранении.
type Editor struct {
	tutorID int64
	model   *Model
	dirty   bool
}

// NewEditor открывает редактор поверх сохранённого расписания
func NewEditor(tutorID int64, persisted []model.AvailabilitySlot) *Editor {
	return &Editor{
		tutorID: tutorID,
		model:   NewModel(persisted),
	}
}

func (e *Editor) TutorID() int64 {
	return e.tutorID
}

// State возвращает состояние ячейки
func (e *Editor) State(c Cell) CellState {
	if e.model.IsAvailable(c.Weekday, c.Minute()) {
		return CellAvailable
	}
	return CellUnavailable
}

// Toggle переключает ячейку сетки и возвращает её новое состояние
func (e *Editor) Toggle(c Cell) (CellState, error) {
	if err := c.Validate(); err != nil {
		return CellUnavailable, err
	}
	e.model.Toggle(c.Weekday, c.Minute())
	e.dirty = true
	return e.State(c), nil
}

// Clear очищает всю доступность («Очистить всё»)
func (e *Editor) Clear() {
	if e.model.IsEmpty() {
		return
	}
	e.model.Clear()
	e.dirty = true
}

// Dirty есть ли несохранённые изменения
func (e *Editor) Dirty() bool {
	return e.dirty
}

// MarkCommitted сбрасывает флаг изменений после успешного сохранения
func (e *Editor) MarkCommitted() {
	e.dirty = false
}

// Slots текущий набор слотов для передачи в хранилище
func (e *Editor) Slots() []model.AvailabilitySlot {
	return e.model.Slots()
}

// Model модель редактора для отрисовки; изменять её нужно через Toggle/Clear
func (e *Editor) Model() *Model {
	return e.model
}
