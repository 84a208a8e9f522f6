package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

func TestSelection(t *testing.T) {
	sel := NewSelection(
		Cell{Weekday: model.Monday, Hour: 9},
		Cell{Weekday: model.Friday, Hour: 18},
		Cell{Weekday: model.Monday, Hour: 9},
	)

	assert.Equal(t, 2, sel.Len())
	assert.True(t, sel.IsSelected(model.Monday, 9))
	assert.True(t, sel.IsSelected(model.Friday, 18))
	assert.False(t, sel.IsSelected(model.Monday, 10))
	assert.False(t, sel.IsSelected(model.Tuesday, 9))
}

func TestSelection_Nil(t *testing.T) {
	var sel *Selection
	assert.Equal(t, 0, sel.Len())
	assert.False(t, sel.IsSelected(model.Monday, 9))
}

func TestSelection_DoesNotTouchModel(t *testing.T) {
	slots := []model.AvailabilitySlot{{Weekday: model.Monday, StartMinutes: 540, EndMinutes: 600}}
	m := NewModel(slots)

	sel := NewSelection(Cell{Weekday: model.Monday, Hour: 9}, Cell{Weekday: model.Sunday, Hour: 20})
	assert.True(t, sel.IsSelected(model.Sunday, 20))
	assert.Equal(t, slots, m.Slots())
}
