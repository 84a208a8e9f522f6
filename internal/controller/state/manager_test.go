package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/v7s7/DaresniCheckUpdated/internal/availability"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

func TestManagerStateLifecycle(t *testing.T) {
	sm := NewManager()

	assert.Equal(t, StateNone, sm.GetState(1))

	sm.SetState(1, StateEditingAvailability)
	sm.SetData(1, DataAvailabilityDay, model.Friday)
	assert.Equal(t, StateEditingAvailability, sm.GetState(1))

	day, ok := sm.GetData(1, DataAvailabilityDay)
	assert.True(t, ok)
	assert.Equal(t, model.Friday, day)

	sm.SetState(1, StateNone)
	_, ok = sm.GetData(1, DataAvailabilityDay)
	assert.False(t, ok)
}

func TestManagerEditorSession(t *testing.T) {
	sm := NewManager()

	_, ok := sm.Editor(5)
	assert.False(t, ok)

	sm.SetData(5, DataWeekSelection, "stale")
	editor := availability.NewEditor(9, nil)
	sm.StartEditing(5, editor)

	got, ok := sm.Editor(5)
	assert.True(t, ok)
	assert.Same(t, editor, got)
	assert.Equal(t, StateEditingAvailability, sm.GetState(5))

	_, ok = sm.GetData(5, DataWeekSelection)
	assert.False(t, ok, "starting an edit session resets previous dialog data")

	sm.ClearState(5)
	_, ok = sm.Editor(5)
	assert.False(t, ok)
}

func TestManagerConcurrentAccess(t *testing.T) {
	sm := NewManager()
	var wg sync.WaitGroup

	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			sm.SetData(id, DataAvailabilityDay, model.Monday)
			sm.GetState(id)
			sm.ClearState(id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, StateNone, sm.GetState(3))
}
