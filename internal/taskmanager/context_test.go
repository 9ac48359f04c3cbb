package taskmanager

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedContext_SetAndGet(t *testing.T) {
	sc := NewSharedContext()

	sc.Set("egg", "brown")

	value, ok := sc.Get("egg")
	assert.True(t, ok)
	assert.Equal(t, "brown", value)
	assert.Equal(t, 1, sc.Len())
}

func TestSharedContext_GetNonExistent(t *testing.T) {
	sc := NewSharedContext()

	_, ok := sc.Get("non_existent_key")
	assert.False(t, ok)
	assert.Equal(t, "", sc.GetString("non_existent_key"))
}

func TestSharedContext_GetString(t *testing.T) {
	sc := NewSharedContext()
	sc.Set("name", "pan")
	sc.Set("count", 3)
	sc.Set("confirmed", true)
	sc.Set("nothing", nil)

	assert.Equal(t, "pan", sc.GetString("name"))
	assert.Equal(t, "3", sc.GetString("count"))
	assert.Equal(t, "true", sc.GetString("confirmed"))
	assert.Equal(t, "", sc.GetString("nothing"))
}

func TestSharedContext_ConcurrentAccess(t *testing.T) {
	sc := NewSharedContext()
	numGoroutines := 50
	numOperations := 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				sc.Set(fmt.Sprintf("key_%d_%d", id, j), fmt.Sprintf("value_%d_%d", id, j))
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				// writers may not have written yet
				sc.GetString(fmt.Sprintf("key_%d_%d", id, j))
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, numGoroutines*numOperations, sc.Len())
	assert.Equal(t, "value_0_0", sc.GetString("key_0_0"))
}
