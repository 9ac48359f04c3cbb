package taskmanager

import (
	"fmt"
	"sync"
)

// SharedContext allows tasks to share data, typically answers stored by one
// task and read by a later one.
type SharedContext struct {
	mu   sync.RWMutex
	data map[string]interface{}
}

// NewSharedContext creates a new SharedContext.
func NewSharedContext() *SharedContext {
	return &SharedContext{
		data: make(map[string]interface{}),
	}
}

// Set adds or updates a value in the context.
func (sc *SharedContext) Set(key string, value interface{}) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.data[key] = value
}

// Get retrieves a value from the context.
func (sc *SharedContext) Get(key string) (interface{}, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	val, ok := sc.data[key]
	return val, ok
}

// GetString retrieves a value formatted as a string. Missing keys return "".
func (sc *SharedContext) GetString(key string) string {
	val, ok := sc.Get(key)
	if !ok || val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprint(val)
}

// Len returns the number of stored values
func (sc *SharedContext) Len() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return len(sc.data)
}
