package viewmodel

import "sync"

// Field is an editable text input.
type Field struct {
	mu sync.RWMutex
	v  string
}

func (f *Field) Set(v string) {
	f.mu.Lock()
	f.v = v
	f.mu.Unlock()
}

func (f *Field) Get() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.v
}
