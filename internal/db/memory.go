package db

import (
	"encoding/json"
	"sync"
)

// MemoryPersister keeps collections in a map. Used by tests and as a
// stand-in when no durable backend is configured.
type MemoryPersister struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryPersister creates an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{data: make(map[string][]byte)}
}

// Load reads a collection into out.
func (p *MemoryPersister) Load(name string, out interface{}) (bool, error) {
	p.mu.Lock()
	data, ok := p.data[name]
	p.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

// Save overwrites a collection.
func (p *MemoryPersister) Save(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.data[name] = data
	p.mu.Unlock()
	return nil
}

// Reset removes the named collections.
func (p *MemoryPersister) Reset(names ...string) error {
	p.mu.Lock()
	for _, name := range names {
		delete(p.data, name)
	}
	p.mu.Unlock()
	return nil
}
