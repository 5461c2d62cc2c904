// Package scratch holds the shared state a generation run writes its
// outcome into. The pad is caller-supplied: the generator writes one
// record under a fixed slot name and owns nothing beyond that write.
package scratch

import "sync"

// KeyLastGeneratedTest is the slot the generator writes after a
// successful run.
const KeyLastGeneratedTest = "last_generated_test"

// Record is the value stored for a completed generation.
type Record struct {
	ClassName string
	TestCode  string
	FilePath  string
}

// Pad is the read/write contract for scratch state. Implementations must
// be safe for concurrent use when callers run generations in parallel.
type Pad interface {
	Put(key string, rec Record)
	Get(key string) (Record, bool)
}

// MemoryPad is an in-memory Pad guarded by a mutex.
type MemoryPad struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryPad creates an empty pad.
func NewMemoryPad() *MemoryPad {
	return &MemoryPad{records: make(map[string]Record)}
}

// Put stores rec under key, replacing any previous value.
func (p *MemoryPad) Put(key string, rec Record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records[key] = rec
}

// Get returns the record under key, if any.
func (p *MemoryPad) Get(key string) (Record, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	rec, ok := p.records[key]
	return rec, ok
}
