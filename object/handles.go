package object

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// HandleTable: opaque instance references for embedders
// ---------------------------------------------------------------------------

// handle is an embedder-side reference to an instance.
type handle struct {
	id        string
	instance  *Instance
	className string
	created   time.Time
	lastUsed  time.Time
}

// HandleTable maps opaque string IDs to instances. Embedders (debuggers,
// inspectors, host applications) hand out handle IDs instead of raw
// pointers; a registered instance stays reachable until released.
type HandleTable struct {
	mu      sync.RWMutex
	handles map[string]*handle
}

// NewHandleTable creates a new empty handle table.
func NewHandleTable() *HandleTable {
	return &HandleTable{
		handles: make(map[string]*handle),
	}
}

// Register stores an instance and returns an opaque handle ID.
func (ht *HandleTable) Register(inst *Instance) string {
	id := uuid.NewString()

	ht.mu.Lock()
	defer ht.mu.Unlock()

	now := time.Now()
	ht.handles[id] = &handle{
		id:        id,
		instance:  inst,
		className: inst.ClassName(),
		created:   now,
		lastUsed:  now,
	}
	return id
}

// Get returns the instance for a handle ID, or nil if unknown or released.
func (ht *HandleTable) Get(id string) *Instance {
	ht.mu.Lock()
	defer ht.mu.Unlock()

	h, ok := ht.handles[id]
	if !ok {
		return nil
	}
	h.lastUsed = time.Now()
	return h.instance
}

// ClassName returns the class name recorded at registration time, or ""
// if the handle is unknown.
func (ht *HandleTable) ClassName(id string) string {
	ht.mu.RLock()
	defer ht.mu.RUnlock()

	if h, ok := ht.handles[id]; ok {
		return h.className
	}
	return ""
}

// Release drops a handle. Returns true if it existed.
func (ht *HandleTable) Release(id string) bool {
	ht.mu.Lock()
	defer ht.mu.Unlock()

	if _, ok := ht.handles[id]; !ok {
		return false
	}
	delete(ht.handles, id)
	return true
}

// Len returns the number of live handles.
func (ht *HandleTable) Len() int {
	ht.mu.RLock()
	defer ht.mu.RUnlock()
	return len(ht.handles)
}

// ReleaseIdle drops handles not used since the cutoff and returns how many
// were released.
func (ht *HandleTable) ReleaseIdle(cutoff time.Time) int {
	ht.mu.Lock()
	defer ht.mu.Unlock()

	released := 0
	for id, h := range ht.handles {
		if h.lastUsed.Before(cutoff) {
			delete(ht.handles, id)
			released++
		}
	}
	return released
}
