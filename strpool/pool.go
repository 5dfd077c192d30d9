// Package strpool interns strings so that equal content is represented by a single *StringData.
//
// Handles obtained from the same Pool compare equal with == if and only if their
// content is byte-for-byte equal (case-sensitive).
package strpool

import (
	"github.com/cottand/annot/util"
	"log/slog"
	"sync"
)

// StringData is an interned string. Never construct one directly, use Pool.Intern.
type StringData struct {
	s    string
	hash uint32
}

func (sd *StringData) String() string {
	return sd.s
}

func (sd *StringData) Len() int {
	return len(sd.s)
}

// Hash is the precomputed util.HashString of the content
func (sd *StringData) Hash() uint32 {
	return sd.hash
}

func (sd *StringData) LogValue() slog.Value {
	return slog.StringValue(sd.s)
}

// Pool is safe for concurrent use. Interned strings are never released.
type Pool struct {
	mu     sync.RWMutex
	byName map[string]*StringData
}

func New() *Pool {
	return &Pool{
		byName: make(map[string]*StringData, 256),
	}
}

// Intern returns the canonical handle for s, creating it if needed.
func (p *Pool) Intern(s string) *StringData {
	p.mu.RLock()
	sd, ok := p.byName[s]
	p.mu.RUnlock()
	if ok {
		return sd
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// another writer may have won the race while we did not hold the lock
	if sd, ok := p.byName[s]; ok {
		return sd
	}
	sd = &StringData{s: s, hash: util.HashString(s)}
	p.byName[s] = sd
	return sd
}

// Lookup returns the handle for s only if it was already interned.
func (p *Pool) Lookup(s string) (*StringData, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	sd, ok := p.byName[s]
	return sd, ok
}

func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.byName)
}

var global = New()

var emptyString = global.Intern("")

// Global is the process-wide pool that static strings live in.
func Global() *Pool {
	return global
}

// Static interns s in the Global pool.
func Static(s string) *StringData {
	return global.Intern(s)
}

// Empty is the shared empty string of the Global pool.
func Empty() *StringData {
	return emptyString
}

// HandleHasher hashes handles by content hash and compares them by identity.
// It satisfies immutable.Hasher[*StringData], so it is only meaningful for
// handles that come from a single Pool.
type HandleHasher struct{}

func (HandleHasher) Hash(sd *StringData) uint32 {
	return sd.hash
}

func (HandleHasher) Equal(a, b *StringData) bool {
	return a == b
}
