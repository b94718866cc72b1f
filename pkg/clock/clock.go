package clock

import (
	"sync"
	"time"
)

// Clock fuente de tiempo inyectable (producción usa System, tests usan Fake).
type Clock interface {
	Now() time.Time
}

// System reloj del sistema.
type System struct{}

// Now devuelve la hora local actual.
func (System) Now() time.Time { return time.Now() }

// Fake reloj controlable para tests.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake construye un reloj fijo en t.
func NewFake(t time.Time) *Fake {
	return &Fake{now: t}
}

// Now devuelve la hora fijada.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance adelanta el reloj d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

// Set fija la hora.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	f.now = t
	f.mu.Unlock()
}
