package lockout

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jhoicas/master-auth-service/internal/application/ports"
)

// DefaultMaxKeys tope de claves en memoria. Acota el crecimiento cuando llegan fallos para
// muchos emails distintos (existan o no).
const DefaultMaxKeys = 100_000

var _ ports.LoginLockoutStore = (*MemoryStore)(nil)

type entry struct {
	failures    int
	lastFailure time.Time
	lockedUntil time.Time
}

// expired indica que la entrada ya no aporta nada: el bloqueo venció o, sin bloqueo, el
// último fallo es más viejo que el enfriamiento.
func (e *entry) expired(now time.Time, cooldown time.Duration) bool {
	if !e.lockedUntil.IsZero() {
		return !now.Before(e.lockedUntil)
	}
	return now.Sub(e.lastFailure) >= cooldown
}

// MemoryStore LoginLockoutStore en memoria, válido para una sola instancia.
// Con varias réplicas cada una lleva su propia cuenta.
type MemoryStore struct {
	mu        sync.Mutex
	data      map[string]*entry
	max       int
	cooldown  time.Duration
	maxKeys   int
	lastSweep time.Time
	clock     clockwork.Clock
}

// Option ajusta un MemoryStore.
type Option func(*MemoryStore)

// WithMaxKeys cambia el tope de claves (DefaultMaxKeys por defecto).
func WithMaxKeys(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.maxKeys = n
		}
	}
}

// NewMemoryStore devuelve un store que bloquea tras maxAttempts fallos consecutivos durante
// cooldown. maxAttempts 0 desactiva el bloqueo.
func NewMemoryStore(maxAttempts int, cooldown time.Duration, clock clockwork.Clock, opts ...Option) *MemoryStore {
	if cooldown <= 0 {
		cooldown = 15 * time.Minute
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	s := &MemoryStore{
		data:     make(map[string]*entry),
		max:      maxAttempts,
		cooldown: cooldown,
		maxKeys:  DefaultMaxKeys,
		clock:    clock,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastSweep = clock.Now()
	return s
}

func (s *MemoryStore) IsLocked(_ context.Context, key string) (bool, time.Duration) {
	if s.max <= 0 {
		return false, 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.data[key]
	if !ok {
		return false, 0
	}
	now := s.clock.Now()
	if e.expired(now, s.cooldown) {
		delete(s.data, key)
		return false, 0
	}
	if e.lockedUntil.IsZero() {
		return false, 0
	}
	return true, e.lockedUntil.Sub(now)
}

func (s *MemoryStore) RecordFailure(_ context.Context, key string) {
	if s.max <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now()
	if now.Sub(s.lastSweep) >= s.cooldown {
		s.sweep(now)
	}
	e := s.data[key]
	switch {
	case e == nil:
		if len(s.data) >= s.maxKeys {
			s.evict(now)
		}
		e = &entry{}
		s.data[key] = e
	case e.expired(now, s.cooldown):
		// Enfriamiento vencido: la cuenta empieza de cero.
		*e = entry{}
	}
	e.failures++
	e.lastFailure = now
	if e.failures >= s.max {
		e.lockedUntil = now.Add(s.cooldown)
	}
}

func (s *MemoryStore) RecordSuccess(_ context.Context, key string) {
	if s.max <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}

// Len número de claves retenidas.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// sweep elimina las entradas vencidas. Requiere s.mu.
func (s *MemoryStore) sweep(now time.Time) {
	for k, e := range s.data {
		if e.expired(now, s.cooldown) {
			delete(s.data, k)
		}
	}
	s.lastSweep = now
}

// evict libera lugar para una clave nueva: primero lo vencido, luego una entrada sin
// bloqueo activo y como último recurso cualquiera. Requiere s.mu.
func (s *MemoryStore) evict(now time.Time) {
	s.sweep(now)
	if len(s.data) < s.maxKeys {
		return
	}
	var victim string
	found := false
	for k, e := range s.data {
		if e.lockedUntil.IsZero() {
			victim, found = k, true
			break
		}
		if !found {
			victim, found = k, true
		}
	}
	if found {
		delete(s.data, victim)
	}
}
