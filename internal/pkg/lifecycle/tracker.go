package lifecycle

import (
	"maps"
	"sync"
	"sync/atomic"
)

type Phase string

const (
	PhaseStarting   Phase = "STARTING"
	PhaseConnecting Phase = "CONNECTING"
	PhaseReady      Phase = "READY"
	PhaseDegraded   Phase = "DEGRADED"
	PhaseStopping   Phase = "STOPPING"
)

const (
	DependencyStore  = "store"
	DependencyStream = "stream"
)

const (
	ReasonStarting = "starting"
	ReasonStopping = "stopping"
)

func ReasonConnecting(dep string) string { return "connecting:" + dep }
func ReasonLost(dep string) string       { return "dependency_lost:" + dep }

// Status is an immutable snapshot; readers never see a partially applied transition.
type Status struct {
	Phase        Phase
	Dependencies map[string]bool
	Reason       string
}

func (s Status) Ready() bool { return s.Phase == PhaseReady }

func (s Status) DependencyReady(name string) bool { return s.Dependencies[name] }

type Observer func(Status)

// Tracker holds the process lifecycle state. The Supervisor is its only writer.
type Tracker struct {
	current atomic.Pointer[Status]

	mu        sync.Mutex
	observers []Observer
}

func NewTracker(dependencies ...string) *Tracker {
	deps := make(map[string]bool, len(dependencies))
	for _, d := range dependencies {
		deps[d] = false
	}
	t := &Tracker{}
	t.current.Store(&Status{Phase: PhaseStarting, Dependencies: deps, Reason: ReasonStarting})
	return t
}

func (t *Tracker) Status() Status {
	s := t.current.Load()
	return Status{Phase: s.Phase, Dependencies: maps.Clone(s.Dependencies), Reason: s.Reason}
}

func (t *Tracker) Ready() bool { return t.current.Load().Ready() }

func (t *Tracker) DependencyReady(name string) bool {
	return t.current.Load().DependencyReady(name)
}

// OnChange registers fn to run after every transition. Register before the Supervisor starts.
func (t *Tracker) OnChange(fn Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, fn)
}

func (t *Tracker) markConnecting(dep string) {
	t.update(func(s *Status) {
		if s.Phase == PhaseStopping {
			return
		}
		s.Phase = PhaseConnecting
		s.Reason = ReasonConnecting(dep)
		s.Dependencies[dep] = false
	})
}

func (t *Tracker) markConnected(dep string) {
	t.update(func(s *Status) {
		if s.Phase == PhaseStopping {
			return
		}
		s.Dependencies[dep] = true
		for _, ok := range s.Dependencies {
			if !ok {
				return
			}
		}
		s.Phase = PhaseReady
		s.Reason = ""
	})
}

func (t *Tracker) markLost(dep string) {
	t.update(func(s *Status) {
		if s.Phase == PhaseStopping {
			return
		}
		s.Phase = PhaseDegraded
		s.Reason = ReasonLost(dep)
		s.Dependencies[dep] = false
	})
}

func (t *Tracker) markStopping() {
	t.update(func(s *Status) {
		s.Phase = PhaseStopping
		s.Reason = ReasonStopping
	})
}

func (t *Tracker) update(mutate func(*Status)) {
	next := t.Status()
	mutate(&next)
	t.current.Store(&next)

	t.mu.Lock()
	observers := t.observers
	t.mu.Unlock()
	for _, fn := range observers {
		fn(next)
	}
}
