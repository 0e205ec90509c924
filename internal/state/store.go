package state

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/revell/cuetime/internal/ontime"
)

// Model is the last-known canonical timer state plus the locally derived
// fields presentation needs. It is owned exclusively by the Store.
type Model struct {
	Snapshot       ontime.Snapshot
	HasLoadedEvent bool
	Connected      bool
	LastUpdate     time.Time
}

// PrevEnabled reports whether a previous rundown event exists. Absent
// rundown position disables the control; there is no wraparound.
func (m Model) PrevEnabled() bool {
	return m.Snapshot.Rundown != nil && m.Snapshot.Rundown.Index > 0
}

// NextEnabled reports whether a following rundown event exists.
func (m Model) NextEnabled() bool {
	return m.Snapshot.Rundown != nil && m.Snapshot.Rundown.Index < m.Snapshot.Rundown.Total-1
}

// Store coordinates concurrent updates to the model. Inbound frames and the
// local tick both funnel through its mutex; nothing else mutates the model.
type Store struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	model   Model
	changed chan struct{}
}

// NewStore builds a Store. A nil clock falls back to the real clock.
func NewStore(clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{
		clock:   clock,
		changed: make(chan struct{}, 1),
	}
}

// Apply merges one normalized update into the model. Full updates replace
// the snapshot wholesale; partial updates refresh only the slice they name,
// leaving every other slice at its previous value. A full frame that omits
// the timer type keeps the last known one, because servers often report the
// type once and then send value-only frames.
func (s *Store) Apply(u ontime.Update) {
	s.mu.Lock()

	switch u.Kind {
	case ontime.UpdateStatus:
		s.model.Connected = u.Connected
	case ontime.UpdateFull:
		prevType := s.model.Snapshot.TimerType
		s.model.Snapshot = u.Snapshot.Clone()
		if s.model.Snapshot.TimerType == ontime.TimerUnknown {
			s.model.Snapshot.TimerType = prevType
		}
	case ontime.UpdatePartial:
		s.mergeSlice(u)
	}

	s.model.HasLoadedEvent = s.model.Snapshot.Current != nil && !s.model.Snapshot.Current.Empty()
	s.model.LastUpdate = s.clock.Now()
	s.mu.Unlock()

	s.notify()
}

func (s *Store) mergeSlice(u ontime.Update) {
	switch u.Slice {
	case ontime.SliceTimer:
		s.model.Snapshot.Timer = u.Snapshot.Timer.Clone()
		if u.Snapshot.TimerType != ontime.TimerUnknown {
			s.model.Snapshot.TimerType = u.Snapshot.TimerType
		}
	case ontime.SliceEventNow:
		s.model.Snapshot.Current = cloneEvent(u.Snapshot.Current)
	case ontime.SliceEventNext:
		s.model.Snapshot.Next = cloneEvent(u.Snapshot.Next)
	case ontime.SliceRuntime:
		if u.Snapshot.Rundown != nil {
			pos := *u.Snapshot.Rundown
			s.model.Snapshot.Rundown = &pos
		}
	}
}

// Model returns a copy of the current model, independent of the stored one.
func (s *Store) Model() Model {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := s.model
	m.Snapshot = s.model.Snapshot.Clone()
	return m
}

// Changed signals after each Apply. Signals coalesce: a reader that drains
// the channel sees at least one signal for any burst of updates.
func (s *Store) Changed() <-chan struct{} { return s.changed }

func (s *Store) notify() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

func cloneEvent(ev *ontime.EventInfo) *ontime.EventInfo {
	if ev == nil {
		return nil
	}
	dup := ev.Clone()
	return &dup
}
