package ontime

// TimerType classifies how the server counts the active timer.
type TimerType int

const (
	TimerUnknown TimerType = iota
	TimerCountDown
	TimerCountUp
	TimerClock
	TimerNone
)

// String returns the canonical lowercase name for the timer type.
func (t TimerType) String() string {
	switch t {
	case TimerCountDown:
		return "count-down"
	case TimerCountUp:
		return "count-up"
	case TimerClock:
		return "clock"
	case TimerNone:
		return "none"
	default:
		return "unknown"
	}
}

// Playback mirrors the server's playback state strings.
type Playback string

const (
	PlaybackPlay  Playback = "play"
	PlaybackPause Playback = "pause"
	PlaybackStop  Playback = "stop"
	PlaybackRoll  Playback = "roll"
)

// TimerReading holds the raw timer values from a single update. Every field
// is optional: nil means the server did not report it, not zero.
type TimerReading struct {
	Current   *int64
	Remaining *int64
	Elapsed   *int64
	Running   *bool
	Playback  *Playback
}

// Clone returns a deep copy of the reading.
func (r TimerReading) Clone() TimerReading {
	return TimerReading{
		Current:   cloneInt64(r.Current),
		Remaining: cloneInt64(r.Remaining),
		Elapsed:   cloneInt64(r.Elapsed),
		Running:   cloneBool(r.Running),
		Playback:  clonePlayback(r.Playback),
	}
}

// EventInfo describes a rundown event as reported by the server.
type EventInfo struct {
	ID          *string
	Title       *string
	TimeWarning *int64
	TimeDanger  *int64
	Duration    *int64
}

// Empty reports whether the server sent an event object with no usable fields.
func (e EventInfo) Empty() bool {
	return e.ID == nil && e.Title == nil && e.TimeWarning == nil &&
		e.TimeDanger == nil && e.Duration == nil
}

// Clone returns a deep copy of the event info.
func (e EventInfo) Clone() EventInfo {
	return EventInfo{
		ID:          cloneString(e.ID),
		Title:       cloneString(e.Title),
		TimeWarning: cloneInt64(e.TimeWarning),
		TimeDanger:  cloneInt64(e.TimeDanger),
		Duration:    cloneInt64(e.Duration),
	}
}

// Position locates the loaded event inside the rundown.
type Position struct {
	Index int
	Total int
}

// Snapshot is one normalized, self-consistent view of server-reported state.
type Snapshot struct {
	Timer     TimerReading
	TimerType TimerType
	Current   *EventInfo
	Next      *EventInfo
	Rundown   *Position
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	dup := Snapshot{
		Timer:     s.Timer.Clone(),
		TimerType: s.TimerType,
	}
	if s.Current != nil {
		ev := s.Current.Clone()
		dup.Current = &ev
	}
	if s.Next != nil {
		ev := s.Next.Clone()
		dup.Next = &ev
	}
	if s.Rundown != nil {
		pos := *s.Rundown
		dup.Rundown = &pos
	}
	return dup
}

// Slice names the piece of state a granular update refreshes.
type Slice int

const (
	SliceTimer Slice = iota
	SliceEventNow
	SliceEventNext
	SliceRuntime
)

// UpdateKind discriminates the Update variants.
type UpdateKind int

const (
	// UpdateFull replaces the whole snapshot.
	UpdateFull UpdateKind = iota
	// UpdatePartial refreshes only the named slice.
	UpdatePartial
	// UpdateStatus reports a connection status change.
	UpdateStatus
)

// Update is one normalized inbound message: a full snapshot, a granular
// slice refresh, or a transport status change.
type Update struct {
	Kind      UpdateKind
	Snapshot  Snapshot
	Slice     Slice
	Connected bool
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	dup := *v
	return &dup
}

func cloneBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	dup := *v
	return &dup
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	dup := *v
	return &dup
}

func clonePlayback(v *Playback) *Playback {
	if v == nil {
		return nil
	}
	dup := *v
	return &dup
}
