package state

import (
	"fmt"
	"time"

	"github.com/revell/cuetime/internal/ontime"
)

// Tier is the color classification of the displayed time.
type Tier int

const (
	TierNormal Tier = iota
	TierWarning
	TierDanger
)

// String returns the lowercase tier name.
func (t Tier) String() string {
	switch t {
	case TierWarning:
		return "warning"
	case TierDanger:
		return "danger"
	default:
		return "normal"
	}
}

// idleText is rendered when no event is loaded or no timer value is known.
const idleText = "--:--"

// RenderState is everything the render surface needs for one frame.
type RenderState struct {
	DisplayText string
	Tier        Tier
	Title       string
	NextTitle   string
	PrevEnabled bool
	NextEnabled bool
	Dimmed      bool
	Connected   bool
}

// Project derives the render state from the model and the local wall clock.
// It is pure: re-evaluated on every tick and every applied snapshot, and it
// never mutates the model.
func Project(m Model, now time.Time) RenderState {
	rs := RenderState{
		Connected:   m.Connected,
		PrevEnabled: m.PrevEnabled(),
		NextEnabled: m.NextEnabled(),
	}
	if m.Snapshot.Current != nil && m.Snapshot.Current.Title != nil {
		rs.Title = *m.Snapshot.Current.Title
	}
	if m.Snapshot.Next != nil && m.Snapshot.Next.Title != nil {
		rs.NextTitle = *m.Snapshot.Next.Title
	}

	switch m.Snapshot.TimerType {
	case ontime.TimerClock:
		// Clock mode ignores the timer reading entirely.
		rs.DisplayText = now.Format("15:04:05")
		return rs
	case ontime.TimerCountUp:
		if !m.HasLoadedEvent {
			rs.DisplayText = idleText
			rs.Dimmed = true
			return rs
		}
		v := firstValue(m.Snapshot.Timer.Elapsed, m.Snapshot.Timer.Current)
		if v == nil {
			rs.DisplayText = idleText
			return rs
		}
		rs.DisplayText = formatSeconds(*v / 1000)
		rs.Tier = countUpTier(*v, m.Snapshot.Current)
		return rs
	case ontime.TimerCountDown:
		if !m.HasLoadedEvent {
			rs.DisplayText = idleText
			rs.Dimmed = true
			return rs
		}
		v := firstValue(m.Snapshot.Timer.Remaining, m.Snapshot.Timer.Current)
		if v == nil {
			rs.DisplayText = idleText
			return rs
		}
		rs.DisplayText = formatSeconds(ceilSeconds(*v))
		rs.Tier = countDownTier(*v, m.Snapshot.Current)
		return rs
	default:
		// none or unknown with no loaded event renders the idle indicator.
		rs.DisplayText = idleText
		rs.Dimmed = !m.HasLoadedEvent
		return rs
	}
}

// countDownTier classifies remaining time. Overtime is always danger.
// Absent thresholds never trigger; there are no guessed defaults.
func countDownTier(remaining int64, ev *ontime.EventInfo) Tier {
	if remaining < 0 {
		return TierDanger
	}
	if ev == nil {
		return TierNormal
	}
	if ev.TimeDanger != nil && remaining <= *ev.TimeDanger {
		return TierDanger
	}
	if ev.TimeWarning != nil && remaining <= *ev.TimeWarning {
		return TierWarning
	}
	return TierNormal
}

// countUpTier warns once elapsed reaches the event duration. Count-up never
// escalates to danger.
func countUpTier(elapsed int64, ev *ontime.EventInfo) Tier {
	if ev != nil && ev.Duration != nil && elapsed >= *ev.Duration {
		return TierWarning
	}
	return TierNormal
}

// ceilSeconds rounds milliseconds up to whole seconds so the first displayed
// second is not skipped: 59999ms still shows as 60 seconds.
func ceilSeconds(ms int64) int64 {
	if ms >= 0 {
		return (ms + 999) / 1000
	}
	return -(-ms / 1000)
}

// formatSeconds renders MM:SS, or HH:MM:SS once the hour is reached, with a
// leading minus for overtime.
func formatSeconds(secs int64) string {
	neg := secs < 0
	if neg {
		secs = -secs
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60

	var out string
	if h > 0 {
		out = fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	} else {
		out = fmt.Sprintf("%02d:%02d", m, s)
	}
	if neg {
		return "-" + out
	}
	return out
}

func firstValue(candidates ...*int64) *int64 {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}
