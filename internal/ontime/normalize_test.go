package ontime

import (
	"testing"
)

func TestNormalize_FullSnapshot(t *testing.T) {
	raw := []byte(`{
		"tag": "poll",
		"payload": {
			"timer": {"current": 45000, "remaining": 45000, "elapsed": 15000, "running": true, "playback": "play"},
			"timerType": "count-down",
			"currentEvent": {"id": "e1", "title": "Keynote", "timeWarning": 60000, "timeDanger": 10000, "duration": 300000},
			"nextEvent": {"title": "Break"},
			"selectedEventIndex": 1,
			"numEvents": 4
		}
	}`)

	u, ok := Normalize(raw)
	if !ok {
		t.Fatal("Normalize dropped a valid full frame")
	}
	if u.Kind != UpdateFull {
		t.Fatalf("Kind = %v, want UpdateFull", u.Kind)
	}
	snap := u.Snapshot
	if snap.Timer.Current == nil || *snap.Timer.Current != 45000 {
		t.Fatalf("Timer.Current = %v, want 45000", snap.Timer.Current)
	}
	if snap.Timer.Elapsed == nil || *snap.Timer.Elapsed != 15000 {
		t.Fatalf("Timer.Elapsed = %v, want 15000", snap.Timer.Elapsed)
	}
	if snap.Timer.Running == nil || !*snap.Timer.Running {
		t.Fatalf("Timer.Running = %v, want true", snap.Timer.Running)
	}
	if snap.Timer.Playback == nil || *snap.Timer.Playback != PlaybackPlay {
		t.Fatalf("Timer.Playback = %v, want play", snap.Timer.Playback)
	}
	if snap.TimerType != TimerCountDown {
		t.Fatalf("TimerType = %v, want count-down", snap.TimerType)
	}
	if snap.Current == nil || snap.Current.ID == nil || *snap.Current.ID != "e1" {
		t.Fatalf("Current = %#v, want id e1", snap.Current)
	}
	if snap.Current.TimeWarning == nil || *snap.Current.TimeWarning != 60000 {
		t.Fatalf("TimeWarning = %v, want 60000", snap.Current.TimeWarning)
	}
	if snap.Next == nil || snap.Next.Title == nil || *snap.Next.Title != "Break" {
		t.Fatalf("Next = %#v, want title Break", snap.Next)
	}
	if snap.Rundown == nil || snap.Rundown.Index != 1 || snap.Rundown.Total != 4 {
		t.Fatalf("Rundown = %#v, want {1 4}", snap.Rundown)
	}
}

func TestNormalize_MissingFieldsStayNil(t *testing.T) {
	u, ok := Normalize([]byte(`{"timer": {"current": 1000}}`))
	if !ok {
		t.Fatal("Normalize dropped a sparse frame")
	}
	snap := u.Snapshot
	if snap.Timer.Remaining != nil || snap.Timer.Elapsed != nil || snap.Timer.Running != nil || snap.Timer.Playback != nil {
		t.Fatalf("absent timer fields should be nil, got %#v", snap.Timer)
	}
	if snap.Current != nil || snap.Next != nil || snap.Rundown != nil {
		t.Fatalf("absent slices should be nil, got %#v", snap)
	}
	if snap.TimerType != TimerUnknown {
		t.Fatalf("TimerType = %v, want unknown", snap.TimerType)
	}
}

func TestNormalize_AliasPriority(t *testing.T) {
	// currentEvent outranks eventNow; nextEvent outranks eventNext.
	raw := []byte(`{
		"currentEvent": {"title": "canonical"},
		"eventNow": {"title": "legacy"},
		"nextEvent": {"title": "canonical-next"},
		"eventNext": {"title": "legacy-next"}
	}`)
	u, ok := Normalize(raw)
	if !ok {
		t.Fatal("Normalize dropped frame")
	}
	if u.Snapshot.Current == nil || *u.Snapshot.Current.Title != "canonical" {
		t.Fatalf("Current.Title = %#v, want canonical", u.Snapshot.Current)
	}
	if u.Snapshot.Next == nil || *u.Snapshot.Next.Title != "canonical-next" {
		t.Fatalf("Next.Title = %#v, want canonical-next", u.Snapshot.Next)
	}

	// The legacy alias still resolves when the canonical key is absent.
	u, ok = Normalize([]byte(`{"eventNow": {"title": "legacy"}}`))
	if !ok || u.Snapshot.Current == nil || *u.Snapshot.Current.Title != "legacy" {
		t.Fatalf("eventNow alias not resolved: %#v", u.Snapshot.Current)
	}
}

func TestNormalize_BareNumericTimer(t *testing.T) {
	u, ok := Normalize([]byte(`{"timer": 5000}`))
	if !ok {
		t.Fatal("Normalize dropped frame")
	}
	if u.Snapshot.Timer.Current == nil || *u.Snapshot.Timer.Current != 5000 {
		t.Fatalf("Timer.Current = %v, want 5000", u.Snapshot.Timer.Current)
	}
}

func TestNormalize_GranularUpdates(t *testing.T) {
	u, ok := Normalize([]byte(`{"type": "ontime-timer", "payload": {"current": 9000, "playback": "pause"}}`))
	if !ok {
		t.Fatal("Normalize dropped granular timer frame")
	}
	if u.Kind != UpdatePartial || u.Slice != SliceTimer {
		t.Fatalf("got kind=%v slice=%v, want partial timer", u.Kind, u.Slice)
	}
	if u.Snapshot.Timer.Current == nil || *u.Snapshot.Timer.Current != 9000 {
		t.Fatalf("Timer.Current = %v, want 9000", u.Snapshot.Timer.Current)
	}

	u, ok = Normalize([]byte(`{"type": "ontime-eventNow", "payload": {"id": "e2", "title": "Panel"}}`))
	if !ok || u.Kind != UpdatePartial || u.Slice != SliceEventNow {
		t.Fatalf("got %#v, want partial eventNow", u)
	}
	if u.Snapshot.Current == nil || *u.Snapshot.Current.ID != "e2" {
		t.Fatalf("Current = %#v, want id e2", u.Snapshot.Current)
	}

	// A null payload clears the slice.
	u, ok = Normalize([]byte(`{"type": "ontime-eventNow", "payload": null}`))
	if !ok || u.Kind != UpdatePartial || u.Slice != SliceEventNow {
		t.Fatalf("got %#v, want partial eventNow", u)
	}
	if u.Snapshot.Current != nil {
		t.Fatalf("Current = %#v, want nil (cleared)", u.Snapshot.Current)
	}

	u, ok = Normalize([]byte(`{"type": "ontime-runtime", "payload": {"selectedEventIndex": 2, "numEvents": 5}}`))
	if !ok || u.Slice != SliceRuntime || u.Snapshot.Rundown == nil {
		t.Fatalf("got %#v, want partial runtime", u)
	}
	if u.Snapshot.Rundown.Index != 2 || u.Snapshot.Rundown.Total != 5 {
		t.Fatalf("Rundown = %#v, want {2 5}", u.Snapshot.Rundown)
	}
}

func TestNormalize_UnknownGranularTagDropped(t *testing.T) {
	if _, ok := Normalize([]byte(`{"type": "ontime-message", "payload": {"timer": {"blink": true}}}`)); ok {
		t.Fatal("unplaceable granular frame should be dropped, not merged")
	}
}

func TestNormalize_DropsMalformedAndHeartbeats(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{not-json`},
		{"array frame", `[1, 2, 3]`},
		{"clock heartbeat", `{"clock": 1712000000}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := Normalize([]byte(tc.raw)); ok {
				t.Fatalf("Normalize(%s) kept frame, want drop", tc.raw)
			}
		})
	}

	// A frame with a clock field plus timer data is not a heartbeat.
	if _, ok := Normalize([]byte(`{"clock": 1712000000, "timer": {"current": 100}}`)); !ok {
		t.Fatal("frame with timer data dropped as heartbeat")
	}
}

func TestParseTimerType(t *testing.T) {
	cases := []struct {
		in   string
		want TimerType
	}{
		{"count-down", TimerCountDown},
		{"count down", TimerCountDown},
		{"countdown", TimerCountDown},
		{"COUNT_UP", TimerCountUp},
		{"count up", TimerCountUp},
		{"clock", TimerClock},
		{"none", TimerNone},
		{"something-else", TimerUnknown},
		{"", TimerUnknown},
	}
	for _, tc := range cases {
		if got := parseTimerType(tc.in); got != tc.want {
			t.Errorf("parseTimerType(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_TimerTypeFromNestedObjects(t *testing.T) {
	// timerType absent at the top level resolves from the timer object.
	u, ok := Normalize([]byte(`{"timer": {"current": 100, "type": "count up"}}`))
	if !ok || u.Snapshot.TimerType != TimerCountUp {
		t.Fatalf("TimerType = %v, want count-up", u.Snapshot.TimerType)
	}

	// Top level wins over nested candidates.
	u, ok = Normalize([]byte(`{"timerType": "clock", "timer": {"type": "count down"}}`))
	if !ok || u.Snapshot.TimerType != TimerClock {
		t.Fatalf("TimerType = %v, want clock", u.Snapshot.TimerType)
	}
}

func TestNormalize_RundownNeedsBothFields(t *testing.T) {
	u, ok := Normalize([]byte(`{"selectedEventIndex": 2}`))
	if !ok {
		t.Fatal("Normalize dropped frame")
	}
	if u.Snapshot.Rundown != nil {
		t.Fatalf("Rundown = %#v, want nil without numEvents", u.Snapshot.Rundown)
	}
}
