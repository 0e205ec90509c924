package ontime

import (
	"encoding/json"
	"strings"
)

// sliceForType maps granular update type tags to the slice they refresh.
// The server's tag list is not closed; extend here as new tags show up.
var sliceForType = map[string]Slice{
	"ontime-timer":     SliceTimer,
	"ontime-eventNow":  SliceEventNow,
	"ontime-eventNext": SliceEventNext,
	"ontime-runtime":   SliceRuntime,
}

// Alias tables for the evolving wire vocabulary. Ordered by priority,
// first present key wins.
var (
	currentEventKeys = []string{"currentEvent", "eventNow"}
	nextEventKeys    = []string{"nextEvent", "eventNext", "next"}
	timerCurrentKeys = []string{"current", "currentTime", "time"}
	eventIDKeys      = []string{"id", "eventId"}
)

// Normalize maps one raw inbound frame to an Update. It is total: malformed
// frames and heartbeat-only frames are dropped (ok=false), never an error,
// and fields the server did not report come back nil.
func Normalize(raw []byte) (Update, bool) {
	var frame map[string]any
	if err := json.Unmarshal(raw, &frame); err != nil {
		return Update{}, false
	}

	typeTag := stringValue(frame["type"])
	if typeTag == "" {
		typeTag = stringValue(frame["tag"])
	}
	payload, hasPayload := frame["payload"]

	if slice, ok := sliceForType[typeTag]; ok && hasPayload {
		return normalizeSlice(slice, payload)
	}
	if strings.HasPrefix(typeTag, "ontime-") {
		// Granular tag we cannot place. Refusing to guess beats wiping
		// slices the update did not name.
		return Update{}, false
	}

	working := frame
	if obj, ok := payload.(map[string]any); ok {
		working = obj
	}
	if isHeartbeat(working) {
		return Update{}, false
	}
	return Update{Kind: UpdateFull, Snapshot: normalizeSnapshot(working)}, true
}

func normalizeSlice(slice Slice, payload any) (Update, bool) {
	obj, isObj := payload.(map[string]any)
	snap := Snapshot{TimerType: TimerUnknown}

	switch slice {
	case SliceTimer:
		if !isObj {
			return Update{}, false
		}
		snap.Timer = parseTimer(obj)
		snap.TimerType = parseTimerType(obj["timerType"], obj["type"], obj["mode"])
	case SliceEventNow, SliceEventNext:
		// A null payload clears the slice: the server unloaded the event.
		var ev *EventInfo
		if isObj {
			parsed := parseEvent(obj)
			ev = &parsed
		} else if payload != nil {
			return Update{}, false
		}
		if slice == SliceEventNow {
			snap.Current = ev
		} else {
			snap.Next = ev
		}
	case SliceRuntime:
		if !isObj {
			return Update{}, false
		}
		snap.Rundown = parsePosition(obj)
	}
	return Update{Kind: UpdatePartial, Slice: slice, Snapshot: snap}, true
}

func normalizeSnapshot(obj map[string]any) Snapshot {
	var timerObj map[string]any
	switch v := obj["timer"].(type) {
	case map[string]any:
		timerObj = v
	default:
		// A bare numeric timer field is the running value.
		if n := numberValue(v); n != nil {
			timerObj = map[string]any{"current": *n}
		}
	}

	reading := parseTimer(timerObj)
	if reading.Current == nil {
		reading.Current = firstNumber(obj, timerCurrentKeys...)
	}
	if reading.Remaining == nil {
		reading.Remaining = firstNumber(obj, "remaining")
	}
	if reading.Elapsed == nil {
		reading.Elapsed = firstNumber(obj, "elapsed")
	}
	if reading.Running == nil {
		reading.Running = boolField(obj, "running")
	}
	if reading.Playback == nil {
		reading.Playback = playbackField(obj, "playback", "status")
	}

	currentObj := firstObject(obj, currentEventKeys...)
	nextObj := firstObject(obj, nextEventKeys...)

	snap := Snapshot{
		Timer:   reading,
		Rundown: parsePosition(obj),
	}
	if currentObj != nil {
		ev := parseEvent(currentObj)
		snap.Current = &ev
	}
	if nextObj != nil {
		ev := parseEvent(nextObj)
		snap.Next = &ev
	}
	snap.TimerType = parseTimerType(
		obj["timerType"],
		mapValue(currentObj, "timerType"),
		mapValue(timerObj, "timerType"),
		mapValue(timerObj, "type"),
		mapValue(timerObj, "mode"),
	)
	return snap
}

func parseTimer(obj map[string]any) TimerReading {
	return TimerReading{
		Current:   firstNumber(obj, timerCurrentKeys...),
		Remaining: firstNumber(obj, "remaining"),
		Elapsed:   firstNumber(obj, "elapsed"),
		Running:   boolField(obj, "running"),
		Playback:  playbackField(obj, "playback", "state"),
	}
}

func parseEvent(obj map[string]any) EventInfo {
	return EventInfo{
		ID:          firstString(obj, eventIDKeys...),
		Title:       firstString(obj, "title"),
		TimeWarning: firstNumber(obj, "timeWarning"),
		TimeDanger:  firstNumber(obj, "timeDanger"),
		Duration:    firstNumber(obj, "duration"),
	}
}

func parsePosition(obj map[string]any) *Position {
	idx := firstNumber(obj, "selectedEventIndex")
	total := firstNumber(obj, "numEvents")
	if idx == nil || total == nil {
		return nil
	}
	return &Position{Index: int(*idx), Total: int(*total)}
}

// parseTimerType resolves the first recognizable candidate; anything else,
// including nothing at all, maps to TimerUnknown.
func parseTimerType(candidates ...any) TimerType {
	for _, c := range candidates {
		s := stringValue(c)
		if s == "" {
			continue
		}
		s = strings.TrimSpace(strings.ToLower(s))
		s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
		switch s {
		case "count down", "countdown":
			return TimerCountDown
		case "count up", "countup":
			return TimerCountUp
		case "clock":
			return TimerClock
		case "none":
			return TimerNone
		}
	}
	return TimerUnknown
}

// isHeartbeat reports whether the working object is a wall-clock heartbeat
// with no timer or event data worth merging.
func isHeartbeat(obj map[string]any) bool {
	if _, ok := obj["clock"]; !ok {
		return false
	}
	for _, key := range []string{"timer", "currentEvent", "eventNow", "current", "remaining", "elapsed"} {
		if _, ok := obj[key]; ok {
			return false
		}
	}
	return true
}

func mapValue(obj map[string]any, key string) any {
	if obj == nil {
		return nil
	}
	return obj[key]
}

func firstObject(obj map[string]any, keys ...string) map[string]any {
	for _, key := range keys {
		if nested, ok := obj[key].(map[string]any); ok {
			return nested
		}
	}
	return nil
}

func firstNumber(obj map[string]any, keys ...string) *int64 {
	if obj == nil {
		return nil
	}
	for _, key := range keys {
		if n := numberValue(obj[key]); n != nil {
			return n
		}
	}
	return nil
}

func numberValue(v any) *int64 {
	switch n := v.(type) {
	case float64:
		ms := int64(n)
		return &ms
	case int:
		ms := int64(n)
		return &ms
	case int64:
		return &n
	}
	return nil
}

func boolField(obj map[string]any, key string) *bool {
	if obj == nil {
		return nil
	}
	if b, ok := obj[key].(bool); ok {
		return &b
	}
	return nil
}

func firstString(obj map[string]any, keys ...string) *string {
	if obj == nil {
		return nil
	}
	for _, key := range keys {
		if s, ok := obj[key].(string); ok {
			return &s
		}
	}
	return nil
}

func playbackField(obj map[string]any, keys ...string) *Playback {
	if obj == nil {
		return nil
	}
	for _, key := range keys {
		s, ok := obj[key].(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(strings.ToLower(s))
		if s == "" {
			continue
		}
		p := Playback(s)
		return &p
	}
	return nil
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
