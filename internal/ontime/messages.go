package ontime

// Message is an outbound control frame in the server's tag/payload shape.
type Message struct {
	Tag     string `json:"tag"`
	Payload any    `json:"payload,omitempty"`
}

// Poll requests a full state snapshot. Sent once after every (re)connect.
func Poll() Message { return Message{Tag: "poll"} }

// Start starts the loaded event.
func Start() Message { return Message{Tag: "start"} }

// Pause pauses the running timer.
func Pause() Message { return Message{Tag: "pause"} }

// Reload reloads the current event, resetting its timer.
func Reload() Message { return Message{Tag: "reload"} }

// LoadNext loads the next rundown event.
func LoadNext() Message { return Message{Tag: "load", Payload: "next"} }

// LoadPrevious loads the previous rundown event.
func LoadPrevious() Message { return Message{Tag: "load", Payload: "previous"} }

// AddTime adds ms to the running timer.
func AddTime(ms int64) Message {
	return Message{Tag: "addtime", Payload: map[string]int64{"add": ms}}
}

// RemoveTime removes ms from the running timer.
func RemoveTime(ms int64) Message {
	return Message{Tag: "addtime", Payload: map[string]int64{"remove": ms}}
}

// ChangeDuration rewrites the configured duration of the identified event.
func ChangeDuration(eventID string, ms int64) Message {
	return Message{Tag: "change", Payload: map[string]map[string]int64{
		eventID: {"duration": ms},
	}}
}

// Blink toggles blinking on the server-side timer views.
func Blink(on bool) Message {
	return Message{Tag: "message", Payload: map[string]map[string]bool{
		"timer": {"blink": on},
	}}
}

// Blackout toggles blackout on the server-side timer views.
func Blackout(on bool) Message {
	return Message{Tag: "message", Payload: map[string]map[string]bool{
		"timer": {"blackout": on},
	}}
}
