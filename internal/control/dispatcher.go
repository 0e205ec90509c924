// Package control translates user intents into outbound server messages.
// It never mutates the local model: the model only changes when the
// server's resulting snapshot arrives.
package control

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/revell/cuetime/internal/ontime"
	"github.com/revell/cuetime/internal/state"
)

var (
	// ErrMissingEvent means a control needed the current event's id and
	// duration and at least one was unknown. Nothing is sent.
	ErrMissingEvent = errors.New("control: current event context missing")
	// ErrDisabled means the control is not available in the current
	// rundown position. Nothing is sent.
	ErrDisabled = errors.New("control: not available")
)

const minuteMs = 60_000

// Sender is the outbound half of the transport.
type Sender interface {
	Send(ontime.Message) error
}

// Dispatcher maps user controls to protocol messages.
type Dispatcher struct {
	sender Sender
	store  *state.Store
	log    zerolog.Logger

	// addtimeAffectsDuration selects the ±1 minute policy: false nudges
	// the running timer, true rewrites the event's configured duration.
	addtimeAffectsDuration bool
}

// NewDispatcher builds a Dispatcher bound to the given transport and model.
func NewDispatcher(sender Sender, store *state.Store, addtimeAffectsDuration bool, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		sender:                 sender,
		store:                  store,
		log:                    logger.With().Str("component", "control").Logger(),
		addtimeAffectsDuration: addtimeAffectsDuration,
	}
}

// Start starts the loaded event.
func (d *Dispatcher) Start() error { return d.send(ontime.Start()) }

// Pause pauses the running timer.
func (d *Dispatcher) Pause() error { return d.send(ontime.Pause()) }

// Reload reloads the current event, resetting its timer.
func (d *Dispatcher) Reload() error { return d.send(ontime.Reload()) }

// RestartAndStart reloads the current event and then starts it, as two
// ordered messages. A drop between the two leaves the event reloaded but
// not started, which is recoverable; a combined message would not be.
func (d *Dispatcher) RestartAndStart() error {
	if err := d.send(ontime.Reload()); err != nil {
		return err
	}
	return d.send(ontime.Start())
}

// Next loads the following rundown event. Rejected when the rundown
// position is unknown or already at the end; there is no wraparound.
func (d *Dispatcher) Next() error {
	if !d.store.Model().NextEnabled() {
		d.log.Debug().Msg("next rejected: not enabled")
		return ErrDisabled
	}
	return d.send(ontime.LoadNext())
}

// Previous loads the preceding rundown event.
func (d *Dispatcher) Previous() error {
	if !d.store.Model().PrevEnabled() {
		d.log.Debug().Msg("previous rejected: not enabled")
		return ErrDisabled
	}
	return d.send(ontime.LoadPrevious())
}

// AddMinute applies +1 minute under the configured policy.
func (d *Dispatcher) AddMinute() error { return d.nudge(minuteMs) }

// RemoveMinute applies -1 minute under the configured policy.
func (d *Dispatcher) RemoveMinute() error { return d.nudge(-minuteMs) }

// Blink toggles blinking on the server's timer views.
func (d *Dispatcher) Blink(on bool) error { return d.send(ontime.Blink(on)) }

// Blackout toggles blackout on the server's timer views.
func (d *Dispatcher) Blackout(on bool) error { return d.send(ontime.Blackout(on)) }

func (d *Dispatcher) nudge(deltaMs int64) error {
	if !d.addtimeAffectsDuration {
		if deltaMs >= 0 {
			return d.send(ontime.AddTime(deltaMs))
		}
		return d.send(ontime.RemoveTime(-deltaMs))
	}

	ev := d.store.Model().Snapshot.Current
	if ev == nil || ev.ID == nil || ev.Duration == nil {
		// Without both id and duration any change message would be
		// malformed, so the control is a no-op.
		d.log.Debug().Msg("duration change rejected: event context missing")
		return ErrMissingEvent
	}
	duration := *ev.Duration + deltaMs
	if duration < 0 {
		duration = 0
	}
	return d.send(ontime.ChangeDuration(*ev.ID, duration))
}

func (d *Dispatcher) send(msg ontime.Message) error {
	if err := d.sender.Send(msg); err != nil {
		d.log.Debug().Err(err).Str("tag", msg.Tag).Msg("control rejected")
		return err
	}
	return nil
}
