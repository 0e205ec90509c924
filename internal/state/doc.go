// Package state holds the canonical timer model and its presentation
// projection.
//
// # Overview
//
// The Store is the single source of truth: the last-known normalized
// snapshot plus locally derived fields (loaded-event flag, connection
// status, last update instant). Inbound updates from the websocket and the
// local render tick both read or mutate the model through the Store's
// mutex, which is the one serialization point that prevents a tick racing
// a snapshot application.
//
// # Merge semantics
//
// Full updates replace the stored snapshot wholesale. Partial updates
// (granular ontime-* pushes) refresh only the slice they name; every other
// slice keeps its previous value. Applying the same update twice yields an
// identical projection.
//
// # Projection
//
// Project is a pure function from (Model, now) to RenderState. Count-down
// time is displayed as the ceiling of remaining milliseconds, count-up as
// the floor of elapsed, clock mode formats the local wall clock, and an
// unloaded model renders a dimmed placeholder. Server-reported values are
// authoritative: there is no local extrapolation between pushes.
package state
