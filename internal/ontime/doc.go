// Package ontime provides the websocket client for an Ontime server.
//
// # Overview
//
// This package owns everything wire-shaped: the connection lifecycle, the
// outbound tag/payload control messages, and the normalizer that maps the
// server's loosely specified inbound frames onto the canonical Snapshot
// model the rest of the application consumes.
//
// # Architecture
//
// The package is split into four files:
//
//   - conn.go: websocket connection, reconnect loop, thread-safe Send
//   - messages.go: outbound control message constructors
//   - normalize.go: inbound frame normalization and alias resolution
//   - types.go: canonical snapshot, event, and update types
//
// # Connection lifecycle
//
// Conn.Run dials the endpoint derived from the configured server URL
// (http scheme swapped for ws, /ws appended) and reads frames until the
// context is cancelled. Every successful connect immediately sends
// {"tag":"poll"} so the server pushes a full snapshot. Drops schedule a
// re-dial with exponential backoff capped at 30 seconds, and connection
// status changes flow through the same Updates channel as data so the
// presentation layer can render a disconnected indicator.
//
// # Normalization
//
// The wire protocol has evolved and the same concept appears under several
// key names (currentEvent vs eventNow, current vs remaining). Normalize
// resolves each canonical field through a fixed-priority alias table, first
// present key wins. It is a total function: malformed frames are dropped
// and missing fields come back nil, never an error. Granular ontime-*
// updates become Partial updates naming the slice they refresh; the state
// store merges them into the retained model instead of replacing it.
package ontime
