// Package app provides the orchestration layer for cuetime.
//
// # Overview
//
// This package wires together configuration, the websocket connection, the
// state store, the intent dispatcher, and the UI. It is the composition
// root where all dependencies are initialized and connected.
//
// # Data Flow
//
//	Conn.Run ──► Updates channel ──► StartPump ──► state.Store
//	                                                  │
//	                ui (1 Hz tick + change signal) ◄──┘
//	                │
//	                └──► control.Dispatcher ──► Conn.Send
//
// The store's mutex serializes the update pump against the UI's render
// tick; sends are fire-and-forget with respect to the model, which only
// changes when the server's resulting snapshot arrives.
package app
