// Package events carries auth state change notifications.
//
// The auth service emits an AuthEvent whenever a session is created,
// replaced or torn down. Interested components register an EventHandler
// with the emitter and receive every event in registration order. The
// emitter is in-memory and synchronous.
package events
