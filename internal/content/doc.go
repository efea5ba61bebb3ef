// Package content implements the Timension content service: the daily
// headline, mentor chat, location exploration, timelines, mission
// briefings, time ripples and chaos puzzles.
//
// Every operation is total. It builds a prompt, asks the generation.Model
// for an answer (JSON matching a declared schema where the result is
// structured), validates what comes back, and returns a fixed fallback of
// the same shape when anything goes wrong: no model configured, a failed
// or cancelled request, an empty payload, or output that does not decode
// or validate. Failures are logged with their category and never returned.
package content
