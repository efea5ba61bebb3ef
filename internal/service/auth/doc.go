// Package auth implements email/password authentication and the session
// lifecycle: sign-up, sign-in, refresh, sign-out and session lookup.
//
// Sessions are stateless HMAC-signed JWT pairs. An access token is short
// lived and is presented on every authenticated request; a refresh token
// is exchanged for a new pair and is rotated on each use. Sign-out and
// rotation record token IDs in an in-memory revocation set. Each lifecycle
// transition is published as an events.AuthEvent.
package auth
