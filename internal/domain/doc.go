// Package domain contains the records exchanged by the Timension newspaper:
// the generated content (headlines, mission briefings, timelines, ripple
// outcomes and chaos puzzles), the traveler profile shown on the account
// page, and the registered user behind a session.
//
// Types here carry camelCase JSON tags because they are the wire format the
// front-end consumes. They are independent of storage, transport and the
// generative model.
package domain
