// Package legiscan implements the transport adapter for the LegiScan API.
//
// LegiScan exposes a single JSON-over-HTTP endpoint. Each call is a GET with
// the credential and operation name in the query string:
//
//	https://api.legiscan.com/?key=<key>&op=getBill&id=1234
//
// Every response is a JSON object with a top-level "status" member. Anything
// other than "OK" is a failure even when the HTTP status is 200; such
// responses usually carry an "alert" object with a message.
//
// # Operations
//
//   - getSessionList (state): sessions for a jurisdiction
//   - getMasterList (id): every bill of a session, as an object keyed by index
//   - getBill (id): the full record of one bill
//   - getBillText (id): one bill document, base64 encoded
//   - search (state, query, year): full-text search
//
// # Behaviour
//
// The client performs exactly one request per call. It never retries and
// sets no timeout of its own, leaving cancellation to the caller's context.
// An optional token bucket throttle delays requests when configured.
//
// The credential is sent with every request but never logged.
package legiscan
