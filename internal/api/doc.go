// Package api dispatches requests to the Marvin service across its two
// equivalent HTTP endpoints.
//
// The desktop app serves a local API (default http://localhost:12345/api)
// that is only up while the app runs; the cloud serves the same operations
// publicly (default https://serv.amazingmarvin.com/api). Which endpoints an
// invocation may use is decided by Candidates from the resolved target and
// the operation's Capability; Client.Do then walks the candidates in order.
//
// The fallback contract is deliberately narrow: only a transport failure
// (no HTTP response at all) moves on to the next candidate. Any response
// from the service, including 4xx and 5xx, is authoritative and ends the
// chain. Each candidate is attempted exactly once per call, with no retries
// and no backoff, so a create request can never fire twice.
//
// Errors are typed: *ConnectionError (every candidate unreachable) and
// *StatusError (the service said no). The command layer maps them to exit
// codes; nothing in this package prints or exits.
package api
