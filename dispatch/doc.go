// Package dispatch routes raw calldata and logs to the ABI schemas that can
// decode them. A Table keys function schemas by 4-byte selector and event
// schemas by topic zero; colliding registrations coexist as candidate lists
// tried in registration order, which makes overloads and multi-contract
// tables work without special cases.
package dispatch
