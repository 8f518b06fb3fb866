/*
Package protocol defines the domain model for the TCP three-way-handshake
verifier: the closed state and symbol sets, the immutable transition table,
and the per-run session (current state plus transition history).

The state space and alphabet are fixed at compile time. Unknown textual
input is rejected at the parse boundary instead of leaking raw strings
into table lookups.
*/
package protocol
