/*
Package session orchestrates concurrent access to persisted automaton
sessions. Each session is owned by one request at a time: the manager
serializes access per session ID, optionally backed by a distributed
locker when multiple replicas share a store.
*/
package session
