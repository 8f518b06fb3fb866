/*
Package ports defines the driven ports (interfaces) for the handshake
verifier.

These interfaces decouple the engine's collaborators from concrete
implementations, letting the HTTP and MCP adapters persist sessions in
memory, Redis, or anything else.

# Key Interfaces

  - SessionStore: persists and loads per-client Session snapshots.
  - Locker: distributed locking for concurrent access to one session
    across replicas.
*/
package ports
