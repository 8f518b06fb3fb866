package memory_test

import (
	"testing"

	"github.com/aretw0/handshake/pkg/adapters/memory"
	"github.com/aretw0/handshake/pkg/ports"
)

func TestInMemoryStore_Contract(t *testing.T) {
	ports.RunSessionStoreContract(t, memory.NewStore())
}
