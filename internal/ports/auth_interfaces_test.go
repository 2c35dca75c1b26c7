package ports_test

import (
	"testing"

	mocks "github.com/slicelab/storefront/internal/mocks/auth"
	"github.com/slicelab/storefront/internal/ports"
)

// This test only verifies that our mocks conform to the ports at compile time.
func TestMocksImplementPorts(t *testing.T) {
	t.Helper()

	var _ ports.AuthProvider = (*mocks.MockAuthProvider)(nil)
	var _ ports.IdentityStore = (*mocks.MemoryIdentityStore)(nil)
	var _ ports.UserRegistrar = (*mocks.RecordingRegistrar)(nil)
}
