//go:build unit

package sysinfo

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterfaceAdapter_InterfaceNames(t *testing.T) {
	adapter := NewInterfaceAdapter()

	names, err := adapter.InterfaceNames(context.Background())
	require.NoError(t, err)
	assert.True(t, sort.StringsAreSorted(names))
	assert.NotContains(t, names, "nonexistent0")
}

func TestInterfaceAdapter_Interfaces(t *testing.T) {
	adapter := NewInterfaceAdapter()

	ifaces, err := adapter.Interfaces(context.Background())
	require.NoError(t, err)

	for _, iface := range ifaces {
		assert.NotEmpty(t, iface.Name)
	}
}
