package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bmcps/browsermcp/internal/cdpdriver"
)

func TestSplitLevels(t *testing.T) {
	require.Equal(t, []cdpdriver.ConsoleLevel{"error", "warning"}, splitLevels("error,warning"))
	require.Nil(t, splitLevels(""))
	require.Equal(t, []cdpdriver.ConsoleLevel{"error"}, splitLevels("error,"))
}
