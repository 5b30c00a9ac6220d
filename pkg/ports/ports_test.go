package ports

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindAvailablePort_ReturnsPreferredWhenFree(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	preferred := l.Addr().(*net.TCPAddr).Port
	l.Close()

	got, err := FindAvailablePort(preferred)
	require.NoError(t, err)
	require.Equal(t, preferred, got)
}

func TestFindAvailablePort_FallsBackWhenTaken(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	taken := l.Addr().(*net.TCPAddr).Port

	got, err := FindAvailablePort(taken)
	require.NoError(t, err)
	require.NotEqual(t, taken, got)
}

func TestFindAvailablePortInRange_RejectsInvertedRange(t *testing.T) {
	_, err := FindAvailablePortInRange(200, 100)
	require.Error(t, err)
}
