package cdpdriver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectionState_MarkNetworkEnabledIsIdempotent(t *testing.T) {
	s := newConnectionState()
	require.False(t, s.markNetworkEnabled())
	require.True(t, s.markNetworkEnabled())
}

func TestConnectionState_ClearSessionResetsNetworkEnabled(t *testing.T) {
	s := newConnectionState()
	s.markNetworkEnabled()
	s.setSession("target-1", "session-1")

	s.clearSession()

	require.False(t, s.hasSession())
	require.False(t, s.markNetworkEnabled())
}

func TestConnectionState_FrameContextRoundTrip(t *testing.T) {
	s := newConnectionState()
	_, ok := s.contextForFrame("frame-1")
	require.False(t, ok)

	s.recordFrameContext("frame-1", 42)
	id, ok := s.contextForFrame("frame-1")
	require.True(t, ok)
	require.Equal(t, int64(42), id)

	s.setCurrentExecutionContext(42)
	require.Equal(t, int64(42), s.getCurrentExecutionContext())
}

func TestConnectionState_DialogSlot(t *testing.T) {
	s := newConnectionState()
	_, ok := s.getDialog()
	require.False(t, ok)

	s.setDialog(PendingDialog{Type: DialogAlert, Message: "hi"})
	d, ok := s.getDialog()
	require.True(t, ok)
	require.Equal(t, "hi", d.Message)

	s.clearDialog()
	_, ok = s.getDialog()
	require.False(t, ok)
}
