package cdpdriver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeUTF8_ValidPassesThrough(t *testing.T) {
	require.Equal(t, "héllo", sanitizeUTF8("héllo"))
	require.Equal(t, "", sanitizeUTF8(""))
}

func TestSanitizeUTF8_InvalidContinuation(t *testing.T) {
	// 0xC2 expects one continuation byte; followed by an ASCII byte instead.
	in := string([]byte{'a', 0xC2, 'b'})
	got := sanitizeUTF8(in)
	require.Equal(t, "a�b", got)
}

func TestSanitizeUTF8_TruncatedMultiByte(t *testing.T) {
	// 0xE2 0x82 0xAC is the euro sign; drop the last byte.
	in := string([]byte{0xE2, 0x82})
	got := sanitizeUTF8(in)
	require.Equal(t, "��", got)
}

func TestSanitizeUTF8_LoneContinuationByte(t *testing.T) {
	in := string([]byte{0x80})
	require.Equal(t, "�", sanitizeUTF8(in))
}
