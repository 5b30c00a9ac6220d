package cdpdriver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePortFile_PortOnly(t *testing.T) {
	pf, err := parsePortFile("34567\n")
	require.NoError(t, err)
	require.Equal(t, 34567, pf.Port)
	require.Equal(t, "", pf.Path)
}

func TestParsePortFile_PortAndPath(t *testing.T) {
	pf, err := parsePortFile("34567\n/devtools/browser/abc-123\n")
	require.NoError(t, err)
	require.Equal(t, 34567, pf.Port)
	require.Equal(t, "/devtools/browser/abc-123", pf.Path)
}

func TestParsePortFile_InvalidPort(t *testing.T) {
	_, err := parsePortFile("not-a-number\n")
	require.Error(t, err)

	_, err = parsePortFile("0\n")
	require.Error(t, err)

	_, err = parsePortFile("70000\n")
	require.Error(t, err)
}

func TestParsePortFile_Empty(t *testing.T) {
	_, err := parsePortFile("")
	require.Error(t, err)
}

func TestBuildWebSocketURL_NoSecondLine(t *testing.T) {
	u := buildWebSocketURL(portFileContents{Port: 9222, Path: ""})
	require.Equal(t, "ws://127.0.0.1:9222/devtools/browser", u)
}

func TestBuildWebSocketURL_LeadingSlashesNormalized(t *testing.T) {
	for _, path := range []string{
		"/devtools/browser/xyz",
		"//devtools/browser/xyz",
		"devtools/browser/xyz",
	} {
		u := buildWebSocketURL(portFileContents{Port: 9222, Path: path})
		require.Equal(t, "ws://127.0.0.1:9222/devtools/browser/xyz", u)
	}
}
