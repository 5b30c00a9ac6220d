package cdpdriver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelMatches_MinLevel(t *testing.T) {
	scope := LevelScope{Type: LevelScopeMinLevel, Level: LevelWarning}
	require.False(t, levelMatches(scope, LevelInfo))
	require.True(t, levelMatches(scope, LevelWarning))
	require.True(t, levelMatches(scope, LevelError))
}

func TestLevelMatches_OnlySet(t *testing.T) {
	scope := LevelScope{Type: LevelScopeOnly, Levels: []ConsoleLevel{LevelError, LevelWarning}}
	require.True(t, levelMatches(scope, LevelError))
	require.False(t, levelMatches(scope, LevelInfo))
}

func TestLevelMatches_EmptyOnlySetMatchesEverything(t *testing.T) {
	scope := LevelScope{Type: LevelScopeOnly}
	require.True(t, levelMatches(scope, LevelDebug))
}

func TestTimeBounds_LastDurationSeconds(t *testing.T) {
	scope := TimeScope{Type: TimeScopeLastDuration, LastDurationValue: 5, LastDurationUnit: UnitSeconds}
	from, to := timeBounds(scope, 10_000)
	require.Equal(t, int64(5_000), from)
	require.Equal(t, int64(10_000), to)
}

func TestTimeBounds_Range(t *testing.T) {
	scope := TimeScope{Type: TimeScopeRange, FromMs: 100, ToMs: 200}
	from, to := timeBounds(scope, 999)
	require.Equal(t, int64(100), from)
	require.Equal(t, int64(200), to)
}

func TestTimeBounds_FromOnwards(t *testing.T) {
	scope := TimeScope{Type: TimeScopeFromOnwards, FromMs: 42}
	from, to := timeBounds(scope, 1_000)
	require.Equal(t, int64(42), from)
	require.Greater(t, to, int64(1_000))
}

func TestTimeBounds_Until(t *testing.T) {
	scope := TimeScope{Type: TimeScopeUntil, ToMs: 500}
	from, to := timeBounds(scope, 1_000)
	require.Equal(t, int64(0), from)
	require.Equal(t, int64(500), to)
}
