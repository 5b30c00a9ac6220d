package cdpdriver

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

const (
	defaultMaxConsoleEntries = 500
	consoleDrainBudget       = 1 * time.Second
	consoleDrainStep         = 100 * time.Millisecond
)

// sampleTimeSync evaluates Date.now() in the page and pairs it with a wall
// clock read either side, per spec.md §4.D step 1.
func (d *Driver) sampleTimeSync(timeout time.Duration) (TimeSyncInfo, error) {
	before := time.Now()
	res, err := d.evaluate("Date.now()", timeout, false)
	after := time.Now()
	if err != nil {
		return TimeSyncInfo{}, err
	}
	var browserNow int64
	if err := json.Unmarshal(res.Result.Value, &browserNow); err != nil {
		return TimeSyncInfo{}, NewProtocolError(0, "", "Date.now() did not return a number")
	}
	roundTrip := after.Sub(before).Milliseconds()
	serverNow := before.Add(after.Sub(before) / 2).UnixMilli()
	return TimeSyncInfo{
		BrowserNowMs: browserNow,
		ServerNowMs:  serverNow,
		OffsetMs:     browserNow - serverNow,
		RoundTripMs:  roundTrip,
	}, nil
}

func levelMatches(scope LevelScope, level ConsoleLevel) bool {
	switch scope.Type {
	case LevelScopeOnly:
		for _, l := range scope.Levels {
			if l == level {
				return true
			}
		}
		return len(scope.Levels) == 0
	default:
		minRank, ok := consoleLevelRank[scope.Level]
		if !ok {
			return true
		}
		return consoleLevelRank[level] >= minRank
	}
}

func timeBounds(scope TimeScope, serverNowMs int64) (fromMs, toMs int64) {
	switch scope.Type {
	case TimeScopeLastDuration:
		var deltaMs int64
		switch scope.LastDurationUnit {
		case UnitSeconds:
			deltaMs = scope.LastDurationValue * 1000
		case UnitMinutes:
			deltaMs = scope.LastDurationValue * 60 * 1000
		default:
			deltaMs = scope.LastDurationValue
		}
		return serverNowMs - deltaMs, serverNowMs
	case TimeScopeRange:
		return scope.FromMs, scope.ToMs
	case TimeScopeFromOnwards:
		return scope.FromMs, serverNowMs + 24*60*60*1000
	case TimeScopeUntil:
		return 0, scope.ToMs
	default:
		return 0, 0
	}
}

// GetConsoleMessages implements spec.md §4.D's console query pipeline in
// full: time-sync sample, a short drain for in-flight events, level filter,
// time filter, sort, and truncation.
func (d *Driver) GetConsoleMessages(opts GetConsoleMessagesOptions, timeout time.Duration) (ConsoleMessagesResult, error) {
	if err := d.requireSession(); err != nil {
		return ConsoleMessagesResult{}, err
	}

	sync, err := d.sampleTimeSync(timeout)
	if err != nil {
		return ConsoleMessagesResult{}, err
	}

	drained := time.Duration(0)
	for drained < consoleDrainBudget {
		time.Sleep(consoleDrainStep)
		drained += consoleDrainStep
	}

	entries := d.state.consoleSnapshot()

	hasTimeBound := opts.TimeScope.Type != TimeScopeNone
	var fromMs, toMs int64
	if hasTimeBound {
		fromMs, toMs = timeBounds(opts.TimeScope, sync.ServerNowMs)
	}

	matched := make([]ConsoleEntry, 0, len(entries))
	for _, e := range entries {
		if !levelMatches(opts.LevelScope, e.Level) {
			continue
		}
		if hasTimeBound && (e.TimestampMs < fromMs || e.TimestampMs > toMs) {
			continue
		}
		matched = append(matched, e)
	}

	order := opts.CountScope.Order
	if order == "" {
		order = OrderNewestFirst
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if order == OrderOldestFirst {
			return matched[i].TimestampMs < matched[j].TimestampMs
		}
		return matched[i].TimestampMs > matched[j].TimestampMs
	})

	maxEntries := opts.CountScope.MaxEntries
	if maxEntries <= 0 {
		maxEntries = defaultMaxConsoleEntries
	}
	totalMatching := len(matched)
	truncated := false
	if len(matched) > maxEntries {
		matched = matched[:maxEntries]
		truncated = true
	}

	lines := make([]string, 0, len(matched))
	for _, e := range matched {
		lines = append(lines, fmt.Sprintf("[%s] %s", e.Level, e.Text))
	}

	return ConsoleMessagesResult{
		Success:       true,
		Lines:         lines,
		Truncated:     truncated,
		ReturnedCount: len(lines),
		TotalMatching: totalMatching,
		TimeSync:      sync,
	}, nil
}
