package cdpdriver

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const devToolsActivePortFile = "DevToolsActivePort"

// waitForPortFile waits for {profileDir}/DevToolsActivePort to appear and
// contain at least one byte, up to timeout (spec.md §4.A step 3). It prefers
// an fsnotify watch on profileDir (immediate, event-driven) and falls back to
// a bounded poll at pollInterval if the watch cannot be established — some
// sandboxes disallow inotify, and the 15s/100ms budget from spec.md remains
// the worst case either way.
func waitForPortFile(ctx context.Context, profileDir string, timeout, pollInterval time.Duration) (string, error) {
	path := filepath.Join(profileDir, devToolsActivePortFile)
	deadline := time.Now().Add(timeout)

	if data, ok := tryReadNonEmpty(path); ok {
		return data, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err == nil {
		defer watcher.Close()
		if werr := watcher.Add(profileDir); werr == nil {
			return waitForPortFileWatched(ctx, watcher, path, deadline)
		}
	}

	return waitForPortFilePolled(ctx, path, deadline, pollInterval)
}

func waitForPortFileWatched(ctx context.Context, watcher *fsnotify.Watcher, path string, deadline time.Time) (string, error) {
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return "", fmt.Errorf("%w: DevToolsActivePort did not appear", ErrLaunchFailed)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(remaining):
			return "", fmt.Errorf("%w: DevToolsActivePort did not appear", ErrLaunchFailed)
		case ev, ok := <-watcher.Events:
			if !ok {
				return waitForPortFilePolled(ctx, path, deadline, 100*time.Millisecond)
			}
			if ev.Name != path {
				continue
			}
			if data, ok := tryReadNonEmpty(path); ok {
				return data, nil
			}
		case <-watcher.Errors:
			return waitForPortFilePolled(ctx, path, deadline, 100*time.Millisecond)
		}
	}
}

func waitForPortFilePolled(ctx context.Context, path string, deadline time.Time, pollInterval time.Duration) (string, error) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if data, ok := tryReadNonEmpty(path); ok {
			return data, nil
		}
		if time.Now().After(deadline) {
			return "", fmt.Errorf("%w: DevToolsActivePort did not appear within timeout", ErrLaunchFailed)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

func tryReadNonEmpty(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// portFileContents is the parsed two-line DevToolsActivePort file.
type portFileContents struct {
	Port int
	Path string // browser-level debugger endpoint path, may be empty
}

// parsePortFile implements spec.md §4.A step 4: line 1 is an integer port in
// (0, 65535]; line 2, if present, is a path fragment.
func parsePortFile(raw string) (portFileContents, error) {
	scanner := bufio.NewScanner(strings.NewReader(raw))
	if !scanner.Scan() {
		return portFileContents{}, fmt.Errorf("%w: empty port file", ErrLaunchFailed)
	}
	portLine := strings.TrimSpace(scanner.Text())
	port, err := strconv.Atoi(portLine)
	if err != nil || port <= 0 || port > 65535 {
		return portFileContents{}, fmt.Errorf("%w: invalid port %q", ErrLaunchFailed, portLine)
	}

	var path string
	if scanner.Scan() {
		path = strings.TrimSpace(scanner.Text())
	}

	return portFileContents{Port: port, Path: path}, nil
}

// buildWebSocketURL normalizes the parsed port file into a ws:// URL
// targeting 127.0.0.1, per spec.md §4.A step 4.
func buildWebSocketURL(pf portFileContents) string {
	path := normalizeWSPath(pf.Path)
	return fmt.Sprintf("ws://127.0.0.1:%d%s", pf.Port, path)
}

// normalizeWSPath collapses any number of leading slashes on the browser
// path fragment to exactly one, or falls back to /devtools/browser if empty.
func normalizeWSPath(path string) string {
	trimmed := strings.TrimLeft(path, "/")
	if trimmed == "" {
		return "/devtools/browser"
	}
	return "/" + trimmed
}
