package cdpdriver

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bmcps/browsermcp/internal/bmcpslog"
	"github.com/bmcps/browsermcp/internal/config"
	"github.com/bmcps/browsermcp/pkg/ports"
)

// launcher owns Chrome's process lifetime: finding the binary, building its
// argv, spawning it, discovering its DevTools endpoint, and killing it on
// teardown iff this process is the one that started it (spec.md §4.A, I3).
type launcher struct {
	log *logrus.Entry
	cfg *config.Config
}

func newLauncher(cfg *config.Config) *launcher {
	return &launcher{log: bmcpslog.For("launcher"), cfg: cfg}
}

// launchResult describes the outcome of open_browser's launch-or-adopt step.
type launchResult struct {
	WebSocketURL string
	ProfileDir   string
	ChildPID     int
	Adopted      bool
	lockHandle   *flock.Flock
}

// launch finds Chrome, builds its profile dir and argv, spawns it, and waits
// for its DevToolsActivePort file. Before spawning it attempts the
// single-instance flock: if another process already holds the lock on the
// requested profile dir, that is treated as an adoption signal rather than a
// hard failure, unless opts.DisableTranslate forbids adoption (spec.md §4.A
// step 5, §9 "accepted single-instance restriction" made explicit).
func (l *launcher) launch(ctx context.Context, profileDir string, chromePathOverride string, remoteDebuggingPort int, opts OpenBrowserOptions) (*launchResult, error) {
	if profileDir == "" {
		profileDir = defaultProfileDir()
	}
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		return nil, NewLaunchError("could not create profile directory", err)
	}

	lockPath := filepath.Join(profileDir, ".bmcps.lock")
	lk := flock.New(lockPath)
	locked, err := lk.TryLock()
	if err != nil {
		return nil, NewLaunchError("could not acquire profile lock", err)
	}

	if !locked {
		if opts.DisableTranslate {
			return nil, NewLaunchError("profile directory is locked by another instance and adoption is disabled", nil)
		}
		if existing, ok := l.tryAdoptExisting(profileDir); ok {
			l.log.WithField("profile_dir", profileDir).Info("adopted existing Chrome instance")
			return existing, nil
		}
		return nil, NewLaunchError("profile directory is locked by another instance with no usable DevToolsActivePort", nil)
	}

	if !opts.DisableTranslate {
		if existing, ok := l.tryAdoptExisting(profileDir); ok {
			_ = lk.Unlock()
			l.log.WithField("profile_dir", profileDir).Info("adopted existing Chrome instance")
			return existing, nil
		}
	}

	chromePath, err := l.findChrome(chromePathOverride)
	if err != nil {
		_ = lk.Unlock()
		return nil, err
	}

	if remoteDebuggingPort != 0 {
		resolved, err := ports.FindAvailablePort(remoteDebuggingPort)
		if err != nil {
			_ = lk.Unlock()
			return nil, NewLaunchError("could not resolve a free remote-debugging port", err)
		}
		if resolved != remoteDebuggingPort {
			l.log.WithFields(logrus.Fields{"requested": remoteDebuggingPort, "resolved": resolved}).Info("requested debugging port in use, falling back to a nearby free one")
		}
		remoteDebuggingPort = resolved
	}

	token := uuid.NewString()
	argv := l.buildArgv(chromePath, profileDir, remoteDebuggingPort, opts)
	l.log.WithFields(logrus.Fields{"chrome_path": chromePath, "profile_dir": profileDir, "launch_token": token}).Info("spawning Chrome")

	// Remove a DevToolsActivePort left by an earlier Chrome on this profile so
	// the wait below only sees the file written by the process spawned here.
	_ = os.Remove(filepath.Join(profileDir, devToolsActivePortFile))

	cmd := exec.CommandContext(context.Background(), argv[0], argv[1:]...)
	setupProcessGroup(cmd)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		_ = lk.Unlock()
		return nil, NewLaunchError("failed to spawn Chrome process", err)
	}

	pid := cmd.Process.Pid

	raw, err := waitForPortFile(ctx, profileDir, l.cfg.PortFileTimeout(), l.cfg.PortFilePollInterval())
	if err != nil {
		killProcessTree(pid)
		_ = lk.Unlock()
		return nil, err
	}

	pf, err := parsePortFile(raw)
	if err != nil {
		killProcessTree(pid)
		_ = lk.Unlock()
		return nil, err
	}

	l.settle(ctx, pf.Port)

	return &launchResult{
		WebSocketURL: buildWebSocketURL(pf),
		ProfileDir:   profileDir,
		ChildPID:     pid,
		Adopted:      false,
		lockHandle:   lk,
	}, nil
}

// tryAdoptExisting looks for an already-present, parseable DevToolsActivePort
// in profileDir and, if found, returns a launchResult that never spawns
// anything (spec.md §4.A step 5).
func (l *launcher) tryAdoptExisting(profileDir string) (*launchResult, bool) {
	path := filepath.Join(profileDir, devToolsActivePortFile)
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	pf, err := parsePortFile(string(data))
	if err != nil {
		return nil, false
	}
	return &launchResult{
		WebSocketURL: buildWebSocketURL(pf),
		ProfileDir:   profileDir,
		Adopted:      true,
	}, true
}

// settle implements the sharper probe spec.md §9 prefers over a pure fixed
// delay: retry GET /json/version for up to SettleProbeTimeout, falling back
// to sleeping out the remainder if the probe never succeeds (some Chrome
// builds do not serve /json/version on every endpoint shape).
func (l *launcher) settle(ctx context.Context, port int) {
	deadline := time.Now().Add(l.cfg.SettleProbeTimeout())
	for time.Now().Before(deadline) {
		probeCtx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
		ok := probeVersionEndpoint(probeCtx, "127.0.0.1", port)
		cancel()
		if ok {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func (l *launcher) findChrome(override string) (string, error) {
	if override != "" {
		if fileExists(override) {
			return override, nil
		}
		return "", NewLaunchError(fmt.Sprintf("--chrome-path %q does not exist", override), nil)
	}

	candidates := l.platformPaths()
	for _, c := range candidates {
		if filepath.IsAbs(c) {
			if fileExists(c) {
				return c, nil
			}
			continue
		}
		if found, ok := lookPathIn(c, os.Getenv("PATH")); ok {
			return found, nil
		}
	}
	return "", NewLaunchError("could not find a Chrome or Chromium binary; please install Chrome", nil)
}

func (l *launcher) platformPaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return l.cfg.Launch.ChromePaths.Darwin
	case "windows":
		return l.cfg.Launch.ChromePaths.Windows
	default:
		return l.cfg.Launch.ChromePaths.Linux
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func lookPathIn(name, pathEnv string) (string, bool) {
	for _, dir := range strings.Split(pathEnv, string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// buildArgv implements spec.md §4.A step 2.
func (l *launcher) buildArgv(chromePath, profileDir string, port int, opts OpenBrowserOptions) []string {
	flags := l.cfg.Launch.ExtraFlags
	argv := []string{
		chromePath,
		fmt.Sprintf("--remote-debugging-port=%d", port),
		"--remote-allow-origins=*",
		fmt.Sprintf("--user-data-dir=%s", profileDir),
	}
	if os.Geteuid() == 0 {
		argv = append(argv, "--no-sandbox")
	}
	boolFlag := func(name string, on bool) {
		if on {
			argv = append(argv, "--"+name)
		}
	}
	boolFlag("no-first-run", flags.NoFirstRun)
	boolFlag("no-default-browser-check", flags.NoDefaultBrowserCheck)
	boolFlag("disable-background-networking", flags.DisableBackgroundNetworking)
	boolFlag("disable-client-side-phishing-detection", flags.DisableClientSidePhishingDetection)
	boolFlag("disable-default-apps", flags.DisableDefaultApps)
	boolFlag("disable-extensions", flags.DisableExtensions)
	boolFlag("disable-hang-monitor", flags.DisableHangMonitor)
	boolFlag("disable-popup-blocking", flags.DisablePopupBlocking)
	boolFlag("disable-prompt-on-repost", flags.DisablePromptOnRepost)
	boolFlag("disable-sync", flags.DisableSync)
	boolFlag("metrics-recording-only", flags.MetricsRecordingOnly)
	boolFlag("safebrowsing-disable-auto-update", flags.SafebrowsingDisableAutoUpdate)
	if opts.DisableTranslate && flags.DisableTranslate {
		argv = append(argv, "--disable-translate")
	}
	argv = append(argv, "about:blank")
	return argv
}

func defaultProfileDir() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("bmcps-chrome-profile-%d", os.Getpid()))
}

// release unlocks the profile lock and, iff this process owns the child,
// kills its process tree (spec.md I3, §4.H Detaching state).
func (r *launchResult) release() {
	if r.lockHandle != nil {
		_ = r.lockHandle.Unlock()
	}
	if !r.Adopted && r.ChildPID != 0 {
		killProcessTree(r.ChildPID)
	}
}
