// Package config loads Chrome launch defaults the way the teacher's log
// error-parsing config did: an embedded TOML default, optionally overridden
// by a user file, unmarshaled with BurntSushi/toml.
package config

import (
	"embed"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed default_launch.toml
var defaultConfigFS embed.FS

// ChromePaths lists the ordered binary search candidates per platform.
type ChromePaths struct {
	Linux   []string `toml:"linux"`
	Darwin  []string `toml:"darwin"`
	Windows []string `toml:"windows"`
}

// ExtraFlags lists the boolean Chrome flags; the launcher passes each one set
// to true, and disable_translate only when the open_browser option is also set.
type ExtraFlags struct {
	DisableBackgroundNetworking        bool `toml:"disable_background_networking"`
	DisableClientSidePhishingDetection bool `toml:"disable_client_side_phishing_detection"`
	DisableDefaultApps                 bool `toml:"disable_default_apps"`
	DisableExtensions                  bool `toml:"disable_extensions"`
	DisableHangMonitor                 bool `toml:"disable_hang_monitor"`
	DisablePopupBlocking                bool `toml:"disable_popup_blocking"`
	DisablePromptOnRepost               bool `toml:"disable_prompt_on_repost"`
	DisableSync                        bool `toml:"disable_sync"`
	DisableTranslate                   bool `toml:"disable_translate"`
	MetricsRecordingOnly                bool `toml:"metrics_recording_only"`
	SafebrowsingDisableAutoUpdate       bool `toml:"safebrowsing_disable_auto_update"`
	NoFirstRun                         bool `toml:"no_first_run"`
	NoDefaultBrowserCheck               bool `toml:"no_default_browser_check"`
}

// Launch holds every tunable of the launch sequence (spec.md §4.A).
type Launch struct {
	ConnectTimeoutSeconds        float64     `toml:"connect_timeout_seconds"`
	PortFileTimeoutSeconds       float64     `toml:"port_file_timeout_seconds"`
	PortFilePollIntervalMs       int         `toml:"port_file_poll_interval_ms"`
	SettleProbeTimeoutSeconds    float64     `toml:"settle_probe_timeout_seconds"`
	DefaultCommandTimeoutSeconds float64     `toml:"default_command_timeout_seconds"`
	ScreenshotTimeoutSeconds     float64     `toml:"screenshot_timeout_seconds"`
	ChromePaths                  ChromePaths `toml:"chrome_paths"`
	ExtraFlags                   ExtraFlags  `toml:"extra_flags"`
}

// Config is the top-level launch configuration document.
type Config struct {
	Launch Launch `toml:"launch"`
}

func (c *Config) ConnectTimeout() time.Duration {
	return floatSeconds(c.Launch.ConnectTimeoutSeconds)
}

func (c *Config) PortFileTimeout() time.Duration {
	return floatSeconds(c.Launch.PortFileTimeoutSeconds)
}

func (c *Config) PortFilePollInterval() time.Duration {
	return time.Duration(c.Launch.PortFilePollIntervalMs) * time.Millisecond
}

func (c *Config) SettleProbeTimeout() time.Duration {
	return floatSeconds(c.Launch.SettleProbeTimeoutSeconds)
}

func (c *Config) DefaultCommandTimeout() time.Duration {
	return floatSeconds(c.Launch.DefaultCommandTimeoutSeconds)
}

func (c *Config) ScreenshotTimeout() time.Duration {
	return floatSeconds(c.Launch.ScreenshotTimeoutSeconds)
}

func floatSeconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Load reads the embedded default configuration, then overlays an optional
// user file at $HOME/.bmcps/launch.toml if one exists. Missing optional
// fields keep their embedded defaults since both decodes target the same
// struct and toml.Decode leaves untouched fields alone.
func Load() (*Config, error) {
	var cfg Config
	defaultData, err := defaultConfigFS.ReadFile("default_launch.toml")
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(defaultData, &cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)

	overridePath, ok := userOverridePath()
	if ok {
		if data, err := os.ReadFile(overridePath); err == nil {
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		}
	}

	return &cfg, nil
}

func userOverridePath() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".bmcps", "launch.toml"), true
}

// setDefaults fills in any zero-valued field the embedded TOML failed to
// populate, so a malformed or partial embed never leaves a zero timeout.
func setDefaults(c *Config) {
	if c.Launch.ConnectTimeoutSeconds == 0 {
		c.Launch.ConnectTimeoutSeconds = 20
	}
	if c.Launch.PortFileTimeoutSeconds == 0 {
		c.Launch.PortFileTimeoutSeconds = 15
	}
	if c.Launch.PortFilePollIntervalMs == 0 {
		c.Launch.PortFilePollIntervalMs = 100
	}
	if c.Launch.SettleProbeTimeoutSeconds == 0 {
		c.Launch.SettleProbeTimeoutSeconds = 1.5
	}
	if c.Launch.DefaultCommandTimeoutSeconds == 0 {
		c.Launch.DefaultCommandTimeoutSeconds = 10
	}
	if c.Launch.ScreenshotTimeoutSeconds == 0 {
		c.Launch.ScreenshotTimeoutSeconds = 15
	}
}
