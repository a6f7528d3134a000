// hot-reload.go: dynamic verifier settings with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sqrtcache

import (
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotSettings are the verifier settings that can change while it runs.
type HotSettings struct {
	// ReportEvery is the progress interval. Always > 0.
	ReportEvery int64

	// Iterations is the iteration bound; 0 means unbounded.
	Iterations int64

	// LogLevel is passed through to OnReload for the application's logger.
	// Empty when the file does not set it.
	LogLevel string
}

// HotConfig watches a configuration file with Argus and applies changes
// to a running Verifier.
type HotConfig struct {
	verifier *Verifier
	watcher  *argus.Watcher
	logger   Logger
	mu       sync.RWMutex
	settings HotSettings

	// OnReload is called after settings are successfully reloaded.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(oldSettings, newSettings HotSettings)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after settings are successfully reloaded.
	OnReload func(oldSettings, newSettings HotSettings)

	// Logger for hot reload operations.
	// If nil, uses the verifier's logger.
	Logger Logger
}

// NewHotConfig creates a hot-reloadable configuration for a verifier.
//
// Example configuration file (YAML):
//
//	verify:
//	  report_every: 1000
//	  iterations: 100000
//	  log_level: debug
//
// Supported keys:
//   - verify.report_every (int > 0): progress interval
//   - verify.iterations (int >= 0): iteration bound, 0 for none
//   - verify.log_level (string): forwarded to OnReload
//
// Keys that are missing or invalid keep the verifier's current value.
func NewHotConfig(verifier *Verifier, opts HotConfigOptions) (*HotConfig, error) {
	if verifier == nil {
		return nil, NewErrNilCache("hot config")
	}
	if opts.ConfigPath == "" {
		return nil, NewErrInvalidConfig("config_path", "required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = verifier.logger
	}

	hc := &HotConfig{
		verifier: verifier,
		logger:   opts.Logger,
		OnReload: opts.OnReload,
		settings: HotSettings{
			ReportEvery: verifier.reportEvery.Load(),
			Iterations:  verifier.iterations.Load(),
		},
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, NewErrWatcherFailed(opts.ConfigPath, err)
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
func (hc *HotConfig) Start() error {
	// Already running is not an error (avoids ARGUS_WATCHER_BUSY)
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// Settings returns the current settings (thread-safe).
func (hc *HotConfig) Settings() HotSettings {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.settings
}

// handleConfigChange is called by Argus when configuration changes.
func (hc *HotConfig) handleConfigChange(configData map[string]interface{}) {
	hc.mu.Lock()
	oldSettings := hc.settings
	newSettings := parseSettings(configData, oldSettings)
	hc.settings = newSettings
	hc.mu.Unlock()

	hc.verifier.SetReportEvery(newSettings.ReportEvery)
	hc.verifier.SetIterations(newSettings.Iterations)

	hc.logger.Info("verifier settings reloaded",
		"report_every", newSettings.ReportEvery,
		"iterations", newSettings.Iterations,
		"log_level", newSettings.LogLevel)

	if hc.OnReload != nil {
		hc.OnReload(oldSettings, newSettings)
	}
}

// parseInt extracts an integer of at least min from a decoded value.
// Decoders differ: JSON yields float64, YAML int, TOML int64.
func parseInt(value interface{}, min int64) (int64, bool) {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != float64(int64(v)) {
			return 0, false
		}
		n = int64(v)
	default:
		return 0, false
	}
	if n < min {
		return 0, false
	}
	return n, true
}

// parseSettings extracts verifier settings from Argus config data,
// starting from current.
func parseSettings(data map[string]interface{}, current HotSettings) HotSettings {
	settings := current

	section, ok := data["verify"].(map[string]interface{})
	if !ok {
		// Flat files put the keys at the top level
		section = data
	}

	if every, ok := parseInt(section["report_every"], 1); ok {
		settings.ReportEvery = every
	}

	if iterations, ok := parseInt(section["iterations"], 0); ok {
		settings.Iterations = iterations
	}

	if level, ok := section["log_level"].(string); ok {
		settings.LogLevel = level
	}

	return settings
}
