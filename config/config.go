package config

import (
	"encoding/json"
	"os"

	"github.com/adrg/xdg"
)

// Config holds runtime configuration for the scanning pipeline and demo app.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Auto-scan stability funnel
	AutoScanStableFrames int     `json:"auto_scan_stable_frames"`
	AutoScanMaxDrift     float64 `json:"auto_scan_max_drift"`

	// Overlay view geometry (points)
	OverlayWidth   float64 `json:"overlay_width"`
	OverlayHeight  float64 `json:"overlay_height"`
	AnimateOverlay bool    `json:"animate_overlay"`

	// Reference camera session
	FrameIntervalMS int `json:"frame_interval_ms"`

	// Detection script shape: frames with a steady boundary followed by
	// frames without one, repeated.
	ScriptDetectionFrames int `json:"script_detection_frames"`
	ScriptGapFrames       int `json:"script_gap_frames"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                 false,
		AutoScanStableFrames:  20,
		AutoScanMaxDrift:      8.0,
		OverlayWidth:          400,
		OverlayHeight:         600,
		AnimateOverlay:        true,
		FrameIntervalMS:       33,
		ScriptDetectionFrames: 30,
		ScriptGapFrames:       10,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.AutoScanStableFrames < 1 {
		c.AutoScanStableFrames = 20
	}
	if c.AutoScanMaxDrift <= 0 {
		c.AutoScanMaxDrift = 8.0
	}
	if c.OverlayWidth <= 0 {
		c.OverlayWidth = 400
	}
	if c.OverlayHeight <= 0 {
		c.OverlayHeight = 600
	}
	if c.FrameIntervalMS < 1 {
		c.FrameIntervalMS = 33
	}
	if c.ScriptDetectionFrames < 1 {
		c.ScriptDetectionFrames = 30
	}
	if c.ScriptGapFrames < 0 {
		c.ScriptGapFrames = 10
	}
	return nil
}

// DefaultPath resolves the per-user config file location.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("docscan/config.json")
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
