package picking

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultDragThreshold = 4.0 // pixels

// DefaultTrackedButtons is the button set used by DefaultConfig.
const DefaultTrackedButtons = ButtonSet(1<<ButtonLeft | 1<<ButtonRight | 1<<ButtonMiddle)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("picking: invalid config")

// Config holds the options recognized by the state machine.
type Config struct {
	// DragThreshold is the distance in pixels the pointer must move away
	// from the press origin before a press becomes a drag.
	DragThreshold float64 `yaml:"drag_threshold"`
	// TrackedButtons are the only buttons the machine sees. Others do not
	// press, release or count toward a multi-button cancel.
	TrackedButtons ButtonSet `yaml:"tracked_buttons"`
	// ClickInsideOnly suppresses Click when the release happens while the
	// pressed entity is no longer the nearest hit. PointerUp still fires.
	ClickInsideOnly bool `yaml:"click_inside_only"`
	// ButtonFilters restricts which buttons can press an entity. An entity
	// without an entry accepts every tracked button. Pressing with a
	// rejected button only hovers the entity.
	ButtonFilters map[EntityID]ButtonSet `yaml:"button_filters"`
	// Debug enables per-frame invariant checks (panicking on violation) and
	// debug logging of malformed input.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the configuration used by NewMachine when none is
// given.
func DefaultConfig() Config {
	return Config{
		DragThreshold:  defaultDragThreshold,
		TrackedButtons: DefaultTrackedButtons,
	}
}

// Validate reports configuration values the machine cannot work with.
func (c Config) Validate() error {
	if c.DragThreshold < 0 || math.IsNaN(c.DragThreshold) || math.IsInf(c.DragThreshold, 0) {
		return fmt.Errorf("%w: drag threshold %v", ErrInvalidConfig, c.DragThreshold)
	}
	if c.TrackedButtons.Empty() {
		return fmt.Errorf("%w: no tracked buttons", ErrInvalidConfig)
	}
	return nil
}

// accepts reports whether b may press e.
func (c Config) accepts(e EntityID, b Button) bool {
	filter, ok := c.ButtonFilters[e]
	return !ok || filter.Has(b)
}

// LoadConfig parses a YAML configuration. Missing keys keep their
// DefaultConfig values.
//
//	drag_threshold: 6
//	tracked_buttons: [left, right]
//	click_inside_only: true
//	button_filters:
//	  12: [left]
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("picking: unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses the YAML configuration at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("picking: load %s: %w", path, err)
	}
	cfg, err := LoadConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("picking: load %s: %w", path, err)
	}
	return cfg, nil
}
