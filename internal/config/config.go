// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads drag engine settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"draghelper.org/gesture"
	"draghelper.org/io/event"
	"draghelper.org/unit"
)

// Config holds the engine and demo settings.
type Config struct {
	Drag  DragConfig
	State StateConfig
}

// DragConfig holds the engine settings.
type DragConfig struct {
	Limit       float32
	Enabled     bool
	TouchSlopDp float32 `mapstructure:"touch_slop_dp"`
	PxPerDp     float32 `mapstructure:"px_per_dp"`
	// Mode is "single" or "multi".
	Mode string
	// Rest is "origin", "vertical" or "horizontal".
	Rest string
}

// StateConfig says where saved state lives. An empty Path disables
// persistence.
type StateConfig struct {
	Path string
}

// EnvPrefix prefixes environment overrides, as in DRAGHELPER_DRAG_LIMIT.
const EnvPrefix = "DRAGHELPER"

// Load reads configuration from path, if not empty, and the
// environment, and validates it.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("drag.limit", gesture.DefaultDragLimit)
	v.SetDefault("drag.enabled", true)
	v.SetDefault("drag.touch_slop_dp", float32(gesture.DefaultTouchSlop))
	v.SetDefault("drag.px_per_dp", 1)
	v.SetDefault("drag.mode", "multi")
	v.SetDefault("drag.rest", "origin")
	v.SetDefault("state.path", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if !(c.Drag.Limit > 0 && c.Drag.Limit < 1) {
		return fmt.Errorf("drag.limit %v: %w", c.Drag.Limit, gesture.ErrDragLimit)
	}
	if c.Drag.TouchSlopDp < 0 {
		return fmt.Errorf("drag.touch_slop_dp %v: %w", c.Drag.TouchSlopDp, errNegative)
	}
	if c.Drag.PxPerDp < 0 {
		return fmt.Errorf("drag.px_per_dp %v: %w", c.Drag.PxPerDp, errNegative)
	}
	if _, err := c.Drag.mode(); err != nil {
		return err
	}
	if _, err := c.Drag.rest(); err != nil {
		return err
	}
	return nil
}

var errNegative = errors.New("must not be negative")

// Gesture returns the engine configuration for regions.
func (c DragConfig) Gesture(regions []event.Tag) (gesture.Config, error) {
	mode, err := c.mode()
	if err != nil {
		return gesture.Config{}, err
	}
	rest, err := c.rest()
	if err != nil {
		return gesture.Config{}, err
	}
	return gesture.Config{
		Mode:      mode,
		Regions:   regions,
		DragLimit: c.Limit,
		Disabled:  !c.Enabled,
		TouchSlop: unit.Dp(c.TouchSlopDp),
		Metric:    unit.Metric{PxPerDp: c.PxPerDp},
		Rest:      rest,
	}, nil
}

func (c DragConfig) mode() (gesture.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(c.Mode)) {
	case "single":
		return gesture.Single, nil
	case "multi", "":
		return gesture.Multi, nil
	default:
		return 0, fmt.Errorf("drag.mode %q: %w", c.Mode, gesture.ErrConfig)
	}
}

func (c DragConfig) rest() (gesture.RestFunc, error) {
	switch strings.ToLower(strings.TrimSpace(c.Rest)) {
	case "origin", "":
		return gesture.ReturnToOrigin, nil
	case "vertical":
		return gesture.SnapVertical, nil
	case "horizontal":
		return gesture.SnapHorizontal, nil
	default:
		return nil, fmt.Errorf("drag.rest %q: %w", c.Rest, gesture.ErrConfig)
	}
}
