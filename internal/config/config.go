// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics" toml:"graphics"`
	Audio    AudioConfig    `yaml:"audio" toml:"audio"`
	Waves    WavesConfig    `yaml:"waves" toml:"waves"`
	Game     GameConfig     `yaml:"game" toml:"game"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width" toml:"width"`
	Height     int     `yaml:"height" toml:"height"`
	Fullscreen bool    `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool    `yaml:"vsync" toml:"vsync"`
	Samples    int     `yaml:"samples" toml:"samples"` // MSAA samples, 0 disables
	FOVDegrees float32 `yaml:"fov_degrees" toml:"fov_degrees"`
	Near       float32 `yaml:"near" toml:"near"`
	Far        float32 `yaml:"far" toml:"far"`

	ScreenshotDir string `yaml:"screenshot_dir" toml:"screenshot_dir"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float64 `yaml:"master_volume" toml:"master_volume"`
	SFXVolume    float64 `yaml:"sfx_volume" toml:"sfx_volume"`
	Muted        bool    `yaml:"muted" toml:"muted"`
}

// WaveComponent describes one sine wave of the ocean surface.
type WaveComponent struct {
	DirX       float32 `yaml:"dir_x" toml:"dir_x"`
	DirZ       float32 `yaml:"dir_z" toml:"dir_z"`
	Wavelength float32 `yaml:"wavelength" toml:"wavelength"`
	Amplitude  float32 `yaml:"amplitude" toml:"amplitude"`
	Speed      float32 `yaml:"speed" toml:"speed"`
}

// WavesConfig holds the ocean surface settings.
type WavesConfig struct {
	Tessellation    int             `yaml:"tessellation" toml:"tessellation"`
	MaxTessellation int             `yaml:"max_tessellation" toml:"max_tessellation"`
	Extent          float32         `yaml:"extent" toml:"extent"`
	Animate         bool            `yaml:"animate" toml:"animate"`
	RegenInterval   float64         `yaml:"regen_interval" toml:"regen_interval"` // seconds between tessellation changes
	Components      []WaveComponent `yaml:"components" toml:"components"`
}

// GameConfig holds gameplay and loop settings.
type GameConfig struct {
	Speed             float32 `yaml:"speed" toml:"speed"`                             // simulation time divisor
	FrameRateInterval float32 `yaml:"frame_rate_interval" toml:"frame_rate_interval"` // seconds
	Boats             int     `yaml:"boats" toml:"boats"`
	SpawnMin          float32 `yaml:"spawn_min" toml:"spawn_min"`
	SpawnMax          float32 `yaml:"spawn_max" toml:"spawn_max"`
	Seed              int64   `yaml:"seed" toml:"seed"` // 0 picks a time-based seed
	FastMultiplier    float32 `yaml:"fast_multiplier" toml:"fast_multiplier"`
	ShowStats         bool    `yaml:"show_stats" toml:"show_stats"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
			Samples:    4,
			FOVDegrees: 75,
			Near:       0.01,
			Far:        100,

			ScreenshotDir: "screenshots",
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.8,
		},
		Waves: WavesConfig{
			Tessellation:    64,
			MaxTessellation: 512,
			Extent:          1,
			Animate:         true,
			RegenInterval:   0.2,
			Components: []WaveComponent{
				{DirX: 1, DirZ: 0, Wavelength: 0.5, Amplitude: 0.025, Speed: 0.15},
				{DirX: 0.4, DirZ: 1, Wavelength: 0.33, Amplitude: 0.015, Speed: 0.1},
			},
		},
		Game: GameConfig{
			Speed:             1,
			FrameRateInterval: 0.2,
			Boats:             5,
			SpawnMin:          0.5,
			SpawnMax:          0.9,
			FastMultiplier:    4,
			ShowStats:         true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports configuration values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Waves.Tessellation < 1 {
		errs = append(errs, fmt.Errorf("waves.tessellation must be >= 1, got %d", c.Waves.Tessellation))
	}
	if c.Waves.Tessellation >= 1 && doubled(c.Waves.Tessellation, c.Waves.MaxTessellation) != c.Waves.MaxTessellation {
		errs = append(errs, fmt.Errorf("waves.max_tessellation %d is not tessellation %d doubled",
			c.Waves.MaxTessellation, c.Waves.Tessellation))
	}
	if c.Waves.Extent <= 0 {
		errs = append(errs, fmt.Errorf("waves.extent must be positive, got %v", c.Waves.Extent))
	}
	if len(c.Waves.Components) == 0 {
		errs = append(errs, errors.New("waves.components must not be empty"))
	}
	for i, wc := range c.Waves.Components {
		if wc.Wavelength <= 0 {
			errs = append(errs, fmt.Errorf("waves.components[%d].wavelength must be positive, got %v", i, wc.Wavelength))
		}
	}
	if c.Game.Speed <= 0 {
		errs = append(errs, fmt.Errorf("game.speed must be positive, got %v", c.Game.Speed))
	}
	if c.Game.Boats < 0 {
		errs = append(errs, fmt.Errorf("game.boats must not be negative, got %d", c.Game.Boats))
	}
	if c.Game.SpawnMin < 0 || c.Game.SpawnMin > c.Game.SpawnMax {
		errs = append(errs, fmt.Errorf("game spawn range [%v, %v] is invalid", c.Game.SpawnMin, c.Game.SpawnMax))
	}
	return errors.Join(errs...)
}

// doubled returns the smallest tess·2^k that is at least limit.
func doubled(tess, limit int) int {
	for tess < limit {
		tess *= 2
	}
	return tess
}
