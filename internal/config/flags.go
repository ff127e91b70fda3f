package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagTess       = flag.Int("tess", 0, "Initial wave tessellation")
	flagBoats      = flag.Int("boats", -1, "Number of boats to spawn")
	flagSeed       = flag.Int64("seed", 0, "Random seed for boat placement")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Game.ShowStats = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagTess > 0 {
		cfg.Waves.Tessellation = *flagTess
		cfg.Waves.MaxTessellation = doubled(*flagTess, cfg.Waves.MaxTessellation)
	}
	if *flagBoats >= 0 {
		cfg.Game.Boats = *flagBoats
	}
	if *flagSeed != 0 {
		cfg.Game.Seed = *flagSeed
	}
}
