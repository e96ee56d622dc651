package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix namespaces every environment override, e.g. ELEMENTQUIZ_SEED.
const EnvPrefix = "ELEMENTQUIZ_"

// Config controls runtime behavior for the TUI app.
type Config struct {
	LogPath      string   `env:"LOG_PATH"`
	DebugLayout  bool     `env:"DEBUG_LAYOUT"`
	ASCIIOnly    bool     `env:"ASCII"`
	DemoScenario string   `env:"DEMO"`
	Seed         int64    `env:"SEED"`
	CatalogPath  string   `env:"CATALOG"`
	UI           UIConfig `envPrefix:"UI_"`
}

type UIConfig struct {
	StyleVariant string `env:"STYLE"`
	MotionLevel  string `env:"MOTION"`
}

func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			StyleVariant: "modern_arcade",
			MotionLevel:  "full",
		},
	}
}

// LoadConfig starts from DefaultConfig and applies ELEMENTQUIZ_* variables.
// Unset variables keep their defaults. A non-empty envFile is read first;
// variables already set in the process environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	cfg := DefaultConfig()
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return cfg, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.UI.StyleVariant {
	case "", "modern_arcade", "cozy_clean", "retro_terminal":
	default:
		return fmt.Errorf("invalid ui style variant %q", c.UI.StyleVariant)
	}
	if c.UI.StyleVariant == "" {
		c.UI.StyleVariant = "modern_arcade"
	}
	switch c.UI.MotionLevel {
	case "", "off", "reduced", "full":
	default:
		return fmt.Errorf("invalid ui motion level %q", c.UI.MotionLevel)
	}
	if c.UI.MotionLevel == "" {
		c.UI.MotionLevel = "full"
	}
	if c.Seed < 0 {
		return fmt.Errorf("invalid seed %d: must not be negative", c.Seed)
	}
	return nil
}
