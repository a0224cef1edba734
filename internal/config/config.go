// Package config loads rgnmap settings from defaults, an optional config
// file, a .env file, RGNMAP_* environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset"`
	Log     LogConfig     `mapstructure:"log"`
	Query   QueryConfig   `mapstructure:"query"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Report  bool          `mapstructure:"report"`
}

type DatasetConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type QueryConfig struct {
	RadiusKm float64 `mapstructure:"radius_km"`
}

type TUIConfig struct {
	Mouse bool    `mapstructure:"mouse"`
	Zoom  float64 `mapstructure:"zoom"`
}

// Flags returns the command-line flag set understood by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("rgnmap", pflag.ContinueOnError)
	fs.String("config", "", "config file (default ./config.yaml or ./configs/config.yaml)")
	fs.String("log-level", "", "debug, info, warn or error")
	fs.String("log-format", "", "text or json")
	fs.String("log-file", "", "log destination; the TUI owns the terminal")
	fs.Float64("radius", 0, "neighbour query radius in km")
	fs.Bool("report", false, "print the validation report and exit")
	return fs
}

var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
	"radius":     "query.radius_km",
	"report":     "report",
}

// Load resolves the configuration. fs may be nil; when it is parsed, its first
// positional argument overrides dataset.path.
func Load(fs *pflag.FlagSet) (*Config, error) {
	// .env is optional
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("dataset.path", "resources/rgn.xml")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "rgnmap.log")
	v.SetDefault("query.radius_km", 60.0)
	v.SetDefault("tui.mouse", true)
	v.SetDefault("tui.zoom", 1.0)
	v.SetDefault("report", false)

	configFile := ""
	if fs != nil {
		configFile, _ = fs.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		_ = v.ReadInConfig() // OK if missing
	}

	// RGNMAP_QUERY_RADIUS_KM → query.radius_km
	v.SetEnvPrefix("RGNMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if fs.Parsed() && fs.NArg() > 0 {
			v.Set("dataset.path", fs.Arg(0))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Dataset.Path) == "" {
		errs = append(errs, "dataset.path is required")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Query.RadiusKm <= 0 {
		errs = append(errs, fmt.Sprintf("query.radius_km must be positive, got %g", c.Query.RadiusKm))
	}
	if c.TUI.Zoom <= 0 {
		errs = append(errs, fmt.Sprintf("tui.zoom must be positive, got %g", c.TUI.Zoom))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
