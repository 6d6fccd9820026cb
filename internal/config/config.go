package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultEndpoint is the Wikipedia opensearch API; the query is appended to it
const DefaultEndpoint = "https://en.wikipedia.org/w/api.php?action=opensearch&format=json&search="

// EnvPrefix prefixes environment overrides, e.g. SUGGESTBOX_ENDPOINT
const EnvPrefix = "SUGGESTBOX"

// Mouse reporting modes
const (
	MouseAll  = "all"  // press, release and hover motion
	MouseCell = "cell" // press, release and drag motion
	MouseOff  = "off"
)

// Config represents the application configuration
type Config struct {
	Endpoint       string        `mapstructure:"endpoint"`
	SearchDebounce time.Duration `mapstructure:"search_debounce"`
	SelectDebounce time.Duration `mapstructure:"select_debounce"`
	HTTPTimeout    time.Duration `mapstructure:"http_timeout"` // 0 means no timeout
	Mouse          string        `mapstructure:"mouse"`
	ReportFocus    bool          `mapstructure:"report_focus"`
	Log            LogSettings   `mapstructure:"log"`
	UI             UISettings    `mapstructure:"ui"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `mapstructure:"level" toml:"level"`
	File  string `mapstructure:"file" toml:"file"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Width   int `mapstructure:"width" toml:"width"`       // combo-box width in cells
	MaxRows int `mapstructure:"max_rows" toml:"max_rows"` // dropdown rows shown at once, 0 for all
}

// fileConfig mirrors Config for TOML output, with durations as strings so
// the written file reads "500ms" instead of nanoseconds
type fileConfig struct {
	Endpoint       string      `toml:"endpoint"`
	SearchDebounce string      `toml:"search_debounce"`
	SelectDebounce string      `toml:"select_debounce"`
	HTTPTimeout    string      `toml:"http_timeout"`
	Mouse          string      `toml:"mouse"`
	ReportFocus    bool        `toml:"report_focus"`
	Log            LogSettings `toml:"log"`
	UI             UISettings  `toml:"ui"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Endpoint:       DefaultEndpoint,
		SearchDebounce: 500 * time.Millisecond,
		SelectDebounce: time.Millisecond,
		HTTPTimeout:    0,
		Mouse:          MouseAll,
		ReportFocus:    true,
		Log: LogSettings{
			Level: "info",
			File:  "suggestbox.log",
		},
		UI: UISettings{
			Width:   40,
			MaxRows: 10,
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("endpoint", d.Endpoint)
	v.SetDefault("search_debounce", d.SearchDebounce)
	v.SetDefault("select_debounce", d.SelectDebounce)
	v.SetDefault("http_timeout", d.HTTPTimeout)
	v.SetDefault("mouse", d.Mouse)
	v.SetDefault("report_focus", d.ReportFocus)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("ui.width", d.UI.Width)
	v.SetDefault("ui.max_rows", d.UI.MaxRows)
}

// ConfigDir returns the directory holding config.toml
func ConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join(".", "suggestbox")
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "suggestbox")
}

// ConfigFile returns the default config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// New returns a viper instance with defaults, env overrides and the config
// file search path registered. path overrides the search path when set.
func New(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	// log.level -> SUGGESTBOX_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds command line flags to their config keys. Flag names use
// dashes, keys use underscores and dots.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	keys := map[string]string{
		"endpoint":        "endpoint",
		"search-debounce": "search_debounce",
		"select-debounce": "select_debounce",
		"http-timeout":    "http_timeout",
		"mouse":           "mouse",
		"report-focus":    "report_focus",
		"log-level":       "log.level",
		"log-file":        "log.file",
		"width":           "ui.width",
	}
	for flag, key := range keys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// Load reads the config file (a missing file is not an error) and decodes
// the merged settings
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would break the widget at runtime
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint must not be empty")
	}
	if c.SearchDebounce < 0 || c.SelectDebounce < 0 {
		return errors.New("debounce durations must not be negative")
	}
	if c.HTTPTimeout < 0 {
		return errors.New("http_timeout must not be negative")
	}
	switch c.Mouse {
	case MouseAll, MouseCell, MouseOff:
	default:
		return fmt.Errorf("mouse must be one of %s, %s, %s; got %q", MouseAll, MouseCell, MouseOff, c.Mouse)
	}
	if c.UI.Width < 10 {
		return fmt.Errorf("ui.width must be at least 10, got %d", c.UI.Width)
	}
	if c.UI.MaxRows < 0 {
		return errors.New("ui.max_rows must not be negative")
	}
	return nil
}

// Marshal renders cfg as TOML
func Marshal(cfg *Config) ([]byte, error) {
	fc := fileConfig{
		Endpoint:       cfg.Endpoint,
		SearchDebounce: cfg.SearchDebounce.String(),
		SelectDebounce: cfg.SelectDebounce.String(),
		HTTPTimeout:    cfg.HTTPTimeout.String(),
		Mouse:          cfg.Mouse,
		ReportFocus:    cfg.ReportFocus,
		Log:            cfg.Log,
		UI:             cfg.UI,
	}
	data, err := toml.Marshal(fc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// ErrLocked is returned when another process is writing the same config file
var ErrLocked = errors.New("config file is being written by another process")

// SaveToPath saves configuration to a specific path. Writers are serialised
// through a lock file next to it.
func SaveToPath(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock config file: %w", err)
	}
	if !locked {
		return ErrLocked
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
