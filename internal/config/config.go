// Package config resolves the analyzer configuration from built-in
// defaults, the optional .marslog.yaml file, and command-line flags,
// in that precedence order (flags win).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultDestination = "mars"
	DefaultStatus      = "completed"
	DefaultTheme       = "default"
	DefaultTop         = 1
	FileName           = ".marslog.yaml"
)

// Mode is the output representation, validated once at the boundary.
type Mode int

const (
	ModeDefault Mode = iota
	ModeJSON
	ModeCSV
)

// ParseMode validates an output format name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "default":
		return ModeDefault, nil
	case "json":
		return ModeJSON, nil
	case "csv":
		return ModeCSV, nil
	default:
		return ModeDefault, fmt.Errorf("unknown format %q (expected default, json, csv)", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeJSON:
		return "json"
	case ModeCSV:
		return "csv"
	default:
		return "default"
	}
}

// Config is the resolved, immutable configuration handed to the
// pipeline and reporter.
type Config struct {
	Format      Mode
	Top         int
	Verbose     bool
	Destination string
	Status      string
	Theme       string
	NoColor     bool
	Browse      bool
}

// Flags holds raw command-line flag values. The *Set fields record
// whether the user passed the flag explicitly, so unset flags don't
// shadow file values.
type Flags struct {
	Format      string
	Top         int
	Verbose     bool
	Destination string
	Status      string
	Theme       string
	NoColor     bool
	Browse      bool

	FormatSet      bool
	TopSet         bool
	VerboseSet     bool
	DestinationSet bool
	StatusSet      bool
	ThemeSet       bool
}

// File mirrors the .marslog.yaml schema. Pointer fields distinguish
// "absent" from zero values.
type File struct {
	Format      string `yaml:"format,omitempty"`
	Theme       string `yaml:"theme,omitempty"`
	Destination string `yaml:"destination,omitempty"`
	Status      string `yaml:"status,omitempty"`
	Verbose     *bool  `yaml:"verbose,omitempty"`
	Top         *int   `yaml:"top,omitempty"`
}

// FindPath locates the config file: working directory first, then the
// user config directory. Returns "" when no file exists.
func FindPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "marslog", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

// LoadFile parses a config file. A missing path ("") yields an empty
// File, not an error.
func LoadFile(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &f, nil
}

// Resolve merges defaults, file values, and flags into a validated
// Config. A requested count of 0 resolves to the default of 1.
func Resolve(file *File, flags Flags) (Config, error) {
	cfg := Config{
		Top:         DefaultTop,
		Destination: DefaultDestination,
		Status:      DefaultStatus,
		Theme:       DefaultTheme,
	}

	format := ""
	if file != nil {
		if file.Format != "" {
			format = file.Format
		}
		if file.Theme != "" {
			cfg.Theme = file.Theme
		}
		if file.Destination != "" {
			cfg.Destination = file.Destination
		}
		if file.Status != "" {
			cfg.Status = file.Status
		}
		if file.Verbose != nil {
			cfg.Verbose = *file.Verbose
		}
		if file.Top != nil {
			cfg.Top = *file.Top
		}
	}

	if flags.FormatSet {
		format = flags.Format
	}
	if flags.ThemeSet {
		cfg.Theme = flags.Theme
	}
	if flags.DestinationSet {
		cfg.Destination = flags.Destination
	}
	if flags.StatusSet {
		cfg.Status = flags.Status
	}
	if flags.VerboseSet {
		cfg.Verbose = flags.Verbose
	}
	if flags.TopSet {
		cfg.Top = flags.Top
	}
	cfg.NoColor = flags.NoColor
	cfg.Browse = flags.Browse

	mode, err := ParseMode(format)
	if err != nil {
		return Config{}, err
	}
	cfg.Format = mode

	if cfg.Top < 0 {
		return Config{}, fmt.Errorf("invalid top count %d: must be zero or positive", cfg.Top)
	}
	if cfg.Top == 0 {
		cfg.Top = DefaultTop
	}
	if cfg.Destination == "" || cfg.Status == "" {
		return Config{}, fmt.Errorf("destination and status predicates must be non-empty")
	}
	return cfg, nil
}
