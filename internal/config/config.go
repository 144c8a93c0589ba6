package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/woundcheck/internal/store"
	"github.com/mattn/go-isatty"
)

// ColorMode controls ANSI styling of reports.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds runtime settings. Classification thresholds are not part of
// it; they are fixed constants of the assessment package.
type Config struct {
	// DBPath is the SQLite file used for the assessment log.
	// Empty means store.DefaultDBPath().
	DBPath string

	// Addr is the listen address for the HTTP server. Default: "localhost:8080".
	Addr string

	// Color selects report styling. Default: auto.
	Color ColorMode

	// Record writes every CLI assessment to the log when true.
	Record bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:  "localhost:8080",
		Color: ColorAuto,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	return configFrom(os.Getenv)
}

func configFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if p := getenv("WOUNDCHECK_DB"); p != "" {
		cfg.DBPath = p
	}
	if a := getenv("WOUNDCHECK_ADDR"); a != "" {
		cfg.Addr = a
	}
	if c := getenv("WOUNDCHECK_COLOR"); c != "" {
		cfg.Color = ColorMode(strings.ToLower(c))
	}
	if r := getenv("WOUNDCHECK_RECORD"); r != "" {
		// Unparseable values leave recording off; Validate does not see them.
		if b, err := strconv.ParseBool(r); err == nil {
			cfg.Record = b
		}
	}

	return cfg
}

// Validate checks that enumerated settings hold known values.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q: must be auto, always or never", c.Color)
	}
	if c.Addr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	return nil
}

// ResolveDBPath returns DBPath, creating its directory, or the default path.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, store.EnsureDir(c.DBPath)
	}
	return store.DefaultDBPath()
}

// UseColor reports whether output written to f should be styled.
func (c Config) UseColor(f *os.File) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
