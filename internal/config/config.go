// Package config loads gridindex CLI settings from defaults, an optional
// YAML file, GRIDINDEX_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/hasbyte1/go-gridindex/gridindex"
)

// EnvPrefix is prepended to every environment variable name, e.g.
// GRIDINDEX_EXTENTS.
const EnvPrefix = "GRIDINDEX"

// Keys understood by [Load].
const (
	KeyExtents     = "extents"
	KeyRestriction = "restriction"
	KeyFormat      = "format"
	KeyLimit       = "limit"
	KeyWorkers     = "workers"
	KeyRate        = "rate"
	KeyVerbose     = "verbose"
)

// ErrInvalidConfig is returned when a setting cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Format selects how tuples and combinations are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q (want text, json or csv)", ErrInvalidConfig, s)
	}
}

// Config is the resolved CLI configuration.
type Config struct {
	// Extents is empty when no grid was configured; commands that need one
	// check with [Config.RequireGrid].
	Extents     []int
	Restriction gridindex.Restriction
	Format      Format
	Limit       int
	Workers     int
	// Rate is the dispatch rate in combinations per second; zero means
	// unlimited.
	Rate    float64
	Verbose bool
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyRestriction, "none")
	v.SetDefault(KeyFormat, string(FormatText))
	v.SetDefault(KeyLimit, 0)
	v.SetDefault(KeyWorkers, 1)
	v.SetDefault(KeyRate, 0.0)
	v.SetDefault(KeyVerbose, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	_ = v.BindEnv(KeyExtents)
	return v
}

// Load reads file (when not empty) into v and resolves the configuration.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, file, err)
		}
	}

	cfg := &Config{
		Limit:   v.GetInt(KeyLimit),
		Workers: v.GetInt(KeyWorkers),
		Rate:    v.GetFloat64(KeyRate),
		Verbose: v.GetBool(KeyVerbose),
	}

	var err error
	if cfg.Extents, err = extents(v); err != nil {
		return nil, err
	}
	if cfg.Restriction, err = gridindex.ParseRestriction(v.GetString(KeyRestriction)); err != nil {
		return nil, err
	}
	if cfg.Format, err = ParseFormat(v.GetString(KeyFormat)); err != nil {
		return nil, err
	}
	if cfg.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidConfig)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: workers must be at least 1", ErrInvalidConfig)
	}
	if cfg.Rate < 0 {
		return nil, fmt.Errorf("%w: rate must not be negative", ErrInvalidConfig)
	}
	return cfg, nil
}

// RequireGrid fails when no extents were configured.
func (c *Config) RequireGrid() error {
	if len(c.Extents) == 0 {
		return fmt.Errorf("%w: extents are required (flag --extents or %s_EXTENTS)", ErrInvalidConfig, EnvPrefix)
	}
	return nil
}

// Enumerator builds the enumerator described by the configuration.
func (c *Config) Enumerator() (*gridindex.Enumerator, error) {
	if err := c.RequireGrid(); err != nil {
		return nil, err
	}
	return gridindex.New(c.Extents, c.Restriction)
}

// extents accepts either a string ("3,4", from flags and the environment)
// or a list (from a config file).
func extents(v *viper.Viper) ([]int, error) {
	switch raw := v.Get(KeyExtents).(type) {
	case nil:
		return nil, nil
	case string:
		if strings.TrimSpace(raw) == "" {
			return nil, nil
		}
		return gridindex.ParseExtents(raw)
	case int:
		if raw <= 0 {
			return nil, fmt.Errorf("%w: extent %d must be positive", gridindex.ErrInvalidConfiguration, raw)
		}
		return []int{raw}, nil
	default:
		out, err := toInts(raw)
		if err != nil {
			return nil, err
		}
		for i, n := range out {
			if n <= 0 {
				return nil, fmt.Errorf("%w: extent %d of axis %d must be positive", gridindex.ErrInvalidConfiguration, n, i)
			}
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("%w: extents must not be empty", gridindex.ErrInvalidConfiguration)
		}
		return out, nil
	}
}

func toInts(raw any) ([]int, error) {
	switch xs := raw.(type) {
	case []int:
		return append([]int(nil), xs...), nil
	case []any:
		out := make([]int, len(xs))
		for i, x := range xs {
			n, ok := x.(int)
			if !ok {
				return nil, fmt.Errorf("%w: extent %v is not an integer", gridindex.ErrInvalidConfiguration, x)
			}
			out[i] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: extents have unsupported type %T", gridindex.ErrInvalidConfiguration, raw)
	}
}
