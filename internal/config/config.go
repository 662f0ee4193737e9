// Package config reads the settings of sgfrender from, in increasing order of
// precedence, built-in defaults, a config file, SGFRENDER_* environment
// variables and command line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/gorgonia/goban"
	"github.com/gorgonia/goban/geometry"
	"github.com/gorgonia/goban/theme"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables, e.g. SGFRENDER_THEME.
const EnvPrefix = "SGFRENDER"

// Output formats.
const (
	FormatPNG = "png"
	FormatGIF = "gif"
)

// Config is the settled configuration.
type Config struct {
	Theme    string `mapstructure:"theme"`
	Kifu     bool   `mapstructure:"kifu"`
	Move     int    `mapstructure:"move"` // negative draws every move
	Canvas   int    `mapstructure:"canvas"`
	Format   string `mapstructure:"format"`
	Info     bool   `mapstructure:"info"`
	Dot      string `mapstructure:"dot"`
	Serve    string `mapstructure:"serve"`
	LogLevel string `mapstructure:"log-level"`
	Dev      bool   `mapstructure:"dev"`

	Args []string `mapstructure:"-"` // positional arguments
}

// Error is a configuration that cannot be used.
type Error struct {
	Key string
	Msg string
}

func (err *Error) Error() string { return fmt.Sprintf("config: %s: %s", err.Key, err.Msg) }

// NewFlagSet declares every flag sgfrender understands.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("theme", theme.Default, "board theme: "+strings.Join(theme.Names(), ", "))
	fs.Bool("kifu", false, "write move numbers on the stones")
	fs.Int("move", -1, "draw the board after this many moves; negative for all of them")
	fs.Int("canvas", geometry.DefaultCanvas, "image width and height in pixels")
	fs.String("format", "", "output format, png or gif; guessed from the output name when empty")
	fs.Bool("info", false, "print a YAML summary of the record instead of rendering")
	fs.String("dot", "", "also write the game tree as a Graphviz file")
	fs.String("config", "", "config file (yaml, json or toml)")
	fs.String("serve", "", "serve renders over HTTP on this address instead")
	fs.String("log-level", "warn", "debug, info, warn or error")
	fs.Bool("dev", false, "human readable logs")
	return fs
}

// Load parses args with fs and settles the configuration.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.WithStack(err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WithStack(err)
	}
	cfg.Args = fs.Args()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := theme.Lookup(c.Theme); err != nil {
		return &Error{Key: "theme", Msg: err.Error()}
	}
	if c.Canvas <= 0 || c.Canvas > goban.MaxCanvas {
		return &Error{Key: "canvas", Msg: fmt.Sprintf("must be between 1 and %d", goban.MaxCanvas)}
	}
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case "", FormatPNG, FormatGIF:
	default:
		return &Error{Key: "format", Msg: fmt.Sprintf("%q is neither png nor gif", c.Format)}
	}
	return nil
}

// Options turns the configuration into render options.
func (c *Config) Options() goban.Options {
	opts := goban.Options{
		Theme:  c.Theme,
		Kifu:   c.Kifu,
		Canvas: c.Canvas,
	}
	if c.Move >= 0 {
		opts.MoveNumber = goban.Moves(c.Move)
	}
	return opts
}

// OutputFormat is Format, or the format the output name suggests.
func (c *Config) OutputFormat(output string) string {
	if c.Format != "" {
		return c.Format
	}
	if strings.HasSuffix(strings.ToLower(output), ".gif") {
		return FormatGIF
	}
	return FormatPNG
}
