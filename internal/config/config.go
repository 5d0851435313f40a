// Package config binds command-line flags, MATCHUP_* environment variables
// and an optional config file into one Config.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ingyamilmolinar/matchup/internal/log"
	"github.com/ingyamilmolinar/matchup/internal/pairs"
)

const EnvPrefix = "MATCHUP"

type Config struct {
	File       string
	LogLevel   string
	Timestamps bool
	Seed       uint64
	Scale      float64
	Sound      bool
	Panel      bool

	Pairs []pairs.Pair
}

func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("invalid scale (must be > 0): %v", c.Scale)
	}
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if err := pairs.Validate(c.Pairs); err != nil {
		return fmt.Errorf("pairs: %w", err)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level { return log.LevelFromString(c.LogLevel) }

// Binder owns the viper instance shared by a command tree.
type Binder struct {
	v   *viper.Viper
	cfg *Config
}

func NewBinder(cfg *Config) *Binder {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Binder{v: v, cfg: cfg}
}

// RegisterFlags adds the persistent flags every subcommand understands.
func (b *Binder) RegisterFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	cfg := b.cfg
	fs.StringVarP(&cfg.File, "config", "c", "", "config file with settings and pairs (env: MATCHUP_CONFIG)")
	fs.StringVarP(&cfg.LogLevel, "log-level", "l", "info", "debug, info, warn, error or none (env: MATCHUP_LOG_LEVEL)")
	fs.BoolVar(&cfg.Timestamps, "timestamps", false, "prefix log lines with a timestamp (env: MATCHUP_TIMESTAMPS)")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "shuffle seed, 0 picks one from the clock (env: MATCHUP_SEED)")
	fs.Float64Var(&cfg.Scale, "scale", 2, "window scale factor (env: MATCHUP_SCALE)")
	fs.BoolVar(&cfg.Sound, "sound", true, "play feedback tones (env: MATCHUP_SOUND)")
	fs.BoolVar(&cfg.Panel, "panel", false, "open the control panel window (env: MATCHUP_PANEL)")
}

// Load resolves flags, environment and config file into the Config. Flags
// given on the command line win over the environment, which wins over the
// file.
func (b *Binder) Load(cmd *cobra.Command) error {
	fs := cmd.Flags()
	fs.VisitAll(func(f *pflag.Flag) {
		_ = b.v.BindPFlag(f.Name, f)
		_ = b.v.BindEnv(f.Name)
	})

	if b.cfg.File == "" {
		b.cfg.File = b.v.GetString("config")
	}
	if b.cfg.File != "" {
		b.v.SetConfigFile(b.cfg.File)
		if err := b.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", b.cfg.File, err)
		}
	}

	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !b.v.IsSet(f.Name) {
			return
		}
		if setErr := fs.Set(f.Name, fmt.Sprintf("%v", b.v.Get(f.Name))); setErr != nil {
			err = fmt.Errorf("flag %s: %w", f.Name, setErr)
		}
	})
	if err != nil {
		return err
	}

	b.cfg.Pairs = nil
	if b.v.IsSet("pairs") {
		if err := b.v.UnmarshalKey("pairs", &b.cfg.Pairs); err != nil {
			return fmt.Errorf("decode pairs: %w", err)
		}
	}
	if len(b.cfg.Pairs) == 0 {
		b.cfg.Pairs = pairs.Default()
	}
	return b.cfg.Validate()
}
