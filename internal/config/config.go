// Package config resolves the game settings from flags, the process
// environment and an optional .env file. Explicit flags win over the
// environment, the environment wins over .env, and .env wins over the
// built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/wesen/spool/internal/log"
)

// ErrBadValue is wrapped by every invalid setting.
var ErrBadValue = errors.New("bad config value")

// Environment variable names.
const (
	EnvLevels   = "SPOOL_LEVELS"
	EnvLevel    = "SPOOL_LEVEL"
	EnvProgress = "SPOOL_PROGRESS"
	EnvLog      = "SPOOL_LOG"
	EnvLogLevel = "SPOOL_LOG_LEVEL"
	EnvSound    = "SPOOL_SOUND"
	EnvFPS      = "SPOOL_FPS"
)

const (
	MinFPS = 1
	MaxFPS = 120
)

// Config holds the resolved settings.
type Config struct {
	LevelsPath   string // empty means the built-in pack
	Level        int    // 1-based; 0 continues from saved progress
	ProgressPath string
	LogPath      string
	LogLevel     log.Level
	Sound        bool
	FPS          int
}

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		ProgressPath: defaultProgressPath(),
		LogPath:      "spool.log",
		LogLevel:     log.LevelInfo,
		Sound:        true,
		FPS:          30,
	}
}

func defaultProgressPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "spool-progress.json"
	}
	return filepath.Join(dir, "spool", "progress.json")
}

// Environment returns a lookup that consults the process environment
// first and then the key/value pairs of dotenv. A missing dotenv file is
// not an error.
func Environment(dotenv string) (LookupFunc, error) {
	vars := map[string]string{}
	if dotenv != "" {
		read, err := godotenv.Read(dotenv)
		switch {
		case err == nil:
			vars = read
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read %s: %w", dotenv, err)
		}
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}

// Load resolves the settings for args (without the program name).
func Load(args []string, lookup LookupFunc) (Config, error) {
	cfg := Default()
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("spool", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.LevelsPath, "levels", cfg.LevelsPath, "JavaScript level pack (default: built-in levels)")
	fs.IntVar(&cfg.Level, "level", cfg.Level, "level to start at, 1-based (0 continues saved progress)")
	fs.StringVar(&cfg.ProgressPath, "progress", cfg.ProgressPath, "progress file")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "log file")
	logLevel := fs.String("log-level", cfg.LogLevel.String(), "debug|info|warn|error|none")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play the completion chime")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "simulation ticks per second")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %v", ErrBadValue, err)
	}

	lvl, ok := log.LevelFromString(*logLevel)
	if !ok {
		return cfg, fmt.Errorf("%w: log level %q", ErrBadValue, *logLevel)
	}
	cfg.LogLevel = lvl

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvLevels); ok {
		c.LevelsPath = v
	}
	if v, ok := lookup(EnvProgress); ok && v != "" {
		c.ProgressPath = v
	}
	if v, ok := lookup(EnvLog); ok && v != "" {
		c.LogPath = v
	}
	if v, ok := lookup(EnvLevel); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrBadValue, EnvLevel, v)
		}
		c.Level = n
	}
	if v, ok := lookup(EnvFPS); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrBadValue, EnvFPS, v)
		}
		c.FPS = n
	}
	if v, ok := lookup(EnvSound); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrBadValue, EnvSound, v)
		}
		c.Sound = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		lvl, known := log.LevelFromString(v)
		if !known {
			return fmt.Errorf("%w: %s=%q", ErrBadValue, EnvLogLevel, v)
		}
		c.LogLevel = lvl
	}
	return nil
}

// Validate checks ranges.
func (c Config) Validate() error {
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d outside %d..%d", ErrBadValue, c.FPS, MinFPS, MaxFPS)
	}
	if c.Level < 0 {
		return fmt.Errorf("%w: level %d", ErrBadValue, c.Level)
	}
	if c.ProgressPath == "" {
		return fmt.Errorf("%w: empty progress path", ErrBadValue)
	}
	return nil
}
