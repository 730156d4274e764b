// spool: drag a cable through a field of power spools and plug it in.
//
// Run: go run ./cmd/spool/ [-level N] [-levels pack.js]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/spool/internal/config"
	"github.com/wesen/spool/internal/log"
	"github.com/wesen/spool/internal/progress"
	"github.com/wesen/spool/internal/sfx"
	"github.com/wesen/spool/internal/spoolui"
	"github.com/wesen/spool/pkg/level"
)

const usage = `usage: spool [flags]
  -levels file.js   level pack (default: built-in levels)
  -level N          start at level N, 0 continues saved progress
  -progress file    progress file
  -log file         log file (default spool.log)
  -log-level L      debug|info|warn|error|none
  -sound=false      disable sound effects
  -fps N            ticks per second, 1..120`

// packTimeout bounds the evaluation of a level pack script.
const packTimeout = 2 * time.Second

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Println(usage)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	lookup, err := config.Environment(".env")
	if err != nil {
		return err
	}
	cfg, err := config.Load(os.Args[1:], lookup)
	if err != nil {
		return err
	}

	logger := log.Discard()
	if cfg.LogLevel != log.LevelNone {
		f, err := tea.LogToFile(cfg.LogPath, "")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = log.New(f, cfg.LogLevel)
	}

	pack, err := loadPack(cfg.LevelsPath, logger)
	if err != nil {
		return err
	}

	store := progress.NewStore(cfg.ProgressPath)
	start := cfg.Level - 1
	if cfg.Level == 0 {
		if start, err = store.Load(pack.Name); err != nil {
			logger.Warnf("%v; starting at level 1", err)
			start = 0
		}
	}

	opts := spoolui.Options{
		Pack:     *pack,
		Start:    start,
		FPS:      cfg.FPS,
		Progress: store,
		Log:      logger,
	}
	if cfg.Sound {
		player, err := sfx.New(0.5)
		if err != nil {
			logger.Warnf("audio disabled: %v", err)
		}
		defer player.Close()
		opts.Sound = player
	}

	m, err := spoolui.NewModel(opts)
	if err != nil {
		return err
	}
	logger.Infof("pack %q: %d levels, starting at %d", pack.Name, pack.Len(), m.Level()+1)

	_, err = tea.NewProgram(m).Run()
	return err
}

func loadPack(path string, logger *log.Logger) (*level.Pack, error) {
	if path == "" {
		return level.Builtin()
	}
	ctx, cancel := context.WithTimeout(context.Background(), packTimeout)
	defer cancel()
	return level.LoadFile(ctx, path, func(msg string) { logger.Infof("pack: %s", msg) })
}
