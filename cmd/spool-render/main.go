// spool-render replays a drag path through one level and prints the
// final frame and the board state, without a terminal UI.
//
// Run: go run ./cmd/spool-render/ -level 1 -drag "400,100;700,100;1230,360"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/wesen/spool/internal/log"
	"github.com/wesen/spool/internal/spoolui"
	"github.com/wesen/spool/pkg/geom"
	"github.com/wesen/spool/pkg/level"
	"github.com/wesen/spool/pkg/puzzle"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("spool-render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		levelsPath = fs.String("levels", "", "JavaScript level pack (default: built-in levels)")
		levelNum   = fs.Int("level", 1, "level to render, 1-based")
		drag       = fs.String("drag", "", `drag waypoints for the end terminal, "x,y;x,y;..."`)
		steps      = fs.Int("steps", 8, "ticks per drag leg")
		width      = fs.Int("width", 130, "frame width in cells")
		height     = fs.Int("height", 40, "frame height in cells")
		color      = fs.Bool("color", false, "emit ANSI styles")
		logLevel   = fs.String("log-level", "warn", "debug|info|warn|error|none")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	lvl, ok := log.LevelFromString(*logLevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", *logLevel)
	}
	logger := log.New(stderr, lvl)

	waypoints, err := parsePath(*drag)
	if err != nil {
		return err
	}

	pack, err := loadPack(*levelsPath, logger)
	if err != nil {
		return err
	}
	l, err := pack.At(*levelNum - 1)
	if err != nil {
		return err
	}

	b, err := puzzle.New(l,
		puzzle.WithLogger(logger),
		puzzle.OnComplete(func() { logger.Infof("level completed") }),
	)
	if err != nil {
		return err
	}

	s := replay(b, waypoints, max(*steps, 1))
	frame := spoolui.Frame(s, b.Bounds(), *width, *height, false)
	if *color {
		fmt.Fprintln(stdout, frame.Render(spoolui.Styles()))
	} else {
		fmt.Fprintln(stdout, frame.String())
	}
	summarize(stdout, b, s)
	return nil
}

// replay grabs the end terminal and walks it through the waypoints,
// ticking steps times per leg. Without waypoints it ticks once.
func replay(b *puzzle.Board, waypoints []geom.Vec, steps int) puzzle.Snapshot {
	s := b.Tick(nil)
	if len(waypoints) == 0 {
		return s
	}
	from := b.End().Pos
	b.Grab(from)
	for _, to := range waypoints {
		for i := 1; i <= steps; i++ {
			b.MoveTo(from.Add(to.Sub(from).Mul(float64(i) / float64(steps))))
			s = b.Step()
		}
		from = to
	}
	b.Release()
	return b.Step()
}

func summarize(w io.Writer, b *puzzle.Board, s puzzle.Snapshot) {
	fmt.Fprintf(w, "%s  tick %d\n", b.Name, s.Tick)
	fmt.Fprintf(w, "powered %s  connected %v  overpowered %v  solved %v  stalls %d\n",
		s.Counter(), s.Connected, s.Overpowered, s.Solved, s.Stalls)
	for i, wr := range s.Wraps {
		n, _ := s.Node(wr.NodeID)
		line := fmt.Sprintf("  %2d %-8s #%-2d side %+d  in %s out %s",
			i, n.Kind, n.ID, int(wr.Side), point(wr.In), point(wr.Out))
		if i < len(s.Segments) {
			seg := s.Segments[i]
			if seg.Isolated {
				line += "  isolated"
			}
			if seg.Overlap {
				line += "  overlap"
			}
		}
		fmt.Fprintln(w, line)
	}
}

func point(p geom.Vec) string {
	return fmt.Sprintf("(%.1f,%.1f)", p.X, p.Y)
}

// parsePath reads "x,y;x,y;...". Empty input is no path.
func parsePath(s string) ([]geom.Vec, error) {
	var pts []geom.Vec
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xs, ys, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("drag point %q: want x,y", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("drag point %q: %w", part, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("drag point %q: %w", part, err)
		}
		pts = append(pts, geom.V(x, y))
	}
	return pts, nil
}

func loadPack(path string, logger *log.Logger) (*level.Pack, error) {
	if path == "" {
		return level.Builtin()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return level.LoadFile(ctx, path, func(msg string) { logger.Infof("pack: %s", msg) })
}
