// Package spoolui is the terminal front end of the game: a Bubble Tea
// model that ticks the puzzle board at a fixed rate, maps mouse drags
// onto the end terminal and composes the playfield, HUD and side panel
// with lipgloss layers.
package spoolui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	"github.com/wesen/spool/pkg/level"
	"github.com/wesen/spool/pkg/puzzle"
)

// Sounder plays the game's sound effects.
type Sounder interface {
	Complete()
	Plug()
}

// Saver persists the index of the next level to play.
type Saver interface {
	Save(pack string, level int) error
}

type nopSounder struct{}

func (nopSounder) Complete() {}
func (nopSounder) Plug()     {}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}

// Options configures a Model. Only Pack is required.
type Options struct {
	Pack     level.Pack
	Start    int // 0-based level index
	FPS      int
	Progress Saver
	Sound    Sounder
	Log      puzzle.Logger
}

// Model is the application state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int

	pack     level.Pack
	index    int
	board    *puzzle.Board
	snap     puzzle.Snapshot
	interval time.Duration

	hover    bool // pointer over the end terminal
	plugged  bool // end terminal was in the socket on the last tick
	finished bool // completion of the current level handled
	ended    bool // past the last level

	prompt bool
	input  textinput.Model

	status string
	keys   keyMap
	help   help.Model

	progress Saver
	sound    Sounder
	log      puzzle.Logger
}

// NewModel builds the model and loads the starting level.
func NewModel(o Options) (Model, error) {
	if o.Pack.Len() == 0 {
		return Model{}, level.ErrNoLevels
	}
	fps := o.FPS
	if fps <= 0 {
		fps = 30
	}
	m := Model{
		pack:     o.Pack,
		interval: time.Second / time.Duration(fps),
		keys:     defaultKeys(),
		help:     help.New(),
		progress: o.Progress,
		sound:    o.Sound,
		log:      o.Log,
	}
	if m.sound == nil {
		m.sound = nopSounder{}
	}
	if m.log == nil {
		m.log = nopLogger{}
	}
	if err := m.loadLevel(min(max(o.Start, 0), o.Pack.Len()-1)); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.frame()
}

type frameMsg time.Time

func (m Model) frame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// loadLevel replaces the board with level i of the pack.
func (m *Model) loadLevel(i int) error {
	l, err := m.pack.At(i)
	if err != nil {
		return err
	}
	b, err := puzzle.New(l, puzzle.WithLogger(m.log))
	if err != nil {
		return fmt.Errorf("level %d: %w", i+1, err)
	}
	m.index = i
	m.board = b
	m.snap = b.Tick(nil)
	m.hover, m.plugged, m.finished, m.ended = false, false, false, false
	m.status = ""
	return nil
}

// Level returns the 0-based index of the level in play.
func (m Model) Level() int { return m.index }

// Snapshot returns the state after the last tick.
func (m Model) Snapshot() puzzle.Snapshot { return m.snap }

// Ended reports whether the end screen is showing.
func (m Model) Ended() bool { return m.ended }
