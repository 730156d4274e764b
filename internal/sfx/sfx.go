// Package sfx plays the procedural sound effects of the game. Audio is
// optional: when the speaker cannot be initialized every call is a no-op.
package sfx

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	chimeNote1   = 120 * time.Millisecond
	chimeNote2   = 320 * time.Millisecond
	chimeAttack  = 5 * time.Millisecond
	chimeRelease = 90 * time.Millisecond
	plugDuration = 40 * time.Millisecond
)

// Player owns the speaker. The zero value is a silent player.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
	volume  float64
}

// New initializes the speaker. It returns a silent player and the error
// when no audio device is available.
func New(volume float64) (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}, volume: volume}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return &Player{}, err
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p, nil
}

// Enabled reports whether sounds are actually played.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Complete plays the level-complete chime.
func (p *Player) Complete() { p.play(Chime(sampleRate)) }

// Plug plays the click of the end terminal snapping into the socket.
func (p *Player) Plug() { p.play(Click(sampleRate)) }

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

// Close silences the player.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}

// Chime is a rising two-note chime (E5 then A5 with an octave overtone).
func Chime(rate beep.SampleRate) beep.Streamer {
	n1 := shaped(659.25, chimeNote1, rate)
	n2 := beep.Mix(
		withVolume(shaped(880, chimeNote2, rate), 0.7),
		withVolume(shaped(1760, chimeNote2, rate), 0.3),
	)
	return beep.Seq(n1, n2)
}

// Click is a very short low blip.
func Click(rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSine(220, plugDuration, rate), plugDuration, time.Millisecond, plugDuration/2, rate)
}

func shaped(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSine(freq, d, rate), d, chimeAttack, chimeRelease, rate)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// sine is a fixed-length sine oscillator.
type sine struct {
	step     float64
	phase    float64
	position int
	length   int
}

// NewSine returns a sine tone of the given frequency and duration.
func NewSine(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sine{step: freq / float64(rate), length: rate.N(d)}
}

func (s *sine) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0], samples[i][1] = v, v
		s.phase += s.step
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// NewEnvelope applies a linear attack/release envelope to s.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{s: s, total: rate.N(d), attack: rate.N(attack), release: rate.N(release)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }
