// Package audio plays short synthesized feedback tones.
package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	game_log "github.com/ingyamilmolinar/matchup/internal/log"
)

const (
	sampleRate          = 44100
	bufferSizeBytes10ms = sampleRate / 100 * 2 // 10ms of 16-bit mono audio
)

// Sound names understood by Play.
const (
	Connect = "connect"
	Reject  = "reject"
	Graded  = "graded"
)

// Voice generates PCM samples in the range [-1,1].
type Voice interface {
	// Sample returns the next sample and whether the voice has finished.
	Sample() (float64, bool)
}

// Tone is a sequence of sine notes with an exponential decay per note.
type Tone struct {
	Freqs   []float64
	NoteLen int // samples per note
	Gain    float64
}

func (t Tone) NewVoice() Voice { return &toneVoice{t: t} }

type toneVoice struct {
	t Tone
	i int
}

func (v *toneVoice) Sample() (float64, bool) {
	total := len(v.t.Freqs) * v.t.NoteLen
	if v.i >= total || v.t.NoteLen <= 0 {
		return 0, true
	}
	note := v.i / v.t.NoteLen
	pos := v.i % v.t.NoteLen
	env := math.Exp(-5 * float64(pos) / float64(v.t.NoteLen))
	s := math.Sin(2*math.Pi*v.t.Freqs[note]*float64(v.i)/sampleRate) * env * v.t.Gain
	v.i++
	return s, v.i >= total
}

var tones = map[string]Tone{
	Connect: {Freqs: []float64{660, 990}, NoteLen: sampleRate / 14, Gain: 0.4},
	Reject:  {Freqs: []float64{220, 180}, NoteLen: sampleRate / 10, Gain: 0.4},
	Graded:  {Freqs: []float64{523, 659, 784}, NoteLen: sampleRate / 10, Gain: 0.35},
}

// Player owns the output device. It is opened lazily on the first Play.
type Player struct {
	once    sync.Once
	open    func() (*mixer, error)
	mix     *mixer
	enabled bool
	logger  *game_log.Logger
}

// NewPlayer returns a player writing to the default audio device. A
// disabled player never opens the device.
func NewPlayer(logger *game_log.Logger, enabled bool) *Player {
	return &Player{open: openDevice, enabled: enabled, logger: logger.Tagged("AUDIO")}
}

// Play schedules the named tone. Unknown names and a missing device are
// ignored.
func (p *Player) Play(name string) {
	if p == nil || !p.enabled {
		return
	}
	t, ok := tones[name]
	if !ok {
		return
	}
	p.once.Do(func() {
		m, err := p.open()
		if err != nil {
			p.logger.Warnf("sound disabled: %v", err)
			return
		}
		p.mix = m
	})
	if p.mix == nil {
		return
	}
	p.mix.Schedule(t.NewVoice(), 0)
}

func openDevice() (*mixer, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	m := &mixer{}
	pl := ctx.NewPlayer(m)
	pl.SetBufferSize(bufferSizeBytes10ms)
	pl.Play()
	m.player = pl
	return m, nil
}

// mixer mixes multiple voices into a single PCM stream.
type mixer struct {
	mu     sync.Mutex
	voices []*voiceState
	pos    int
	player *oto.Player
}

type voiceState struct {
	start int
	v     Voice
}

// Schedule adds a voice to start after delaySamples have elapsed.
func (m *mixer) Schedule(v Voice, delaySamples int) {
	m.mu.Lock()
	m.voices = append(m.voices, &voiceState{start: m.pos + delaySamples, v: v})
	m.mu.Unlock()
}

// Read implements io.Reader for oto.Player.
func (m *mixer) Read(p []byte) (int, error) {
	samples := len(p) / 2
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i < samples; i++ {
		var sum float64
		for idx := 0; idx < len(m.voices); idx++ {
			vs := m.voices[idx]
			if m.pos < vs.start {
				continue
			}
			val, done := vs.v.Sample()
			sum += val
			if done {
				m.voices = append(m.voices[:idx], m.voices[idx+1:]...)
				idx--
			}
		}
		if sum > 1 {
			sum = 1
		} else if sum < -1 {
			sum = -1
		}
		v := int16(sum * 32767)
		p[2*i] = byte(v)
		p[2*i+1] = byte(v >> 8)
		m.pos++
	}
	return samples * 2, nil
}
