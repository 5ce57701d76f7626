package poly

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"

	intaudio "github.com/cbegin/poly-go/internal/audio"
	intfx "github.com/cbegin/poly-go/internal/effects"
)

type PlayerOption func(*playerConfig)

type playerConfig struct {
	effects   []intfx.Effector
	limiter   bool
	sampleTap func([]float32)
}

func defaultPlayerConfig() playerConfig {
	return playerConfig{limiter: true}
}

// WithEffects appends effects to the master bus, ahead of the limiter.
func WithEffects(effects ...intfx.Effector) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.effects = append(cfg.effects, effects...)
	}
}

// WithLimiter toggles the output limiter. It is on by default.
func WithLimiter(enabled bool) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.limiter = enabled
	}
}

// WithSampleTap installs a callback invoked with each generated stereo buffer.
// The callback runs on the audio thread; keep work brief and non-blocking.
func WithSampleTap(tap func([]float32)) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.sampleTap = tap
	}
}

const limiterCeiling = 0.98

// Player streams an engine to the default output device.
type Player struct {
	mu         sync.Mutex
	sampleRate int
	audio      *intaudio.Player
	bus        *bus
}

// bus is the SampleSource handed to the device. The engine pointer is
// swapped atomically so a new engine can replace the old one without
// reopening the stream.
type bus struct {
	engine    atomic.Pointer[Poly]
	volume    atomic.Uint32 // float32 bits
	effects   *intfx.Chain
	sampleTap func([]float32)
}

func (b *bus) Process(dst []float32) {
	engine := b.engine.Load()
	if engine == nil {
		clear(dst)
		return
	}
	engine.Process(dst)
	b.effects.ProcessInterleaved(dst)
	if v := math.Float32frombits(b.volume.Load()); v != 1 {
		for i := range dst {
			dst[i] *= v
		}
	}
	if b.sampleTap != nil {
		b.sampleTap(dst)
	}
}

func NewPlayer(sampleRate int, opts ...PlayerOption) (*Player, error) {
	if sampleRate <= 0 {
		return nil, ErrSampleRate
	}
	cfg := defaultPlayerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	chain := intfx.NewChain(cfg.effects...)
	if cfg.limiter {
		chain.Add(intfx.NewLimiter(sampleRate, limiterCeiling, 80))
	}
	b := &bus{effects: chain, sampleTap: cfg.sampleTap}
	b.volume.Store(math.Float32bits(1))
	return &Player{
		sampleRate: sampleRate,
		bus:        b,
	}, nil
}

// Play starts streaming engine, replacing whatever was playing.
func (p *Player) Play(engine *Poly) error {
	if engine == nil {
		return errors.New("poly: nil engine")
	}
	if int(engine.SampleRate()) != p.sampleRate {
		return ErrSampleRate
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.bus.engine.Store(engine)
	if p.audio != nil {
		p.audio.Play()
		return nil
	}
	backend, err := intaudio.NewPlayer(p.sampleRate, p.bus)
	if err != nil {
		return err
	}
	p.audio = backend
	p.audio.Play()
	return nil
}

// Swap replaces the engine feeding the device and returns the previous one.
// The stream keeps running; the effects tail carries over. An engine built
// for a different sample rate is ignored and nil is returned.
func (p *Player) Swap(engine *Poly) *Poly {
	if engine != nil && int(engine.SampleRate()) != p.sampleRate {
		return nil
	}
	return p.bus.engine.Swap(engine)
}

// Engine returns the engine currently feeding the device.
func (p *Player) Engine() *Poly {
	return p.bus.engine.Load()
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio != nil {
		p.audio.Pause()
	}
}

func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio != nil {
		p.audio.Play()
	}
}

func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.audio != nil && p.audio.IsPlaying()
}

func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio == nil {
		return nil
	}
	err := p.audio.Stop()
	p.audio = nil
	return err
}

// SetMasterVolume sets runtime volume scalar. 1.0 is default.
func (p *Player) SetMasterVolume(volume float64) {
	if volume < 0 || math.IsNaN(volume) {
		volume = 0
	}
	p.bus.volume.Store(math.Float32bits(float32(volume)))
}

func (p *Player) MasterVolume() float64 {
	return float64(math.Float32frombits(p.bus.volume.Load()))
}

// PlaybackPosition returns the current output position of the audio driver,
// i.e. what the listener actually hears right now. Returns 0 if not playing.
func (p *Player) PlaybackPosition() int64 {
	p.mu.Lock()
	a := p.audio
	p.mu.Unlock()
	if a == nil {
		return 0
	}
	pos := a.Position()
	return int64(pos.Seconds() * float64(p.sampleRate))
}
