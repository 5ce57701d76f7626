package effects

import "math"

// Limiter is a linked-stereo peak limiter. Attack is instantaneous, so the
// output never exceeds the ceiling.
type Limiter struct {
	ceiling float32
	release float32 // per-frame recovery coefficient
	env     float32
}

func NewLimiter(sampleRate int, ceiling float32, releaseMs float64) *Limiter {
	if ceiling <= 0 {
		ceiling = 1
	}
	if releaseMs <= 0 {
		releaseMs = 1
	}
	return &Limiter{
		ceiling: ceiling,
		release: float32(1 - math.Exp(-1/(releaseMs*float64(sampleRate)/1000))),
	}
}

func (m *Limiter) Process(l, r float32) (float32, float32) {
	peak := max(abs(l), abs(r))
	if peak > m.env {
		m.env = peak
	} else {
		m.env += m.release * (peak - m.env)
	}
	if m.env <= m.ceiling {
		return l, r
	}
	g := m.ceiling / m.env
	return l * g, r * g
}

func (m *Limiter) Reset() { m.env = 0 }

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
