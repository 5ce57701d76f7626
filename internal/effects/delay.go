package effects

// Delay is a ping-pong delay: each repeat crosses to the opposite channel.
type Delay struct {
	left, right ring
	feedback    float32
	wet         float32
}

// NewDelay creates a delay of ms milliseconds. feedback is clamped to
// 0..0.95 and wet to 0..1.
func NewDelay(sampleRate int, ms float64, feedback, wet float32) *Delay {
	n := int(ms * float64(sampleRate) / 1000.0)
	return &Delay{
		left:     newRing(n),
		right:    newRing(n),
		feedback: clamp(feedback, 0, 0.95),
		wet:      clamp(wet, 0, 1),
	}
}

func (d *Delay) Process(l, r float32) (float32, float32) {
	dl := d.left.peek()
	dr := d.right.peek()
	d.left.push((l+r)*0.5 + dr*d.feedback)
	d.right.push(dl * d.feedback)
	dry := 1 - d.wet
	return l*dry + dl*d.wet, r*dry + dr*d.wet
}

func (d *Delay) Reset() {
	d.left.reset()
	d.right.reset()
}
