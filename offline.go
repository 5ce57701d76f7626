package poly

import (
	"encoding/binary"
	"io"
	"math"
)

// RenderSamples renders seconds of interleaved stereo audio from a fresh
// engine.
func RenderSamples(seed uint64, sampleRate uint32, seconds float64, opts ...Option) ([]float32, error) {
	engine, err := New(seed, sampleRate, opts...)
	if err != nil {
		return nil, err
	}
	return Render(engine, seconds), nil
}

// Render pulls seconds of interleaved stereo audio from engine.
func Render(engine *Poly, seconds float64) []float32 {
	frames := int(float64(engine.SampleRate()) * seconds)
	if frames < 0 {
		frames = 0
	}
	out := make([]float32, frames*2)
	engine.Process(out)
	return out
}

const wavHeaderSize = 44

func wavHeader(dataSize, sampleRate, channels int) []byte {
	h := make([]byte, wavHeaderSize)
	copy(h[0:], "RIFF")
	binary.LittleEndian.PutUint32(h[4:], uint32(36+dataSize))
	copy(h[8:], "WAVE")
	copy(h[12:], "fmt ")
	binary.LittleEndian.PutUint32(h[16:], 16)
	binary.LittleEndian.PutUint16(h[20:], 3) // IEEE float
	binary.LittleEndian.PutUint16(h[22:], uint16(channels))
	binary.LittleEndian.PutUint32(h[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:], uint32(sampleRate*channels*4))
	binary.LittleEndian.PutUint16(h[32:], uint16(channels*4))
	binary.LittleEndian.PutUint16(h[34:], 32)
	copy(h[36:], "data")
	binary.LittleEndian.PutUint32(h[40:], uint32(dataSize))
	return h
}

// EncodeWAVFloat32LE returns a complete 32-bit float WAV file.
func EncodeWAVFloat32LE(samples []float32, sampleRate int, channels int) []byte {
	out := make([]byte, wavHeaderSize+len(samples)*4)
	copy(out, wavHeader(len(samples)*4, sampleRate, channels))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[wavHeaderSize+i*4:], math.Float32bits(s))
	}
	return out
}

// WriteWAVFloat32LE streams samples as a 32-bit float WAV file to w.
func WriteWAVFloat32LE(w io.Writer, samples []float32, sampleRate int, channels int) error {
	if _, err := w.Write(wavHeader(len(samples)*4, sampleRate, channels)); err != nil {
		return err
	}
	var buf [4096]byte
	for len(samples) > 0 {
		n := len(samples)
		if n > len(buf)/4 {
			n = len(buf) / 4
		}
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(samples[i]))
		}
		if _, err := w.Write(buf[:n*4]); err != nil {
			return err
		}
		samples = samples[n:]
	}
	return nil
}
