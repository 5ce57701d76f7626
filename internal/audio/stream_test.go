package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

type rampSource struct{ n float32 }

func (s *rampSource) Process(dst []float32) {
	for i := 0; i+1 < len(dst); i += 2 {
		dst[i] = s.n
		dst[i+1] = -s.n
		s.n++
	}
}

func TestStreamReaderEncodesFrames(t *testing.T) {
	r := NewStreamReader(&rampSource{})
	p := make([]byte, 3*Channels*4+5) // trailing partial frame is left alone
	n, err := r.Read(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n != 3*Channels*4 {
		t.Fatalf("n = %d, want %d", n, 3*Channels*4)
	}
	for i := 0; i < 6; i++ {
		got := math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
		want := float32(i / 2)
		if i%2 == 1 {
			want = -want
		}
		if got != want {
			t.Fatalf("sample %d = %v, want %v", i, got, want)
		}
	}
	if _, err := r.Read(p); err != nil {
		t.Fatalf("stream should not end: %v", err)
	}
}

func TestStreamReaderSilentWithoutSource(t *testing.T) {
	r := NewStreamReader(nil)
	p := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	n, err := r.Read(p)
	if err != nil || n != 8 {
		t.Fatalf("read = %d, %v", n, err)
	}
	for i, b := range p {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestStreamReaderShortBuffer(t *testing.T) {
	r := NewStreamReader(&rampSource{})
	if n, err := r.Read(make([]byte, 7)); n != 0 || err != nil {
		t.Fatalf("read = %d, %v", n, err)
	}
}
