package sequence

import (
	"fmt"

	"github.com/cbegin/poly-go/internal/rng"
)

// Note is a pitch held for a whole number of steps. The zero Note marks an
// unused slot.
type Note struct {
	Length    int
	Frequency float32
}

// NewNote draws a length in 1..=maxLength and a pitch from scale.
func NewNote(r *rng.Rand, scale *Scale, maxLength int) (Note, error) {
	length := r.Int(rng.IntRange{Min: 1, Max: maxLength})
	frequency, err := rng.Choose(r, scale[:])
	if err != nil {
		return Note{}, err
	}
	return Note{Length: length, Frequency: frequency}, nil
}

func (n Note) String() string {
	return fmt.Sprintf("(%d, %.2fHz)", n.Length, n.Frequency)
}
