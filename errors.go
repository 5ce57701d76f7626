package poly

import (
	"errors"

	"github.com/cbegin/poly-go/internal/rng"
)

var (
	// ErrRng is returned when a random draw finds its pool empty. It can only
	// occur while an engine is being built.
	ErrRng = rng.ErrEmpty

	ErrSampleRate = errors.New("poly: sample rate must be positive")
	ErrConfig     = errors.New("poly: invalid config")
)
