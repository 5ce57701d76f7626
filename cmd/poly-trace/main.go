// Command poly-trace runs an engine with no audio device and logs every
// sample, the way a board without an output stage would be bring-up tested.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/cbegin/poly-go"
)

func main() {
	var (
		seed       = flag.Uint64("seed", 0, "engine seed")
		sampleRate = flag.Uint("sample-rate", 44100, "sample rate")
		count      = flag.Uint64("n", 0, "samples to produce (0 = forever)")
		quiet      = flag.Bool("q", false, "log only construction and mutations")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	engine, err := poly.New(*seed, uint32(*sampleRate), poly.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	trace(engine, logger, *count, !*quiet)
}

// trace pulls n samples from engine, or runs forever when n is 0.
func trace(engine *poly.Poly, logger *slog.Logger, n uint64, samples bool) {
	for i := uint64(0); n == 0 || i < n; i++ {
		v := engine.Next()
		if samples {
			logger.Debug("sample", "n", i, "value", v)
		}
	}
}
