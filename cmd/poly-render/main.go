package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cbegin/poly-go"
	"github.com/cbegin/poly-go/internal/effects"
	"github.com/cbegin/poly-go/internal/midiexport"
)

func main() {
	var (
		seedList   = flag.String("seeds", "0", "comma-separated seeds to render")
		seconds    = flag.Float64("seconds", 30, "length of each render")
		sampleRate = flag.Int("sample-rate", 44100, "output sample rate")
		outDir     = flag.String("out", ".", "output directory")
		configPath = flag.String("config", "", "path to a JSON config of tuning ranges")
		writeMIDI  = flag.Bool("midi", false, "also write the played notes as a .mid file")
		reverb     = flag.Float64("reverb", 0, "reverb wet mix (0 = off)")
		jobs       = flag.Int("jobs", runtime.NumCPU(), "renders to run at once")
		verbose    = flag.Bool("v", false, "log construction dumps")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	seeds, err := parseSeeds(*seedList)
	if err != nil {
		log.Fatal(err)
	}
	if *sampleRate <= 0 {
		log.Fatalf("invalid -sample-rate %d", *sampleRate)
	}
	cfg := poly.DefaultConfig()
	if *configPath != "" {
		if cfg, err = poly.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*jobs, 1))
	for _, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			job := renderJob{
				seed:       seed,
				sampleRate: uint32(*sampleRate),
				seconds:    *seconds,
				config:     cfg,
				reverb:     float32(*reverb),
				midi:       *writeMIDI,
				dir:        *outDir,
				logger:     logger.With("seed", seed),
			}
			return job.run()
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

type renderJob struct {
	seed       uint64
	sampleRate uint32
	seconds    float64
	config     poly.Config
	reverb     float32
	midi       bool
	dir        string
	logger     *slog.Logger
}

func (j renderJob) run() error {
	opts := []poly.Option{poly.WithConfig(j.config), poly.WithLogger(j.logger)}
	var rec *midiexport.Recorder
	if j.midi {
		// the recorder needs the drawn tempo, so probe an identical engine first
		probe, err := poly.New(j.seed, j.sampleRate, poly.WithConfig(j.config))
		if err != nil {
			return fmt.Errorf("seed %d: %w", j.seed, err)
		}
		rec, err = midiexport.NewRecorder(j.sampleRate, probe.StepSamples(), probe.Steps())
		if err != nil {
			return fmt.Errorf("seed %d: %w", j.seed, err)
		}
		rec.Name = fmt.Sprintf("poly %d", j.seed)
		opts = append(opts, poly.WithNoteHook(func(ev poly.NoteEvent) {
			rec.Add(ev.Sample, ev.Length, ev.Frequency)
		}))
	}

	samples, err := poly.RenderSamples(j.seed, j.sampleRate, j.seconds, opts...)
	if err != nil {
		return fmt.Errorf("seed %d: %w", j.seed, err)
	}
	if j.reverb > 0 {
		chain := effects.NewChain(
			effects.NewReverb(int(j.sampleRate), 0.6, 0.75, j.reverb),
			effects.NewLimiter(int(j.sampleRate), 0.98, 80),
		)
		chain.ProcessInterleaved(samples)
	}

	base := filepath.Join(j.dir, fmt.Sprintf("poly-%d", j.seed))
	if err := writeWAV(base+".wav", samples, int(j.sampleRate)); err != nil {
		return err
	}
	j.logger.Info("wrote", "path", base+".wav", "seconds", j.seconds)
	if rec != nil {
		if err := rec.WriteFile(base + ".mid"); err != nil {
			return fmt.Errorf("seed %d: %w", j.seed, err)
		}
		j.logger.Info("wrote", "path", base+".mid", "notes", rec.Len())
	}
	return nil
}

func writeWAV(path string, samples []float32, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := poly.WriteWAVFloat32LE(w, samples, sampleRate, 2); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func parseSeeds(list string) ([]uint64, error) {
	var seeds []uint64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		seed, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", field, err)
		}
		seeds = append(seeds, seed)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seeds in %q", list)
	}
	return seeds, nil
}
