package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/term"

	"github.com/cbegin/poly-go"
	"github.com/cbegin/poly-go/internal/effects"
	"github.com/cbegin/poly-go/internal/monitor"
)

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7dcfff"))

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 44100, "output sample rate")
		configPath = flag.String("config", "", "path to a JSON config of tuning ranges")
		watch      = flag.Bool("watch", false, "rebuild the engine when -config changes")
		tui        = flag.Bool("tui", false, "show the live monitor")
		volume     = flag.Float64("volume", 1.0, "master volume scalar")
		reverb     = flag.Float64("reverb", 0, "reverb wet mix (0 = off)")
		delayMs    = flag.Float64("delay", 0, "ping-pong delay time in ms (0 = off)")
		logPath    = flag.String("log", "", "write logs to this file")
		verbose    = flag.Bool("v", false, "log construction dumps and mutations")
	)
	flag.Parse()

	seed, err := parseSeed(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if *sampleRate <= 0 {
		log.Fatalf("invalid -sample-rate %d", *sampleRate)
	}
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	showTUI := *tui && interactive

	logger, closeLog, err := newLogger(*logPath, *verbose, showTUI)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	cfg := poly.DefaultConfig()
	if *configPath != "" {
		if cfg, err = poly.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	var fx []effects.Effector
	if *delayMs > 0 {
		fx = append(fx, effects.NewDelay(*sampleRate, *delayMs, 0.35, 0.3))
	}
	if *reverb > 0 {
		fx = append(fx, effects.NewReverb(*sampleRate, 0.6, 0.75, float32(*reverb)))
	}

	stats := monitor.NewStats(0)
	build := func(cfg poly.Config) (*poly.Poly, error) {
		engine, err := poly.New(seed, uint32(*sampleRate),
			poly.WithConfig(cfg),
			poly.WithLogger(logger),
			poly.WithNoteHook(func(ev poly.NoteEvent) {
				stats.Note(ev.Sample, ev.Step, ev.Frequency)
			}),
			poly.WithMutationHook(func(ev poly.MutationEvent) {
				if ev.Kind == poly.MutationNote {
					stats.NoteMutation(ev.Index, ev.Frequency)
					return
				}
				stats.VoiceMutation(fmt.Sprintf("%d (%s, %.2f)", ev.Index, ev.Signal, ev.Ratio))
			}),
		)
		if err != nil {
			return nil, err
		}
		stats.Reset(engine.Steps())
		return engine, nil
	}

	engine, err := build(cfg)
	if err != nil {
		log.Fatal(err)
	}
	pl, err := poly.NewPlayer(*sampleRate, poly.WithEffects(fx...))
	if err != nil {
		log.Fatal(err)
	}
	pl.SetMasterVolume(*volume)
	if err := pl.Play(engine); err != nil {
		log.Fatal(err)
	}
	logger.Info("playing", "seed", seed, "sample_rate", *sampleRate, "bpm", fmt.Sprintf("%.1f", engine.BPM()), "steps", engine.Steps())

	if *watch && *configPath != "" {
		go watchConfig(*configPath, logger, func(cfg poly.Config) {
			next, err := build(cfg)
			if err != nil {
				logger.Error("rebuild failed", "err", err)
				return
			}
			pl.Swap(next)
			logger.Info("config reloaded", "bpm", fmt.Sprintf("%.1f", next.BPM()), "steps", next.Steps())
		})
	}

	title := fmt.Sprintf("poly %d", seed)
	if showTUI {
		if err := monitor.Run(monitor.New(title, uint32(*sampleRate), stats, pl)); err != nil {
			log.Fatal(err)
		}
		_ = pl.Stop()
		return
	}
	if interactive {
		fmt.Println(bannerStyle.Render(title))
	} else {
		fmt.Println(title)
	}
	select {}
}

// parseSeed reads the seed argument, falling back to the current Unix time.
func parseSeed(arg string) (uint64, error) {
	if arg == "" {
		return uint64(time.Now().Unix()), nil
	}
	seed, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", arg, err)
	}
	return seed, nil
}

// newLogger logs to stderr, or to path when set. While the monitor owns the
// terminal, logs without a file are dropped.
func newLogger(path string, verbose, tui bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closer = func() { _ = f.Close() }
	case tui:
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}

// watchConfig reloads path whenever it is written. The parent directory is
// watched so editors that replace the file by rename are still seen.
func watchConfig(path string, logger *slog.Logger, reload func(poly.Config)) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("watch failed", "err", err)
		return
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		logger.Error("watch failed", "path", path, "err", err)
		return
	}
	target := filepath.Clean(path)

	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				// editors often write in several steps
				pending = time.After(100 * time.Millisecond)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error", "err", err)
		case <-pending:
			pending = nil
			cfg, err := poly.LoadConfig(path)
			if err != nil {
				logger.Error("config rejected", "path", path, "err", err)
				continue
			}
			reload(cfg)
		}
	}
}
