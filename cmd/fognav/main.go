// Command fognav runs a fog-of-war navigation mission from three input files and writes
// the event log to an output file.
//
//	fognav [flags] <nodes> <edges> <objectives> <output>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/katalvlaran/fognav/mapio"
	"github.com/katalvlaran/fognav/mission"
	"github.com/katalvlaran/fognav/terrain"
)

// errOutputMismatch reports that -expect found differences.
var errOutputMismatch = errors.New("output differs from expected")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Getenv, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process exit, returning the exit code.
func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, getenv, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "fognav:", err)
		return 1
	}
	logger, err := newLogger(cfg.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, "fognav: logger:", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	var con *console
	if cfg.echo {
		con = newConsole(stdout, isTerminal(stdout))
	}
	if err = execute(ctx, cfg, logger, con); err != nil {
		logger.Error("mission failed", zap.Error(err))
		fmt.Fprintln(stderr, "fognav:", err)
		return 1
	}

	return 0
}

// newLogger builds a production JSON logger on stderr at the given level.
func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// execute loads the inputs, runs the mission and writes the output file.
func execute(ctx context.Context, cfg config, logger *zap.Logger, con *console) error {
	gr, m, err := load(cfg)
	if err != nil {
		return err
	}
	logger.Info("inputs loaded",
		zap.Int("width", gr.Width),
		zap.Int("height", gr.Height),
		zap.Int("objectives", len(m.Objectives)),
		zap.Int("radius", m.Radius),
	)

	out, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	w := mapio.NewEventWriter(out)
	sink := w.Write
	if con != nil {
		sink = func(ev mission.Event) error {
			if err := w.Write(ev); err != nil {
				return err
			}
			return con.Event(ev)
		}
	}

	opts := []mission.Option{mission.WithLogger(logger), mission.WithSink(sink)}
	if cfg.replanLimit > 0 {
		opts = append(opts, mission.WithReplanLimit(cfg.replanLimit))
	}
	ex, err := mission.NewExecutor(gr, m, opts...)
	if err != nil {
		_ = out.Close()
		return err
	}
	rep, runErr := ex.Run(ctx)
	if err = errors.Join(runErr, w.Flush(), out.Close()); err != nil {
		return err
	}
	logger.Info("mission complete",
		zap.Int("reached", rep.Reached),
		zap.Int("replans", rep.Replans),
		zap.Float64("travelled", rep.Travelled),
		zap.Stringer("position", rep.Position),
	)

	if cfg.expect != "" {
		return compare(cfg.expect, cfg.output, logger, con)
	}

	return nil
}

// load reads the three input files.
func load(cfg config) (*terrain.Grid, mission.Mission, error) {
	var (
		gr *terrain.Grid
		m  mission.Mission
	)
	err := withFile(cfg.nodes, func(r io.Reader) (err error) {
		gr, err = mapio.ReadGrid(r)
		return err
	})
	if err == nil {
		err = withFile(cfg.edges, func(r io.Reader) error {
			return mapio.ReadEdges(r, gr)
		})
	}
	if err == nil {
		err = withFile(cfg.objectives, func(r io.Reader) (err error) {
			m, err = mapio.ReadMission(r)
			return err
		})
	}

	return gr, m, err
}

// withFile opens path, hands it to fn and closes it. Errors name the file.
func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = fn(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// compare diffs the written output against the expected file.
func compare(expected, actual string, logger *zap.Logger, con *console) error {
	var diffs []mapio.Mismatch
	err := withFile(expected, func(er io.Reader) error {
		return withFile(actual, func(ar io.Reader) (err error) {
			diffs, err = mapio.Diff(er, ar)
			return err
		})
	})
	if err != nil {
		return err
	}
	for _, d := range diffs {
		logger.Warn("output mismatch", zap.Int("line", d.Line), zap.String("expected", d.Expected), zap.String("actual", d.Actual))
		if con != nil {
			con.Mismatch(d.String())
		}
	}
	if len(diffs) > 0 {
		return fmt.Errorf("%w: %d lines", errOutputMismatch, len(diffs))
	}
	logger.Info("output matches expected", zap.String("expected", expected))

	return nil
}
