// perft counts move generator leaf nodes for a position.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

// options holds the parsed command line.
type options struct {
	fen        string
	depth      int
	divide     bool
	workers    int
	repeat     int
	label      string
	cpuProfile string
}

func main() {
	var opts options
	flag.StringVar(&opts.fen, "fen", engine.InitialFEN, "FEN string (defaults to initial position)")
	flag.IntVar(&opts.depth, "depth", 0, "Perft depth (required)")
	flag.BoolVar(&opts.divide, "divide", false, "Print per-move node counts at root")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "Number of workers splitting the root moves")
	flag.IntVar(&opts.repeat, "repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	flag.StringVar(&opts.label, "label", "", "Optional label prefix for one-line output")
	flag.StringVar(&opts.cpuProfile, "cpuprofile", "", "Write CPU profile to file during run")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Logger = newLogger(*debug, os.Stderr)

	os.Exit(run(opts, os.Stdout, os.Stderr))
}

// run executes one perft or divide request and returns the exit code.
func run(opts options, stdout, stderr io.Writer) int {
	if opts.depth <= 0 {
		fmt.Fprintln(stderr, "-depth must be > 0")
		return 2
	}

	g, err := engine.NewGame(opts.fen)
	if err != nil {
		fmt.Fprintf(stderr, "FEN error: %v\n", err)
		return 2
	}

	if opts.cpuProfile != "" {
		f, err := os.Create(opts.cpuProfile)
		if err != nil {
			fmt.Fprintf(stderr, "creating cpuprofile: %v\n", err)
			return 2
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			fmt.Fprintf(stderr, "start cpu profile: %v\n", err)
			return 2
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if opts.divide {
		div, err := perft.Divide(g, opts.depth, opts.workers)
		if err != nil {
			fmt.Fprintf(stderr, "divide: %v\n", err)
			return 1
		}
		if err := perft.WriteDivide(stdout, div); err != nil {
			fmt.Fprintf(stderr, "divide: %v\n", err)
			return 1
		}
		return 0
	}

	repeat := max(opts.repeat, 1)
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < repeat; i++ {
		n, err := perft.Count(g, opts.depth, opts.workers)
		if err != nil {
			fmt.Fprintf(stderr, "perft: %v\n", err)
			return 1
		}
		totalNodes += n
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Fprintf(stdout, "%s \t%d \t\t%d \t\t%s \t%.0f\n", opts.label, opts.depth, totalNodes, elapsed, nps)
	return 0
}

// newLogger builds a console logger at info level, or debug when asked.
// It also sets zerolog's global level so package loggers follow it.
func newLogger(debug bool, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	zerolog.SetGlobalLevel(level)
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
