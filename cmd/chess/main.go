// chess is an interactive shell for playing and analysing chess positions.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/shell"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Logger = newLogger(cfg.Level())
	log.Debug().Msg("Debug logging is on")

	sc, err := shell.NewController(cfg, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Commands given on the command line run in order, separated by ';'.
	if args := strings.TrimSpace(strings.Join(flag.Args(), " ")); args != "" {
		os.Exit(runCommands(sc, args))
	}

	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Debug().Msg("got quit signal...")
		close(done)
	}()

	go sc.Loop(sig)
	<-done
}

// runCommands executes each ';'-separated command and returns the exit code.
func runCommands(sc *shell.Controller, line string) int {
	for _, cmd := range strings.Split(line, ";") {
		err := sc.Execute(cmd)
		if err == shell.ErrExit {
			return 0
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

// newLogger builds the console logger used by every package through
// zerolog's global logger.
func newLogger(level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger
}

// usage prints usage information.
func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options] [command[; command...]]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess moves against the rules engine. Without commands an\n")
	fmt.Fprintf(os.Stderr, "interactive shell is started.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  %s_MAX_HALF_MOVES, %s_MOVE_FORMAT, %s_START_FEN, %s_PERFT_WORKERS,\n",
		config.EnvPrefix, config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
	fmt.Fprintf(os.Stderr, "  %s_LOG_LEVEL, %s_PROMPT, %s_HISTORY_FILE override the config file.\n",
		config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
}
