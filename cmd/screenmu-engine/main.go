// Command screenmu-engine is a thin host around the embedded analysis
// core: it reads a config file and a signal-batch file from disk,
// drives one ProcessSignals call, and prints the resulting
// AnalysisResult to stdout as JSON. When -viewport-us is set, it also
// prints the viewport at that timestamp to stderr as text.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mizzleinetimi/screenmu-chrome/internal/engine"
)

func main() {
	configPath := flag.String("config", "", "path to the engine config JSON file")
	signalsPath := flag.String("signals", "", "path to the signal batch JSON file")
	viewportUs := flag.Uint64("viewport-us", 0, "if set, also print the viewport at this timestamp")
	verbose := flag.Bool("verbose", false, "enable debug-level logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *configPath == "" || *signalsPath == "" {
		fmt.Fprintln(os.Stderr, "usage: screenmu-engine -config=<path> -signals=<path> [-viewport-us=<us>]")
		os.Exit(2)
	}

	if err := run(*configPath, *signalsPath, *viewportUs); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(configPath, signalsPath string, viewportUs uint64) error {
	configJSON, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	e, err := engine.New(configJSON)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	signalsJSON, err := os.ReadFile(signalsPath)
	if err != nil {
		return fmt.Errorf("read signals: %w", err)
	}

	result, err := e.ProcessSignals(signalsJSON)
	if err != nil {
		return fmt.Errorf("process signals: %w", err)
	}

	output, err := engine.MarshalResult(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(output))

	if viewportUs > 0 {
		vp := e.ViewportAt(viewportUs)
		fmt.Fprintf(os.Stderr, "viewport at %dus: center=(%.4f,%.4f) zoom=%.4f\n",
			viewportUs, vp.Center.X, vp.Center.Y, vp.Zoom)
	}

	return nil
}
