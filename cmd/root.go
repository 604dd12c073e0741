package cmd

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ftahirops/provertop/collector"
	"github.com/ftahirops/provertop/config"
	"github.com/ftahirops/provertop/engine"
	"github.com/ftahirops/provertop/model"
	"github.com/ftahirops/provertop/scenario"
	"github.com/ftahirops/provertop/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

func printUsage() {
	fmt.Fprintf(os.Stderr, `provertop v%s — live dashboard for a zkVM prover pipeline

Usage:
  provertop [OPTIONS] [INTERVAL]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -watch            CLI output mode — prints one status line per tick
  -json             Single JSON snapshot to stdout, then exit
  -version          Print version and exit

Input:
  stdin pipe        JSONL worker events:  prover-cli --log-json | provertop
  -events FILE      Load a recorded JSONL event stream, then analyze it
  -scenario FILE    Feed a scripted YAML scenario (default: built-in demo)

Options:
  -interval N       Update interval in seconds (default: 1)
  -history N        Snapshots to keep in ring buffer (default: 300)
  -count N          Iterations for -watch mode (0 = infinite, default: 0)
  -events-out FILE  Persist ingested stdin events as JSONL
  -record FILE      Record one frame per tick for later replay
  -replay FILE      Replay a recorded file through the TUI

Positional:
  INTERVAL          First positional arg sets interval: provertop 5

Examples:
  prover-cli --log-json | provertop
  provertop                              Built-in demo scenario
  provertop -scenario soak.yaml 2
  provertop -events run.jsonl -json | jq '.zkvm'
  provertop -record session.plog
  provertop -replay session.plog
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	cfg := config.Load()

	var (
		intervalSec  int
		historySize  int
		watchMode    bool
		watchCount   int
		jsonMode     bool
		scenarioPath string
		eventsPath   string
		eventsOut    string
		recordPath   string
		replayPath   string
		showVersion  bool
	)

	flag.IntVar(&intervalSec, "interval", cfg.IntervalSec, "Update interval in seconds")
	flag.IntVar(&historySize, "history", cfg.HistorySize, "Number of snapshots to keep in history")
	flag.BoolVar(&watchMode, "watch", false, "CLI output mode (no TUI, prints to terminal)")
	flag.IntVar(&watchCount, "count", 0, "Number of iterations for -watch (0=infinite)")
	flag.BoolVar(&jsonMode, "json", false, "Output a single JSON snapshot and exit")
	flag.StringVar(&scenarioPath, "scenario", cfg.ScenarioPath, "Scripted YAML scenario to feed (empty=built-in demo)")
	flag.StringVar(&eventsPath, "events", "", "JSONL event stream to load and analyze")
	flag.StringVar(&eventsOut, "events-out", cfg.EventsOut, "Persist ingested stdin events to a JSONL file")
	flag.StringVar(&recordPath, "record", "", "Record one frame per tick to a file for replay")
	flag.StringVar(&replayPath, "replay", "", "Replay a recorded file through the TUI")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("provertop v%s\n", Version)
		return nil
	}

	// Support positional arg for interval: `provertop 5`.
	if args := flag.Args(); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			intervalSec = n
		}
	}
	if intervalSec < 1 {
		intervalSec = 1
	}
	interval := time.Duration(intervalSec) * time.Second

	if replayPath != "" {
		f, err := os.Open(replayPath)
		if err != nil {
			return fmt.Errorf("open replay file: %w", err)
		}
		defer f.Close()
		player, err := engine.NewPlayer(f, historySize)
		if err != nil {
			return fmt.Errorf("load replay: %w", err)
		}
		if player.Len() == 0 {
			return fmt.Errorf("replay file %s contains no frames", replayPath)
		}
		if watchMode {
			return runWatch(player, interval, watchCount)
		}
		return runTUI(player, interval)
	}

	log := model.NewEventLog()
	if eventsPath != "" {
		events, err := engine.ReadEventLog(eventsPath)
		if err != nil {
			return fmt.Errorf("load events: %w", err)
		}
		log.AppendAll(events)
	}

	eng := engine.NewEngine(log, collector.NewProcSampler(), historySize)

	var ticker engine.Ticker = eng
	if recordPath != "" {
		f, err := os.OpenFile(recordPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("open record file: %w", err)
		}
		defer f.Close()
		ticker = engine.NewRecorder(eng, f)
	}

	if jsonMode {
		snap := ticker.Tick()
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	// Live input: a stdin pipe wins; otherwise an analyzed event file
	// needs no feed; otherwise run a scripted scenario.
	stdinPiped := stdinIsPiped()
	switch {
	case stdinPiped:
		var sink *engine.EventLogWriter
		if eventsOut != "" {
			sink = engine.NewEventLogWriter(eventsOut)
		}
		go ingestStdin(log, sink)
	case eventsPath == "":
		scn := scenario.Demo()
		if scenarioPath != "" {
			loaded, err := scenario.Load(scenarioPath)
			if err != nil {
				return err
			}
			scn = loaded
		}
		feeder := scenario.NewFeeder(scn, log)
		feeder.Start()
		defer feeder.Stop()
	}

	if watchMode {
		return runWatch(ticker, interval, watchCount)
	}
	return runTUI(ticker, interval)
}

// runTUI starts the fullscreen dashboard. When stdin carries the event
// stream, keyboard input comes from /dev/tty instead.
func runTUI(ticker engine.Ticker, interval time.Duration) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if stdinIsPiped() {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			// No terminal to read keys from: degrade to watch mode.
			return runWatch(ticker, interval, 0)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}

	p := tea.NewProgram(ui.NewModel(ticker, interval), opts...)
	_, err := p.Run()
	return err
}

// stdinIsPiped reports whether stdin is a pipe or file, not a terminal.
func stdinIsPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// ingestStdin appends JSONL events from stdin to the log, optionally
// mirroring them to a persistent sink. Malformed lines are dropped.
func ingestStdin(log *model.EventLog, sink *engine.EventLogWriter) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		var e model.Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		if e.Timestamp.IsZero() {
			e.Timestamp = time.Now()
		}
		log.Append(e)
		if sink != nil {
			_ = sink.Write(e)
		}
	}
}
