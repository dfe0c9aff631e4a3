package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/irctrakz/netwatch/pkg/config"
	"github.com/irctrakz/netwatch/pkg/core"
	"github.com/irctrakz/netwatch/pkg/graph"
	"github.com/irctrakz/netwatch/pkg/logging"
	"github.com/irctrakz/netwatch/pkg/monitor"
	"github.com/irctrakz/netwatch/pkg/source"
	"github.com/irctrakz/netwatch/pkg/trend"
	"github.com/irctrakz/netwatch/pkg/ui"
)

func main() {
	os.Exit(run())
}

// run keeps the exit-code contract in one place: 0 on clean interrupt, 1 on
// any startup failure before the tick loop begins.
func run() int {
	var (
		configPath = flag.String("config", "", "path to a yaml/json config file")
		selectFlag = flag.String("select", "", "interface selection: 0 for all, or comma-separated 1-based indices (prompts when omitted)")
		interval   = flag.Duration("interval", 0, "tick interval, e.g. 1s (overrides config)")
		plain      = flag.Bool("plain", false, "plain redrawn output instead of the full-screen UI")
	)
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		if err := config.LoadFromFile(*configPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "netwatch: %v\n", err)
			return 1
		}
	}
	config.LoadFromEnv(cfg)
	if *interval > 0 {
		cfg.Monitor.Interval = config.Duration(*interval)
		if time.Duration(cfg.Monitor.SampleTimeout) > *interval {
			cfg.Monitor.SampleTimeout = config.Duration(*interval / 2)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "netwatch: config: %v\n", err)
		return 1
	}
	if err := cfg.ApplyLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "netwatch: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src := source.NewHost()
	names, err := src.Interfaces(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "netwatch: %v\n", err)
		return 1
	}
	if len(names) == 0 {
		fmt.Fprintf(os.Stderr, "netwatch: %v\n", core.ErrNoInterfaces)
		return 1
	}

	input := *selectFlag
	if input == "" {
		if !isTerminal(os.Stdin) {
			// Non-interactive runs monitor everything.
			input = "0"
		} else {
			input, err = promptSelection(names)
			if err != nil {
				fmt.Fprintf(os.Stderr, "netwatch: %v\n", err)
				return 1
			}
		}
	}
	indices, err := monitor.ParseSelection(input, len(names))
	if err != nil {
		fmt.Fprintf(os.Stderr, "netwatch: %v\n", err)
		return 1
	}
	selected := monitor.Pick(names, indices)
	logging.Infof("monitoring %d interface(s): %s", len(selected), joinNames(selected))

	state := monitor.NewState(selected, cfg.Monitor.HistorySize,
		trend.New(cfg.Monitor.TrendWindow, cfg.Monitor.TrendTolerance))
	renderer := graph.New(cfg.Monitor.GraphWidth, cfg.Monitor.GraphHeight)

	var presenter monitor.Presenter
	if *plain || !isTerminal(os.Stdout) {
		presenter = ui.NewPlain(os.Stdout, isTerminal(os.Stdout))
	} else {
		term, err := ui.NewTerm(stop)
		if err != nil {
			logging.Warnf("full-screen UI unavailable, falling back to plain output: %v", err)
			presenter = ui.NewPlain(os.Stdout, true)
		} else {
			presenter = term
			if cfg.Logging.File == "" {
				// The full-screen presenter owns the terminal; without a
				// log file, log lines would corrupt the display.
				logging.SetOutput(io.Discard)
			}
		}
	}
	defer presenter.Close()

	dash := monitor.New(src, state, renderer, presenter, monitor.Options{
		Interval:      time.Duration(cfg.Monitor.Interval),
		SampleTimeout: time.Duration(cfg.Monitor.SampleTimeout),
	})
	if err := dash.Run(ctx); err != nil {
		logging.Errorf("monitor stopped: %v", err)
		return 1
	}
	return 0
}

// promptSelection lists the discovered interfaces and reads one selection
// line from stdin.
func promptSelection(names []core.InterfaceName) (string, error) {
	rule := strings.Repeat("=", 60)
	fmt.Println(rule)
	fmt.Println("AVAILABLE NETWORK INTERFACES")
	fmt.Println(rule)
	for i, name := range names {
		fmt.Printf("%d. %s\n", i+1, name)
	}
	fmt.Println(rule)
	fmt.Println("0 - monitor ALL interfaces")
	fmt.Println("1,2,3 - monitor specific interfaces (comma-separated)")
	fmt.Print("\nEnter your selection: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no selection provided")
	}
	return scanner.Text(), nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func joinNames(names []core.InterfaceName) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = string(name)
	}
	return strings.Join(parts, ", ")
}
