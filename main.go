package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"clawcost/claw"
)

// version is reported by the MCP server.
const version = "0.1.0"

// Command names.
const (
	cmdSolve = "solve"
	cmdServe = "serve"
	cmdHelp  = "help"
)

// errMalformedInput is returned under --strict when a block fails to parse.
var errMalformedInput = errors.New("malformed input")

func main() {
	_ = godotenv.Load()
	log := newLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, log, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.err(err.Error())
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stdout)
		return nil
	}

	switch args[0] {
	case cmdHelp, "-h", "--help":
		printUsage(stdout)
		return nil
	case cmdSolve:
		return runSolve(ctx, log, args[1:], stdin, stdout)
	case cmdServe:
		fs := flag.NewFlagSet(cmdServe, flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		configPath := fs.String("config", "", "config path")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		cfg, err := loadConfig(resolveConfigPath(*configPath))
		if err != nil {
			return err
		}
		return runServe(ctx, log, cfg)
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "clawcost: claw machine token calculator")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  clawcost solve [--config PATH] [--input PATH|-] [--fetch] [--large] [--adjust N] [--strict] [--verbose]")
	_, _ = fmt.Fprintln(w, "  clawcost serve [--config PATH]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Options:")
	_, _ = fmt.Fprintln(w, "  --config  Path to config.json (default: $CLAWCOST_CONFIG or config.json)")
	_, _ = fmt.Fprintln(w, "  --input   Puzzle input file, - for stdin (default: config input or -)")
	_, _ = fmt.Fprintln(w, "  --fetch   Download the puzzle input using the configured session")
	_, _ = fmt.Fprintln(w, "  --large   Move every prize by the configured prize_adjustment")
	_, _ = fmt.Fprintln(w, "  --adjust  Move every prize by N (overrides --large)")
	_, _ = fmt.Fprintln(w, "  --strict  Fail if any block cannot be parsed")
	_, _ = fmt.Fprintln(w, "  --verbose Log press counts for every machine")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Environment:")
	_, _ = fmt.Fprintln(w, "  CLAWCOST_CONFIG  Config file path")
	_, _ = fmt.Fprintln(w, "  AOC_SESSION      Session cookie for --fetch")
	_, _ = fmt.Fprintln(w, "  NO_COLOR         Disable colored output")
}

// solveFlags holds parsed solve options.
type solveFlags struct {
	configPath string
	input      string
	fetch      bool
	large      bool
	adjust     int64
	strict     bool
	verbose    bool
}

func parseSolveFlags(args []string) (solveFlags, error) {
	fs := flag.NewFlagSet(cmdSolve, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var f solveFlags
	fs.StringVar(&f.configPath, "config", "", "config path")
	fs.StringVar(&f.input, "input", "", "input path, - for stdin")
	fs.BoolVar(&f.fetch, "fetch", false, "download input")
	fs.BoolVar(&f.large, "large", false, "apply the configured prize adjustment")
	fs.Int64Var(&f.adjust, "adjust", 0, "custom prize adjustment")
	fs.BoolVar(&f.strict, "strict", false, "fail on malformed blocks")
	fs.BoolVar(&f.verbose, "verbose", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return solveFlags{}, err
	}
	if fs.NArg() > 0 {
		return solveFlags{}, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	if f.adjust < 0 {
		return solveFlags{}, fmt.Errorf("--adjust must be >= 0")
	}
	if f.fetch && f.input != "" {
		return solveFlags{}, fmt.Errorf("--fetch and --input are mutually exclusive")
	}
	return f, nil
}

// adjustment returns the prize shift selected by flags and config.
func (f solveFlags) adjustment(cfg appConfig) int64 {
	if f.adjust > 0 {
		return f.adjust
	}
	if f.large {
		return cfg.PrizeAdjustment
	}
	return 0
}

func runSolve(ctx context.Context, log *logger, args []string, stdin io.Reader, stdout io.Writer) error {
	f, err := parseSolveFlags(args)
	if err != nil {
		return err
	}
	log.setVerbose(f.verbose)

	cfg, err := loadConfig(resolveConfigPath(f.configPath))
	if err != nil {
		return err
	}
	if f.input != "" {
		cfg.Input = f.input
	}
	strict := f.strict || cfg.Strict

	input, err := readInput(ctx, log, cfg, f.fetch, stdin)
	if err != nil {
		return err
	}

	adj := f.adjustment(cfg)
	log.infof("solving: adjustment=%d strict=%v", adj, strict)
	s := claw.Process(input, claw.WithPrizeAdjustment(adj))

	for _, be := range s.Skipped {
		log.warnf("skipping %s", be.Error())
	}
	for _, r := range s.Results {
		if r.Solved {
			log.debugf("machine %d: A=%d B=%d cost=%d", r.Index+1, r.Presses.A, r.Presses.B, r.Presses.Cost())
		} else {
			log.debugf("machine %d: no solution", r.Index+1)
		}
	}
	if strict && len(s.Skipped) > 0 {
		return fmt.Errorf("%w: %d block(s) failed to parse", errMalformedInput, len(s.Skipped))
	}
	if !s.Any() {
		log.warnf("no machine produced a cost: machines=%d skipped=%d", s.Machines, len(s.Skipped))
	} else {
		log.okf("done: machines=%d solved=%d skipped=%d", s.Machines, s.Solved, len(s.Skipped))
	}

	_, err = fmt.Fprintln(stdout, s.Total)
	return err
}

// readInput loads puzzle text from the network, stdin or a file.
func readInput(ctx context.Context, log *logger, cfg appConfig, fetch bool, stdin io.Reader) (string, error) {
	if fetch {
		c, err := newInputClient(cfg.Fetch)
		if err != nil {
			return "", err
		}
		log.infof("fetching input: %s%s", cfg.Fetch.BaseURL, cfg.Fetch.Path)
		text, err := c.fetch(ctx)
		if err != nil {
			if isAuthError(err) {
				return "", fmt.Errorf("session rejected, refresh fetch.session: %w", err)
			}
			return "", err
		}
		return text, nil
	}

	if cfg.Input == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(cfg.Input)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}
