package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/primerange/primerange/sieve"
	"github.com/primerange/primerange/sieve/trace"
)

var (
	// CLI flags for the run command
	engineName       string // sieve engine: sequential or parallel
	threads          int    // worker bound for the parallel engine
	printMode        string // ask, yes or no
	maxMemory        string // store size ceiling, humanized ("" = physical memory)
	traceLevel       string // none or dispatch
	logLevel         string // Log verbosity level
	defaultsFilePath string // YAML file supplying values for unset flags
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "primerange",
	Short: "Find every prime number inside an integer range",
}

// runCmd sieves the requested range using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run [left] right",
	Short: "Sieve a range and report the primes in it",
	Long: "Sieve [left, right] with the selected engine. With a single bound the range starts at 1. " +
		"Bounds given in reverse order are swapped and negative bounds are treated as 0. " +
		"Put -- before a negative bound so it is not read as a flag.",
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := applyDefaults(cmd); err != nil {
			logrus.Fatalf("Failed to load defaults: %v", err)
		}
		setupLogging()

		opts, err := buildRunOptions(args)
		if err != nil {
			logrus.Fatalf("Invalid arguments: %v", err)
		}
		prompter := NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		if err := executeRun(opts, prompter, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Sieve failed: %v", err)
		}
	},
}

// setupLogging applies --log to the global logger.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runOptions is everything executeRun needs, already validated.
type runOptions struct {
	Left, Right int64
	Config      sieve.Config
	Print       string
}

func buildRunOptions(args []string) (runOptions, error) {
	left, right, err := parseRange(args)
	if err != nil {
		return runOptions{}, err
	}
	kind, err := sieve.ParseKind(engineName)
	if err != nil {
		return runOptions{}, err
	}
	cfg := sieve.Config{Engine: kind, Threads: threads}
	if err := cfg.Validate(); err != nil {
		return runOptions{}, err
	}
	if maxMemory != "" {
		if cfg.MaxMemory, err = humanize.ParseBytes(maxMemory); err != nil {
			return runOptions{}, fmt.Errorf("--max-memory: %w", err)
		}
	}
	if !trace.IsValidTraceLevel(traceLevel) {
		return runOptions{}, fmt.Errorf("unknown trace level %q", traceLevel)
	}
	if trace.TraceLevel(traceLevel) == trace.TraceLevelDispatch {
		cfg.Trace = trace.NewDispatchTrace()
	}
	if !validPrintModes[printMode] {
		return runOptions{}, fmt.Errorf("unknown print mode %q (want ask, yes or no)", printMode)
	}
	return runOptions{Left: left, Right: right, Config: cfg, Print: printMode}, nil
}

// executeRun sieves, reports metrics and optionally lists the primes.
func executeRun(opts runOptions, prompter Prompter, out io.Writer) error {
	lo, hi := sieve.NormalizeRange(opts.Left, opts.Right)
	logrus.Infof("Left bound == %d, right bound == %d", lo, hi)

	startTime := time.Now()
	store, err := sieve.Run(hi, opts.Config)
	if err != nil {
		return err
	}
	elapsed := time.Since(startTime)

	sieve.NewRunMetrics(opts.Config, store, lo, hi, elapsed).Print(out)
	if opts.Config.Trace != nil {
		s := trace.Summarize(opts.Config.Trace)
		logrus.Infof("Dispatch trace: %d seed tasks, %d sweep tasks, largest base prime %d",
			s.SeedTasks, s.SweepTasks, s.LargestPrime)
	}

	show, err := shouldPrint(opts.Print, prompter)
	if errors.Is(err, ErrInvalidAnswer) {
		logrus.Warnf("Not printing primes: %v", err)
		return nil
	}
	if err != nil {
		return err
	}
	if show {
		return writePrimes(out, sieve.Primes(store, int64(lo), int64(hi)))
	}
	return nil
}

// writePrimes lists primes comma-separated on one line.
func writePrimes(out io.Writer, primes iter.Seq[uint64]) error {
	writer := bufio.NewWriter(out)
	first := true
	for p := range primes {
		if !first {
			if _, err := writer.WriteString(", "); err != nil {
				return err
			}
		}
		first = false
		if _, err := fmt.Fprint(writer, p); err != nil {
			return err
		}
	}
	if err := writer.WriteByte('\n'); err != nil {
		return err
	}
	return writer.Flush()
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerRunFlags attaches the run flags to cmd.
func registerRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&engineName, "engine", string(sieve.KindSequential), "Sieve engine (sequential, parallel)")
	cmd.Flags().IntVar(&threads, "threads", 8, "Worker bound for the parallel engine (1-16)")
	cmd.Flags().StringVar(&printMode, "print", printAsk, "Whether to list the primes found (ask, yes, no)")
	cmd.Flags().StringVar(&maxMemory, "max-memory", "", "Largest store to allocate, e.g. \"2 GiB\" (default: physical memory)")
	cmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Worker dispatch tracing (none, dispatch)")
	cmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().StringVar(&defaultsFilePath, "defaults", "defaults.yaml", "Path to a YAML file with default flag values")
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(runCmd)

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
