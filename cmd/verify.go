package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/primerange/primerange/sieve"
)

// ErrEngineMismatch is returned by verify when two engines disagree.
var ErrEngineMismatch = errors.New("engines disagree")

var (
	verifyMaxThreads int  // highest parallel thread count to cross-check
	verifyTrial      bool // also compare against trial division
)

var verifyCmd = &cobra.Command{
	Use:   "verify n",
	Short: "Cross-check the sieve engines on [0, n]",
	Long: "Run the sequential engine and the parallel engine for every thread count up to --max-threads " +
		"over [0, n] and compare their prime sets. With --trial the sequential result is also checked by trial division.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := applyDefaults(cmd); err != nil {
			logrus.Fatalf("Failed to load defaults: %v", err)
		}
		setupLogging()

		n, err := ParseBound(args[0])
		if err != nil {
			logrus.Fatalf("Invalid arguments: %v", err)
		}
		_, hi := sieve.NormalizeRange(0, n)
		if err := executeVerify(hi, verifyMaxThreads, verifyTrial, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Verification failed: %v", err)
		}
	},
}

// maxReported caps how many differing values are printed per comparison.
const maxReported = 10

func executeVerify(n uint64, maxThreads int, trial bool, out io.Writer) error {
	if maxThreads < sieve.MinThreads || maxThreads > sieve.MaxThreads {
		return fmt.Errorf("%w: --max-threads %d outside [%d, %d]",
			sieve.ErrInvalidConfiguration, maxThreads, sieve.MinThreads, sieve.MaxThreads)
	}

	startTime := time.Now()
	reference, err := sieve.Sequential(n)
	if err != nil {
		return err
	}
	want := sieve.Bitmap(reference, 0, int64(n))
	_, _ = fmt.Fprintf(out, "sequential: %d primes in [0, %d] (%s)\n",
		want.GetCardinality(), n, time.Since(startTime).Round(time.Microsecond))

	failed := false
	if trial {
		if wrong := sieve.Check(reference, 0, int64(n)); len(wrong) > 0 {
			failed = true
			_, _ = fmt.Fprintf(out, "trial division: %d mismatches, first %v\n", len(wrong), head(wrong))
		} else {
			_, _ = fmt.Fprintln(out, "trial division: ok")
		}
	}

	for t := sieve.MinThreads; t <= maxThreads; t++ {
		startTime = time.Now()
		store, err := sieve.Parallel(n, t)
		if err != nil {
			return err
		}
		diff := sieve.Difference(want, sieve.Bitmap(store, 0, int64(n)))
		elapsed := time.Since(startTime).Round(time.Microsecond)
		if len(diff) > 0 {
			failed = true
			_, _ = fmt.Fprintf(out, "parallel threads=%d: %d mismatches, first %v (%s)\n", t, len(diff), head(diff), elapsed)
			continue
		}
		_, _ = fmt.Fprintf(out, "parallel threads=%d: ok (%s)\n", t, elapsed)
	}

	if failed {
		return ErrEngineMismatch
	}
	return nil
}

func head(values []uint64) []uint64 {
	return values[:min(len(values), maxReported)]
}

func init() {
	verifyCmd.Flags().IntVar(&verifyMaxThreads, "max-threads", sieve.MaxThreads, "Highest parallel thread count to check")
	verifyCmd.Flags().BoolVar(&verifyTrial, "trial", false, "Also verify the sequential engine by trial division")
	verifyCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	verifyCmd.Flags().StringVar(&defaultsFilePath, "defaults", "defaults.yaml", "Path to a YAML file with default flag values")

	rootCmd.AddCommand(verifyCmd)
}
