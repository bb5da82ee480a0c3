// Command sievego counts primes with a segmented Sieve of Eratosthenes.
//
// This file initializes the CLI and config parsers as well as the logger.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/sievego"
	"github.com/hupe1980/sievego/blobstore"
	"github.com/hupe1980/sievego/resultstore"
)

// rootCmd represents the base command when called without any sub-commands.
var rootCmd = &cobra.Command{
	Use:   "sievego",
	Short: "Count primes in [2, N] with a segmented Sieve of Eratosthenes",
	Long: `sievego counts prime numbers using a segmented, odd-only Sieve of
Eratosthenes, sequentially or across multiple workers. The final line on
stdout is machine-parseable; diagnostics go to stderr.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Uint64("segment-width", 1<<20,
		"nominal segment width in numbers per window")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"log per-segment diagnostics to stderr")
	rootCmd.PersistentFlags().Bool("json-logs", false,
		"emit diagnostics as JSON")
	rootCmd.PersistentFlags().String("cache", "",
		"directory used as a result ledger; repeated runs are served from it")

	_ = viper.BindPFlag("segment-width", rootCmd.PersistentFlags().Lookup("segment-width"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("json-logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	_ = viper.BindPFlag("cache", rootCmd.PersistentFlags().Lookup("cache"))

	viper.SetEnvPrefix("sievego")
	viper.AutomaticEnv()
}

// newCounter builds a Counter from the persistent flags.
func newCounter(workers int) (*sievego.Counter, error) {
	var logger *sievego.Logger
	if viper.GetBool("verbose") {
		if viper.GetBool("json-logs") {
			logger = sievego.NewJSONLogger(slog.LevelDebug)
		} else {
			logger = sievego.NewTextLogger(slog.LevelDebug)
		}
	}

	return sievego.NewBuilder().
		SegmentWidth(viper.GetUint64("segment-width")).
		Workers(workers).
		Logger(logger).
		Build()
}

// newLedger returns the result ledger configured via --cache, or nil.
func newLedger() resultstore.Store {
	dir := viper.GetString("cache")
	if dir == "" {
		return nil
	}
	return resultstore.NewBlobStore(blobstore.NewLocalStore(dir), nil)
}

// parseN parses a command-line N. Negative and non-numeric values are
// invalid input.
func parseN(arg string) (uint64, error) {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid N %q: must be a base-10 integer", arg)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid N %d: must be >= 0", v)
	}
	return uint64(v), nil
}
