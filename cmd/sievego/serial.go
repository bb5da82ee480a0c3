package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const defaultSerialN = 1_000_000

var serialCmd = &cobra.Command{
	Use:   "serial [N]",
	Short: "Count primes in [2, N] sequentially",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSerial,
}

func init() {
	rootCmd.AddCommand(serialCmd)
}

func runSerial(cmd *cobra.Command, args []string) error {
	n := uint64(defaultSerialN)
	if len(args) == 1 {
		var err error
		if n, err = parseN(args[0]); err != nil {
			return err
		}
	}

	counter, err := newCounter(1)
	if err != nil {
		return err
	}

	start := time.Now()
	count, err := countMaybeCached(cmd.Context(), counter, n)
	if err != nil {
		return err
	}
	elapsed := time.Since(start).Seconds()

	fmt.Fprintln(cmd.OutOrStdout(), formatSerial(n, count, elapsed))
	return nil
}

func formatSerial(n, count uint64, elapsedSec float64) string {
	return fmt.Sprintf("N=%d count=%d time_sec=%.6f", n, count, elapsedSec)
}
