// frncalc is a CLI Macaulay Duration calculator for Floating Rate Notes.
//
// CLI entrypoint using the cobra command framework. Computes a single
// duration or the duration-vs-reset-period comparison from flags,
// without the HTTP service.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/warp/frn-engine/frn"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

var (
	notional   float64
	couponRate float64
	spread     float64
	resetLabel string
	startStr   string
	maturity   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frncalc",
	Short: "Macaulay Duration calculator for Floating Rate Notes",
	Long: `frncalc computes the Macaulay Duration of a Floating Rate Note from
six parameters: notional, coupon rate, reference-rate spread, reset
period, start date, and maturity date.

Rates are decimal fractions (0.05 = 5%); dates use YYYY-MM-DD.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("frncalc %s (%s)\n", version, commit)
	},
}

var durationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Compute the Macaulay Duration for one parameter set",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := buildParams()
		if err != nil {
			return err
		}

		res, err := frn.MacaulayDuration(params)
		if err != nil {
			return fmt.Errorf("cannot compute duration: %w", err)
		}

		fmt.Printf("Macaulay Duration: %.3f years\n", res.Duration)
		fmt.Printf("  periods: %d (%d payments/year)\n", res.Periods, res.PaymentsPerYear)
		fmt.Printf("  time to maturity: %.4f years\n", res.TimeToMaturity)
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the duration across all four reset periods",
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := buildParams()
		if err != nil {
			return err
		}

		for _, sp := range frn.CompareResetPeriods(params) {
			if sp.OK() {
				fmt.Printf("%-14s %8.3f years  (%d periods)\n",
					sp.Period, sp.Result.Duration, sp.Result.Periods)
			} else {
				fmt.Printf("%-14s %8s         (%v)\n", sp.Period, "-", sp.Err)
			}
		}
		return nil
	},
}

func buildParams() (frn.Parameters, error) {
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return frn.Parameters{}, fmt.Errorf("invalid --start (use YYYY-MM-DD): %w", err)
	}
	mat, err := time.Parse("2006-01-02", maturity)
	if err != nil {
		return frn.Parameters{}, fmt.Errorf("invalid --maturity (use YYYY-MM-DD): %w", err)
	}

	return frn.Parameters{
		Notional:     notional,
		CouponRate:   couponRate,
		Spread:       spread,
		ResetPeriod:  frn.ResetPeriod(resetLabel),
		StartDate:    start,
		MaturityDate: mat,
	}, nil
}

func init() {
	for _, cmd := range []*cobra.Command{durationCmd, compareCmd} {
		cmd.Flags().Float64Var(&notional, "notional", 1000, "face value of the note")
		cmd.Flags().Float64Var(&couponRate, "coupon", 0.05, "coupon rate as a decimal fraction")
		cmd.Flags().Float64Var(&spread, "spread", 0.01, "reference-rate spread as a decimal fraction")
		cmd.Flags().StringVar(&startStr, "start", "2024-01-01", "start date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&maturity, "maturity", "2030-12-31", "maturity date (YYYY-MM-DD)")
	}
	durationCmd.Flags().StringVar(&resetLabel, "reset", "Quarterly",
		"reset period: Monthly, Quarterly, Semi-Annually, Annually")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(durationCmd)
	rootCmd.AddCommand(compareCmd)
}
