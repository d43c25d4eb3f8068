package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mfinelli/fbarcalc"
	"github.com/mfinelli/fbarcalc/freecurrency"
	"github.com/mfinelli/fbarcalc/renderer"
)

type calcCmd struct{}

func (*calcCmd) Name() string { return "calc" }
func (*calcCmd) Synopsis() string {
	return "find the maximum account value over a series of transactions"
}
func (*calcCmd) Usage() string {
	return `fbarcalc [calc]

  Asks for a starting balance and then for transaction amounts, one per
  prompt, until an empty value is entered. Prints the highest balance the
  account reached, in its own currency and in USD.

  This is the default behavior when no subcommand is given, and it requires
  a config file: run "fbarcalc configure" first.

`
}
func (c *calcCmd) SetFlags(f *flag.FlagSet) {}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}

	path, err := appConfigPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	cfg, err := fbarcalc.LoadConfig(path)
	if errors.Is(err, fbarcalc.ErrConfigMissing) {
		fmt.Fprintln(os.Stderr, "error: the config file doesn't exist yet!")
		fmt.Fprintln(os.Stderr, "       run fbarcalc configure to create it")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	currency, err := selectCurrency(cfg.DefaultInputCurrency)
	if cancelled(err) {
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	start, _, err := askAmount("Starting value:", false)
	if cancelled(err) {
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tracker := fbarcalc.StartTracking(fbarcalc.A(start, currency.Code))
	for {
		delta, ok, err := askAmount("Next transaction:", true)
		if cancelled(err) {
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if !ok {
			break
		}
		tracker.Apply(fbarcalc.A(delta, currency.Code))
	}

	rate, err := freecurrency.USDRate(freecurrency.NewClient(), cfg.FcaAPIKey, currency.Code)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report, err := fbarcalc.NewReport(tracker.Maximum(), rate)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println()
	printMarkdown(renderer.ReportMarkdown(&report))
	return subcommands.ExitSuccess
}

// Calculate runs the default no-subcommand behavior.
func Calculate(ctx context.Context) subcommands.ExitStatus {
	c := &calcCmd{}
	return c.Execute(ctx, flag.NewFlagSet("calc", flag.ContinueOnError))
}
