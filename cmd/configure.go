package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mfinelli/fbarcalc"
)

type configureCmd struct{}

func (*configureCmd) Name() string { return "configure" }
func (*configureCmd) Synopsis() string {
	return "interactively set the default input currency and the exchange-rate API key"
}
func (*configureCmd) Usage() string {
	return `fbarcalc configure

  Runs an interactive configuration prompt to pick the default input currency
  and store the freecurrencyapi.com API key used for USD conversion. The
  config file is rewritten in full with owner-only permissions.

Usage Examples:
# Writes to the default config file.
$ fbarcalc configure

# Writes to an explicit location.
$ fbarcalc -config ./fbarcalc.toml configure

`
}
func (c *configureCmd) SetFlags(f *flag.FlagSet) {}

func (c *configureCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}

	path, err := appConfigPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// A missing file just means first-time configuration.
	cfg, err := fbarcalc.LoadConfig(path)
	if err != nil && !errors.Is(err, fbarcalc.ErrConfigMissing) {
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

	key, err := askAPIKey(cfg.FcaAPIKey)
	if cancelled(err) {
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	cfg.Version = fbarcalc.ConfigVersion
	cfg.DefaultInputCurrency = currency.Code
	cfg.FcaAPIKey = key

	if err := fbarcalc.SaveConfig(path, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Configuration saved to %s\n", path)
	return subcommands.ExitSuccess
}
