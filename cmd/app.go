// Package cmd implements the CLI application to compute an account's
// maximum value for FBAR-style reporting.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/mfinelli/fbarcalc"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&configureCmd{}, "configuration")
	c.Register(&calcCmd{}, "calculation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the config file (defaults to <user-config-dir>/fbarcalc/config.toml)")

// appConfigPath resolves the config file location, honoring the -config flag.
func appConfigPath() (string, error) {
	return fbarcalc.ConfigPath(*configFile)
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		fmt.Print(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
