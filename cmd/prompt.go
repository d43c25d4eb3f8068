package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/shopspring/decimal"

	"github.com/mfinelli/fbarcalc"
)

// cancelled reports whether the user aborted an interactive prompt
// (Ctrl-C). That terminates the run cleanly, it is not an application error.
func cancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}

// selectCurrency asks the user to pick one of the supported currencies. The
// cursor starts on defaultCode's registry entry when one is configured; an
// unknown configured code is an error, not a silent fallback.
func selectCurrency(defaultCode string) (fbarcalc.Currency, error) {
	var options []string
	for _, c := range fbarcalc.Currencies() {
		options = append(options, c.Name)
	}

	prompt := &survey.Select{
		Message: "What is the default input currency?",
		Options: options,
	}
	if defaultCode != "" {
		c, err := fbarcalc.FindCurrency(defaultCode)
		if err != nil {
			return fbarcalc.Currency{}, err
		}
		prompt.Default = c.Name
	}

	var choice string
	if err := survey.AskOne(prompt, &choice); err != nil {
		return fbarcalc.Currency{}, err
	}
	return fbarcalc.FindCurrencyByName(choice)
}

// askAmount prompts for a decimal amount and re-asks until the input parses.
// When allowEmpty is set, an empty submission terminates the stream and is
// reported with ok=false.
func askAmount(message string, allowEmpty bool) (v decimal.Decimal, ok bool, err error) {
	help := "Do not use the currency symbol and the number should use dots as the decimal separator."
	if allowEmpty {
		help += " Enter an empty value to finish."
	}

	for {
		var raw string
		prompt := &survey.Input{Message: message, Help: help}
		if err := survey.AskOne(prompt, &raw); err != nil {
			return decimal.Decimal{}, false, err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			if allowEmpty {
				return decimal.Decimal{}, false, nil
			}
			fmt.Println("Please enter a valid amount.")
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Println("Please enter a valid amount.")
			continue
		}
		return v, true, nil
	}
}

// askAPIKey prompts for the provider credential. The current value is shown
// masked as a run of '*'; submitting nothing keeps it.
func askAPIKey(current string) (string, error) {
	prompt := &survey.Password{
		Message: fmt.Sprintf("API key for freecurrencyapi.com [%s]:", strings.Repeat("*", len(current))),
		Help:    "Leave empty to keep the current key.",
	}
	var entered string
	if err := survey.AskOne(prompt, &entered); err != nil {
		return "", err
	}
	return fbarcalc.MergeCredential(current, entered), nil
}
