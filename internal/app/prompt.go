// Where: internal/app/prompt.go
// What: Interactive selection helpers using the huh library.
// Why: Let operators pick a service without memorizing compose names.
package app

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

type selectOption struct {
	Label string
	Value string
}

// Prompter abstracts interactive selection for tests.
type Prompter interface {
	SelectValue(title string, options []selectOption) (string, error)
}

// HuhPrompter implements Prompter using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) SelectValue(title string, options []selectOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected).
		Run()
	if err != nil {
		return "", fmt.Errorf("prompt select: %w", err)
	}
	return selected, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// stdinIsTerminal is a package variable so tests can force the
// interactive path.
var stdinIsTerminal = func() bool { return isTerminal(os.Stdin) }
