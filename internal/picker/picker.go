// Package picker provides the interactive polling-instrument selector used
// when the show command is invoked without an argument.
package picker

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// SelectInstrument prompts for one of the dataset's polling instruments and
// returns the chosen one.
func SelectInstrument(in io.Reader, out io.Writer, instruments []string) (string, error) {
	if len(instruments) == 0 {
		return "", fmt.Errorf("no polling instruments to choose from")
	}

	options := make([]huh.Option[string], 0, len(instruments))
	for _, instrument := range instruments {
		options = append(options, huh.NewOption(instrument, instrument))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Polling instrument").
				Description("Choose an instrument to compare against the official results").
				Options(options...).
				Value(&selected),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g. tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("instrument selection failed: %w", err)
	}

	return selected, nil
}
