package display

import (
	"io"

	"github.com/fatih/color"
)

// Warning is a user-facing caution that is not part of the analysis report,
// e.g. a skipped file or a config fallback.
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning in yellow when useColor is set.
func (w Warning) Display(out io.Writer, useColor bool) {
	yellow := color.New(color.FgYellow)
	if !useColor {
		yellow.DisableColor()
	}

	yellow.Fprintf(out, "Warning: %s\n", w.Title)
	if w.Message != "" {
		yellow.Fprintf(out, "    %s\n", w.Message)
	}
	if len(w.Files) == 1 {
		yellow.Fprintf(out, "    Affected file: %s\n", w.Files[0])
	} else if len(w.Files) > 1 {
		yellow.Fprintln(out, "    Affected files:")
		for i, file := range w.Files {
			yellow.Fprintf(out, "      %d. %s\n", i+1, file)
		}
	}
	if w.Suggestion != "" {
		yellow.Fprintf(out, "    %s\n", w.Suggestion)
	}
}
