package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/uigate/internal/parser"
	"github.com/harrison/uigate/internal/pattern"
)

// NewSuggestCommand creates and returns the suggest subcommand
func NewSuggestCommand() *cobra.Command {
	var (
		jsonOutput bool
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "suggest <scaffold-file>...",
		Short: "Score scaffolds against the known UX patterns",
		Long: `Estimate how strongly each scaffold's structure resembles the known
UX patterns. Scores are additive over independent structural indicators
and discretized into low/medium/high confidence bands; high-band
patterns are the candidates validate auto-selects.

Suggestion is advisory: it never fails, whatever the scaffold looks like.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(args, cmd.OutOrStdout(), jsonOutput, noColor)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit suggestions as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

func runSuggest(paths []string, out io.Writer, jsonOutput, noColor bool) error {
	files, err := collectScaffoldFiles(paths)
	if err != nil {
		return err
	}

	suggester := pattern.NewSuggester()
	useColor := colorEnabled(out, noColor)
	heading := color.New(color.Bold)
	if !useColor {
		heading.DisableColor()
	}

	type fileSuggestions struct {
		File        string               `json:"file"`
		Suggestions []pattern.Suggestion `json:"suggestions"`
	}
	var all []fileSuggestions

	for _, file := range files {
		sc, issues, err := parser.ParseFile(file)
		if err != nil {
			return err
		}
		if sc == nil {
			return fmt.Errorf("%s failed shape validation with %d issue(s)", file, len(issues))
		}
		all = append(all, fileSuggestions{File: file, Suggestions: suggester.Suggest(sc.Root)})
	}

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	}

	for _, fs := range all {
		fmt.Fprintln(out, heading.Sprint(fs.File))
		for _, sg := range fs.Suggestions {
			fmt.Fprintf(out, "  %-14s %6.1f  %-6s", sg.Pattern, sg.Score, sg.Band)
			if len(sg.Indicators) > 0 {
				fmt.Fprintf(out, "  (%d indicator(s))", len(sg.Indicators))
			}
			fmt.Fprintln(out)
		}
	}
	return nil
}
