package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/uigate/internal/diff"
	"github.com/harrison/uigate/internal/models"
	"github.com/harrison/uigate/internal/parser"
)

// NewDiffCommand creates and returns the diff subcommand
func NewDiffCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "diff <old-scaffold> <new-scaffold>",
		Short: "Compare two scaffolds structurally",
		Long: `Compare two scaffold documents node by node, in traversal order.
Reports added and removed nodes, kind changes, and attribute changes,
each located by its tree path.

Exit code: 0 when the scaffolds are structurally identical, 1 otherwise`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], cmd.OutOrStdout(), jsonOutput)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit changes as JSON")

	return cmd
}

func runDiff(oldPath, newPath string, out io.Writer, jsonOutput bool) error {
	oldSc, err := mustParse(oldPath)
	if err != nil {
		return err
	}
	newSc, err := mustParse(newPath)
	if err != nil {
		return err
	}

	changes := diff.Compare(oldSc, newSc)

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(changes); err != nil {
			return err
		}
	} else if len(changes) == 0 {
		fmt.Fprintln(out, "scaffolds are structurally identical")
	} else {
		for _, c := range changes {
			fmt.Fprintln(out, c)
		}
	}

	if len(changes) > 0 {
		return fmt.Errorf("%d structural change(s)", len(changes))
	}
	return nil
}

func mustParse(path string) (*models.Scaffold, error) {
	sc, issues, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, fmt.Errorf("%s failed shape validation with %d issue(s)", path, len(issues))
	}
	return sc, nil
}
