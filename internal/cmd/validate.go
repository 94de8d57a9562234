package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/uigate/internal/analyzer"
	"github.com/harrison/uigate/internal/config"
	"github.com/harrison/uigate/internal/display"
	"github.com/harrison/uigate/internal/logger"
	"github.com/harrison/uigate/internal/models"
	"github.com/harrison/uigate/internal/parser"
)

// scaffoldExtensions are the file extensions collected when validating a
// directory.
var scaffoldExtensions = map[string]bool{
	".yaml": true, ".yml": true, ".md": true, ".markdown": true,
}

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	var (
		jsonOutput bool
		noColor    bool
		patterns   []string
		minScore   float64
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "validate <scaffold-file-or-directory>...",
		Short: "Analyze scaffolds and gate on the acceptance score",
		Long: `Parse and analyze scaffold files, checking:
  - Document shape (ids, kinds, slots)
  - Pattern MUST/SHOULD rules (auto-selected or via --pattern)
  - Keyboard reachability and focus order
  - Hierarchy, spacing, and responsive behavior

The acceptance gate passes only when no MUST rule failed, no critical
flow finding exists, and the weighted overall score meets the minimum.

Exit code: 0 if every scaffold passes, 1 otherwise`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := validateOptions{
				jsonOutput: jsonOutput,
				noColor:    noColor,
				patterns:   patterns,
				minScore:   minScore,
				logLevel:   logLevel,
			}
			return runValidate(args, cmd.OutOrStdout(), opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the full report as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.Flags().StringSliceVar(&patterns, "pattern", nil, "pattern name to validate (repeatable); default auto-selects from suggestions")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "override the minimum overall score")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	return cmd
}

type validateOptions struct {
	jsonOutput bool
	noColor    bool
	patterns   []string
	minScore   float64
	logLevel   string
}

func runValidate(paths []string, out io.Writer, opts validateOptions) error {
	cfg, err := config.LoadFromHome()
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	log := logger.NewConsoleLogger(os.Stderr, level)

	files, err := collectScaffoldFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no scaffold files found in %s", strings.Join(paths, ", "))
	}

	criteria := *cfg.PassCriteria
	if opts.minScore > 0 {
		criteria.MinOverallScore = opts.minScore
	}
	analyzeOpts := analyzer.Options{
		Patterns:      opts.patterns,
		Weights:       cfg.Weights,
		Criteria:      &criteria,
		HighThreshold: cfg.HighConfidenceThreshold,
	}

	useColor := colorEnabled(out, opts.noColor)
	failed := 0
	for _, file := range files {
		log.Debugf("analyzing %s", file)
		ok, err := validateOne(file, out, analyzeOpts, opts.jsonOutput, useColor)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scaffold(s) failed the acceptance gate", failed, len(files))
	}
	log.Infof("%d scaffold(s) passed", len(files))
	return nil
}

// validateOne analyzes a single file. It returns ok=false for shape failures
// and gate failures; hard errors (config, I/O) abort the whole run.
func validateOne(file string, out io.Writer, opts analyzer.Options, jsonOutput, useColor bool) (bool, error) {
	sc, issues, err := parser.ParseFile(file)
	if err != nil {
		return false, err
	}
	if sc == nil {
		display.Warning{
			Title:   fmt.Sprintf("%s failed shape validation", file),
			Files:   []string{file},
			Message: "the document never reached analysis",
		}.Display(out, useColor)
		renderShapeIssues(out, issues, jsonOutput, useColor)
		return false, nil
	}

	report, err := analyzer.Analyze(sc, opts)
	if err != nil {
		return false, err
	}

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return false, fmt.Errorf("encode report: %w", err)
		}
	} else {
		display.RenderReport(out, report, useColor)
	}
	return report.Score.Pass, nil
}

func renderShapeIssues(out io.Writer, issues []models.Issue, jsonOutput, useColor bool) {
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.Encode(issues)
		return
	}
	for _, is := range issues {
		fmt.Fprintf(out, "  %s\n", is)
	}
}

// collectScaffoldFiles expands the given paths: files pass through,
// directories contribute their scaffold files sorted by name.
func collectScaffoldFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("access %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", path, err)
		}
		var found []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if scaffoldExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
				found = append(found, filepath.Join(path, entry.Name()))
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

// colorEnabled decides whether to color output: never when disabled or
// NO_COLOR is set, otherwise only on a TTY.
func colorEnabled(w io.Writer, disable bool) bool {
	if disable || color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
