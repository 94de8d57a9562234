package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harrison/uigate/internal/config"
	"github.com/harrison/uigate/internal/filelock"
)

// starterScaffold is the example document init writes, a minimal sign-in form
// that passes the Form.Basic pattern.
const starterScaffold = `name: sign-in
settings:
  spacing_scale: [4, 8, 12, 16, 24, 32]
  min_touch_target: 44
  breakpoints:
    - {name: mobile, width: 375}
    - {name: tablet, width: 768}
    - {name: desktop, width: 1280}
root:
  kind: stack
  id: screen
  gap: 24
  children:
    - kind: text
      id: title
      label: Sign in
    - kind: form
      id: sign-in-form
      fields:
        - kind: field
          id: email
          label: Email address
        - kind: field
          id: password
          label: Password
      actions:
        - kind: button
          id: submit
          label: Sign in
          role: primary
`

// NewInitCommand creates and returns the init subcommand
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter scaffold and the default policy config",
		Long: `Create scaffold.yaml (a minimal sign-in form) in the target directory
and .uigate/config.yaml holding the default score weights, pass
criteria, and confidence threshold. Existing files are left alone
unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir, force, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}

func runInit(dir string, force bool, out io.Writer) error {
	scaffoldPath := filepath.Join(dir, "scaffold.yaml")
	if !force {
		if _, err := os.Stat(scaffoldPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", scaffoldPath)
		}
	}
	if err := filelock.LockAndWrite(scaffoldPath, []byte(starterScaffold)); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", scaffoldPath)

	configPath := filepath.Join(dir, ".uigate", config.ConfigFileName)
	if !force {
		if _, err := os.Stat(configPath); err == nil {
			fmt.Fprintf(out, "kept existing %s\n", configPath)
			return nil
		}
	}
	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := filelock.LockAndWrite(configPath, data); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", configPath)
	return nil
}
