package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/brandwatch/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize brandwatch configuration",
	Long: `Initialize brandwatch configuration in your config directory.

This creates config.yaml with:
  - delay      (artificial search delay)
  - source     (demo or http)
  - endpoint   (backend URL for the http source)
  - listen     (address for 'brandwatch serve')
  - demo       (the record the demo source answers with)`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, err := writeDefaultConfig(getConfigDir(), force)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit config.yaml to change the delay or the demo record")
	fmt.Fprintln(out, "  2. Run 'brandwatch lookup <brand>' to test a lookup")
	fmt.Fprintln(out, "  3. Run 'brandwatch' to open the interactive page")

	return nil
}

// writeDefaultConfig writes the default config file into dir.
func writeDefaultConfig(dir string, force bool) (string, error) {
	path := filepath.Join(dir, config.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return "", err
	}
	return path, nil
}
