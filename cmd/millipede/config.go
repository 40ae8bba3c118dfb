package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-millipede/internal/config"
	"github.com/vovakirdan/tui-millipede/internal/games/millipede"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a new game would use as YAML: the file named by
--config (or ~/.arcade/configs/millipede.yaml, then ./configs/millipede.yaml)
layered over the built-in defaults, with --difficulty applied.

Save the output to start a custom config:
  millipede config --defaults > my-millipede.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML("millipede"))
		return err
	}

	cfg, err := millipede.LoadConfig()
	if err != nil {
		return err
	}
	out, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
