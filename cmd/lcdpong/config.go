package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-pong/internal/config"
	"github.com/vovakirdan/lcd-pong/internal/logging"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, after the search path and
the difficulty preset are applied. Save the output to
~/.lcdpong/configs/pong.yaml or ./configs/pong.yaml to customize it.

Examples:
  lcdpong config
  lcdpong config --difficulty hard
  lcdpong config --defaults > ~/.lcdpong/configs/pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML("pong"))
		return err
	}

	cfg, err := applyGameFlags(logging.Discard())
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# difficulty: %s\n", presetName(flagDifficulty))
	_, err = out.Write(data)
	return err
}

func presetName(name string) string {
	p, _ := config.ParsePreset(name)
	return string(p)
}
