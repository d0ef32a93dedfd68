package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sheepjump/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would start with, after the search
order and the difficulty preset are applied.

Search order:
  --config <path>  ->  ~/.sheepjump/config.yaml  ->  ./configs/sheepjump.yaml  ->  built-in

Examples:
  sheepjump config
  sheepjump config --difficulty hard
  sheepjump config --defaults > ~/.sheepjump/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, preset, src, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n# difficulty: %s\n", src, preset)
	os.Stdout.Write(data)
}
