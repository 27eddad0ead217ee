package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Freedom18946/audio-analyzer/internal/config"
)

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Print the effective threshold profile as YAML",
	Long: `Prints the threshold values the classifier and scorer will use,
after applying any --profile override. The output is itself a valid
profile file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		t, err := cfg.Thresholds()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(t)
		if err != nil {
			return fmt.Errorf("encoding thresholds: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(thresholdsCmd)
}
