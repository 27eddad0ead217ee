package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outputFile     string
	outputFormat   string
	minScore       int
	showIncomplete bool
	showStats      bool
	quiet          bool
	verbose        bool
	workers        int
	profilePath    string
)

var rootCmd = &cobra.Command{
	Use:   "audio-quality-report <input.json|glob>...",
	Short: "Turn precomputed audio-signal measurements into ranked quality verdicts",
	Long: `audio-quality-report consumes the JSON measurement batches produced by
the extraction tool and classifies every record through an ordered rule
chain: spectral cutoff detection, clipping, loudness-range checks, and
completeness auditing. Each record gets a status, an explanatory note,
and a 0-100 quality score; output is ranked by score for human review.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runAnalyze(args)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "audio_quality_report.csv", "Output file for the report")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "csv", "Output format (csv|json|markdown|console)")
	rootCmd.PersistentFlags().IntVar(&minScore, "min-score", 0, "Drop records scoring below this before output")
	rootCmd.PersistentFlags().BoolVar(&showIncomplete, "show-incomplete", false, "List records with incomplete data")
	rootCmd.PersistentFlags().BoolVar(&showStats, "show-stats", false, "Print aggregate statistics")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Worker count for batch evaluation (0 = one per CPU)")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "YAML threshold profile overriding the defaults")

	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("minScore", rootCmd.PersistentFlags().Lookup("min-score"))
	viper.BindPFlag("showIncomplete", rootCmd.PersistentFlags().Lookup("show-incomplete"))
	viper.BindPFlag("showStats", rootCmd.PersistentFlags().Lookup("show-stats"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
}
