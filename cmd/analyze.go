package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Freedom18946/audio-analyzer/internal/config"
	"github.com/Freedom18946/audio-analyzer/internal/engine"
	"github.com/Freedom18946/audio-analyzer/internal/metrics"
	"github.com/Freedom18946/audio-analyzer/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input.json|glob>...",
	Short: "Score a measurement batch and write the ranked report",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	thresholds, err := cfg.Thresholds()
	if err != nil {
		return err
	}

	batch, err := metrics.Load(args)
	if err != nil {
		return err
	}
	if batch.Len() == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(os.Stderr, "Input is empty, nothing to analyze.")
		}
		return nil
	}
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Analyzing %d records...\n", batch.Len())
	}

	eng := engine.New(thresholds, cfg.Workers)
	results, stats, err := eng.Run(batch)
	if err != nil {
		return err
	}

	rep := report.Assemble(results, batch)
	if dropped := rep.FilterMinScore(cfg.MinScore); dropped > 0 && !cfg.Quiet {
		fmt.Fprintf(os.Stderr, "Filtered out %d records below score %d.\n", dropped, cfg.MinScore)
	}

	outPath := cfg.Output
	if cfg.Format == report.FormatConsole {
		outPath = ""
	}
	if err := report.Write(rep, cfg.Format, outPath); err != nil {
		return err
	}
	if outPath != "" && !cfg.Quiet {
		fmt.Fprintf(os.Stderr, "Report saved to %s\n", outPath)
	}

	if cfg.ShowIncomplete {
		report.WriteIncomplete(rep, os.Stdout)
	}
	if cfg.ShowStats {
		report.WriteSummary(rep, stats, os.Stdout)
	}
	return nil
}
