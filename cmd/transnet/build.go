package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderritik/transnet/internal/components"
	"github.com/alexanderritik/transnet/internal/ingest"
	"github.com/alexanderritik/transnet/internal/netcfg"
	"github.com/alexanderritik/transnet/internal/netlog"
	"github.com/alexanderritik/transnet/internal/report"
)

var (
	buildInput     string
	buildOutput    string
	buildThreshold float64
	buildFormat    string
	buildVerbose   bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Cluster pairwise genetic-distance data into a transmission network",
	Long:  `Reads CSV rows of (id_a, id_b, distance), keeps pairs at or below --threshold, labels connected components, and writes the canonical JSON report.`,
	Run: func(cmd *cobra.Command, args []string) {
		if buildInput == "" {
			fmt.Println("Error: --input flag is required")
			os.Exit(1)
		}

		cfg, err := netcfg.NewConfig(buildThreshold, netcfg.Format(buildFormat))
		if err != nil {
			fmt.Printf("Error: invalid configuration: %v\n", err)
			os.Exit(1)
		}

		in, err := os.Open(buildInput)
		if err != nil {
			fmt.Printf("Error opening --input: %v\n", err)
			os.Exit(1)
		}
		defer in.Close()

		logger := netlog.Discard()
		if buildVerbose {
			logger = netlog.New(os.Stderr)
		}

		source := ingest.NewCSVSource(in)
		g, stats, err := ingest.Ingest(cfg.Threshold, source, logger)
		if err != nil {
			fmt.Printf("Error ingesting %s: %v\n", buildInput, err)
			os.Exit(1)
		}

		if buildVerbose {
			logger.Info().
				Int("rows_seen", stats.RowsSeen).
				Int("rows_admitted", stats.RowsAdmitted).
				Int("rows_over_threshold", stats.RowsOverThresh).
				Int("rows_self_loop", stats.RowsSelfLoop).
				Int("rows_deduplicated", stats.RowsDeduplicated).
				Msg("ingestion complete")
		}

		sizes := components.Label(g)

		data, err := report.Render(g, sizes, cfg.Format)
		if err != nil {
			fmt.Printf("Error rendering report: %v\n", err)
			os.Exit(1)
		}

		if buildOutput == "" {
			fmt.Println(string(data))
			return
		}
		if err := os.WriteFile(buildOutput, data, 0o644); err != nil {
			fmt.Printf("Error writing --output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d nodes, %d edges, %d clusters to %s\n", g.NodeCount(), g.EdgeCount(), len(sizes), buildOutput)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildInput, "input", "", "Path to the pairwise-distance CSV file (required)")
	buildCmd.Flags().StringVar(&buildOutput, "output", "", "Path to write the JSON report (default: stdout)")
	buildCmd.Flags().Float64Var(&buildThreshold, "threshold", 0, "Maximum genetic distance admitted as an edge")
	buildCmd.Flags().StringVar(&buildFormat, "format", "plain", `Output layout: "plain" (columnar) or "object" (per-node)`)
	buildCmd.Flags().BoolVar(&buildVerbose, "verbose", false, "Log per-category row counts after ingestion")
}
