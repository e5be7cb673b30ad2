package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/alexanderritik/transnet/internal/annotate"
)

var (
	annotateNetwork    string
	annotateAttributes string
	annotateSchema     string
	annotateOutput     string
	annotateIDField    string
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Attach per-patient attributes to a rendered network report",
	Long:  `Reads a network JSON report, a JSON array of attribute records, and a JSON attribute schema, and writes the annotated report.`,
	Run: func(cmd *cobra.Command, args []string) {
		if annotateNetwork == "" || annotateAttributes == "" || annotateSchema == "" {
			fmt.Println("Error: --network, --attributes, and --schema are all required")
			os.Exit(1)
		}

		networkDoc, err := os.ReadFile(annotateNetwork)
		if err != nil {
			fmt.Printf("Error reading --network: %v\n", err)
			os.Exit(1)
		}
		attributesRaw, err := os.ReadFile(annotateAttributes)
		if err != nil {
			fmt.Printf("Error reading --attributes: %v\n", err)
			os.Exit(1)
		}
		schemaRaw, err := os.ReadFile(annotateSchema)
		if err != nil {
			fmt.Printf("Error reading --schema: %v\n", err)
			os.Exit(1)
		}

		var attributes []map[string]interface{}
		if err := json.Unmarshal(attributesRaw, &attributes); err != nil {
			fmt.Printf("Error parsing --attributes: %v\n", err)
			os.Exit(1)
		}
		var schema map[string]interface{}
		if err := json.Unmarshal(schemaRaw, &schema); err != nil {
			fmt.Printf("Error parsing --schema: %v\n", err)
			os.Exit(1)
		}

		out, err := annotate.Annotate(networkDoc, attributes, schema, annotate.Options{IDField: annotateIDField})
		if err != nil {
			fmt.Printf("Error annotating network: %v\n", err)
			os.Exit(1)
		}

		if annotateOutput == "" {
			fmt.Println(string(out))
			return
		}
		if err := os.WriteFile(annotateOutput, out, 0o644); err != nil {
			fmt.Printf("Error writing --output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote annotated report to %s\n", annotateOutput)
	},
}

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.Flags().StringVar(&annotateNetwork, "network", "", "Path to the network JSON report (required)")
	annotateCmd.Flags().StringVar(&annotateAttributes, "attributes", "", "Path to a JSON array of per-patient attribute records (required)")
	annotateCmd.Flags().StringVar(&annotateSchema, "schema", "", "Path to a JSON object describing the attribute fields (required)")
	annotateCmd.Flags().StringVar(&annotateOutput, "output", "", "Path to write the annotated report (default: stdout)")
	annotateCmd.Flags().StringVar(&annotateIDField, "id-field", annotate.DefaultIDField, "Attribute-record key holding the patient ID")
}
