package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/curriculo-builder/internal/ingestion"
	"github.com/jonathan/curriculo-builder/internal/parsing"
)

var parseOut string

var parseCmd = &cobra.Command{
	Use:   "parse <document>",
	Short: "Extract structured resume data from a PDF or Word file",
	Long:  `Parse a resume document and print the extracted structured data as JSON. Extraction is heuristic: review the output before rendering.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", "Write JSON to a file instead of stdout")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	lines, err := ingestion.Read(data, "")
	if err != nil {
		return err
	}

	resume, err := parsing.Extract(lines)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	encoded = append(encoded, '\n')

	if parseOut == "" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	return os.WriteFile(parseOut, encoded, 0644)
}
