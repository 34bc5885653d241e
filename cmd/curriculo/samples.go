package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/curriculo-builder/internal/layouts"
	"github.com/jonathan/curriculo-builder/internal/render"
	"github.com/jonathan/curriculo-builder/internal/types"
)

var samplesDir string

var samplesCmd = &cobra.Command{
	Use:   "samples <resume.json>",
	Short: "Render a resume in every layout and format",
	Long:  `Render the given resume once per layout and format combination. Useful for previewing all four layouts side by side.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSamples,
}

func init() {
	samplesCmd.Flags().StringVarP(&samplesDir, "dir", "d", "samples", "Directory to write the rendered documents into")
	rootCmd.AddCommand(samplesCmd)
}

func runSamples(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume JSON: %w", err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	if err := os.MkdirAll(samplesDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var group errgroup.Group
	for _, layout := range layouts.List() {
		for _, format := range []types.Format{types.FormatPDF, types.FormatDOCX} {
			group.Go(func() error {
				document, err := render.Render(resume, layout, format)
				if err != nil {
					return fmt.Errorf("%s/%s: %w", layout.ID, format, err)
				}
				name := filepath.Join(samplesDir, fmt.Sprintf("curriculo-%s.%s", layout.ID, format))
				if err := os.WriteFile(name, document, 0644); err != nil {
					return fmt.Errorf("%s/%s: %w", layout.ID, format, err)
				}
				fmt.Printf("Wrote %s\n", name)
				return nil
			})
		}
	}
	return group.Wait()
}
