package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/curriculo-builder/internal/layouts"
	"github.com/jonathan/curriculo-builder/internal/render"
	"github.com/jonathan/curriculo-builder/internal/types"
)

var (
	renderLayout string
	renderFormat string
	renderOut    string
)

var renderCmd = &cobra.Command{
	Use:   "render <resume.json>",
	Short: "Render a resume JSON file into a PDF or Word document",
	RunE:  runRender,
	Args:  cobra.ExactArgs(1),
}

func init() {
	renderCmd.Flags().StringVar(&renderLayout, "layout", "moderno-azul", "Layout identifier (see 'layouts' command)")
	renderCmd.Flags().StringVar(&renderFormat, "format", "pdf", "Output format: pdf or docx")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (defaults to curriculo-<layout>.<format>)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume JSON: %w", err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	format, ok := types.ParseFormat(renderFormat)
	if !ok {
		return &render.UnsupportedFormatError{Format: renderFormat}
	}

	layout, err := layouts.Get(renderLayout)
	if err != nil {
		return err
	}

	document, err := render.Render(resume, layout, format)
	if err != nil {
		return err
	}

	out := renderOut
	if out == "" {
		out = fmt.Sprintf("curriculo-%s.%s", layout.ID, format)
	}
	if err := os.WriteFile(out, document, 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", out, len(document))
	return nil
}
