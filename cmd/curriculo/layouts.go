package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/curriculo-builder/internal/layouts"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the available resume layouts",
	Run: func(_ *cobra.Command, _ []string) {
		for _, layout := range layouts.List() {
			fmt.Printf("%-20s %s\n", layout.ID, layout.Name)
			fmt.Printf("%-20s %s\n", "", layout.Description)
			if len(layout.Tags) > 0 {
				fmt.Printf("%-20s [%s]\n", "", strings.Join(layout.Tags, ", "))
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}
