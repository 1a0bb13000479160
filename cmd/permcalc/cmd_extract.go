package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/j-convey/Permission-Set-Comparator/internal/permset"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Normalize a pasted permission list",
	Long: "Runs the extraction pipeline over a pasted report (file argument, or stdin) and prints the\n" +
		"cleaned permission-set names, one per line, in first-seen order.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 0 || args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
		} else {
			data, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
		}

		if normalized := permset.Normalize(string(data)); normalized != "" {
			fmt.Println(normalized)
		}
		return nil
	},
}
