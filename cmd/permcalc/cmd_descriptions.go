package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/j-convey/Permission-Set-Comparator/internal/descriptions"
	"github.com/j-convey/Permission-Set-Comparator/internal/permset"
)

var descriptionsCmd = &cobra.Command{
	Use:   "descriptions [name...]",
	Short: "Inspect the reference description table",
	Long: "Shows how many reference rows loaded from the CSV. With name arguments, looks each one up\n" +
		"the way the comparison output does (case-insensitively).",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := referenceCSVPath()
		table, err := descriptions.Load(path)
		if err != nil {
			// Same degradation the comparison screen applies, but made
			// visible since inspecting the table is the whole point here.
			fmt.Printf("⚠️  %v\n", err)
			fmt.Println("Descriptions will render empty.")
			return nil
		}

		fmt.Printf("%d permission sets loaded from %s\n", table.Len(), path)

		for _, arg := range args {
			// Arguments may be raw report lines; extract the name first.
			name := arg
			if extracted, ok := permset.Extract(arg); ok {
				name = extracted
			}
			if desc := table.Lookup(name); desc != "" {
				fmt.Printf("  ✓ %s: %s\n", name, desc)
			} else {
				fmt.Printf("  ? %s: (no description)\n", name)
			}
		}
		return nil
	},
}
