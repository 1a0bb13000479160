package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/j-convey/Permission-Set-Comparator/cmd/permcalc/tui"
	"github.com/j-convey/Permission-Set-Comparator/internal/config"
	"github.com/j-convey/Permission-Set-Comparator/internal/descriptions"
	"github.com/j-convey/Permission-Set-Comparator/internal/paths"
)

var version = "1.1.0"

var csvFlag string

var rootCmd = &cobra.Command{
	Use:   "permcalc",
	Short: "Compare permission-set assignments between two users",
	Long: "permcalc takes two pasted lists of permission-set names (a primary user's and a mirror user's),\n" +
		"cleans up the report noise, and shows which permission sets the mirror user holds that the\n" +
		"primary user lacks, with descriptions from the reference CSV.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the interactive comparison screen.
		table := descriptions.LoadOrEmpty(referenceCSVPath())
		p := tea.NewProgram(tui.NewModel(table), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("permcalc %s\n", version)
	},
}

// loadConfig reads ~/.permcalc/config.yaml, falling back to defaults when
// the file is missing or unreadable.
func loadConfig() config.Config {
	cfg, err := config.LoadFile(paths.ConfigFile())
	if err != nil {
		return config.Default()
	}
	return cfg
}

// referenceCSVPath resolves the reference CSV location: the --csv flag wins,
// then the config file, then the environment/executable-relative default.
func referenceCSVPath() string {
	if csvFlag != "" {
		return csvFlag
	}
	if cfg := loadConfig(); cfg.DescriptionsCSV != "" {
		return cfg.DescriptionsCSV
	}
	return paths.ReferenceCSV()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&csvFlag, "csv", "", "path to the permission-set reference CSV")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(descriptionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
