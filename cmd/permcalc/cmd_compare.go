package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/j-convey/Permission-Set-Comparator/cmd/permcalc/tui"
	"github.com/j-convey/Permission-Set-Comparator/internal/descriptions"
	"github.com/j-convey/Permission-Set-Comparator/internal/permset"
)

var (
	compareUserFile   string
	compareMirrorFile string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "One-shot comparison without the interactive screen",
	Long: "Reads the primary and mirror permission lists from files (use \"-\" for stdin) and prints the\n" +
		"permission sets the mirror user has that the primary user lacks. When a file flag is omitted,\n" +
		"the list is collected with an interactive prompt.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userText, err := readList(compareUserFile, "Primary user's permission sets",
			"Paste primary user's permissions here...")
		if err != nil {
			return err
		}
		mirrorText, err := readList(compareMirrorFile, "Mirror user's permission sets",
			"Paste mirror user's permissions here...")
		if err != nil {
			return err
		}

		cfg := loadConfig()
		table := descriptions.LoadOrEmpty(referenceCSVPath())
		missing := permset.Diff(userText, mirrorText)

		fmt.Print(renderComparison(missing, table, cfg.NoColor))
		return nil
	},
}

// renderComparison formats the one-shot comparison output. Styling is
// suppressed when the config sets no_color.
func renderComparison(missing []string, table descriptions.Table, noColor bool) string {
	var b strings.Builder
	if len(missing) == 0 {
		b.WriteString(styled(tui.AllCoveredStyle, "No missing permissions.", noColor) + "\n")
		b.WriteString(styled(tui.HintStyle,
			"The user already has all permission sets listed for the mirror user.", noColor) + "\n")
		return b.String()
	}

	b.WriteString("MISSING (mirror has, user needs)\n")
	for _, name := range missing {
		line := "  ✗ " + styled(tui.MissingNameStyle, name, noColor)
		if desc := table.Lookup(name); desc != "" {
			line += " — " + styled(tui.DescriptionStyle, desc, noColor)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func styled(style lipgloss.Style, text string, noColor bool) string {
	if noColor {
		return text
	}
	return style.Render(text)
}

// readList loads one permission list: from a file, from stdin ("-"), or via
// an interactive prompt when no file was given. Stdin can only serve one
// side; the prompt covers the other.
func readList(path, title, placeholder string) (string, error) {
	switch path {
	case "":
		var text string
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Title(title).
					Description("Paste the report text. Press Esc when done.").
					Placeholder(placeholder).
					Value(&text),
			),
		).Run()
		if err != nil {
			return "", err
		}
		return text, nil
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	}
}

func init() {
	compareCmd.Flags().StringVar(&compareUserFile, "user", "", "file with the primary user's pasted list (\"-\" for stdin)")
	compareCmd.Flags().StringVar(&compareMirrorFile, "mirror", "", "file with the mirror user's pasted list (\"-\" for stdin)")
}
