package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Header and pane styles.
var (
	// HeaderStyle renders the application title line.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true).
			Padding(0, 1)

	// FocusedPaneStyle frames the pane that currently receives input.
	FocusedPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBlue)

	// BlurredPaneStyle frames inactive panes.
	BlurredPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSurface0)

	// PaneTitleStyle renders pane titles ("Primary User", "Mirror User").
	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true).
			Padding(0, 1)

	// BlurredPaneTitleStyle renders titles of unfocused panes.
	BlurredPaneTitleStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Padding(0, 1)
)

// Result table styles.
var (
	// MissingNameStyle highlights a missing permission-set name.
	MissingNameStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true)

	// DescriptionStyle renders the looked-up description next to a name.
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0)

	// AllCoveredStyle renders the "no missing permissions" row.
	AllCoveredStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	// HintStyle renders secondary informational text.
	HintStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)
)

// Status bar styles.
var (
	// StatusBarStyle is the full-width bottom bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights key names inside the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorBlue).
				Padding(0, 1).
				Bold(true)
)

// Help overlay styles.
var (
	// HelpBoxStyle frames the help overlay.
	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMauve).
			Padding(1, 2)

	// HelpKeyStyle renders key names in the help overlay.
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)
)
