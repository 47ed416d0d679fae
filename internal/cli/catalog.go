package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/statcard/pkg/core/theme"
	"github.com/matzehuels/statcard/pkg/fonts"
)

// themesCommand lists the built-in themes.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeThemes(c.Out, theme.All())
		},
	}
}

// fontsCommand lists the built-in fonts.
func (c *CLI) fontsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List the built-in fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeFonts(c.Out, fonts.All())
		},
	}
}

func writeThemes(w io.Writer, themes []theme.Theme) error {
	rows := make([][]string, len(themes))
	for i, t := range themes {
		scheme := t.Scheme
		if !t.Conditional() {
			scheme = "any"
		}
		rows[i] = []string{t.Name, scheme, swatches(t)}
	}
	_, err := fmt.Fprintln(w, catalogTable([]string{"Theme", "Scheme", "Palette"}, rows))
	return err
}

func writeFonts(w io.Writer, fs []fonts.Font) error {
	rows := make([][]string, len(fs))
	for i, f := range fs {
		rows[i] = []string{f.Key, f.Family}
	}
	_, err := fmt.Fprintln(w, catalogTable([]string{"Key", "Family"}, rows))
	return err
}

func catalogTable(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return StyleHighlight.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		}).
		Render() + "\n" + StyleDim.Render(fmt.Sprintf(" %d entries", len(rows)))
}
