package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/statcard/pkg/config"
	"github.com/matzehuels/statcard/pkg/core/theme"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// swatchVars are the palette entries previewed next to each theme.
var swatchVars = []string{"--bg-0", "--text-0", "--color-0", "--color-1", "--color-2", "--color-3"}

// =============================================================================
// ThemePickerModel - Interactive theme selection
// =============================================================================

// ThemePickerModel is the bubbletea model for choosing one theme, or a light
// and a dark theme.
type ThemePickerModel struct {
	Themes    []theme.Theme
	Cursor    int
	Chosen    []int // indexes into Themes, in selection order
	Done      bool
	Cancelled bool
}

// NewThemePickerModel creates a picker over themes.
func NewThemePickerModel(themes []theme.Theme) ThemePickerModel {
	return ThemePickerModel{Themes: themes}
}

func (m ThemePickerModel) Init() tea.Cmd {
	return nil
}

func (m ThemePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.Cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Themes)-1 {
			m.Cursor++
		}
	case " ":
		m.toggle(m.Cursor)
	case "enter":
		if len(m.Themes) == 0 {
			return m, nil
		}
		if len(m.Chosen) == 0 {
			m.Chosen = []int{m.Cursor}
		}
		m.Done = true
		return m, tea.Quit
	}
	return m, nil
}

// toggle adds or removes i. Choosing a third theme drops the oldest choice.
func (m *ThemePickerModel) toggle(i int) {
	if pos := slices.Index(m.Chosen, i); pos >= 0 {
		m.Chosen = slices.Delete(slices.Clone(m.Chosen), pos, pos+1)
		return
	}
	chosen := append(slices.Clone(m.Chosen), i)
	if len(chosen) > config.MaxThemes {
		chosen = chosen[len(chosen)-config.MaxThemes:]
	}
	m.Chosen = chosen
}

// Selected returns the chosen theme names, or nil when the picker was
// cancelled.
func (m ThemePickerModel) Selected() []string {
	if !m.Done {
		return nil
	}
	names := make([]string, len(m.Chosen))
	for i, idx := range m.Chosen {
		names[i] = m.Themes[idx].Name
	}
	return names
}

// role describes how the theme at i would be applied.
func (m ThemePickerModel) role(i int) string {
	pos := slices.Index(m.Chosen, i)
	switch {
	case pos < 0:
		return ""
	case len(m.Chosen) == 1:
		return "always"
	case pos == 0:
		return "light"
	default:
		return "dark"
	}
}

func (m ThemePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Theme"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle (max 2: light, dark)  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Themes))
	for i, t := range m.Themes {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = []string{cursor, t.Name, swatches(t), m.role(i)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Theme", "Palette", "Use").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 2:
				return lipgloss.NewStyle()
			case row == m.Cursor:
				return listSelectedStyle
			case m.role(row) != "":
				return lipgloss.NewStyle().Foreground(colorGreen)
			default:
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
		})

	b.WriteString(tbl.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Themes))))
	return b.String()
}

// swatches renders the theme's palette as colored blocks.
func swatches(t theme.Theme) string {
	var b strings.Builder
	for _, name := range swatchVars {
		for _, v := range t.Vars {
			if v.Name == name && strings.HasPrefix(v.Value, "#") {
				b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(v.Value)).Render("  "))
			}
		}
	}
	return b.String()
}

// pickThemes runs the picker and returns the chosen names, or nil when the
// user quit.
func pickThemes(ctx context.Context) ([]string, error) {
	p := tea.NewProgram(NewThemePickerModel(theme.All()), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("theme picker: %w", err)
	}
	return final.(ThemePickerModel).Selected(), nil
}
