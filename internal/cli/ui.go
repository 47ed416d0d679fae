package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/statcard/pkg/core/stats"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleHighlight marks names the user typed or will type: themes, addresses.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	// StyleDim is used for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
	// StyleValue is used for paths and values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// statusOut receives status lines. Card markup never goes here, so
// `render -o -` stays pipeable.
var statusOut io.Writer = os.Stdout

// mark is a one-character status prefix.
type mark struct {
	glyph string
	style lipgloss.Style
}

var (
	markSuccess = mark{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	markError   = mark{"✗", lipgloss.NewStyle().Foreground(colorRed)}
	markWarning = mark{"!", lipgloss.NewStyle().Foreground(colorYellow)}
	markInfo    = mark{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

func (m mark) print(msg string) {
	fmt.Fprintln(statusOut, m.style.Render(m.glyph)+" "+msg)
}

func printSuccess(format string, args ...any) { markSuccess.print(fmt.Sprintf(format, args...)) }
func printError(format string, args ...any)   { markError.print(fmt.Sprintf(format, args...)) }
func printInfo(format string, args ...any)    { markInfo.print(fmt.Sprintf(format, args...)) }

func printWarning(format string, args ...any) {
	markWarning.print(markWarning.style.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(statusOut, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path a card was written to.
func printFile(path string) {
	fmt.Fprintln(statusOut, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(statusOut, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printCardStats prints the solved count, ranking and cache status of a
// rendered card on one line, e.g. "42/3100 solved · rank #4321 · cached".
func printCardStats(p *stats.Profile, cached bool) {
	var parts []string
	if p != nil {
		if solved, total, err := p.Aggregate(); err == nil {
			parts = append(parts, fmt.Sprintf("%d/%d solved", solved, total))
		}
		if p.Ranking > 0 {
			parts = append(parts, fmt.Sprintf("rank #%d", p.Ranking))
		}
	}
	if cached {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorGreen).Render("cached"))
	} else {
		parts = append(parts, "fresh")
	}

	for i, part := range parts {
		parts[i] = StyleDim.Render(part)
	}
	fmt.Fprintln(statusOut, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}
