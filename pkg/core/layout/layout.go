// Package layout builds the fixed element tree of a stat card.
//
// Every constructor returns a fresh subtree with stable element ids. The ids
// form the contract with the theme and animation extensions, which target
// them with CSS selectors:
//
//	root, background, icon, username, username-text, ranking,
//	total-solved, total-solved-bg, total-solved-ring, total-solved-text,
//	solved, <d>-solved, <d>-solved-type, <d>-solved-count,
//	<d>-solved-bg, <d>-solved-progress   (d = easy, medium, hard)
//
// All geometry is expressed as inline CSS so that extensions can override it.
package layout

import (
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/statcard/pkg/core/item"
	"github.com/matzehuels/statcard/pkg/core/stats"
)

const (
	// RingCircumference is the circumference of the 40px total-solved ring.
	RingCircumference = 80 * math.Pi
	// RowWidth is the length of a per-difficulty progress line.
	RowWidth = 300
	// RowSpacing is the vertical distance between difficulty rows.
	RowSpacing = 40
	// DashGap is the dash-array gap that hides the rest of a ring or line.
	DashGap = "10000"
)

// ProfileURL is the public profile address the username links to.
const ProfileURL = "https://leetcode.com/%s/"

// DefaultColors is the fallback palette embedded in every card. It also hides
// the card until the generator's final rule makes it visible.
const DefaultColors = "svg{opacity:0}:root{--bg-0:#fff;--bg-1:#e5e5e5;--bg-2:#d3d3d3;--bg-3:#d3d3d3;" +
	"--text-0:#000;--text-1:#808080;--text-2:#808080;--text-3:#808080;" +
	"--color-0:#ffa116;--color-1:#5cb85c;--color-2:#f0ad4e;--color-3:#d9534f}"

// difficultyColors maps each row to its progress color variable.
var difficultyColors = map[stats.Difficulty]string{
	stats.Easy:   "var(--color-1)",
	stats.Medium: "var(--color-2)",
	stats.Hard:   "var(--color-3)",
}

// Card assembles the complete card tree for p.
func Card(width, height int, p *stats.Profile) (*item.Item, error) {
	solved, total, err := p.Aggregate()
	if err != nil {
		return nil, err
	}
	rows, err := SolvedByDifficulty(p.Items)
	if err != nil {
		return nil, err
	}

	root := Root(width, height, p.Username)
	root.PushChild(Icon())
	root.PushChild(Username(p.Username))
	root.PushChild(Ranking(p.Ranking))
	root.PushChild(TotalSolved(solved, total))
	root.PushChild(rows)
	return root, nil
}

// Root returns the <svg> element with its title, default palette and
// background rectangle.
func Root(width, height int, username string) *item.Item {
	w, h := strconv.Itoa(width), strconv.Itoa(height)
	return item.New("svg",
		item.WithAttrs(
			"id", "root",
			"width", w,
			"height", h,
			"viewBox", "0 0 "+w+" "+h,
			"version", "1.1",
			"xmlns", "http://www.w3.org/2000/svg",
			"xmlns:xlink", "http://www.w3.org/1999/xlink",
		),
		item.WithStyle("fill", "none"),
		item.WithChildren(
			item.New("title", item.WithText(username+" | LeetCode Stat Card")),
			item.New("style", item.WithAttrs("id", "default-colors"), item.WithText(DefaultColors)),
			item.New("rect",
				item.WithAttrs("id", "background"),
				item.WithStyle(
					"transform", "translate(0.5px, 0.5px)",
					"stroke", "var(--bg-2)",
					"fill", "var(--bg-0)",
					"stroke-width", "1",
					"width", px(width-1),
					"height", px(height-1),
					"rx", "4px",
				),
				item.SelfClosing(),
			),
		),
	)
}

// Icon returns the scaled brand mark.
func Icon() *item.Item {
	mark := item.New("g",
		item.WithStyle("stroke", "none", "fill", "var(--text-0)", "fill-rule", "evenodd"),
		item.WithChildren(
			item.New("path", item.WithAttrs("id", "C", "d", iconC), item.WithStyle("fill", "#FFA116", "fill-rule", "nonzero")),
			item.New("path", item.WithAttrs("id", "L", "d", iconL), item.WithStyle("fill", "#000000")),
			item.New("path", item.WithAttrs("id", "dash", "d", iconDash), item.WithStyle("fill", "#B3B3B3")),
		),
	)
	return item.New("g",
		item.WithAttrs("id", "icon"),
		item.WithStyle("transform", "translate(20px, 15px) scale(0.27)"),
		item.WithChildren(mark),
	)
}

// Username returns the profile link holding the username text.
func Username(name string) *item.Item {
	return item.New("a",
		item.WithAttrs(
			"id", "username",
			"href", fmt.Sprintf(ProfileURL, name),
			"target", "_blank",
		),
		item.WithStyle("transform", "translate(65px, 40px)"),
		item.WithChildren(item.New("text",
			item.WithAttrs("id", "username-text"),
			item.WithStyle("fill", "var(--text-0)", "font-size", "24px", "font-weight", "bold"),
			item.WithText(name),
		)),
	)
}

// Ranking returns the right-aligned "#N" text.
func Ranking(n int) *item.Item {
	return item.New("text",
		item.WithAttrs("id", "ranking"),
		item.WithStyle(
			"transform", "translate(480px, 40px)",
			"fill", "var(--text-1)",
			"font-size", "18px",
			"font-weight", "bold",
			"text-anchor", "end",
		),
		item.WithText("#"+strconv.Itoa(n)),
	)
}

// TotalSolved returns the ring group: a background circle, a progress arc
// proportional to solved/total and the centered solved count.
func TotalSolved(solved, total int) *item.Item {
	arc := RingCircumference * stats.Ratio(solved, total)
	return item.New("g",
		item.WithAttrs("id", "total-solved"),
		item.WithStyle("transform", "translate(30px, 85px)"),
		item.WithChildren(
			item.New("circle",
				item.WithAttrs("id", "total-solved-bg"),
				item.WithStyle(
					"cx", "40px",
					"cy", "40px",
					"r", "40px",
					"stroke", "var(--bg-1)",
					"stroke-width", "6px",
				),
			),
			item.New("circle",
				item.WithAttrs("id", "total-solved-ring"),
				item.WithStyle(
					"cx", "40px",
					"cy", "40px",
					"r", "40px",
					"transform", "rotate(-90deg)",
					"transform-origin", "40px 40px",
					"stroke-dasharray", Dash(arc),
					"stroke", "var(--color-0)",
					"stroke-width", "6px",
					"stroke-linecap", "round",
				),
			),
			item.New("text",
				item.WithAttrs("id", "total-solved-text"),
				item.WithStyle(
					"transform", "translate(40px, 40px)",
					"font-size", "28px",
					"alignment-baseline", "central",
					"dominant-baseline", "central",
					"text-anchor", "middle",
					"fill", "var(--text-0)",
					"font-weight", "bold",
				),
				item.WithText(strconv.Itoa(solved)),
			),
		),
	)
}

// SolvedByDifficulty returns the Easy, Medium and Hard rows. Each row
// requires the matching bucket in items.
func SolvedByDifficulty(items []stats.StatItem) (*item.Item, error) {
	p := stats.Profile{Items: items}
	group := item.New("g",
		item.WithAttrs("id", "solved"),
		item.WithStyle("transform", "translate(160px, 80px)"),
	)
	for i, d := range stats.Difficulties {
		s, err := p.Item(d)
		if err != nil {
			return nil, err
		}
		group.PushChild(row(i, s))
	}
	return group, nil
}

func row(i int, s stats.StatItem) *item.Item {
	id := s.Difficulty.String() + "-solved"
	line := func(suffix string, style ...string) *item.Item {
		return item.New("line",
			item.WithAttrs(
				"id", id+suffix,
				"x1", "0",
				"y1", "10",
				"x2", strconv.Itoa(RowWidth),
				"y2", "10",
			),
			item.WithStyle(style...),
		)
	}

	return item.New("g",
		item.WithAttrs("id", id),
		item.WithStyle("transform", "translate(0px, "+px(RowSpacing*i)+")"),
		item.WithChildren(
			item.New("text",
				item.WithAttrs("id", id+"-type"),
				item.WithStyle("fill", "var(--text-1)", "font-size", "18px", "font-weight", "bold"),
				item.WithText(s.Difficulty.Label()),
			),
			item.New("text",
				item.WithAttrs("id", id+"-count"),
				item.WithStyle(
					"transform", "translate(300px, 0px)",
					"fill", "var(--text-1)",
					"font-size", "16px",
					"font-weight", "bold",
					"text-anchor", "end",
				),
				item.WithText(strconv.Itoa(s.Solved)+" / "+strconv.Itoa(s.Total)),
			),
			line("-bg", "stroke", "var(--bg-1)", "stroke-width", "4px", "stroke-linecap", "round"),
			line("-progress",
				"stroke", difficultyColors[s.Difficulty],
				"stroke-width", "4px",
				"stroke-dasharray", Dash(RowWidth*s.Ratio()),
				"stroke-linecap", "round",
			),
		),
	)
}

// Dash formats a dash-array value showing length units followed by DashGap.
func Dash(length float64) string {
	return FormatFloat(length) + " " + DashGap
}

// FormatFloat formats v with the fewest digits that round-trip.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(n int) string {
	return strconv.Itoa(n) + "px"
}
