// Package stats models the solved-problem statistics shown on a card.
package stats

import (
	"strings"

	"github.com/matzehuels/statcard/pkg/errors"
)

// Difficulty is a problem difficulty bucket. All is the aggregate across
// every difficulty.
type Difficulty int

const (
	All Difficulty = iota
	Easy
	Medium
	Hard
)

// Difficulties lists the per-difficulty buckets in display order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

var difficultyNames = [...]string{
	All:    "all",
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
}

// String returns the lower-case name used in element ids.
func (d Difficulty) String() string {
	if d < All || d > Hard {
		return "unknown"
	}
	return difficultyNames[d]
}

// Label returns the capitalized name used in row labels.
func (d Difficulty) Label() string {
	s := d.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseDifficulty maps a difficulty label, in any case, to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for d, name := range difficultyNames {
		if strings.EqualFold(s, name) {
			return Difficulty(d), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidDifficulty, "unknown difficulty %q", s)
}

// StatItem is one difficulty bucket of a profile.
type StatItem struct {
	Difficulty  Difficulty `json:"difficulty"`
	Solved      int        `json:"solved"`
	Total       int        `json:"total"`
	Submissions int        `json:"submissions"`
}

// Ratio returns Solved/Total, or 0 when Total is 0.
func (s StatItem) Ratio() float64 {
	return Ratio(s.Solved, s.Total)
}

// Profile is a user's public statistics.
type Profile struct {
	Username string     `json:"username"`
	RealName string     `json:"real_name,omitempty"`
	Country  string     `json:"country,omitempty"`
	Ranking  int        `json:"ranking"`
	Streak   int        `json:"streak"`
	Items    []StatItem `json:"items"`
}

// Item returns the bucket for d.
func (p *Profile) Item(d Difficulty) (StatItem, error) {
	for _, it := range p.Items {
		if it.Difficulty == d {
			return it, nil
		}
	}
	return StatItem{}, errors.New(errors.ErrCodeMissingStat, "profile %q has no %s statistics", p.Username, d)
}

// Aggregate returns the solved and total counts of the All bucket.
func (p *Profile) Aggregate() (solved, total int, err error) {
	it, err := p.Item(All)
	if err != nil {
		return 0, 0, err
	}
	return it.Solved, it.Total, nil
}

// Validate checks that the profile has a username, the All bucket and no
// repeated difficulties.
func (p *Profile) Validate() error {
	if p.Username == "" {
		return errors.New(errors.ErrCodeInvalidUsername, "profile has empty username")
	}
	seen := make(map[Difficulty]bool, len(p.Items))
	for _, it := range p.Items {
		if seen[it.Difficulty] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate %s statistics", it.Difficulty)
		}
		seen[it.Difficulty] = true
	}
	if !seen[All] {
		return errors.New(errors.ErrCodeMissingStat, "profile %q has no aggregate statistics", p.Username)
	}
	return nil
}

// Ratio returns solved/total, or 0 when total is not positive.
func Ratio(solved, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(solved) / float64(total)
}

// DefaultProfile returns the fixed profile rendered when live statistics are
// unavailable and the render is not strict.
func DefaultProfile() *Profile {
	return &Profile{
		Username: "statcard",
		Ranking:  810207,
		Streak:   50,
		Items: []StatItem{
			{Difficulty: All, Solved: 10, Total: 3100},
			{Difficulty: Easy, Solved: 8, Total: 800},
			{Difficulty: Medium, Solved: 2, Total: 1600},
			{Difficulty: Hard, Solved: 0, Total: 700},
		},
	}
}
