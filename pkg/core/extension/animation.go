package extension

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/statcard/pkg/core/layout"
	"github.com/matzehuels/statcard/pkg/core/stats"
)

const fadeIn = "@keyframes fade_in{from{opacity:0}to{opacity:1}}"

// fadeOrder lists the elements in the order they fade in.
var fadeOrder = []string{
	"#icon",
	"#username",
	"#ranking",
	"#total-solved-bg",
	"#total-solved-ring",
	"#total-solved-text",
	"#easy-solved-type",
	"#easy-solved-count",
	"#easy-solved-bg",
	"#easy-solved-progress",
	"#medium-solved-type",
	"#medium-solved-count",
	"#medium-solved-bg",
	"#medium-solved-progress",
	"#hard-solved-type",
	"#hard-solved-count",
	"#hard-solved-bg",
	"#hard-solved-progress",
}

// Animation fades the card in element by element and sweeps the total-solved
// ring from zero to its final length. Speed scales every duration and delay;
// values <= 0 mean 1.
type Animation struct {
	Speed float64
}

func (a Animation) speed() float64 {
	if a.Speed <= 0 {
		return 1
	}
	return a.Speed
}

// Name implements Extension.
func (a Animation) Name() string {
	if s := a.speed(); s != 1 {
		return "animation:" + seconds(s)
	}
	return "animation"
}

// Extend implements Extension.
func (a Animation) Extend(_ context.Context, p *stats.Profile, sink *Sink) error {
	solved, total, err := p.Aggregate()
	if err != nil {
		return err
	}
	speed := a.speed()

	var sb strings.Builder
	sb.WriteString(fadeIn)
	for i, sel := range fadeOrder {
		sb.WriteString(sel)
		sb.WriteString("{opacity:0;animation:fade_in ")
		sb.WriteString(seconds(0.3 / speed))
		sb.WriteString("s ease ")
		sb.WriteString(seconds(0.1 * float64(i) / speed))
		sb.WriteString("s 1 forwards}")
	}

	arc := layout.RingCircumference * stats.Ratio(solved, total)
	sb.WriteString("@keyframes circle{0%{opacity:0;stroke-dasharray:0 1000}50%{opacity:1}100%{opacity:1;stroke-dasharray:")
	sb.WriteString(layout.Dash(arc))
	sb.WriteString("}}#total-solved-ring{animation:circle ")
	sb.WriteString(seconds(1.2 / speed))
	sb.WriteString("s ease ")
	sb.WriteString(seconds(0.7 / speed))
	sb.WriteString("s 1 forwards}")

	sink.AddStyle(sb.String())
	return nil
}

// seconds formats a timing rounded to milliseconds.
func seconds(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
