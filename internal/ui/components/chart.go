// Package components provides reusable UI components for the TUI.
package components

import (
	"sort"

	"github.com/guptarohit/asciigraph"

	"github.com/sgoral/voe/internal/ui/styles"
	"github.com/sgoral/voe/internal/vote"
)

// seriesPalette mirrors the editor palette in styles, in asciigraph's
// own color space.
var seriesPalette = []asciigraph.AnsiColor{
	asciigraph.Green,
	asciigraph.Orchid,
	asciigraph.DodgerBlue,
	asciigraph.Orange,
}

// historyBuckets is the fixed horizontal resolution of the vote chart
const historyBuckets = 40

// RenderVoteHistory plots cumulative votes per editor over time from
// the full vote record, one series per editor in directory order.
func RenderVoteHistory(dir vote.Directory, records vote.RecordList, width, height int, caption string) string {
	if records.Len() == 0 {
		return styles.HelpStyle.Render("No vote history yet")
	}

	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	all := make([]vote.SeqRecord, len(records.All()))
	copy(all, records.All())
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Record.Voted < all[j].Record.Voted
	})

	first := all[0].Record.Voted
	last := all[len(all)-1].Record.Voted
	span := last - first
	if span <= 0 {
		span = 1
	}

	series := make([][]float64, dir.Len())
	colors := make([]asciigraph.AnsiColor, dir.Len())
	for i := range series {
		series[i] = make([]float64, historyBuckets)
		colors[i] = seriesPalette[i%len(seriesPalette)]
	}

	index := make(map[string]int, dir.Len())
	for i, e := range dir.Editors() {
		index[e.Key()] = i
	}

	// Bucket each vote by time, then make every series cumulative
	for _, sr := range all {
		si, ok := index[sr.Record.EditorKey()]
		if !ok {
			continue
		}
		b := int(float64(historyBuckets-1) * (sr.Record.Voted - first) / span)
		series[si][b]++
	}
	for _, s := range series {
		for b := 1; b < historyBuckets; b++ {
			s[b] += s[b-1]
		}
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
	)
}
