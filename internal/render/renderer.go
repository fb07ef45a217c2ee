package render

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sgoral/voe/internal/vote"
)

const (
	// TieLabel is rendered when the two highest counts are equal
	TieLabel = "Tied"

	// NoVotesLabel is rendered when no candidate has any presence yet
	NoVotesLabel = "No votes yet"

	// UnknownEditorLabel stands in for a vote whose editor id is not
	// in the directory
	UnknownEditorLabel = "unknown"

	// RecentWindow is the number of votes shown in the recent list
	RecentWindow = 10

	// utcLayout matches JavaScript's Date.toUTCString output
	utcLayout = "Mon, 02 Jan 2006 15:04:05 GMT"
)

// DataUnavailableError wraps a network or decode failure on one of
// the statistics endpoints
type DataUnavailableError struct {
	Resource string
	Err      error
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Resource, e.Err)
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}

// Fetcher supplies the three statistics resources
type Fetcher interface {
	Editors(ctx context.Context) (vote.Directory, error)
	Stats(ctx context.Context) (vote.Stats, error)
	Votes(ctx context.Context, from int) (vote.RecordList, error)
}

// TextSink is an output port for a single rendered region. editorKey
// is a presentation hook carrying the editor identifier, empty when
// the text is not attributable to one editor.
type TextSink interface {
	SetText(text, editorKey string)
}

// ListSink is an output port for the recent votes list
type ListSink interface {
	Reset()
	Append(text, editorKey string)
}

// Sinks are the injected output ports the renderer writes into
type Sinks struct {
	Winner TextSink
	First  TextSink
	Latest TextSink
	Tally  TextSink
	Recent ListSink
}

// Renderer turns the three statistics resources into rendered text.
// One Run is a single linear pass: editors and stats are fetched
// concurrently, combined, and only then are the recent votes fetched
// (the offset depends on stats.total).
type Renderer struct {
	fetcher Fetcher
	sinks   Sinks
}

// New creates a renderer writing into the given sinks
func New(fetcher Fetcher, sinks Sinks) *Renderer {
	return &Renderer{fetcher: fetcher, sinks: sinks}
}

// Run performs one full render pass. On a stage-one failure every
// summary region shows an inline error and the recent votes are not
// fetched; on a stage-two failure only the recent list shows one.
func (r *Renderer) Run(ctx context.Context) error {
	var (
		dir   vote.Directory
		stats vote.Stats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if dir, err = r.fetcher.Editors(gctx); err != nil {
			return &DataUnavailableError{Resource: "editors.json", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if stats, err = r.fetcher.Stats(gctx); err != nil {
			return &DataUnavailableError{Resource: "stats.json", Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		msg := err.Error()
		r.sinks.Winner.SetText(msg, "")
		r.sinks.First.SetText(msg, "")
		r.sinks.Latest.SetText(msg, "")
		r.sinks.Tally.SetText(msg, "")
		return err
	}

	r.renderSummary(dir, stats)

	from := stats.Total - RecentWindow
	if from < 0 {
		from = 0
	}
	records, err := r.fetcher.Votes(ctx, from)
	if err != nil {
		err = &DataUnavailableError{Resource: "votes.json", Err: err}
		r.sinks.Recent.Reset()
		r.sinks.Recent.Append(err.Error(), "")
		return err
	}

	r.renderRecent(dir, records)
	return nil
}

// renderSummary fills the winner, timestamp, and tally regions
func (r *Renderer) renderSummary(dir vote.Directory, stats vote.Stats) {
	key, tied, ok := stats.Votes.Leader()
	switch {
	case !ok:
		r.sinks.Winner.SetText(NoVotesLabel, "")
	case tied:
		r.sinks.Winner.SetText(TieLabel, "")
	default:
		r.sinks.Winner.SetText(editorName(dir, key), key)
	}

	r.sinks.First.SetText(timestampText(stats.First), "")
	r.sinks.Latest.SetText(timestampText(stats.Latest), "")
	r.sinks.Tally.SetText(TallySentence(dir, stats), "")
}

// renderRecent fills the recent votes list, most recent first
func (r *Renderer) renderRecent(dir vote.Directory, records vote.RecordList) {
	r.sinks.Recent.Reset()
	all := records.All()
	for i := len(all) - 1; i >= 0; i-- {
		sr := all[i]
		key := sr.Record.EditorKey()
		text := fmt.Sprintf("#%s for %s at %s", sr.Seq, editorName(dir, key), Timestamp(sr.Record.Voted))
		r.sinks.Recent.Append(text, key)
	}
}

// TallySentence builds the tally line: a "{count} vote(s) for {name}, "
// segment per candidate in tally order, then "{total} in total". The
// trailing comma-space before the total segment is intentional.
func TallySentence(dir vote.Directory, stats vote.Stats) string {
	var b strings.Builder
	for _, e := range stats.Votes.Entries() {
		fmt.Fprintf(&b, "%d vote(s) for %s, ", e.Count, editorName(dir, e.Key))
	}
	fmt.Fprintf(&b, "%d in total", stats.Total)
	return b.String()
}

// Timestamp renders epoch seconds (fractional allowed) as a UTC
// date-time string, using the floor of seconds*1000 as milliseconds
func Timestamp(seconds float64) string {
	ms := int64(math.Floor(seconds * 1000))
	return time.UnixMilli(ms).UTC().Format(utcLayout)
}

func timestampText(seconds *float64) string {
	if seconds == nil {
		return NoVotesLabel
	}
	return Timestamp(*seconds)
}

func editorName(dir vote.Directory, key string) string {
	if name, ok := dir.Name(key); ok {
		return name
	}
	return UnknownEditorLabel
}
