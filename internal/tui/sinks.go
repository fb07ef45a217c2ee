package tui

import "github.com/sgoral/voe/internal/render"

// Region is one rendered output region plus its editor style hook
type Region struct {
	Text      string
	EditorKey string
}

// Snapshot collects everything one render pass produced. It implements
// the renderer's output ports as in-memory sinks, which is also what
// makes the dashboard logic testable without a terminal.
type Snapshot struct {
	Winner Region
	First  Region
	Latest Region
	Tally  Region
	Recent []Region
}

type textSink struct {
	region *Region
}

func (s textSink) SetText(text, editorKey string) {
	s.region.Text = text
	s.region.EditorKey = editorKey
}

type listSink struct {
	items *[]Region
}

func (s listSink) Reset() {
	*s.items = (*s.items)[:0]
}

func (s listSink) Append(text, editorKey string) {
	*s.items = append(*s.items, Region{Text: text, EditorKey: editorKey})
}

// Sinks returns renderer output ports writing into this snapshot
func (s *Snapshot) Sinks() render.Sinks {
	return render.Sinks{
		Winner: textSink{&s.Winner},
		First:  textSink{&s.First},
		Latest: textSink{&s.Latest},
		Tally:  textSink{&s.Tally},
		Recent: listSink{&s.Recent},
	}
}
