package vote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// TallyEntry is one editor's vote count
type TallyEntry struct {
	Key   string
	Count int
}

// Tally is an editor id -> vote count mapping that preserves insertion
// order through JSON. The leader rule and the tally sentence both
// iterate counts in payload order, so order must survive a decode.
type Tally struct {
	entries []TallyEntry
}

// NewTally builds a tally from an ordered entry list
func NewTally(entries []TallyEntry) Tally {
	t := Tally{entries: make([]TallyEntry, len(entries))}
	copy(t.entries, entries)
	return t
}

// Entries returns the counts in tally order
func (t Tally) Entries() []TallyEntry {
	return t.entries
}

// Len returns the number of candidates in the tally
func (t Tally) Len() int {
	return len(t.entries)
}

// Sum returns the total of all counts in the tally
func (t Tally) Sum() int {
	sum := 0
	for _, e := range t.entries {
		sum += e.Count
	}
	return sum
}

// Leader returns the key of the editor holding the most votes.
// A single candidate is always the leader, never a tie. With two or
// more candidates the two highest counts are compared: if they are
// equal the result is a tie and the returned key is empty. ok is false
// when the tally has no candidates at all.
func (t Tally) Leader() (key string, tied bool, ok bool) {
	switch len(t.entries) {
	case 0:
		return "", false, false
	case 1:
		return t.entries[0].Key, false, true
	}

	counts := make([]int, len(t.entries))
	for i, e := range t.entries {
		counts[i] = e.Count
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	if counts[0] == counts[1] {
		return "", true, true
	}

	// First key in iteration order holding the maximum
	for _, e := range t.entries {
		if e.Count == counts[0] {
			return e.Key, false, true
		}
	}
	return "", false, false // unreachable
}

// MarshalJSON encodes the tally as a JSON object in entry order
func (t Tally) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", e.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping keys in payload order
func (t *Tally) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("tally: %w", err)
	}

	t.entries = t.entries[:0]
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return fmt.Errorf("tally: %w", err)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("tally count for %q: %w", key, err)
		}
		t.entries = append(t.entries, TallyEntry{Key: key, Count: count})
	}

	return nil
}

// Stats is the aggregate vote summary served by /stats.json.
// First and Latest are epoch seconds (fractional) and nil when no
// votes have been recorded yet.
type Stats struct {
	Total  int      `json:"total"`
	Votes  Tally    `json:"votes"`
	First  *float64 `json:"first"`
	Latest *float64 `json:"latest"`
}
