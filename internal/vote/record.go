package vote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Vote is a single recorded vote as stored in the database
type Vote struct {
	ID     int64     `json:"id"`
	Editor int       `json:"editor"`
	Voted  time.Time `json:"voted"`
}

// Record is a vote as it travels over /votes.json: the editor id and
// the vote time in epoch seconds
type Record struct {
	Editor int     `json:"editor"`
	Voted  float64 `json:"voted"`
}

// EditorKey returns the record's editor id as a directory lookup key
func (r Record) EditorKey() string {
	return strconv.Itoa(r.Editor)
}

// SeqRecord pairs a record with its sequence identifier (the JSON
// object key, numeric-looking, reflecting insertion order)
type SeqRecord struct {
	Seq    string
	Record Record
}

// RecordList is an ordered sequence id -> record mapping. The recent
// votes view renders records in reverse of received order, so the
// payload order has to be preserved through decoding.
type RecordList struct {
	entries []SeqRecord
}

// Append adds a record at the end of the list
func (l *RecordList) Append(seq string, rec Record) {
	l.entries = append(l.entries, SeqRecord{Seq: seq, Record: rec})
}

// All returns the records in received order
func (l RecordList) All() []SeqRecord {
	return l.entries
}

// Len returns the number of records
func (l RecordList) Len() int {
	return len(l.entries)
}

// MarshalJSON encodes the list as a JSON object in entry order
func (l RecordList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range l.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Seq)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Record)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping keys in payload order
func (l *RecordList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("vote records: %w", err)
	}

	l.entries = l.entries[:0]
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return fmt.Errorf("vote records: %w", err)
		}
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("vote record %q: %w", key, err)
		}
		l.entries = append(l.entries, SeqRecord{Seq: key, Record: rec})
	}

	return nil
}

// RangeQuery filters /votes.json results. Nil fields are unset.
type RangeQuery struct {
	From   *int64
	To     *int64
	Editor *int
}
