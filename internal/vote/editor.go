package vote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Editor is a named candidate that can receive votes
type Editor struct {
	ID   int
	Name string
}

// Key returns the editor's identifier as it appears in JSON object keys
func (e Editor) Key() string {
	return strconv.Itoa(e.ID)
}

// DefaultEditors is the candidate roster served by /editors.json
var DefaultEditors = []Editor{
	{ID: 1, Name: "vim"},
	{ID: 2, Name: "emacs"},
}

// Directory is an editor id -> display name mapping that preserves
// insertion order through JSON encoding and decoding. Clients iterate
// editors in exactly the order the server lists them, so an unordered
// Go map is not usable here.
type Directory struct {
	entries []Editor
}

// NewDirectory builds a directory from an ordered editor list
func NewDirectory(editors []Editor) Directory {
	d := Directory{entries: make([]Editor, len(editors))}
	copy(d.entries, editors)
	return d
}

// Editors returns the entries in directory order
func (d Directory) Editors() []Editor {
	return d.entries
}

// Len returns the number of editors in the directory
func (d Directory) Len() int {
	return len(d.entries)
}

// Name looks up a display name by its JSON object key.
// The second return is false when the key is unknown.
func (d Directory) Name(key string) (string, bool) {
	for _, e := range d.entries {
		if e.Key() == key {
			return e.Name, true
		}
	}
	return "", false
}

// Contains reports whether an editor with the given numeric id exists
func (d Directory) Contains(id int) bool {
	for _, e := range d.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// MarshalJSON encodes the directory as a JSON object in entry order
func (d Directory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key())
		if err != nil {
			return nil, err
		}
		name, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(name)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the keys in the order
// they appear in the payload
func (d *Directory) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("editor directory: %w", err)
	}

	d.entries = d.entries[:0]
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return fmt.Errorf("editor directory: %w", err)
		}
		var name string
		if err := dec.Decode(&name); err != nil {
			return fmt.Errorf("editor directory value for %q: %w", key, err)
		}
		id, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("editor directory key %q is not numeric", key)
		}
		d.entries = append(d.entries, Editor{ID: id, Name: name})
	}

	return nil
}

// expectDelim consumes the next token and checks it is the given delimiter
func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// objectKey consumes the next token and returns it as an object key
func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}
