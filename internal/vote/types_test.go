package vote

import (
	"encoding/json"
	"testing"
)

func TestDirectory_PreservesPayloadOrder(t *testing.T) {
	// Keys deliberately not in lexical order
	payload := `{"2":"emacs","10":"ed","1":"vim"}`

	var dir Directory
	if err := json.Unmarshal([]byte(payload), &dir); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	want := []Editor{{ID: 2, Name: "emacs"}, {ID: 10, Name: "ed"}, {ID: 1, Name: "vim"}}
	got := dir.Editors()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	// Round trip keeps the same order
	out, err := json.Marshal(dir)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != payload {
		t.Errorf("expected %s, got %s", payload, out)
	}
}

func TestDirectory_Name(t *testing.T) {
	dir := NewDirectory(DefaultEditors)

	name, ok := dir.Name("1")
	if !ok || name != "vim" {
		t.Errorf("expected vim, got %q (ok=%v)", name, ok)
	}

	if _, ok := dir.Name("99"); ok {
		t.Error("expected lookup miss for unknown key")
	}
}

func TestDirectory_RejectsNonNumericKey(t *testing.T) {
	var dir Directory
	if err := json.Unmarshal([]byte(`{"vim":"vim"}`), &dir); err == nil {
		t.Error("expected error for non-numeric key")
	}
}

func TestTally_PreservesPayloadOrder(t *testing.T) {
	payload := `{"2":7,"1":3}`

	var tally Tally
	if err := json.Unmarshal([]byte(payload), &tally); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	entries := tally.Entries()
	if len(entries) != 2 || entries[0].Key != "2" || entries[1].Key != "1" {
		t.Fatalf("payload order not preserved: %+v", entries)
	}

	out, err := json.Marshal(tally)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != payload {
		t.Errorf("expected %s, got %s", payload, out)
	}
}

func TestTally_Leader(t *testing.T) {
	tests := []struct {
		name     string
		entries  []TallyEntry
		wantKey  string
		wantTied bool
		wantOK   bool
	}{
		{
			name:   "no candidates",
			wantOK: false,
		},
		{
			name:    "single candidate is never a tie",
			entries: []TallyEntry{{Key: "1", Count: 3}},
			wantKey: "1",
			wantOK:  true,
		},
		{
			name:    "single candidate with zero votes",
			entries: []TallyEntry{{Key: "1", Count: 0}},
			wantKey: "1",
			wantOK:  true,
		},
		{
			name:    "clear winner",
			entries: []TallyEntry{{Key: "1", Count: 5}, {Key: "2", Count: 2}},
			wantKey: "1",
			wantOK:  true,
		},
		{
			name:    "winner is not the first entry",
			entries: []TallyEntry{{Key: "1", Count: 2}, {Key: "2", Count: 9}},
			wantKey: "2",
			wantOK:  true,
		},
		{
			name:     "top two equal",
			entries:  []TallyEntry{{Key: "1", Count: 3}, {Key: "2", Count: 3}},
			wantTied: true,
			wantOK:   true,
		},
		{
			name:     "tie among three with a trailing candidate",
			entries:  []TallyEntry{{Key: "1", Count: 4}, {Key: "2", Count: 4}, {Key: "3", Count: 1}},
			wantTied: true,
			wantOK:   true,
		},
		{
			name:    "maximum occurs once among three",
			entries: []TallyEntry{{Key: "1", Count: 2}, {Key: "2", Count: 6}, {Key: "3", Count: 2}},
			wantKey: "2",
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, tied, ok := NewTally(tt.entries).Leader()
			if ok != tt.wantOK {
				t.Fatalf("ok: expected %v, got %v", tt.wantOK, ok)
			}
			if tied != tt.wantTied {
				t.Errorf("tied: expected %v, got %v", tt.wantTied, tied)
			}
			if key != tt.wantKey {
				t.Errorf("key: expected %q, got %q", tt.wantKey, key)
			}
		})
	}
}

func TestRecordList_PreservesPayloadOrder(t *testing.T) {
	payload := `{"3":{"editor":1,"voted":100},"4":{"editor":2,"voted":200}}`

	var list RecordList
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	all := list.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].Seq != "3" || all[1].Seq != "4" {
		t.Errorf("payload order not preserved: %+v", all)
	}
	if all[0].Record.Editor != 1 || all[0].Record.Voted != 100 {
		t.Errorf("unexpected first record: %+v", all[0].Record)
	}
	if all[0].Record.EditorKey() != "1" {
		t.Errorf("expected editor key 1, got %q", all[0].Record.EditorKey())
	}
}

func TestStats_DecodesNullTimestamps(t *testing.T) {
	payload := `{"total":0,"votes":{"1":0,"2":0},"first":null,"latest":null}`

	var stats Stats
	if err := json.Unmarshal([]byte(payload), &stats); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if stats.First != nil || stats.Latest != nil {
		t.Error("expected nil first/latest for an empty vote table")
	}
	if stats.Votes.Len() != 2 {
		t.Errorf("expected zero-filled tally with 2 entries, got %d", stats.Votes.Len())
	}
}
