package statsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestEditors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/editors.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("unexpected Accept header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"1":"vim","2":"emacs"}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	dir, err := client.Editors(context.Background())
	if err != nil {
		t.Fatalf("Editors failed: %v", err)
	}

	editors := dir.Editors()
	if len(editors) != 2 || editors[0].Name != "vim" || editors[1].Name != "emacs" {
		t.Errorf("unexpected directory: %+v", editors)
	}
}

func TestStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":7,"votes":{"1":5,"2":2},"first":1700000000.5,"latest":1700003600.25}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	stats, err := client.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.Total != 7 {
		t.Errorf("expected total 7, got %d", stats.Total)
	}
	if stats.First == nil || *stats.First != 1700000000.5 {
		t.Errorf("unexpected first: %v", stats.First)
	}
	if got := stats.Votes.Sum(); got != 7 {
		t.Errorf("expected tally sum 7, got %d", got)
	}
}

func TestVotes_SendsFromParam(t *testing.T) {
	var gotFrom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFrom = r.URL.Query().Get("from")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"3":{"editor":1,"voted":100},"4":{"editor":2,"voted":200}}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	records, err := client.Votes(context.Background(), 3)
	if err != nil {
		t.Fatalf("Votes failed: %v", err)
	}

	if gotFrom != "3" {
		t.Errorf("expected from=3, got %q", gotFrom)
	}
	all := records.All()
	if len(all) != 2 || all[0].Seq != "3" || all[1].Seq != "4" {
		t.Errorf("unexpected records: %+v", all)
	}
}

func TestGetJSON_RetriesOnceOn5xx(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "temporary", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"1":"vim"}`))
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	dir, err := client.Editors(context.Background())
	if err != nil {
		t.Fatalf("Editors failed after retry: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 requests, got %d", calls.Load())
	}
	if dir.Len() != 1 {
		t.Errorf("unexpected directory size %d", dir.Len())
	}
}

func TestGetJSON_GivesUpAfterSecondFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	if _, err := client.Editors(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 2 {
		t.Errorf("expected exactly 2 requests, got %d", calls.Load())
	}
}

func TestGetJSON_RetriesAfterRequestTimeout(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			time.Sleep(300 * time.Millisecond)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"1":"vim"}`))
	}))
	defer server.Close()

	client := New(server.URL, 50*time.Millisecond)
	dir, err := client.Editors(context.Background())
	if err != nil {
		t.Fatalf("Editors failed after retrying a timed-out request: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 requests, got %d", calls.Load())
	}
	if dir.Len() != 1 {
		t.Errorf("unexpected directory size %d", dir.Len())
	}
}

func TestGetJSON_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	if _, err := client.Editors(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("a 4xx must not be retried, got %d requests", calls.Load())
	}
}

func TestGetJSON_NoRetryAfterContextCancel(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	client := New(server.URL, 5*time.Second)

	// Cancel between the first attempt and the retry window
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	if _, err := client.Editors(ctx); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("expected no retry after cancel, got %d requests", calls.Load())
	}
}
