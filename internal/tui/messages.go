package tui

import (
	"time"

	"github.com/sgoral/voe/internal/vote"
)

// statsRefreshedMsg carries the result of one render pass.
type statsRefreshedMsg struct {
	Snapshot Snapshot
	Err      error
}

// historyLoadedMsg carries the full vote history for the chart.
type historyLoadedMsg struct {
	Directory vote.Directory
	Records   vote.RecordList
	Err       error
}

// refreshTickMsg triggers the periodic auto-refresh.
type refreshTickMsg time.Time
