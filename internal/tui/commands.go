package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sgoral/voe/internal/render"
)

// passTimeout bounds one full render pass, fetches included
const passTimeout = 30 * time.Second

// refreshCmd runs one render pass against in-memory sinks and hands
// the resulting snapshot to the model.
func refreshCmd(fetcher render.Fetcher) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), passTimeout)
		defer cancel()

		var snapshot Snapshot
		err := render.New(fetcher, snapshot.Sinks()).Run(ctx)
		return statsRefreshedMsg{Snapshot: snapshot, Err: err}
	}
}

// historyCmd fetches the full vote record for the history chart,
// independently of the summary render pass.
func historyCmd(fetcher render.Fetcher) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), passTimeout)
		defer cancel()

		dir, err := fetcher.Editors(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		records, err := fetcher.Votes(ctx, 0)
		return historyLoadedMsg{Directory: dir, Records: records, Err: err}
	}
}

// tickCmd schedules the next auto-refresh.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}
