package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sgoral/voe/internal/render"
	"github.com/sgoral/voe/internal/ui/components"
	"github.com/sgoral/voe/internal/vote"
)

// Model is the root Bubble Tea model for the stats dashboard
type Model struct {
	fetcher         render.Fetcher
	refreshInterval time.Duration

	width  int
	height int

	spinner      components.LoadingSpinner
	loading      bool
	haveSnapshot bool

	snapshot Snapshot
	lastErr  error

	directory  vote.Directory
	history    vote.RecordList
	historyErr error

	refreshedAt time.Time
}

// New creates the dashboard model
func New(fetcher render.Fetcher, refreshInterval time.Duration) Model {
	return Model{
		fetcher:         fetcher,
		refreshInterval: refreshInterval,
		spinner:         components.NewSpinner("Fetching vote statistics..."),
		loading:         true,
	}
}

// Init starts the first render pass and the refresh timer
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Init(),
		refreshCmd(m.fetcher),
		historyCmd(m.fetcher),
		tickCmd(m.refreshInterval),
	)
}

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, tea.Batch(
				m.spinner.Init(),
				refreshCmd(m.fetcher),
				historyCmd(m.fetcher),
			)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statsRefreshedMsg:
		m.loading = false
		m.haveSnapshot = true
		m.snapshot = msg.Snapshot
		m.lastErr = msg.Err
		m.refreshedAt = time.Now()
		return m, nil

	case historyLoadedMsg:
		if msg.Err == nil {
			m.directory = msg.Directory
			m.history = msg.Records
		}
		m.historyErr = msg.Err
		return m, nil

	case refreshTickMsg:
		m.loading = true
		return m, tea.Batch(
			m.spinner.Init(),
			refreshCmd(m.fetcher),
			historyCmd(m.fetcher),
			tickCmd(m.refreshInterval),
		)
	}

	return m, nil
}
