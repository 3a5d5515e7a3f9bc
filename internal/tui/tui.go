// Package tui renders the device host dashboard with bubbletea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/service"
	"github.com/MKhiriev/go-polip/models"
)

var ErrNoSnapshotSource = errors.New("tui: no snapshot source")

// SnapshotSource is the running workflow job as the dashboard sees it.
type SnapshotSource interface {
	Snapshots() <-chan models.WorkflowSnapshot
	Do(fn func(service.WorkflowEngine))
}

// JournalReader lists the newest RPC journal rows of the device.
type JournalReader interface {
	RecentJournal(ctx context.Context) ([]models.RPCJournalEntry, error)
}

type TUI struct {
	source    SnapshotSource
	journal   JournalReader
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(source SnapshotSource, journal JournalReader, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if source == nil {
		return nil, ErrNoSnapshotSource
	}
	return &TUI{
		source:    source,
		journal:   journal,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newDashboardModel(ctx, t.source, t.journal, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("dashboard stopped with error")
	}
	return err
}
