package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-polip/internal/service"
	"github.com/MKhiriev/go-polip/models"
)

const (
	statusTTL   = 2 * time.Second
	uuidColumn  = 36
	typeColumn  = 14
	timeLayout  = "15:04:05"
	noRPCsLabel = "no active rpcs"
)

type dashboardModel struct {
	ctx       context.Context
	source    SnapshotSource
	journal   JournalReader
	buildInfo models.AppBuildInfo
	copyText  func(string) error

	snap    models.WorkflowSnapshot
	hasSnap bool
	idx     int
	spinner spinner.Model
	status  string

	overlay       *errorOverlayModel
	showBuildInfo bool
	showJournal   bool
	entries       []models.RPCJournalEntry
}

func newDashboardModel(ctx context.Context, source SnapshotSource, journal JournalReader, buildInfo models.AppBuildInfo) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return dashboardModel{
		ctx:       ctx,
		source:    source,
		journal:   journal,
		buildInfo: buildInfo,
		copyText:  clipboard.WriteAll,
		spinner:   s,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForSnapshot(m.source.Snapshots()))
}

// waitForSnapshot blocks on the job channel and re-arms itself from Update.
func waitForSnapshot(ch <-chan models.WorkflowSnapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg{snap: snap}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m dashboardModel) loadJournal() tea.Cmd {
	journal, ctx := m.journal, m.ctx
	return func() tea.Msg {
		entries, err := journal.RecentJournal(ctx)
		return journalLoadedMsg{entries: entries, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snap = msg.snap
		m.hasSnap = true
		m.clampCursor()
		return m, waitForSnapshot(m.source.Snapshots())

	case spinner.TickMsg:
		if m.hasSnap {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case journalLoadedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: "journal: " + msg.err.Error()}
			m.showJournal = false
			return m, nil
		}
		m.entries = msg.entries
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(msg, keys.down):
		if m.idx < len(m.snap.RPCs)-1 {
			m.idx++
		}

	case key.Matches(msg, keys.copy):
		rpc, ok := m.selected()
		if !ok {
			m.status = "nothing to copy"
			return m, clearStatusAfter(statusTTL)
		}
		if err := m.copyText(rpc.UUID); err != nil {
			m.overlay = &errorOverlayModel{message: fmt.Sprintf("copy failed: %v", err)}
			return m, nil
		}
		m.status = "copied " + rpc.UUID
		return m, clearStatusAfter(statusTTL)

	case key.Matches(msg, keys.pushState):
		m.source.Do(func(e service.WorkflowEngine) { e.MarkStateChanged() })
		m.status = "state push scheduled"
		return m, clearStatusAfter(statusTTL)

	case key.Matches(msg, keys.pushSense):
		m.source.Do(func(e service.WorkflowEngine) { e.MarkSenseChanged() })
		m.status = "sensor push scheduled"
		return m, clearStatusAfter(statusTTL)

	case key.Matches(msg, keys.resync):
		m.source.Do(func(e service.WorkflowEngine) { e.RequestResync() })
		m.status = "resync requested"
		return m, clearStatusAfter(statusTTL)

	case key.Matches(msg, keys.journal):
		m.showJournal = !m.showJournal
		if m.showJournal && m.journal != nil {
			return m, m.loadJournal()
		}

	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m *dashboardModel) clampCursor() {
	switch n := len(m.snap.RPCs); {
	case n == 0:
		m.idx = 0
	case m.idx >= n:
		m.idx = n - 1
	}
}

func (m dashboardModel) selected() (models.RPCSnapshot, bool) {
	if m.idx < 0 || m.idx >= len(m.snap.RPCs) {
		return models.RPCSnapshot{}, false
	}
	return m.snap.RPCs[m.idx], true
}

func (m dashboardModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}
	if !m.hasSnap {
		return renderPage("POLIP DEVICE", m.spinner.View()+" waiting for the first tick", "")
	}
	if m.showJournal {
		return renderPage("RPC JOURNAL "+m.snap.Serial, m.journalView(), "tab: back")
	}
	return renderPage("POLIP DEVICE "+m.snap.Serial, m.statusView(),
		"↑/↓: select  c: copy uuid  s: push state  p: push sensors  g: resync  tab: journal  i: info")
}

func (m dashboardModel) statusView() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Counter:  %d\n", m.snap.Value)
	fmt.Fprintf(&b, "Updated:  %s\n", m.snap.At.Format(timeLayout))
	fmt.Fprintf(&b, "Flags:    state changed %s, sense changed %s, resync %s\n",
		yesNo(m.snap.Flags.StateChanged), yesNo(m.snap.Flags.SenseChanged), yesNo(m.snap.Flags.GetValue))
	if m.snap.LastError != "" {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error:    [%s] %s", m.snap.ErrorCode, m.snap.LastError)))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nRPCs %d/%d\n", len(m.snap.RPCs), m.snap.Capacity)
	if len(m.snap.RPCs) == 0 {
		b.WriteString(noRPCsLabel + "\n")
	}
	for i, rpc := range m.snap.RPCs {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-*s %-*s %s -> %s", cursor,
			uuidColumn, fitText(rpc.UUID, uuidColumn),
			typeColumn, fitText(rpc.Type, typeColumn),
			rpc.Status, rpc.NextStatus)
		if rpc.Dirty() {
			line = dirtyStyle.Render(line + " *")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	return b.String()
}

func (m dashboardModel) journalView() string {
	if len(m.entries) == 0 {
		return "journal is empty"
	}
	var b strings.Builder
	for _, e := range m.entries {
		fmt.Fprintf(&b, "%s  %-8s %s  %s -> %s\n",
			e.CreatedAt.Format(timeLayout), e.Event, fitText(e.UUID, uuidColumn), e.Status, e.NextStatus)
	}
	return b.String()
}
