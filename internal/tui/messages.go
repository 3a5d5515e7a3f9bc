package tui

import "github.com/MKhiriev/go-polip/models"

type snapshotMsg struct {
	snap models.WorkflowSnapshot
}

type journalLoadedMsg struct {
	entries []models.RPCJournalEntry
	err     error
}

type clearStatusMsg struct{}
