package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdewitt/walletsel/internal/database"
	"github.com/sdewitt/walletsel/internal/database/repository"
	"github.com/sdewitt/walletsel/internal/detect"
)

func scanCmd(scanner *detect.Scanner) tea.Cmd {
	if scanner == nil {
		return nil
	}
	return func() tea.Msg {
		return scanDoneMsg{snap: scanner.Scan(context.Background())}
	}
}

// loadHistoryCmd loads the last selection and the persisted detection
// snapshot, which seeds installed flags until the fresh scan lands.
func loadHistoryCmd(selections *repository.SelectionRepo, detections *repository.DetectionRepo) tea.Cmd {
	if selections == nil && detections == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		var msg historyLoadedMsg
		if selections != nil {
			last, err := selections.Last(ctx)
			if err != nil {
				msg.err = err
				return msg
			}
			if last != nil {
				msg.recentID = last.WalletID
			}
		}
		if detections != nil {
			seed, at, err := detections.Latest(ctx)
			if err != nil {
				msg.err = err
				return msg
			}
			msg.seed = seed
			msg.seedAt = at
		}
		return msg
	}
}

func saveSelectionCmd(selections *repository.SelectionRepo, walletID string) tea.Cmd {
	if selections == nil {
		return nil
	}
	return func() tea.Msg {
		_, err := selections.Record(context.Background(), walletID, database.Now())
		return selectionSavedMsg{err: err}
	}
}

func saveDetectionsCmd(detections *repository.DetectionRepo, snap detect.Snapshot) tea.Cmd {
	if detections == nil {
		return nil
	}
	return func() tea.Msg {
		err := detections.ReplaceAll(context.Background(), snap.Installed(), snap.ScannedAt())
		return detectionsSavedMsg{err: err}
	}
}
