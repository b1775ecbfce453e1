package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"calltrace/internal/profile"
	"calltrace/internal/replay"
	"calltrace/internal/ui"
)

// runReplayEvents replays records through p, with or without the
// interactive progress display.
func runReplayEvents(cmd *cobra.Command, streamPath string, records []replay.Record, p *profile.Profiler, withUI bool) error {
	if !withUI {
		return replay.Run(cmd.Context(), records, p, replayJobs, nil)
	}

	byThread, threads := replay.SplitByThread(records)
	totals := make(map[uint64]int, len(threads))
	for id, recs := range byThread {
		totals[id] = len(recs)
	}

	events := make(chan replay.Progress, 256)
	outcomeCh := make(chan error, 1)

	go func() {
		outcomeCh <- replay.Run(cmd.Context(), records, p, replayJobs, events)
		close(events)
	}()

	model := ui.NewProgressModel("replaying "+streamPath, threads, totals, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return uiErr
	}
	return outcome
}
