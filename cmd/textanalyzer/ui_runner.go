package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"textanalyzer/internal/driver"
	"textanalyzer/internal/ui"
)

type analysisOutcome struct {
	result *driver.Result
	err    error
}

// runAnalysisWithUI runs analyze in the background and renders its progress
// events on out until it returns.
func runAnalysisWithUI(out io.Writer, title string, opts driver.Options, analyze func(driver.Options) (*driver.Result, error)) (*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan analysisOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := analyze(optsCopy)
		outcomeCh <- analysisOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(nil))
	_, uiErr := program.Run()
	// если UI завершился раньше, события всё равно нужно вычитать, иначе анализ заблокируется
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
