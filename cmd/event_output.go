package cmd

import (
	"fmt"

	"github.com/olimci/rayforge/pkg/events"
)

type eventCounts struct {
	Debug   int
	Info    int
	Warning int
	Error   int
}

func countEvents(eventsList []events.Event) eventCounts {
	var counts eventCounts
	for _, event := range eventsList {
		switch event.Level {
		case events.Debug:
			counts.Debug++
		case events.Info:
			counts.Info++
		case events.Warning:
			counts.Warning++
		case events.Error:
			counts.Error++
		}
	}
	return counts
}

func formatEvent(event events.Event) string {
	label := event.Level.String()
	if event.Error != nil {
		return fmt.Sprintf("[%s] %s: %s", label, event.Message, event.Error.Error())
	}
	return fmt.Sprintf("[%s] %s", label, event.Message)
}

// summarize builds a summary from a raw event slice, for callers holding
// events without the collector that produced them.
func summarize(eventsList []events.Event) *events.Summary {
	collector := events.NewCollector(nil)
	for _, event := range eventsList {
		collector.Handle(event)
	}
	return collector.Summary()
}

func formatSummary(summary *events.Summary) []string {
	if summary == nil || len(summary.Full) == 0 {
		return nil
	}

	counts := countEvents(summary.Full)

	var lines []string
	if counts.Warning > 0 || counts.Error > 0 {
		lines = append(lines, fmt.Sprintf(
			"summary: %d events (info %d, warning %d, error %d)",
			len(summary.Full),
			counts.Info,
			counts.Warning,
			counts.Error,
		))
	}

	if summary.ErrorCount > 0 {
		lines = append(lines, fmt.Sprintf("errors (%d):", summary.ErrorCount))
		for _, event := range summary.Errors {
			lines = append(lines, fmt.Sprintf("- %s", formatEvent(event)))
		}
	}

	return lines
}
