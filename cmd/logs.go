package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/olimci/rayforge/pkg/events"
)

type eventOutputStyle int

const (
	eventOutputPlain eventOutputStyle = iota
	eventOutputRich
)

type eventPrinter struct {
	style eventOutputStyle
	out   io.Writer
	mu    sync.Mutex

	levelStyles map[events.Level]lipgloss.Style
	stepStyle   lipgloss.Style
	sourceStyle lipgloss.Style
}

func newEventPrinter(style eventOutputStyle, out io.Writer) *eventPrinter {
	p := &eventPrinter{
		style: style,
		out:   out,
	}

	if style != eventOutputRich {
		return p
	}

	colorEnabled := false
	if f, ok := out.(*os.File); ok {
		colorEnabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if !colorEnabled {
		return p
	}

	p.levelStyles = map[events.Level]lipgloss.Style{
		events.Debug:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")), // muted
		events.Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")), // blue
		events.Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")), // yellow
		events.Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")), // red
	}
	p.stepStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))   // grey
	p.sourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")) // text
	return p
}

func (p *eventPrinter) Handle(event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	line := formatEventPlain(event)
	if p.style == eventOutputRich && p.levelStyles != nil {
		levelStyle, ok := p.levelStyles[event.Level]
		if ok {
			levelToken := levelStyle.Render(event.Level.String())
			line = formatEventRich(event, levelToken, p.stepStyle, p.sourceStyle)
		}
	}

	fmt.Fprintln(p.out, line)
}

func formatEventPlain(event events.Event) string {
	var b strings.Builder

	b.WriteString(event.Level.String())
	if event.Step != "" {
		b.WriteString(" [")
		b.WriteString(event.Step)
		b.WriteString("]")
	}
	b.WriteString(": ")

	if event.Source != "" {
		b.WriteString(event.Source)
		b.WriteString(": ")
	}

	b.WriteString(event.Message)
	if event.Error != nil {
		b.WriteString(": ")
		b.WriteString(event.Error.Error())
	}

	return b.String()
}

func formatEventRich(event events.Event, levelToken string, stepStyle, sourceStyle lipgloss.Style) string {
	var b strings.Builder

	b.WriteString(levelToken)
	if event.Step != "" {
		b.WriteString(" ")
		b.WriteString(stepStyle.Render("[" + event.Step + "]"))
	}
	b.WriteString(": ")

	if event.Source != "" {
		b.WriteString(sourceStyle.Render(event.Source))
		b.WriteString(": ")
	}

	b.WriteString(event.Message)
	if event.Error != nil {
		b.WriteString(": ")
		b.WriteString(event.Error.Error())
	}

	return b.String()
}
