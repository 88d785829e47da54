// Package genui drives project generation behind a terminal progress view.
package genui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olimci/rayforge/pkg/events"
	"github.com/olimci/rayforge/pkg/generate"
	"github.com/olimci/rayforge/pkg/project"
	"golang.org/x/sync/errgroup"
)

type Params struct {
	Config      *project.Config
	TemplateDir string
	OutputDir   string
}

type Outcome struct {
	Result    *generate.Result
	Events    []events.Event
	Err       error
	Cancelled bool
}

type stepMsg struct {
	name  string
	index int
	total int
}

type eventMsg events.Event

type doneMsg struct {
	err error
}

// Run renders the generation pipeline in a terminal UI. The pipeline runs
// in its own goroutine; the model only observes it.
func Run(ctx context.Context, params Params) (*Outcome, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(NewModel(params.Config.Project.InternalName), tea.WithContext(ctx))

	outcome := &Outcome{}

	var g errgroup.Group
	g.Go(func() error {
		collector := events.NewCollector(events.Func(func(event events.Event) {
			program.Send(eventMsg(event))
		}))

		result, err := generate.Generate(params.Config, params.TemplateDir, params.OutputDir,
			generate.WithContext(ctx),
			generate.WithHandler(collector),
			generate.WithProgress(func(step string, index, total int) {
				program.Send(stepMsg{name: step, index: index, total: total})
			}),
		)

		outcome.Result = result
		outcome.Events = collector.Events
		outcome.Err = err
		program.Send(doneMsg{err: err})
		return nil
	})

	final, err := program.Run()
	cancel()
	_ = g.Wait()
	if err != nil {
		return nil, err
	}

	if m, ok := final.(*Model); ok {
		outcome.Cancelled = m.cancelled
	}

	return outcome, nil
}

type Model struct {
	name string

	spinner  spinner.Model
	bar      progress.Model
	percent  float64
	step     string
	total    int
	logs     []string
	maxLines int

	done      bool
	cancelled bool
	err       error
}

func NewModel(name string) *Model {
	styles := genStyles()

	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.spinner))
	bar := progress.New(progress.WithGradient("#cba6f7", "#a6e3a1"))
	bar.Width = 40

	return &Model{
		name:     name,
		spinner:  s,
		bar:      bar,
		maxLines: 10,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.done {
				m.cancelled = true
			}
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stepMsg:
		m.step = msg.name
		m.total = msg.total
		m.percent = float64(msg.index) / float64(msg.total)
		return m, nil

	case eventMsg:
		m.appendLog(formatEventLine(events.Event(msg)))
		return m, nil

	case doneMsg:
		m.done = true
		m.err = msg.err
		m.percent = 1
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) View() string {
	if m.done {
		return ""
	}

	styles := genStyles()

	var b strings.Builder
	b.WriteString(styles.title.Render("Generating "+m.name) + "\n\n")

	if m.step != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", m.spinner.View(), styles.step.Render(m.step)))
	} else {
		b.WriteString(fmt.Sprintf("%s starting\n", m.spinner.View()))
	}
	b.WriteString(m.bar.ViewAs(m.percent))
	b.WriteString("\n\n")

	for _, line := range m.logs {
		b.WriteString(styles.log.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.help.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) appendLog(s string) {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return
	}
	m.logs = append(m.logs, s)
	if len(m.logs) > m.maxLines {
		m.logs = m.logs[len(m.logs)-m.maxLines:]
	}
}

func formatEventLine(event events.Event) string {
	var b strings.Builder
	b.WriteString(event.Level.String())
	if event.Step != "" {
		b.WriteString(" [" + event.Step + "]")
	}
	b.WriteString(": ")
	if event.Source != "" {
		b.WriteString(event.Source + ": ")
	}
	b.WriteString(event.Message)
	if event.Error != nil {
		b.WriteString(": " + event.Error.Error())
	}
	return b.String()
}
