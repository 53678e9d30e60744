// Package repl provides the interactive terminal shell. Each submitted line
// is translated by the prompt parser into a tool call and dispatched; results
// and failures are appended to a scrolling transcript. The shell reports
// failures the same way the stdio tool protocol does: as ordinary responses
// whose text starts with "Error: ".
package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Cyclone1070/toolshed/internal/dispatch"
	"github.com/Cyclone1070/toolshed/internal/prompt"
)

// dispatcher is the slice of dispatch.Dispatcher the shell needs.
type dispatcher interface {
	Dispatch(ctx context.Context, req dispatch.Request) (*dispatch.Result, error)
	Declarations() []dispatch.Declaration
}

// workdirReader reports the current sandbox root for the status bar.
type workdirReader interface {
	Get() string
}

// markdownRenderer renders the help screen. Satisfied by glamour.
type markdownRenderer interface {
	Render(markdown string) (string, error)
}

type entry struct {
	prompt string
	output string
	isErr  bool
}

type resultMsg entry

// Model implements tea.Model for the shell.
type Model struct {
	dispatcher dispatcher
	workdir    workdirReader
	renderer   markdownRenderer

	input    textinput.Model
	viewport viewport.Model
	entries  []entry
	ready    bool
}

// New creates the shell model.
func New(d dispatcher, workdir workdirReader, renderer markdownRenderer) Model {
	ti := textinput.New()
	ti.Placeholder = `Try "create file notes.txt with content hello" or "help"`
	ti.Focus()

	return Model{
		dispatcher: d,
		workdir:    workdir,
		renderer:   renderer,
		input:      ti,
		viewport:   viewport.New(80, 20),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles terminal events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		m.input.Width = msg.Width - 4
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			switch line {
			case "":
				return m, nil
			case "quit", "exit":
				return m, tea.Quit
			case "help":
				m.append(entry{prompt: line, output: m.helpText()})
				return m, nil
			}
			return m, m.run(line)
		}

	case resultMsg:
		m.append(entry(msg))
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the shell.
func (m Model) View() string {
	title := titleStyle.Render("toolshed")
	status := statusStyle.Render("workdir: " + m.workdir.Get() + "  (help, quit)")
	input := inputStyle.Render(m.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View(), input, status)
}

// run dispatches one parsed prompt as a tea command.
func (m Model) run(line string) tea.Cmd {
	return func() tea.Msg {
		req, err := prompt.Parse(line)
		if err != nil {
			hint := fmt.Sprintf("%s\n\nSupported requests:\n  %s",
				dispatch.ErrorText(err), strings.Join(prompt.Usage(), "\n  "))
			return resultMsg{prompt: line, output: hint, isErr: true}
		}

		res, err := m.dispatcher.Dispatch(context.Background(), req)
		if err != nil {
			return resultMsg{prompt: line, output: dispatch.ErrorText(err), isErr: true}
		}

		var parts []string
		for _, block := range res.Content {
			parts = append(parts, block.Text)
		}
		return resultMsg{prompt: line, output: strings.Join(parts, "\n")}
	}
}

func (m *Model) append(e entry) {
	m.entries = append(m.entries, e)
	m.refresh()
}

// refresh re-renders the transcript and scrolls to the bottom.
func (m *Model) refresh() {
	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(promptStyle.Render("> "+e.prompt) + "\n")
		if e.isErr {
			b.WriteString(errorStyle.Render(e.output) + "\n")
		} else {
			b.WriteString(outputStyle.Render(e.output) + "\n")
		}
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// helpText renders the catalog and supported phrasings as markdown.
func (m Model) helpText() string {
	var b strings.Builder
	b.WriteString("# toolshed\n\nSandboxed file operations, confined to the working directory.\n\n## Tools\n\n")
	for _, decl := range m.dispatcher.Declarations() {
		fmt.Fprintf(&b, "- `%s`: %s\n", decl.Name, decl.Description)
	}
	b.WriteString("\n## Phrasings\n\n")
	for _, u := range prompt.Usage() {
		fmt.Fprintf(&b, "- %s\n", u)
	}

	rendered, err := m.renderer.Render(b.String())
	if err != nil {
		return b.String()
	}
	return rendered
}
