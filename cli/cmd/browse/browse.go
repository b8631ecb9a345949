// Package browse implements an interactive statement browser built on
// Bubble Tea. Statements from the merged sources are listed in total order
// and narrowed with a fuzzy filter as the user types.
package browse

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/cfgpatch/cfg"
	"github.com/ardnew/cfgpatch/log"
)

// Browse is the browse subcommand.
type Browse struct {
	Source []string `arg:"" optional:"" help:"Configuration file(s) or '-' for stdin" name:"source"`
}

// Run executes the browse command. When the user accepts a statement with
// enter, its canonical form is printed to stdout after the terminal is
// restored, so the command composes with shell pipelines.
func (b *Browse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	set, err := loadSources(b.Source)
	if err != nil {
		return err
	}

	if set.Len() == 0 {
		return ErrNoStatements
	}

	program := tea.NewProgram(newModel(set.Statements()), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		return err
	}

	m, ok := final.(model)

	log.DebugContext(ctx, "browse session ended",
		slog.Int("statements", set.Len()),
		slog.Bool("accepted", ok && m.accepted != nil),
	)

	if ok && m.accepted != nil {
		fmt.Println(m.accepted.String())
	}

	return nil
}

// loadSources parses the named sources in order into one collection. No
// sources means stdin.
func loadSources(names []string) (*cfg.Set, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}

	set := cfg.NewSet(cfg.WithLogger(log.Default()))

	for _, name := range names {
		if err := loadSet(set, name); err != nil {
			return nil, err
		}
	}

	return set, nil
}

func loadSet(set *cfg.Set, name string) error {
	if name == "-" {
		return set.Load(os.Stdin)
	}

	file, err := os.Open(name)
	if err != nil {
		return ErrReadSource.Wrap(err)
	}
	defer file.Close()

	return set.Load(file)
}

// statementSource adapts a statement list to fuzzy matching over keys.
type statementSource []cfg.Statement

func (s statementSource) String(i int) string { return s[i].Key }
func (s statementSource) Len() int            { return len(s) }

// model is the Bubble Tea model for the browser.
type model struct {
	input      textinput.Model
	statements statementSource
	matched    []int          // indices into statements, filter order
	cursor     int            // selected row within matched
	accepted   *cfg.Statement // statement chosen with enter, if any
	height     int
	quitting   bool
}

func newModel(statements []cfg.Statement) model {
	input := textinput.New()
	input.Prompt = filterPrompt
	input.Placeholder = "type to filter"
	input.Focus()

	m := model{
		input:      input,
		statements: statements,
		height:     defaultListHeight,
	}
	m.filter("")

	return m
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height - chromeLines
		if m.height < 1 {
			m.height = 1
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true

			return m, tea.Quit

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}

			return m, nil

		case tea.KeyDown:
			if m.cursor < len(m.matched)-1 {
				m.cursor++
			}

			return m, nil

		case tea.KeyEnter:
			if len(m.matched) > 0 {
				st := m.statements[m.matched[m.cursor]]
				m.accepted = &st
			}

			m.quitting = true

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		m.filter(m.input.Value())
	}

	return m, cmd
}

// filter recomputes the matched rows for the given query. An empty query
// lists every statement in total order.
func (m *model) filter(query string) {
	m.cursor = 0

	if query == "" {
		m.matched = make([]int, len(m.statements))
		for i := range m.statements {
			m.matched[i] = i
		}

		return
	}

	results := fuzzy.FindFrom(query, m.statements)

	m.matched = make([]int, len(results))
	for i, r := range results {
		m.matched[i] = r.Index
	}
}

// View implements tea.Model.
func (m model) View() string {
	if m.quitting {
		return ""
	}

	view := titleStyle.Render(titleText) + "\n" + m.input.View() + "\n"

	top, bottom := m.window()

	for i := top; i < bottom; i++ {
		st := m.statements[m.matched[i]]

		line := kindStyle(st.Kind).Render(st.Kind.String()) +
			" " + st.String()

		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}

		view += line + "\n"
	}

	view += hintStyle.Render(
		fmt.Sprintf("%d/%d  enter: accept  esc: quit",
			len(m.matched), len(m.statements)),
	)

	return view
}

// window returns the visible slice bounds of the matched rows, keeping the
// cursor in view.
func (m model) window() (top, bottom int) {
	top = 0

	if m.cursor >= m.height {
		top = m.cursor - m.height + 1
	}

	bottom = top + m.height
	if bottom > len(m.matched) {
		bottom = len(m.matched)
	}

	return top, bottom
}
