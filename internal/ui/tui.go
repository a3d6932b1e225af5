// Package ui provides the interactive terminal front-end.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"today/internal/task"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// RunUI starts the full-screen task editor.
func RunUI(ctx context.Context, st *task.Store) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("ui requires a TTY")
	}

	model, err := newTUIModel(st)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*tuiModel); ok && m.saveErr != nil {
		return m.saveErr
	}
	return nil
}

type uiMode int

const (
	modeList uiMode = iota
	modeEdit
)

type tuiModel struct {
	store  *task.Store
	tasks  []task.Task
	cursor int
	mode   uiMode

	// editID is zero while adding a new task.
	editID    int
	textInput textinput.Model
	dueInput  textinput.Model
	focus     int

	saveErr error
}

func newTUIModel(st *task.Store) (*tuiModel, error) {
	tasks, err := st.Load()
	if err != nil {
		return nil, err
	}

	text := textinput.New()
	text.Placeholder = "Task text"
	text.CharLimit = 200

	due := textinput.New()
	due.Placeholder = "Due time (optional)"
	due.CharLimit = 20

	return &tuiModel{
		store:     st,
		tasks:     task.SortedForDisplay(tasks),
		textInput: text,
		dueInput:  due,
	}, nil
}

func (m *tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == modeEdit {
		return m.updateEdit(msg)
	}
	return m.updateList(msg)
}

func (m *tuiModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case "enter":
			return m.toggleSelected()
		case "d":
			return m.deleteSelected()
		case "a":
			return m, m.openEditor(0, "", "")
		case "e":
			if m.cursor < len(m.tasks) {
				sel := m.tasks[m.cursor]
				return m, m.openEditor(sel.ID, sel.Text, sel.DueString())
			}
		}
	}
	return m, nil
}

func (m *tuiModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.mode = modeList
			return m, nil
		case "tab", "shift+tab":
			m.focus = 1 - m.focus
			if m.focus == 0 {
				m.dueInput.Blur()
				return m, m.textInput.Focus()
			}
			m.textInput.Blur()
			return m, m.dueInput.Focus()
		case "enter":
			return m.submitEditor()
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.textInput, cmd = m.textInput.Update(msg)
	} else {
		m.dueInput, cmd = m.dueInput.Update(msg)
	}
	return m, cmd
}

func (m *tuiModel) toggleSelected() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.tasks) {
		return m, nil
	}
	sel := m.tasks[m.cursor]
	if _, _, err := m.store.Mark(sel.ID, !sel.Done); err != nil {
		m.saveErr = err
		return m, tea.Quit
	}
	return m, m.refresh(sel.ID)
}

func (m *tuiModel) deleteSelected() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.tasks) {
		return m, nil
	}
	if _, err := m.store.Remove(m.tasks[m.cursor].ID); err != nil {
		m.saveErr = err
		return m, tea.Quit
	}
	return m, m.refresh(0)
}

// openEditor switches to the edit form. A zero id means a new task.
func (m *tuiModel) openEditor(id int, text, due string) tea.Cmd {
	m.mode = modeEdit
	m.editID = id
	m.textInput.SetValue(text)
	m.dueInput.SetValue(due)
	m.dueInput.Blur()
	m.focus = 0
	return m.textInput.Focus()
}

func (m *tuiModel) submitEditor() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.textInput.Value())
	if text == "" {
		return m, nil
	}
	due := strings.TrimSpace(m.dueInput.Value())

	if m.editID == 0 {
		added, err := m.store.Add(text, due)
		if err != nil {
			m.saveErr = err
			return m, tea.Quit
		}
		m.mode = modeList
		return m, m.refresh(added.ID)
	}

	if _, _, err := m.store.Update(m.editID, text, due); err != nil {
		m.saveErr = err
		return m, tea.Quit
	}
	m.mode = modeList
	return m, m.refresh(m.editID)
}

// refresh reloads the list from disk and re-sorts it. When selectID is
// non-zero the cursor follows that task to its new position.
func (m *tuiModel) refresh(selectID int) tea.Cmd {
	tasks, err := m.store.Load()
	if err != nil {
		m.saveErr = err
		return tea.Quit
	}
	m.tasks = task.SortedForDisplay(tasks)

	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if selectID != 0 {
		for i, t := range m.tasks {
			if t.ID == selectID {
				m.cursor = i
				break
			}
		}
	}
	return nil
}

func (m *tuiModel) View() string {
	if m.mode == modeEdit {
		return m.editView()
	}
	return m.listView()
}

func (m *tuiModel) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Today Tasks") + "\n\n")

	if len(m.tasks) == 0 {
		b.WriteString("No tasks yet.\n")
	}
	for i, t := range m.tasks {
		line := t.Line()
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("a add | d delete | e edit | enter toggle | q quit") + "\n")
	return b.String()
}

func (m *tuiModel) editView() string {
	var b strings.Builder
	title := "Add Task"
	if m.editID != 0 {
		title = "Edit Task"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(m.textInput.View() + "\n")
	b.WriteString(m.dueInput.View() + "\n")
	b.WriteString("\n" + helpStyle.Render("enter save | tab switch field | esc cancel") + "\n")
	return b.String()
}

// IsTTY returns true if stdout is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
