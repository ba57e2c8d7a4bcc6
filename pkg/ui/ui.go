package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.design/x/clipboard"
)

type UI struct{}

func New() *UI {
	return &UI{}
}

func (u *UI) Print(msg string) {
	fmt.Println(msg)
}

// Input Handling

type inputModel struct {
	textInput    textinput.Model
	err          error
	output       string
	canceled     bool
	slashTrigger bool // Triggered when "/" is typed as first char
}

func initialInputModel(prompt string) inputModel {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 80
	ti.Prompt = prompt

	return inputModel{
		textInput: ti,
		err:       nil,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.output = m.textInput.Value()
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyCtrlV:
			// Paste text from the system clipboard
			if err := clipboard.Init(); err == nil {
				if text := clipboard.Read(clipboard.FmtText); len(text) > 0 {
					m.textInput.SetValue(m.textInput.Value() + strings.TrimRight(string(text), "\r\n"))
					m.textInput.SetCursor(len(m.textInput.Value()))
				}
			}
			return m, nil
		case tea.KeyRunes:
			// Check if "/" is typed as first character (empty input)
			if len(msg.Runes) == 1 && msg.Runes[0] == '/' && m.textInput.Value() == "" {
				m.slashTrigger = true
				m.output = "/"
				return m, tea.Quit
			}
		}
	case error:
		m.err = msg
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	return fmt.Sprintf(
		"%s\n",
		m.textInput.View(),
	)
}

// Prompt reads one line. It returns "exit" when the user cancels and "/" when
// the slash picker was requested.
func (u *UI) Prompt(prompt string) string {
	p := tea.NewProgram(initialInputModel(prompt))
	m, err := p.Run()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		return ""
	}

	if mModel, ok := m.(inputModel); ok {
		if mModel.canceled {
			return "exit"
		}
		return strings.TrimSpace(mModel.output)
	}
	return ""
}

// Command Picker

// CommandItem represents a command in the picker list
type CommandItem struct {
	name        string
	description string
	help        string
}

func (i CommandItem) Title() string       { return i.name }
func (i CommandItem) Description() string { return i.description }
func (i CommandItem) FilterValue() string { return i.name + " " + i.description }

type commandPickerModel struct {
	list     list.Model
	selected string
	canceled bool
}

func newCommandPickerModel(commands []CommandItem) commandPickerModel {
	items := make([]list.Item, len(commands))
	for i, cmd := range commands {
		items[i] = cmd
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("62")).
		Foreground(lipgloss.Color("170")).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("62")).
		Foreground(lipgloss.Color("240")).
		Padding(0, 0, 0, 1)

	l := list.New(items, delegate, 60, 14)
	l.Title = "Commands"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("170")).
		Bold(true).
		Padding(0, 1)

	return commandPickerModel{list: l}
}

func (m commandPickerModel) Init() tea.Cmd {
	return nil
}

func (m commandPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.list.FilterState() == list.Filtering {
				break
			}
			if item, ok := m.list.SelectedItem().(CommandItem); ok {
				m.selected = item.name
			}
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			if m.list.FilterState() != list.Unfiltered {
				break
			}
			m.canceled = true
			return m, tea.Quit
		case tea.KeyCtrlY:
			// Copy the usage line of the highlighted command
			if item, ok := m.list.SelectedItem().(CommandItem); ok && item.help != "" {
				if err := clipboard.Init(); err == nil {
					clipboard.Write(clipboard.FmtText, []byte(item.help))
					return m, m.list.NewStatusMessage("Copied help for " + item.name)
				}
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m commandPickerModel) View() string {
	return m.list.View()
}

// CommandInfo holds command info for the picker
type CommandInfo struct {
	Name        string
	Description string
	Help        string // copied to the clipboard with ctrl+y
}

// PickCommand displays a command picker and returns the selected command name
// Returns empty string if canceled
func (u *UI) PickCommand(commands []CommandInfo) string {
	items := make([]CommandItem, len(commands))
	for i, cmd := range commands {
		items[i] = CommandItem{name: cmd.Name, description: cmd.Description, help: cmd.Help}
	}

	p := tea.NewProgram(newCommandPickerModel(items))
	m, err := p.Run()
	if err != nil {
		fmt.Printf("Error in command picker: %v\n", err)
		return ""
	}

	if model, ok := m.(commandPickerModel); ok {
		if model.canceled {
			return ""
		}
		return model.selected
	}
	return ""
}
