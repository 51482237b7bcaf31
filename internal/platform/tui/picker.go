package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/config"
)

// pickerTheme holds the picker styles.
type pickerTheme struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	Label       lipgloss.Style
	Error       lipgloss.Style
}

func defaultPickerTheme() pickerTheme {
	return pickerTheme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(7),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Custom board form fields.
const (
	fieldRows = iota
	fieldCols
	fieldMines
	fieldCount
)

var fieldLabels = [fieldCount]string{"Rows", "Cols", "Mines"}

// PickerModel lets the player choose a preset or enter a custom board.
type PickerModel struct {
	presets config.Presets
	table   table.Model
	form    [fieldCount]textinput.Model
	focus   int
	editing bool

	keys   PickerKeyMap
	help   help.Model
	theme  pickerTheme
	width  int
	height int

	err      error
	selected *config.Preset
	quitting bool

	// quitOnSelect ends the program once a board is chosen.
	quitOnSelect bool
}

// NewPickerModel lists the presets followed by a custom board entry.
func NewPickerModel(presets config.Presets, width, height int) PickerModel {
	rows := make([]table.Row, 0, len(presets.List)+1)
	for _, p := range presets.List {
		rows = append(rows, table.Row{
			p.Label,
			fmt.Sprintf("%dx%d", p.Rows, p.Cols),
			strconv.Itoa(p.Mines),
			fmt.Sprintf("%.0f%%", p.Density()*100),
		})
	}
	rows = append(rows, table.Row{"Custom…", "", "", ""})

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Preset", Width: 10},
			{Title: "Board", Width: 7},
			{Title: "Mines", Width: 5},
			{Title: "Density", Width: 7},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	st := table.DefaultStyles()
	st.Selected = st.Selected.Foreground(lipgloss.Color("226")).Bold(true)
	t.SetStyles(st)

	m := PickerModel{
		presets: presets,
		table:   t,
		keys:    DefaultPickerKeyMap(),
		help:    help.New(),
		theme:   defaultPickerTheme(),
		width:   width,
		height:  height,
	}
	m.help.Width = width

	limits := presets.Custom
	for i := range m.form {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 3
		in.Width = 4
		m.form[i] = in
	}
	m.form[fieldRows].Placeholder = strconv.Itoa(limits.Fallback)
	m.form[fieldCols].Placeholder = strconv.Itoa(limits.Fallback)
	m.form[fieldMines].Placeholder = strconv.Itoa(limits.Fallback)

	if i := presets.Index(presets.Default); i >= 0 {
		m.table.SetCursor(i)
	}
	return m
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleFormKey(msg)
		}
		return m.handleTableKey(msg)
	}
	return m, nil
}

func (m PickerModel) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		i := m.table.Cursor()
		if i >= len(m.presets.List) {
			m.editing = true
			m.err = nil
			return m, m.focusField(fieldRows)
		}
		p := m.presets.List[i]
		return m.choose(p)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m PickerModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.editing = false
		m.err = nil
		m.form[m.focus].Blur()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		next := (m.focus + 1) % fieldCount
		if msg.String() == "shift+tab" {
			next = (m.focus + fieldCount - 1) % fieldCount
		}
		return m, m.focusField(next)

	case key.Matches(msg, m.keys.Select):
		p, err := m.presets.Custom.ParseCustom(
			m.form[fieldRows].Value(),
			m.form[fieldCols].Value(),
			m.form[fieldMines].Value(),
		)
		if err != nil {
			m.err = err
			return m, nil
		}
		return m.choose(p)
	}

	var cmd tea.Cmd
	m.form[m.focus], cmd = m.form[m.focus].Update(msg)
	return m, cmd
}

func (m *PickerModel) focusField(i int) tea.Cmd {
	m.form[m.focus].Blur()
	m.focus = i
	return m.form[i].Focus()
}

func (m PickerModel) choose(p config.Preset) (tea.Model, tea.Cmd) {
	m.selected = &p
	if m.quitOnSelect {
		return m, tea.Quit
	}
	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{
		m.theme.Title.Render("M I N E S W E E P E R"),
		m.theme.Description.Render("Choose a board"),
		"",
		m.table.View(),
	}

	if m.editing {
		limits := m.presets.Custom
		parts = append(parts, "", m.theme.Description.Render(fmt.Sprintf(
			"Rows and cols %d-%d, at most %.0f%% mines",
			limits.MinSize, limits.MaxSize, limits.MaxDensity*100)))
		for i, in := range m.form {
			parts = append(parts, m.theme.Label.Render(fieldLabels[i])+in.View())
		}
	}
	if m.err != nil {
		parts = append(parts, "", m.theme.Error.Render(m.err.Error()))
	}
	parts = append(parts, "", m.help.View(m.keys))

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width <= 0 {
		return body
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}

// Selected returns the chosen board, or nil if none was chosen.
func (m PickerModel) Selected() *config.Preset {
	return m.selected
}

// IsQuitting returns true if the player asked to leave.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// RunPicker shows the picker on its own and returns the chosen board.
// ok is false when the player quit instead.
func RunPicker(presets config.Presets, width, height int) (p config.Preset, ok bool, err error) {
	m := NewPickerModel(presets, width, height)
	m.quitOnSelect = true

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return config.Preset{}, false, err
	}
	pm, isPicker := final.(PickerModel)
	if !isPicker || pm.Selected() == nil {
		return config.Preset{}, false, nil
	}
	return *pm.Selected(), true, nil
}
