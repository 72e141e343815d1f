// Package tui provides a Bubble Tea terminal user interface for browsing
// and organizing installed fonts.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/handiism/hurufa/internal/app"
	"github.com/handiism/hurufa/internal/classify"
	"github.com/handiism/hurufa/internal/export"
	"github.com/handiism/hurufa/internal/model"
	"github.com/handiism/hurufa/internal/selection"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	cursorStyle = lipgloss.NewStyle().
			Reverse(true)
)

// State represents the current UI state.
type State int

const (
	StateBrowse State = iota
	StateSearch
	StateAddTag
	StateRemoveTag
	StateRenameCollection
	StateEditFamily
	StateConfirmDelete
	StateLanguage
	StateExporting
	StateExportDone
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   export.ProgressLevel
}

// row is one rendered line of the browser: a category heading or a font.
type row struct {
	category string
	font     *model.Font
	pos      int // index into DisplayOrder for font rows
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	app       *app.App
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	logs      []LogEntry
	status    string
	err       error
	title     cases.Caser

	cursor     int
	langCursor int
	family     string // family being edited in StateEditFamily

	// Export context
	ctx      context.Context
	cancel   context.CancelFunc
	exporter *export.Orchestrator
	events   chan export.ProgressEvent
	result   export.Result

	fetched int32
	failed  int32
	total   int32

	width  int
	height int
}

// NewModel creates a new TUI model over a.
func NewModel(a *app.App) Model {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateBrowse,
		app:       a,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		logs:      make([]LogEntry, 0),
		title:     cases.Title(language.English),
		ctx:       ctx,
		cancel:    cancel,
		height:    30,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// ProgressMsg carries an export progress event.
	ProgressMsg struct {
		Event export.ProgressEvent
	}

	// ExportDoneMsg is sent when an export finishes.
	ExportDoneMsg struct {
		Result export.Result
		Err    error
	}

	// PersistDoneMsg is sent when the overlay has been written.
	PersistDoneMsg struct {
		Err error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
		switch m.state {
		case StateBrowse:
			return m.updateBrowse(msg)
		case StateSearch, StateAddTag, StateRemoveTag, StateRenameCollection, StateEditFamily:
			return m.updateInput(msg)
		case StateConfirmDelete:
			return m.updateConfirm(msg)
		case StateLanguage:
			return m.updateLanguage(msg)
		case StateExporting:
			return m, nil
		case StateExportDone, StateError:
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "enter", "esc", "r":
				m.state = StateBrowse
				m.err = nil
			}
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		m.logs = append(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}
		cmds = append(cmds, waitForEvent(m.events))

	case ExportDoneMsg:
		m.result = msg.Result
		m.exporter = nil
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateExportDone
		}
		m.ctx, m.cancel = context.WithCancel(context.Background())

	case PersistDoneMsg:
		if msg.Err != nil {
			m.status = errorStyle.Render("Could not save changes: " + msg.Err.Error())
		}

	case TickMsg:
		if m.exporter != nil && m.state == StateExporting {
			m.fetched, m.failed, m.total = m.exporter.GetProgress()

			var percent float64
			if m.total > 0 {
				percent = float64(m.fetched+m.failed) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.app.Store
	m.status = ""

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "shift+up", "K":
		m.moveCursor(-1)
		m.clickCursor(selection.Modifiers{Shift: true})

	case "shift+down", "J":
		m.moveCursor(1)
		m.clickCursor(selection.Modifiers{Shift: true})

	case " ", "space":
		m.clickCursor(selection.Modifiers{})

	case "t":
		m.clickCursor(selection.Modifiers{Toggle: true})

	case "s":
		m.clickCursor(selection.Modifiers{Shift: true})

	case "a":
		s.SelectAll()

	case "C":
		if cat := m.cursorCategory(); cat != "" {
			s.SelectCategory(cat, true)
		}

	case "esc":
		if s.SelectionLen() > 0 {
			s.DeselectAll()
		} else if s.Query() != "" {
			s.SetQuery("")
			m.clampCursor()
		}

	case "v":
		if s.ViewMode() == model.CategoryCollection {
			s.SetViewMode(model.CategoryLanguage)
		} else {
			s.SetViewMode(model.CategoryCollection)
		}
		m.app.Settings.SetViewMode(s.ViewMode())
		m.clampCursor()

	case "/":
		return m.startInput(StateSearch, "search families", s.Query())

	case "+":
		if m.ensureSelection() {
			return m.startInput(StateAddTag, "add to collection", "")
		}

	case "-":
		if m.ensureSelection() {
			return m.startInput(StateRemoveTag, "remove from collection", "")
		}

	case "R":
		if s.ViewMode() == model.CategoryCollection && m.cursorCategory() != "" {
			return m.startInput(StateRenameCollection, "rename collection", m.cursorCategory())
		}

	case "f":
		if id, ok := m.cursorFont(); ok {
			m.family = s.FamilyName(id)
			if fam, ok := s.Family(m.family); ok {
				return m.startInput(StateEditFamily, "collections of "+m.family, strings.Join(familyTags(fam), ", "))
			}
		}

	case "D":
		if s.ViewMode() == model.CategoryCollection && m.cursorCategory() != "" && m.cursorCategory() != model.Uncategorized {
			m.state = StateConfirmDelete
		}

	case "l":
		if m.ensureSelection() {
			m.state = StateLanguage
			m.langCursor = 0
		}

	case "c":
		if s.SelectionLen() == 0 {
			break
		}
		if err := clipboard.WriteAll(s.SelectedNames()); err != nil {
			m.status = errorStyle.Render("Clipboard unavailable: " + err.Error())
		} else {
			m.status = successStyle.Render(fmt.Sprintf("Copied %d font name(s)", s.SelectionLen()))
		}

	case "e":
		if s.SelectionLen() == 0 {
			m.clickCursor(selection.Modifiers{})
		}
		return m.startExport()
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.app.Store

	switch msg.String() {
	case "esc":
		if m.state == StateSearch {
			s.SetQuery("")
			m.clampCursor()
		}
		m.state = StateBrowse
		m.textInput.Blur()
		return m, nil

	case "tab":
		if m.state == StateAddTag {
			if sugg := s.TagSuggestions(m.textInput.Value(), nil); len(sugg) > 0 {
				m.textInput.SetValue(sugg[0])
				m.textInput.CursorEnd()
			}
		}
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.textInput.Value())
		state := m.state
		m.state = StateBrowse
		m.textInput.Blur()
		if value == "" && state != StateSearch && state != StateEditFamily {
			return m, nil
		}
		switch state {
		case StateSearch:
			s.SetQuery(value)
			m.clampCursor()
			return m, nil
		case StateAddTag:
			s.MoveSelectionToCollection("", value)
		case StateRemoveTag:
			s.BulkUpdateTags(nil, []string{value})
		case StateRenameCollection:
			s.RenameCollection(m.cursorCategory(), value)
		case StateEditFamily:
			s.UpdateFamily(m.family, strings.Split(value, ","), "")
		}
		m.clampCursor()
		return m, m.persist()
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.state == StateSearch {
		s.SetQuery(m.textInput.Value())
		m.clampCursor()
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.state = StateBrowse
	if msg.String() != "y" {
		return m, nil
	}
	m.app.Store.DeleteCollection(m.cursorCategory())
	m.clampCursor()
	return m, m.persist()
}

func (m Model) updateLanguage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	langs := classify.Languages()
	switch msg.String() {
	case "up", "k":
		if m.langCursor > 0 {
			m.langCursor--
		}
	case "down", "j":
		if m.langCursor < len(langs)-1 {
			m.langCursor++
		}
	case "esc":
		m.state = StateBrowse
	case "enter":
		m.state = StateBrowse
		m.app.Store.BulkSetLanguage(langs[m.langCursor])
		m.clampCursor()
		return m, m.persist()
	}
	return m, nil
}

func (m Model) startInput(state State, placeholder, value string) (tea.Model, tea.Cmd) {
	m.state = state
	m.textInput.Placeholder = placeholder
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
	return m, m.textInput.Focus()
}

func (m Model) startExport() (tea.Model, tea.Cmd) {
	fonts := m.app.ExportTargets(nil)
	if len(fonts) == 0 {
		return m, nil
	}

	m.state = StateExporting
	m.logs = nil
	m.fetched, m.failed, m.total = 0, 0, int32(len(fonts))
	m.events = make(chan export.ProgressEvent, 64)

	events := m.events
	m.exporter = m.app.Exporter(func(e export.ProgressEvent) {
		select {
		case events <- e:
		default:
		}
	})

	exporter, ctx := m.exporter, m.ctx
	run := func() tea.Msg {
		res, err := exporter.Export(ctx, fonts)
		close(events)
		return ExportDoneMsg{Result: res, Err: err}
	}
	return m, tea.Batch(run, waitForEvent(events), m.tickProgress(), m.spinner.Tick)
}

// waitForEvent returns a command that delivers the next progress event.
func waitForEvent(ch <-chan export.ProgressEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return ProgressMsg{Event: e}
	}
}

// persist writes a snapshot of the fonts to the overlay in the background.
// Snapshots carry the Store version so a late older one cannot overwrite
// a newer save.
func (m Model) persist() tea.Cmd {
	a, fonts, version := m.app, m.app.Store.Fonts(), m.app.Store.Version()
	return func() tea.Msg {
		return PersistDoneMsg{Err: a.PersistFonts(context.Background(), fonts, version)}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.app.Store.DisplayOrder())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) clickCursor(mods selection.Modifiers) {
	m.app.Store.SelectAt(m.cursor, mods)
}

// cursorFont returns the identity of the font under the cursor.
func (m Model) cursorFont() (string, bool) {
	order := m.app.Store.DisplayOrder()
	if m.cursor < 0 || m.cursor >= len(order) {
		return "", false
	}
	return order[m.cursor].ID(), true
}

// familyTags returns the collections shared by every font of fam,
// without Uncategorized.
func familyTags(fam model.FontFamily) []string {
	var tags []string
	for i, f := range fam.Fonts {
		var keep []string
		for _, t := range f.Tags {
			if t == model.Uncategorized {
				continue
			}
			if i == 0 || slices.Contains(tags, t) {
				keep = append(keep, t)
			}
		}
		tags = keep
	}
	return tags
}

// ensureSelection selects the font under the cursor when nothing is
// selected and reports whether there is a selection to act on.
func (m *Model) ensureSelection() bool {
	if m.app.Store.SelectionLen() == 0 {
		m.clickCursor(selection.Modifiers{})
	}
	return m.app.Store.SelectionLen() > 0
}

// cursorCategory returns the category heading above the cursor.
func (m Model) cursorCategory() string {
	for _, r := range m.rows() {
		if r.font != nil && r.pos == m.cursor {
			return r.category
		}
	}
	return ""
}

func (m Model) rows() []row {
	var rows []row
	pos := 0
	for _, c := range m.app.Store.Displayed() {
		rows = append(rows, row{category: c.Name, pos: -1})
		for _, fam := range c.Families {
			for i := range fam.Fonts {
				rows = append(rows, row{category: c.Name, font: &fam.Fonts[i], pos: pos})
				pos++
			}
		}
	}
	return rows
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Hurufa"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.summary()))
	b.WriteString("\n\n")

	switch m.state {
	case StateBrowse, StateSearch, StateAddTag, StateRemoveTag, StateRenameCollection, StateEditFamily, StateConfirmDelete:
		b.WriteString(m.viewBrowse())
	case StateLanguage:
		b.WriteString(m.viewLanguage())
	case StateExporting:
		b.WriteString(m.viewExporting())
	case StateExportDone:
		b.WriteString(m.viewExportDone())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) summary() string {
	s := m.app.Store
	mode := "by collection"
	if s.ViewMode() == model.CategoryLanguage {
		mode = "by language"
	}
	out := fmt.Sprintf("%d fonts • %d families • %s • %d selected",
		len(s.Fonts()), len(s.Families()), m.title.String(mode), s.SelectionLen())
	if q := s.Query(); q != "" {
		out += fmt.Sprintf(" • filter %q", q)
	}
	return out
}

func (m Model) viewBrowse() string {
	var b strings.Builder
	s := m.app.Store
	prefs := s.Prefs()

	var lines []string
	cursorLine := 0
	for _, r := range m.rows() {
		if r.font == nil {
			lines = append(lines, categoryStyle.Render(fmt.Sprintf("▸ %s", r.category)))
			continue
		}
		mark := "[ ]"
		if s.IsSelected(r.font.ID()) {
			mark = "[×]"
		}
		line := fmt.Sprintf("  %s %-28s %-16s %s", mark, s.FamilyName(r.font.ID()), r.font.Style, dimStyle.Render(r.font.Language))
		if r.pos == m.cursor {
			cursorLine = len(lines)
			line = cursorStyle.Render(line)
			if prefs.CustomText != "" {
				line += "  " + infoStyle.Render(prefs.CustomText)
			}
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		b.WriteString(dimStyle.Render("  No fonts to show"))
		b.WriteString("\n")
	} else {
		b.WriteString(strings.Join(window(lines, cursorLine, m.listHeight()), "\n"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.state {
	case StateSearch, StateAddTag, StateRemoveTag, StateRenameCollection, StateEditFamily:
		b.WriteString(subtitleStyle.Render(m.title.String(m.textInput.Placeholder) + ":"))
		b.WriteString(" ")
		b.WriteString(m.textInput.View())
		b.WriteString("\n")
		if m.state == StateAddTag {
			if sugg := s.TagSuggestions(m.textInput.Value(), nil); len(sugg) > 0 {
				b.WriteString(dimStyle.Render("  " + strings.Join(sugg, ", ")))
				b.WriteString("\n")
			}
		}
	case StateConfirmDelete:
		b.WriteString(warningStyle.Render(fmt.Sprintf("Delete collection %q? (y/n)", m.cursorCategory())))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) listHeight() int {
	h := m.height - 10
	if h < 5 {
		h = 5
	}
	return h
}

// window returns at most height lines of lines keeping index in view.
func window(lines []string, index, height int) []string {
	if len(lines) <= height {
		return lines
	}
	start := index - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}

func (m Model) viewLanguage() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Set language for %d font(s):", m.app.Store.SelectionLen())))
	b.WriteString("\n\n")
	for i, lang := range classify.Languages() {
		if i == m.langCursor {
			b.WriteString(cursorStyle.Render("› " + lang))
		} else {
			b.WriteString("  " + lang)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewExporting() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Exporting fonts..."))
	b.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.fetched+m.failed) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Fonts: %d/%d | Failed: %d", m.fetched, m.total, m.failed)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewExportDone() string {
	var b strings.Builder

	if m.result.Cancelled || m.result.Path == "" {
		b.WriteString(dimStyle.Render("Nothing was saved."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"Export Complete!\n\n"+
			"File: %s\n"+
			"Fonts: %d\n"+
			"Skipped: %d",
		m.result.Path,
		m.result.Exported,
		len(m.result.Failed),
	)))
	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Export failed:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case export.LevelError:
			style = errorStyle
			prefix = "✗"
		case export.LevelWarning:
			style = warningStyle
			prefix = "!"
		case export.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case export.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateBrowse:
		return "space: select • t: toggle • s/J/K: range • a: all • C: category • esc: clear • /: search • +/-: collection • f: family collections • l: language • R/D: rename/delete • v: view • c: copy • e: export • q: quit"
	case StateSearch, StateRemoveTag, StateRenameCollection:
		return "enter: apply • esc: cancel"
	case StateEditFamily:
		return "comma separated • enter: apply • esc: cancel"
	case StateAddTag:
		return "enter: apply • tab: complete • esc: cancel"
	case StateConfirmDelete:
		return "y: delete • any other key: cancel"
	case StateLanguage:
		return "↑/↓: choose • enter: apply • esc: cancel"
	case StateExporting:
		return "ctrl+c: quit"
	case StateExportDone, StateError:
		return "enter: back • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(a *app.App) error {
	p := tea.NewProgram(NewModel(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
