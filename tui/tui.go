// Package tui is the interactive review screen: a filtered moment list
// next to a running mpv instance, with sequenced playback, flag toggles,
// and edit forms.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/user/match-moments-cli/gamelog"
	"github.com/user/match-moments-cli/mpv"
	"github.com/user/match-moments-cli/playback"
	"github.com/user/match-moments-cli/session"
	"github.com/user/match-moments-cli/tui/components"
	"github.com/user/match-moments-cli/tui/forms"
	"github.com/user/match-moments-cli/tui/styles"
)

const (
	// tickInterval is the interval for polling mpv status.
	tickInterval = 100 * time.Millisecond
	// messageDisplayDuration is how long transient messages stay visible.
	messageDisplayDuration = 3 * time.Second
)

// speedSteps are the playback speeds cycled with [ and ].
var speedSteps = []float64{0.25, 0.5, 0.75, 1, 1.25, 1.5, 2}

// tickMsg is sent on every tick interval to update playback status.
type tickMsg time.Time

// clearMessageMsg clears the transient message line.
type clearMessageMsg struct{}

// sequenceDoneMsg reports the end of a playback sequence.
type sequenceDoneMsg struct {
	err error
}

type pickerKind int

const (
	pickerNone pickerKind = iota
	pickerPlayer
	pickerAction
)

type formKind int

const (
	formNone formKind = iota
	formEdit
	formInsert
	formDelete
)

// Model is the Bubbletea model for the review screen.
type Model struct {
	client   *mpv.Client
	store    *gamelog.Store
	catalog  []string
	sessions *session.Store

	videoPath string
	logPath   string

	seq       *playback.Sequencer
	selection gamelog.Selection

	list      components.MomentListState
	statusBar components.StatusBarState

	picker     components.PickerState
	pickerOpen pickerKind

	form          *huh.Form
	formOpen      formKind
	formResult    forms.MomentFormResult
	editKey       uuid.UUID
	deleteKey     uuid.UUID
	deleteConfirm bool

	width    int
	height   int
	message  string
	msgIsErr bool
	quitting bool
	showHelp bool
}

// NewModel creates the review model. The session store may be nil when
// session persistence is unavailable.
func NewModel(client *mpv.Client, store *gamelog.Store, catalog []string, sessions *session.Store, videoPath, logPath string, timing playback.Timing) *Model {
	m := &Model{
		client:    client,
		store:     store,
		catalog:   catalog,
		sessions:  sessions,
		videoPath: videoPath,
		logPath:   logPath,
		seq:       playback.New(client, client, timing),
	}

	// The review always starts in match scope with the default action for
	// that scope.
	m.selection = gamelog.MatchSelection(gamelog.ActionAll)
	_, def := gamelog.ActionPicker(store, m.selection)
	m.selection.Action = def
	m.refresh()
	return m
}

// Init starts the mpv polling ticker.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.pollPlayer()
		return m, tickCmd()

	case clearMessageMsg:
		m.message = ""
		return m, nil

	case sequenceDoneMsg:
		if msg.err != nil {
			return m.showError(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.formOpen != formNone {
			return m.updateForm(msg)
		}
		if m.pickerOpen != pickerNone {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)
	}

	if m.formOpen != formNone {
		return m.updateForm(msg)
	}
	return m, nil
}

// handleKey handles normal-mode keys.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Pickers and mutation forms stay locked while a sequence runs: the
	// sequencer holds pointers into the queued moments, so an edit mid-run
	// would change the segments of the run itself.
	switch msg.String() {
	case "p", "c", "e", "i", "d":
		if m.seq.Running() {
			return m.showNotice("Sequence running; press a to stop")
		}
	}

	switch msg.String() {
	case "?":
		m.showHelp = true
		return m, nil

	case "q", "ctrl+c":
		m.quitting = true
		m.seq.Stop()
		m.saveSession()
		return m, tea.Quit

	case " ":
		if m.seq.Running() {
			return m.showNotice("Sequence running; press a to stop")
		}
		if _, err := m.client.TogglePause(); err != nil {
			return m.showError(err)
		}
		return m, nil

	case "j", "down":
		m.list.MoveDown()
		return m, nil

	case "k", "up":
		m.list.MoveUp()
		return m, nil

	case "[":
		return m.adjustSpeed(-1)

	case "]":
		return m.adjustSpeed(1)

	case "enter":
		return m.playSelected()

	case "a":
		return m.playAll()

	case "p":
		m.openPlayerPicker()
		return m, nil

	case "c":
		m.openActionPicker()
		return m, nil

	case "u":
		m.selection.ShowDeleted = !m.selection.ShowDeleted
		m.refresh()
		return m, nil

	case "m":
		return m.toggleFlag(gamelog.FlagMatchHighlight)

	case "g":
		return m.toggleFlag(gamelog.FlagPlayerHighlight)

	case "e":
		return m.openEditForm()

	case "i":
		return m.openInsertForm()

	case "d":
		return m.openDeleteForm()

	case "x":
		return m.exportLog()
	}
	return m, nil
}

// updatePicker handles keys while a picker modal is open.
func (m *Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pickerOpen = pickerNone
		return m, nil
	case "j", "down":
		m.picker.MoveDown()
		return m, nil
	case "k", "up":
		m.picker.MoveUp()
		return m, nil
	case "enter":
		entry := m.picker.Selected()
		kind := m.pickerOpen
		m.pickerOpen = pickerNone
		if entry == nil {
			return m, nil
		}
		switch kind {
		case pickerPlayer:
			m.applyScope(entry.Value)
		case pickerAction:
			m.selection.Action = entry.Value
			m.refresh()
		}
		return m, nil
	}
	return m, nil
}

// updateForm delegates messages to the active huh form and applies the
// result when it completes.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f, cmd := m.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		m.form = form
	}

	switch m.form.State {
	case huh.StateAborted:
		m.formOpen = formNone
		m.form = nil
		return m, nil
	case huh.StateCompleted:
		kind := m.formOpen
		m.formOpen = formNone
		m.form = nil
		return m.applyForm(kind)
	}
	return m, cmd
}

// applyForm commits a completed form to the store.
func (m *Model) applyForm(kind formKind) (tea.Model, tea.Cmd) {
	switch kind {
	case formEdit:
		req, err := m.formResult.EditRequest()
		if err != nil {
			return m.showError(err)
		}
		if err := m.store.Edit(m.editKey, req); err != nil {
			return m.showError(err)
		}
		m.refresh()
		return m.showNotice("Moment updated")

	case formInsert:
		req, err := m.formResult.InsertRequest()
		if err != nil {
			return m.showError(err)
		}
		if _, err := m.store.Insert(req); err != nil {
			return m.showError(err)
		}
		m.refresh()
		return m.showNotice("Moment added")

	case formDelete:
		if !m.deleteConfirm {
			return m, nil
		}
		if err := m.store.SoftDelete(m.deleteKey); err != nil {
			return m.showError(err)
		}
		m.refresh()
		return m.showNotice("Moment deleted")
	}
	return m, nil
}

// playSelected sequences the selected moment: caption overlay, then the
// segment from inpoint to outpoint.
func (m *Model) playSelected() (tea.Model, tea.Cmd) {
	if m.seq.Running() {
		return m.showNotice("Sequence running; press a to stop")
	}
	moment := m.list.Selected()
	if moment == nil {
		return m.showNotice("No moment selected")
	}
	seq := m.seq
	return m, func() tea.Msg {
		return sequenceDoneMsg{err: seq.PlayMoment(context.Background(), moment)}
	}
}

// playAll toggles sequence playback of every visible moment.
func (m *Model) playAll() (tea.Model, tea.Cmd) {
	if m.seq.Running() {
		m.seq.Stop()
		return m.showNotice("Stopping after current moment")
	}

	// Deleted moments shown in the audit view are never queued.
	var queue []*gamelog.Moment
	for _, moment := range m.list.Moments {
		if !moment.Deleted {
			queue = append(queue, moment)
		}
	}
	if len(queue) == 0 {
		return m.showNotice("Nothing to play in the current view")
	}

	seq := m.seq
	return m, func() tea.Msg {
		return sequenceDoneMsg{err: seq.PlayAll(context.Background(), queue)}
	}
}

// toggleFlag flips a highlight flag on the selected moment.
func (m *Model) toggleFlag(flag gamelog.Flag) (tea.Model, tea.Cmd) {
	moment := m.list.Selected()
	if moment == nil {
		return m.showNotice("No moment selected")
	}
	var value bool
	switch flag {
	case gamelog.FlagMatchHighlight:
		value = !moment.MatchHighlight
	case gamelog.FlagPlayerHighlight:
		value = !moment.PlayerHighlight
	}
	if err := m.store.SetFlag(moment.Key, flag, value); err != nil {
		return m.showError(err)
	}
	m.refresh()
	state := "off"
	if value {
		state = "on"
	}
	return m.showNotice(fmt.Sprintf("%s %s", flag, state))
}

// openPlayerPicker opens the scope picker: the whole-match entry plus
// every player from the log's directory.
func (m *Model) openPlayerPicker() {
	entries := []gamelog.PickerEntry{
		{Value: "", Label: "Match (All Players)"},
	}
	for _, p := range gamelog.PlayerPicker(m.store) {
		entries = append(entries, gamelog.PickerEntry{Value: p.ID, Label: p.Label})
	}

	current := ""
	if m.selection.Mode == gamelog.ScopePlayer {
		current = m.selection.PlayerID
	}
	m.picker = components.NewPicker("Choose scope", entries, current)
	m.pickerOpen = pickerPlayer
}

// openActionPicker opens the action filter picker for the current scope.
func (m *Model) openActionPicker() {
	entries, _ := gamelog.ActionPicker(m.store, m.selection)
	if len(entries) == 0 {
		return
	}
	m.picker = components.NewPicker("Choose action", entries, m.selection.Action)
	m.pickerOpen = pickerAction
}

// applyScope switches between match scope and a player scope, resetting
// the action filter to the new scope's default.
func (m *Model) applyScope(playerID string) {
	if playerID == "" {
		m.selection = gamelog.MatchSelection(gamelog.ActionAll)
	} else {
		m.selection = gamelog.PlayerSelection(playerID, gamelog.ActionAll)
	}
	_, def := gamelog.ActionPicker(m.store, m.selection)
	m.selection.Action = def
	m.list.SelectedIndex = 0
	m.list.ScrollOffset = 0
	m.refresh()
}

// openEditForm opens the edit form prefilled from the selected moment.
func (m *Model) openEditForm() (tea.Model, tea.Cmd) {
	moment := m.list.Selected()
	if moment == nil {
		return m.showNotice("No moment selected")
	}
	m.formResult = forms.MomentFormResult{
		PlayerID: moment.PlayerID,
		Event:    moment.Event,
		Inpoint:  gamelog.FormatTimecode(moment.Inpoint),
		Outpoint: gamelog.FormatTimecode(moment.Outpoint),
	}
	m.editKey = moment.Key
	m.form = forms.NewMomentForm("Edit Moment", m.store, m.catalog, &m.formResult)
	m.formOpen = formEdit
	return m, m.form.Init()
}

// openInsertForm opens the insert form seeded from the current playback
// position.
func (m *Model) openInsertForm() (tea.Model, tea.Cmd) {
	inpoint := 0
	if pos, err := m.client.Position(); err == nil {
		inpoint = int(pos)
	}
	m.formResult = forms.MomentFormResult{
		Inpoint:  gamelog.FormatTimecode(inpoint),
		Outpoint: gamelog.FormatTimecode(inpoint + 5),
	}
	if ids := m.store.PlayerIDs(); len(ids) > 0 {
		m.formResult.PlayerID = ids[0]
	}
	if m.selection.Mode == gamelog.ScopePlayer {
		m.formResult.PlayerID = m.selection.PlayerID
	}
	m.form = forms.NewMomentForm("Insert Moment", m.store, m.catalog, &m.formResult)
	m.formOpen = formInsert
	return m, m.form.Init()
}

// openDeleteForm opens the delete confirmation for the selected moment.
func (m *Model) openDeleteForm() (tea.Model, tea.Cmd) {
	moment := m.list.Selected()
	if moment == nil {
		return m.showNotice("No moment selected")
	}
	m.deleteKey = moment.Key
	m.deleteConfirm = false
	m.form = forms.NewConfirmDeleteForm(moment, &m.deleteConfirm)
	m.formOpen = formDelete
	return m, m.form.Init()
}

// exportLog writes the updated game log next to the loaded one.
func (m *Model) exportLog() (tea.Model, tea.Cmd) {
	dir := filepath.Dir(m.logPath)
	path := filepath.Join(dir, gamelog.ExportFilename)
	if err := gamelog.WriteExport(m.store, path); err != nil {
		return m.showError(err)
	}
	return m.showNotice("Exported " + path)
}

// adjustSpeed steps the playback speed through speedSteps.
func (m *Model) adjustSpeed(direction int) (tea.Model, tea.Cmd) {
	current := m.statusBar.Speed
	if current <= 0 {
		current = 1
	}
	idx := 0
	for i, s := range speedSteps {
		if s <= current {
			idx = i
		}
	}
	idx += direction
	if idx < 0 {
		idx = 0
	}
	if idx >= len(speedSteps) {
		idx = len(speedSteps) - 1
	}
	speed := speedSteps[idx]
	if err := m.client.SetSpeed(speed); err != nil {
		return m.showError(err)
	}
	m.statusBar.Speed = speed
	return m, nil
}

// pollPlayer refreshes the status bar from mpv.
func (m *Model) pollPlayer() {
	if m.client == nil || !m.client.IsConnected() {
		return
	}
	if paused, err := m.client.GetPaused(); err == nil {
		m.statusBar.Paused = paused
	}
	if pos, err := m.client.Position(); err == nil {
		m.statusBar.TimePos = pos
	}
	if duration, err := m.client.GetDuration(); err == nil {
		m.statusBar.Duration = duration
	}
	if speed, err := m.client.GetSpeed(); err == nil {
		m.statusBar.Speed = speed
	}
	m.statusBar.Sequencing = m.seq.Running()
	m.statusBar.ShowDeleted = m.selection.ShowDeleted
	m.statusBar.Scope = m.scopeLabel()
}

// refresh recomputes the visible moment list from the store and selection.
func (m *Model) refresh() {
	m.list.SetMoments(gamelog.VisibleMoments(m.store, m.selection))
}

// scopeLabel describes the active scope and action filter for the status bar.
func (m *Model) scopeLabel() string {
	var scope string
	switch m.selection.Mode {
	case gamelog.ScopePlayer:
		scope = "Player: " + m.selection.PlayerID
		if p, ok := m.store.Player(m.selection.PlayerID); ok && p.Name != "" {
			scope = "Player: " + p.Name
		}
	default:
		scope = "Match (All Players)"
	}
	switch m.selection.Action {
	case gamelog.ActionAll:
		return scope
	case gamelog.MatchHighlightsAction, gamelog.PlayerHighlightsAction:
		return scope + " · " + m.selection.Action
	default:
		return scope + " · " + m.selection.Action
	}
}

// saveSession records the resume position and speed for this video.
func (m *Model) saveSession() {
	if m.sessions == nil {
		return
	}
	speed := m.statusBar.Speed
	if speed <= 0 {
		speed = 1
	}
	_ = m.sessions.SaveResume(m.videoPath, m.statusBar.TimePos, speed)
}

func (m *Model) showNotice(text string) (tea.Model, tea.Cmd) {
	m.message = text
	m.msgIsErr = false
	return m, tea.Tick(messageDisplayDuration, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

func (m *Model) showError(err error) (tea.Model, tea.Cmd) {
	m.message = err.Error()
	m.msgIsErr = true
	return m, tea.Tick(messageDisplayDuration, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

// View renders the review screen.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	statusBar := components.StatusBar(m.statusBar, m.width)

	if m.showHelp {
		return statusBar + "\n" + components.HelpOverlay(m.width, m.height-1)
	}
	if m.formOpen != formNone && m.form != nil {
		return statusBar + "\n\n" + m.form.View()
	}
	if m.pickerOpen != pickerNone {
		return statusBar + "\n\n" + components.Picker(m.picker, m.width)
	}

	list := components.MomentList(m.list, m.width)
	timeline := components.Timeline(m.statusBar.TimePos, m.statusBar.Duration, m.list.Moments, m.width)

	messageLine := ""
	if m.message != "" {
		if m.msgIsErr {
			messageLine = styles.Warning.Render(" " + m.message)
		} else {
			messageLine = styles.Success.Render(" " + m.message)
		}
	}

	hints := styles.SecondaryText.Render(
		" enter play · a play all · p scope · c action · e edit · i insert · d delete · m/g flags · x export · ? help")

	body := strings.Join([]string{statusBar, list, timeline, messageLine, hints}, "\n")
	if pad := m.height - lipgloss.Height(body) - 1; pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return body
}

// Run starts the review screen.
func Run(client *mpv.Client, store *gamelog.Store, catalog []string, sessions *session.Store, videoPath, logPath string, timing playback.Timing) error {
	model := NewModel(client, store, catalog, sessions, videoPath, logPath, timing)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
