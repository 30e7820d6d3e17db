package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quicknotes/quicknotes/internal/service"
	"github.com/quicknotes/quicknotes/models"
)

type noteLoopMode int

const (
	modeList noteLoopMode = iota
	modeCreate
	modeEdit
	modeConfirmDelete
)

type noteLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	userID   int64

	notes   []models.Note
	idx     int
	loading bool
	offline bool
	mode    noteLoopMode
	status  string
	errMsg  string

	editor     textarea.Model
	editNoteID int64
	saving     bool

	logout bool
}

func newNoteLoopModel(ctx context.Context, services *service.ClientServices, userID int64) noteLoopModel {
	return noteLoopModel{
		ctx:      ctx,
		services: services,
		userID:   userID,
		loading:  true,
	}
}

func (m noteLoopModel) Init() tea.Cmd {
	return m.cmdLoadNotes()
}

func (m noteLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeTransportError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.offline = msg.fromCache
		m.notes = msg.notes
		if m.idx >= len(m.notes) {
			m.idx = len(m.notes) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case noteSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeTransportError(msg.err)
			return m, nil
		}
		m.mode = modeList
		m.status = "Note saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadNotes()

	case noteDeletedMsg:
		m.mode = modeList
		if msg.err != nil {
			m.errMsg = humanizeTransportError(msg.err)
			return m, nil
		}
		m.status = "Note deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadNotes()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeCreate || m.mode == modeEdit {
			return m.updateEditor(msg)
		}
		return m, nil
	}

	switch m.mode {
	case modeCreate, modeEdit:
		return m.updateEditorKey(keyMsg)
	case modeConfirmDelete:
		return m.updateConfirmKey(keyMsg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.notes)-1 {
			m.idx++
		}
	case "n":
		m.startEditor(0, "")
		return m, textarea.Blink
	case "e":
		note, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, nil
		}
		m.startEditor(note.NoteID, note.Content)
		return m, textarea.Blink
	case "d":
		if _, ok := m.current(); !ok {
			m.status = "No notes"
			return m, nil
		}
		m.mode = modeConfirmDelete
		return m, nil
	case "c":
		note, ok := m.current()
		if !ok {
			m.status = "No notes"
			return m, nil
		}
		if err := clipboard.WriteAll(note.Content); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied to clipboard"
	case "r":
		m.loading = true
		m.status = ""
		m.errMsg = ""
		return m, m.cmdLoadNotes()
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m noteLoopModel) updateEditorKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.mode = modeList
		m.saving = false
		m.errMsg = ""
		return m, nil
	case "ctrl+s":
		if m.saving {
			return m, nil
		}

		content := strings.TrimSpace(m.editor.Value())
		if content == "" {
			m.errMsg = "Note content cannot be empty"
			return m, nil
		}

		m.errMsg = ""
		m.saving = true
		if m.mode == modeEdit {
			return m, m.cmdUpdate(m.editNoteID, content)
		}
		return m, m.cmdCreate(content)
	case "ctrl+c":
		return m, tea.Quit
	}

	return m.updateEditor(keyMsg)
}

func (m noteLoopModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m noteLoopModel) updateConfirmKey(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y", "enter":
		note, ok := m.current()
		if !ok {
			m.mode = modeList
			return m, nil
		}
		return m, m.cmdDelete(note.NoteID)
	case "n", "esc":
		m.mode = modeList
	case "ctrl+c":
		return m, tea.Quit
	}

	return m, nil
}

func (m *noteLoopModel) startEditor(noteID int64, content string) {
	editor := textarea.New()
	editor.Placeholder = "Write your note..."
	editor.CharLimit = models.MaxNoteContentLength
	editor.SetWidth(60)
	editor.SetHeight(8)
	editor.SetValue(content)
	editor.Focus()

	m.editor = editor
	m.editNoteID = noteID
	m.saving = false
	m.errMsg = ""
	if noteID == 0 {
		m.mode = modeCreate
	} else {
		m.mode = modeEdit
	}
}

func (m noteLoopModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m noteLoopModel) View() string {
	switch m.mode {
	case modeCreate:
		return m.viewEditor("NEW NOTE")
	case modeEdit:
		return m.viewEditor(fmt.Sprintf("EDIT NOTE #%d", m.editNoteID))
	case modeConfirmDelete:
		return m.viewConfirm()
	}

	return m.viewList()
}

func (m noteLoopModel) viewList() string {
	var b strings.Builder

	if m.offline {
		b.WriteString(offlineStyle.Render("offline: showing cached notes"))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.notes) == 0:
		b.WriteString("No notes yet. Press n to write one.\n")
	default:
		for i, note := range m.notes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s#%-4d %s  %s\n",
				cursor,
				note.NoteID,
				note.UpdatedAt.Format("2006-01-02 15:04"),
				fitText(firstLine(note.Content), 40),
			))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render(errorStyle.Render("Error") + "\n\n" + m.errMsg + "\n\nr: retry"))
		b.WriteString("\n")
	}

	return renderPage(
		"NOTES",
		strings.TrimRight(b.String(), "\n"),
		"n: new │ e: edit │ d: delete │ c: copy │ r: refresh │ l: log out │ q: quit",
	)
}

func (m noteLoopModel) viewEditor(title string) string {
	var b strings.Builder
	b.WriteString(m.editor.View())
	b.WriteString("\n")

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "ctrl+s: save │ esc: cancel")
}

func (m noteLoopModel) viewConfirm() string {
	note, ok := m.current()
	if !ok {
		return m.viewList()
	}

	content := fmt.Sprintf("Delete note #%d (%s)?\n\ny: yes    n: no", note.NoteID, fitText(firstLine(note.Content), 30))
	return overlayBoxStyle.Render(content)
}

func (m noteLoopModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	userID := m.userID

	return func() tea.Msg {
		notes, fromCache, err := svc.List(ctx, userID)
		return notesLoadedMsg{notes: notes, fromCache: fromCache, err: err}
	}
}

func (m noteLoopModel) cmdCreate(content string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	userID := m.userID

	return func() tea.Msg {
		_, err := svc.Create(ctx, userID, content)
		return noteSavedMsg{err: err}
	}
}

func (m noteLoopModel) cmdUpdate(noteID int64, content string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	userID := m.userID

	return func() tea.Msg {
		_, err := svc.Update(ctx, noteID, userID, content)
		return noteSavedMsg{err: err}
	}
}

func (m noteLoopModel) cmdDelete(noteID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService
	userID := m.userID

	return func() tea.Msg {
		err := svc.Delete(ctx, noteID, userID)
		return noteDeletedMsg{err: err}
	}
}

func firstLine(content string) string {
	if idx := strings.IndexByte(content, '\n'); idx != -1 {
		return content[:idx]
	}
	return content
}
