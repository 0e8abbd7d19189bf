package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrlokans/nameboard/internal/board"
	"github.com/mrlokans/nameboard/internal/entities"
)

// Board is the part of board.Controller the terminal client drives.
type Board interface {
	View() board.View
	Resync(ctx context.Context) error

	SetDraft(text string)
	Create(ctx context.Context, firstName string) error

	StartEdit(id string) bool
	SetEditText(text string)
	CancelEdit()
	SaveEdit(ctx context.Context) error

	ToggleLike(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	PickRandom() board.Outcome
	JumpTo(letter string) board.Outcome
	Scrolled(offset int) bool
}

// RefreshMsg asks the model to re-read the board. It is sent whenever the
// controller reports a change.
type RefreshMsg struct{}

type resyncDoneMsg struct{ err error }

type mutationDoneMsg struct {
	op  string
	err error
}

const (
	opCreate = "create"
	opSave   = "save"
	opLike   = "like"
	opDelete = "delete"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

// Lines taken by the title, the jump bar, the status line and the help line.
const chromeLines = 4

// row is one line of the board body: a group header or a name.
type row struct {
	letter string
	name   entities.Name
	header bool
}

func (r row) anchor() string {
	if r.header {
		return board.LetterAnchor(r.letter)
	}
	return board.NameAnchor(r.name.ID)
}

// Model is the bubbletea model of the terminal board.
type Model struct {
	ctx   context.Context
	board Board
	keys  KeyMap
	theme Theme

	snapshot board.View
	rows     []row

	// cursor indexes rows; offset is the first visible row and doubles as
	// the scroll offset reported to the board, in lines.
	cursor    int
	offset    int
	scrollTop bool

	mode   mode
	input  textinput.Model
	status string

	width  int
	height int
}

// NewModel creates a model over b. Call Init (or run it in a tea.Program)
// to load the board.
func NewModel(ctx context.Context, b Board) Model {
	input := textinput.New()
	input.Prompt = "› "
	input.CharLimit = 120

	m := Model{
		ctx:   ctx,
		board: b,
		keys:  DefaultKeyMap,
		theme: DefaultTheme,
		input: input,
	}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.resync()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.setOffset(m.offset)
		return m, nil

	case RefreshMsg, resyncDoneMsg:
		m.reload()
		return m, nil

	case mutationDoneMsg:
		m.reload()
		m.finishMutation(msg)
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeBrowse {
			return m.updateBrowse(msg)
		}
		return m.updateInput(msg)
	}

	if m.mode != modeBrowse {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.visibleRows())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.visibleRows())
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.setOffset(0)
	case key.Matches(msg, m.keys.Jump):
		m.follow(m.board.JumpTo(msg.String()))
	case key.Matches(msg, m.keys.Random):
		outcome := m.board.PickRandom()
		m.reload()
		m.follow(outcome)

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.Placeholder = "New name"
		m.input.SetValue(m.snapshot.Interaction.Draft)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Edit):
		n, ok := m.selected()
		if !ok || !m.board.StartEdit(n.ID) {
			return m, nil
		}
		m.reload()
		m.mode = modeEdit
		m.input.Placeholder = ""
		m.input.SetValue(m.snapshot.Interaction.EditText)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Like):
		if n, ok := m.selected(); ok {
			return m, m.mutate(opLike, func(ctx context.Context) error {
				return m.board.ToggleLike(ctx, n.ID)
			})
		}
	case key.Matches(msg, m.keys.Delete):
		if n, ok := m.selected(); ok {
			return m, m.mutate(opDelete, func(ctx context.Context) error {
				return m.board.Delete(ctx, n.ID)
			})
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.resync()
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.mode == modeEdit {
			m.board.CancelEdit()
		}
		m.leaveInput()
		m.reload()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.mode == modeAdd {
			text := m.input.Value()
			return m, m.mutate(opCreate, func(ctx context.Context) error {
				return m.board.Create(ctx, text)
			})
		}
		return m, m.mutate(opSave, m.board.SaveEdit)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeAdd {
		m.board.SetDraft(m.input.Value())
	} else {
		m.board.SetEditText(m.input.Value())
	}
	return m, cmd
}

// finishMutation leaves text entry once the board accepted it. A rejected
// create keeps its draft and a rejected save stays in the edit flow.
func (m *Model) finishMutation(msg mutationDoneMsg) {
	switch msg.op {
	case opCreate:
		if m.mode != modeAdd {
			return
		}
		if msg.err == nil && m.snapshot.Interaction.Draft == "" {
			m.leaveInput()
			return
		}
		m.input.SetValue(m.snapshot.Interaction.Draft)
	case opSave:
		if m.mode == modeEdit && !m.snapshot.Interaction.Editing() {
			m.leaveInput()
		}
	}
}

func (m *Model) leaveInput() {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.Reset()
}

func (m Model) resync() tea.Cmd {
	ctx, b := m.ctx, m.board
	return func() tea.Msg {
		return resyncDoneMsg{err: b.Resync(ctx)}
	}
}

func (m Model) mutate(op string, call func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return mutationDoneMsg{op: op, err: call(ctx)}
	}
}

// reload takes a fresh snapshot and rebuilds the rows, keeping the cursor on
// the same row when it still exists.
func (m *Model) reload() {
	var current string
	if m.cursor < len(m.rows) {
		current = m.rows[m.cursor].anchor()
	}

	m.snapshot = m.board.View()
	rows := make([]row, 0, len(m.snapshot.Names)+len(m.snapshot.Groups))
	for _, g := range m.snapshot.Groups {
		rows = append(rows, row{letter: g.Letter, header: true})
		for _, n := range g.Names {
			rows = append(rows, row{letter: g.Letter, name: n})
		}
	}
	m.rows = rows

	m.cursor = min(m.cursor, max(len(m.rows)-1, 0))
	for i, r := range m.rows {
		if r.anchor() == current {
			m.cursor = i
			break
		}
	}

	if m.mode == modeEdit && !m.snapshot.Interaction.Editing() {
		m.leaveInput()
	}
	m.setOffset(m.offset)
}

func (m Model) selected() (entities.Name, bool) {
	if m.cursor >= len(m.rows) || m.rows[m.cursor].header {
		return entities.Name{}, false
	}
	return m.rows[m.cursor].name, true
}

// follow scrolls the target of a navigation intent to the top of the body,
// or shows its notice.
func (m *Model) follow(outcome board.Outcome) {
	if outcome.Notice != nil {
		m.status = outcome.Notice.Message
		return
	}
	for i, r := range m.rows {
		if r.anchor() == outcome.Target {
			m.cursor = i
			m.setOffset(i)
			return
		}
	}
}

func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.rows)-1, m.cursor+delta))

	visible := m.visibleRows()
	switch {
	case m.cursor < m.offset:
		m.setOffset(m.cursor)
	case m.cursor >= m.offset+visible:
		m.setOffset(m.cursor - visible + 1)
	}
}

func (m *Model) setOffset(offset int) {
	maxOffset := max(0, len(m.rows)-m.visibleRows())
	m.offset = max(0, min(offset, maxOffset))
	m.scrollTop = m.board.Scrolled(m.offset)
}

func (m Model) visibleRows() int {
	if m.height == 0 {
		return max(len(m.rows), 1)
	}
	body := m.height - chromeLines
	if m.mode == modeAdd {
		body--
	}
	return max(body, 1)
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteByte('\n')
	b.WriteString(m.renderJumpBar())
	b.WriteByte('\n')

	if m.mode == modeAdd {
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	}

	if m.snapshot.Empty() {
		b.WriteString(m.theme.Muted.Render("No names yet. Press a to add one."))
		b.WriteByte('\n')
	} else {
		end := min(len(m.rows), m.offset+m.visibleRows())
		for i := m.offset; i < end; i++ {
			b.WriteString(m.renderRow(i))
			b.WriteByte('\n')
		}
	}

	b.WriteString(m.renderStatus())
	b.WriteByte('\n')
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderTitle() string {
	count := fmt.Sprintf("%d names", len(m.snapshot.Names))
	if len(m.snapshot.Names) == 1 {
		count = "1 name"
	}
	return m.theme.Title.Render("NameBoard") + "  " + m.theme.Count.Render(count)
}

func (m Model) renderJumpBar() string {
	letters := make([]string, 0, len(board.Alphabet))
	for _, letter := range m.snapshot.Alphabet() {
		if m.snapshot.HasLetter(letter) {
			letters = append(letters, m.theme.LetterActive.Render(letter))
		} else {
			letters = append(letters, m.theme.LetterMissing.Render(letter))
		}
	}
	return strings.Join(letters, " ")
}

func (m Model) renderRow(i int) string {
	r := m.rows[i]
	if r.header {
		line := m.theme.GroupHeader.Render(r.letter)
		if i == m.cursor {
			line = m.theme.Selected.Render(r.letter)
		}
		return line
	}

	if m.mode == modeEdit && m.snapshot.IsEditing(r.name.ID) {
		return "  " + m.input.View()
	}

	heart := m.theme.Muted.Render("♡")
	if r.name.Liked {
		heart = m.theme.Liked.Render("♥")
	}

	style := m.theme.Name
	switch {
	case m.snapshot.IsHighlighted(r.name.ID):
		style = m.theme.Highlighted
	case i == m.cursor:
		style = m.theme.Selected
	}
	return "  " + heart + " " + style.Render(r.name.FirstName)
}

func (m Model) renderStatus() string {
	var parts []string
	if m.status != "" {
		parts = append(parts, m.theme.Notice.Render(m.status))
	}
	if m.scrollTop {
		parts = append(parts, m.theme.Muted.Render("↑ g back to top"))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderHelp() string {
	bindings := m.keys.browseHelp()
	if m.mode != modeBrowse {
		bindings = m.keys.inputHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, m.theme.HelpKey.Render(h.Key)+" "+m.theme.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
