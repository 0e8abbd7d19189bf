package tui

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/nameboard/internal/board"
	"github.com/mrlokans/nameboard/internal/entities"
	"github.com/mrlokans/nameboard/internal/namesapi"
	"github.com/mrlokans/nameboard/internal/namesapi/namesapitest"
)

type fixture struct {
	srv   *namesapitest.Server
	board *board.Controller
	clock *clock.Mock
}

func newFixture(t *testing.T, threshold int, seed ...entities.Name) *fixture {
	t.Helper()
	srv := namesapitest.NewServer(t, seed...)
	mock := clock.NewMock()
	ctrl := board.NewController(namesapi.NewClient(srv.NamesURL()), board.Config{
		ScrollThreshold: threshold,
		Clock:           mock,
		Rand:            func(int) int { return 0 },
	})
	t.Cleanup(ctrl.Close)
	return &fixture{srv: srv, board: ctrl, clock: mock}
}

// start loads the board and gives the model a terminal of the given height.
func (f *fixture) start(t *testing.T, height int) Model {
	t.Helper()
	m := NewModel(context.Background(), f.board)
	m = settle(t, m, m.Init())
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: height})
	return m
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// settle runs cmd once and feeds its message back into the model.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = update(m, cmd())
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = update(m, keyMsg(k))
	}
	return m, cmd
}

func serverNames(srv *namesapitest.Server) []string {
	var out []string
	for _, n := range srv.Names() {
		out = append(out, n.FirstName)
	}
	return out
}

func TestModelView(t *testing.T) {
	f := newFixture(t, 0,
		entities.Name{FirstName: "Bob"},
		entities.Name{FirstName: "alice", Liked: true},
		entities.Name{FirstName: "carol"},
	)
	m := NewModel(context.Background(), f.board)
	assert.Equal(t, "Loading...", m.View())

	m = f.start(t, 30)
	view := m.View()

	assert.Contains(t, view, "NameBoard")
	assert.Contains(t, view, "3 names")
	assert.Contains(t, view, "♥")
	assert.Contains(t, view, "q quit")
	assert.Less(t, strings.Index(view, "alice"), strings.Index(view, "Bob"))
	assert.Less(t, strings.Index(view, "Bob"), strings.Index(view, "carol"))

	require.Len(t, m.rows, 6)
	assert.True(t, m.rows[0].header)
	assert.Equal(t, "A", m.rows[0].letter)
	assert.Equal(t, "alice", m.rows[1].name.FirstName)
}

func TestModelEmptyState(t *testing.T) {
	f := newFixture(t, 0)
	m := f.start(t, 20)

	assert.Contains(t, m.View(), "No names yet")
	assert.Contains(t, m.View(), "0 names")
}

func TestModelNavigation(t *testing.T) {
	f := newFixture(t, 0,
		entities.Name{FirstName: "alice"},
		entities.Name{FirstName: "Bob"},
	)
	m := f.start(t, 30)

	// Rows: [0]=A [1]=alice [2]=B [3]=Bob
	assert.Equal(t, 0, m.cursor)

	m, _ = press(m, "j")
	assert.Equal(t, 1, m.cursor)

	m, _ = press(m, "j", "j", "j", "j")
	assert.Equal(t, 3, m.cursor, "cursor stops on the last row")

	m, _ = press(m, "k")
	assert.Equal(t, 2, m.cursor)

	m, _ = press(m, "g")
	assert.Equal(t, 0, m.cursor)
}

func TestModelQuit(t *testing.T) {
	f := newFixture(t, 0)
	m := f.start(t, 20)

	_, cmd := press(m, "q")
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestModelAdd(t *testing.T) {
	t.Run("created name appears after resync", func(t *testing.T) {
		f := newFixture(t, 0, entities.Name{FirstName: "Bob"})
		m := f.start(t, 30)

		m, _ = press(m, "a")
		assert.Equal(t, modeAdd, m.mode)

		m, _ = press(m, "Zed")
		assert.Equal(t, "Zed", f.board.View().Interaction.Draft)

		m, cmd := press(m, "enter")
		m = settle(t, m, cmd)

		assert.Equal(t, modeBrowse, m.mode)
		assert.Equal(t, []string{"Bob", "Zed"}, serverNames(f.srv))
		assert.Empty(t, f.board.View().Interaction.Draft)
		assert.Contains(t, m.View(), "Zed")
	})

	t.Run("blank name is not sent", func(t *testing.T) {
		f := newFixture(t, 0)
		m := f.start(t, 30)

		m, _ = press(m, "a", "   ")
		m, cmd := press(m, "enter")
		m = settle(t, m, cmd)

		assert.Equal(t, modeAdd, m.mode)
		assert.Equal(t, []string{"GET /names"}, f.srv.Requests())
	})

	t.Run("failed create keeps the draft", func(t *testing.T) {
		f := newFixture(t, 0)
		m := f.start(t, 30)
		f.srv.FailWith(http.StatusInternalServerError)

		m, _ = press(m, "a", "Zed")
		m, cmd := press(m, "enter")
		m = settle(t, m, cmd)

		assert.Equal(t, modeAdd, m.mode)
		assert.Equal(t, "Zed", m.input.Value())
		assert.Equal(t, "Zed", f.board.View().Interaction.Draft)
	})

	t.Run("escape keeps the draft for later", func(t *testing.T) {
		f := newFixture(t, 0)
		m := f.start(t, 30)

		m, _ = press(m, "a", "Ze", "esc")
		assert.Equal(t, modeBrowse, m.mode)

		m, _ = press(m, "a")
		assert.Equal(t, "Ze", m.input.Value())
	})
}

func TestModelEdit(t *testing.T) {
	seed := []entities.Name{{FirstName: "alice"}, {FirstName: "Bob"}}

	t.Run("save renames and leaves edit mode", func(t *testing.T) {
		f := newFixture(t, 0, seed...)
		m := f.start(t, 30)

		m, _ = press(m, "j", "e")
		require.Equal(t, modeEdit, m.mode)
		assert.Equal(t, "alice", m.input.Value())
		assert.Equal(t, "id-1", f.board.View().Interaction.EditID)

		m, _ = press(m, " Jr")
		assert.Equal(t, "alice Jr", f.board.View().Interaction.EditText)

		m, cmd := press(m, "enter")
		m = settle(t, m, cmd)

		assert.Equal(t, modeBrowse, m.mode)
		assert.False(t, f.board.View().Interaction.Editing())
		assert.Equal(t, []string{"alice Jr", "Bob"}, serverNames(f.srv))
	})

	t.Run("escape discards the text", func(t *testing.T) {
		f := newFixture(t, 0, seed...)
		m := f.start(t, 30)

		m, _ = press(m, "j", "e", "xyz", "esc")

		assert.Equal(t, modeBrowse, m.mode)
		assert.False(t, f.board.View().Interaction.Editing())
		assert.Equal(t, []string{"alice", "Bob"}, serverNames(f.srv))
	})

	t.Run("failed save stays in edit mode", func(t *testing.T) {
		f := newFixture(t, 0, seed...)
		m := f.start(t, 30)

		m, _ = press(m, "j", "e", "!")
		f.srv.FailWith(http.StatusBadGateway)
		m, cmd := press(m, "enter")
		m = settle(t, m, cmd)

		assert.Equal(t, modeEdit, m.mode)
		assert.Equal(t, "alice!", m.input.Value())
		assert.Equal(t, "alice!", f.board.View().Interaction.EditText)
	})

	t.Run("headers cannot be edited", func(t *testing.T) {
		f := newFixture(t, 0, seed...)
		m := f.start(t, 30)

		m, cmd := press(m, "e")
		assert.Nil(t, cmd)
		assert.Equal(t, modeBrowse, m.mode)
	})
}

func TestModelLikeAndDelete(t *testing.T) {
	f := newFixture(t, 0,
		entities.Name{FirstName: "alice"},
		entities.Name{FirstName: "Bob"},
	)
	m := f.start(t, 30)

	m, cmd := press(m, "j", "l")
	m = settle(t, m, cmd)
	assert.True(t, f.srv.Names()[0].Liked)
	assert.True(t, f.board.View().Names[0].Liked)

	m, cmd = press(m, "d")
	m = settle(t, m, cmd)
	assert.Equal(t, []string{"Bob"}, serverNames(f.srv))
	assert.NotContains(t, m.View(), "alice")

	// Nothing selected on a header row.
	m, _ = press(m, "g")
	_, cmd = press(m, "l")
	assert.Nil(t, cmd)
}

func TestModelRandom(t *testing.T) {
	t.Run("highlights and scrolls to the pick", func(t *testing.T) {
		f := newFixture(t, 0,
			entities.Name{FirstName: "Bob"},
			entities.Name{FirstName: "alice"},
		)
		m := f.start(t, 30)

		m, _ = press(m, "r")

		assert.Empty(t, m.status)
		assert.Equal(t, "id-2", f.board.View().Interaction.HighlightedID)
		assert.Equal(t, 1, m.cursor)
		assert.Equal(t, "alice", m.rows[m.cursor].name.FirstName)

		f.clock.Add(board.DefaultHighlightDuration)
		require.Eventually(t, func() bool {
			return f.board.View().Interaction.HighlightedID == ""
		}, time.Second, 5*time.Millisecond)
		m, _ = update(m, RefreshMsg{})
		assert.False(t, m.snapshot.IsHighlighted("id-2"))
	})

	t.Run("empty board shows a notice", func(t *testing.T) {
		f := newFixture(t, 0)
		m := f.start(t, 30)

		m, _ = press(m, "r")
		assert.Equal(t, "There are no names available.", m.status)
		assert.Contains(t, m.View(), "There are no names available.")

		m, _ = press(m, "j")
		assert.Empty(t, m.status, "notice clears on the next key")
	})
}

func TestModelJump(t *testing.T) {
	f := newFixture(t, 0,
		entities.Name{FirstName: "alice"},
		entities.Name{FirstName: "Bob"},
	)
	m := f.start(t, 30)

	m, _ = press(m, "B")
	assert.Equal(t, 2, m.cursor)
	assert.True(t, m.rows[m.cursor].header)
	assert.Empty(t, m.status)

	m, _ = press(m, "Q")
	assert.Equal(t, "There are no names with the letter Q", m.status)
	assert.Equal(t, 2, m.cursor)
}

func TestModelScroll(t *testing.T) {
	var seed []entities.Name
	for _, n := range []string{"Ann", "Ben", "Cid", "Dan", "Eve", "Fay", "Gus", "Hal", "Ivy", "Jon", "Kim", "Lou"} {
		seed = append(seed, entities.Name{FirstName: n})
	}
	f := newFixture(t, 3, seed...)

	// 24 rows, 6 visible.
	m := f.start(t, 10)
	assert.Equal(t, 6, m.visibleRows())
	assert.False(t, m.scrollTop)
	assert.NotContains(t, m.View(), "back to top")

	m, _ = press(m, "K")
	assert.Equal(t, 20, m.cursor)
	assert.Equal(t, 18, m.offset)
	assert.True(t, m.scrollTop)
	assert.True(t, f.board.View().Interaction.ShowScrollTop)
	assert.Contains(t, m.View(), "back to top")
	assert.NotContains(t, m.View(), "Ann")

	m, _ = press(m, "g")
	assert.Equal(t, 0, m.offset)
	assert.False(t, m.scrollTop)
	assert.Contains(t, m.View(), "Ann")

	m, _ = press(m, "j", "j", "j", "j", "j", "j")
	assert.Equal(t, 6, m.cursor)
	assert.Equal(t, 1, m.offset, "cursor drags the viewport")
	assert.False(t, m.scrollTop)
}

func TestModelRefresh(t *testing.T) {
	f := newFixture(t, 0, entities.Name{FirstName: "alice"})
	m := f.start(t, 30)

	_, err := namesapi.NewClient(f.srv.NamesURL()).Create(context.Background(), "Bob")
	require.NoError(t, err)
	assert.NotContains(t, m.View(), "Bob")

	m, cmd := press(m, "ctrl+r")
	m = settle(t, m, cmd)
	assert.Contains(t, m.View(), "Bob")
}

func TestRefresherWithoutProgram(t *testing.T) {
	var r Refresher
	assert.NotPanics(t, r.Notify)
}
