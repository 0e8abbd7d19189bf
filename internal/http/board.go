package http

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/nameboard/internal/board"
	"github.com/mrlokans/nameboard/internal/demo"
	"github.com/mrlokans/nameboard/internal/security"
)

// Board is the state container the UI drives. Implemented by
// board.Controller.
type Board interface {
	View() board.View
	Resync(ctx context.Context) error
	Create(ctx context.Context, firstName string) error
	StartEdit(id string) bool
	SetEditText(text string)
	CancelEdit()
	SaveEdit(ctx context.Context) error
	ToggleLike(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	PickRandom() board.Outcome
	HighlightDuration() time.Duration
	JumpTo(letter string) board.Outcome
	Scrolled(offset int) bool
}

// NoticeStore carries one-shot notices across a redirect. Implemented by
// sessions.Manager.
type NoticeStore interface {
	PutNotice(ctx context.Context, message string)
	PopNotice(ctx context.Context) string
}

// BoardController serves the names board UI.
type BoardController struct {
	board   Board
	notices NoticeStore
}

func NewBoardController(b Board, notices NoticeStore) *BoardController {
	return &BoardController{board: b, notices: notices}
}

// BoardPageData is what board.html and its fragments render from.
type BoardPageData struct {
	View      board.View
	Notice    string
	DemoMode  bool
	CSRFField template.HTML
	CSRFToken string

	// RefreshAfterMs is set while a name is highlighted; the page reloads
	// the board once the highlight has cleared.
	RefreshAfterMs int64
}

// BoardResponse is the JSON form of the board.
type BoardResponse struct {
	Groups      []board.Group     `json:"groups"`
	Letters     []string          `json:"letters"`
	Total       int               `json:"total"`
	Interaction board.Interaction `json:"interaction"`
}

// ScrollTopData drives the back-to-top control. board.Interaction renders
// through the same template.
type ScrollTopData struct {
	ShowScrollTop bool `json:"showScrollTop"`
}

func newBoardResponse(v board.View) BoardResponse {
	groups := v.Groups
	if groups == nil {
		groups = []board.Group{}
	}
	letters := v.Letters
	if letters == nil {
		letters = []string{}
	}
	return BoardResponse{
		Groups:      groups,
		Letters:     letters,
		Total:       len(v.Names),
		Interaction: v.Interaction,
	}
}

func (bc *BoardController) pageData(c *gin.Context, notice string) BoardPageData {
	enabled, _ := c.Get(demo.ContextKeyDemoMode)
	demoMode, _ := enabled.(bool)

	data := BoardPageData{
		View:      bc.board.View(),
		Notice:    notice,
		DemoMode:  demoMode,
		CSRFField: security.CSRFTokenField(c),
		CSRFToken: security.GetCSRFToken(c),
	}
	if data.View.Interaction.HighlightedID != "" {
		data.RefreshAfterMs = bc.board.HighlightDuration().Milliseconds()
	}
	return data
}

// respond finishes an intent. HTMX clients get the re-rendered board with
// scroll and notice events; plain form posts are redirected back to the page,
// at the scroll target when there is one.
func (bc *BoardController) respond(c *gin.Context, outcome board.Outcome) {
	var notice string
	if outcome.Notice != nil {
		notice = outcome.Notice.Message
	}

	if isHTMXRequest(c) {
		events := map[string]any{}
		if outcome.Target != "" {
			events["scrollTo"] = gin.H{"target": outcome.Target}
		}
		if notice != "" {
			events["showNotice"] = gin.H{"message": notice}
		}
		if len(events) > 0 {
			if payload, err := json.Marshal(events); err == nil {
				c.Header("HX-Trigger-After-Settle", string(payload))
			}
		}
		c.HTML(http.StatusOK, "board_fragment", bc.pageData(c, notice))
		return
	}

	if notice != "" && bc.notices != nil {
		bc.notices.PutNotice(c.Request.Context(), notice)
	}
	location := "/"
	if outcome.Target != "" {
		location += "#" + outcome.Target
	}
	c.Redirect(http.StatusSeeOther, location)
}

// BoardPage renders the whole page.
// GET /
func (bc *BoardController) BoardPage(c *gin.Context) {
	var notice string
	if bc.notices != nil {
		notice = bc.notices.PopNotice(c.Request.Context())
	}
	c.HTML(http.StatusOK, "board.html", bc.pageData(c, notice))
}

// BoardFragment renders the board without the page chrome for HTMX, or the
// board as JSON otherwise.
// GET /ui/board
func (bc *BoardController) BoardFragment(c *gin.Context) {
	if isHTMXRequest(c) {
		c.HTML(http.StatusOK, "board_fragment", bc.pageData(c, ""))
		return
	}
	c.JSON(http.StatusOK, newBoardResponse(bc.board.View()))
}

// BoardJSON returns the view model.
// GET /api/board
func (bc *BoardController) BoardJSON(c *gin.Context) {
	c.JSON(http.StatusOK, newBoardResponse(bc.board.View()))
}

// CreateName adds the submitted name. Failures leave the draft in place.
// POST /ui/names
func (bc *BoardController) CreateName(c *gin.Context) {
	_ = bc.board.Create(c.Request.Context(), c.PostForm("firstName"))
	bc.respond(c, board.Outcome{})
}

// StartEdit switches a card into its edit form.
// POST /ui/names/:id/edit
func (bc *BoardController) StartEdit(c *gin.Context) {
	id := c.Param("id")
	if !bc.board.StartEdit(id) {
		bc.respond(c, board.Outcome{})
		return
	}
	bc.respond(c, board.Outcome{Target: board.NameAnchor(id)})
}

// CancelEdit discards the edit form.
// POST /ui/names/:id/edit/cancel
func (bc *BoardController) CancelEdit(c *gin.Context) {
	bc.board.CancelEdit()
	bc.respond(c, board.Outcome{Target: board.NameAnchor(c.Param("id"))})
}

// SaveEdit commits the submitted text for the card being edited. A save for
// a card that is not in edit mode re-enters edit mode first, so a form left
// open in another tab still saves.
// POST /ui/names/:id/save
func (bc *BoardController) SaveEdit(c *gin.Context) {
	id := c.Param("id")
	if !bc.board.View().IsEditing(id) && !bc.board.StartEdit(id) {
		bc.respond(c, board.Outcome{})
		return
	}
	bc.board.SetEditText(c.PostForm("firstName"))
	_ = bc.board.SaveEdit(c.Request.Context())
	bc.respond(c, board.Outcome{Target: board.NameAnchor(id)})
}

// ToggleLike flips the liked flag.
// POST /ui/names/:id/like
func (bc *BoardController) ToggleLike(c *gin.Context) {
	id := c.Param("id")
	_ = bc.board.ToggleLike(c.Request.Context(), id)
	bc.respond(c, board.Outcome{Target: board.NameAnchor(id)})
}

// DeleteName removes a name.
// POST /ui/names/:id/delete
func (bc *BoardController) DeleteName(c *gin.Context) {
	_ = bc.board.Delete(c.Request.Context(), c.Param("id"))
	bc.respond(c, board.Outcome{})
}

// Random highlights a random name and scrolls to it.
// POST /ui/random
func (bc *BoardController) Random(c *gin.Context) {
	bc.respond(c, bc.board.PickRandom())
}

// Jump scrolls to the group for a letter.
// GET /ui/jump/:letter
func (bc *BoardController) Jump(c *gin.Context) {
	bc.respond(c, bc.board.JumpTo(c.Param("letter")))
}

// Scroll reports the page offset. HTMX clients get the back-to-top control,
// empty while it is hidden; others get its visibility as JSON.
// POST /ui/scroll
func (bc *BoardController) Scroll(c *gin.Context) {
	offset, err := strconv.Atoi(strings.TrimSpace(c.PostForm("offset")))
	if err != nil {
		respondBadRequest(c, "invalid offset")
		return
	}

	respondHTMXOrJSON(c, http.StatusOK, "scroll_top", ScrollTopData{
		ShowScrollTop: bc.board.Scrolled(offset),
	})
}

// Resync reloads the board from the names API.
// POST /ui/resync
func (bc *BoardController) Resync(c *gin.Context) {
	_ = bc.board.Resync(c.Request.Context())
	bc.respond(c, board.Outcome{})
}
