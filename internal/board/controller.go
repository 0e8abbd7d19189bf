// Package board holds the client-side core of the names board: the view
// derivation, the interaction state and the controller that turns user
// intents into API calls followed by a resync.
//
// # State
//
// The controller owns one State value. Every intent applies a pure reducer
// from state.go under the controller mutex; no lock is held while a request
// is in flight, so intents can overlap.
//
// # Mutate, then resync
//
// Mutations never patch the local list. A successful create, update or
// delete is followed by a full ListAll, and the fetched list replaces the
// local one wholesale. Each resync takes a ticket when it starts; a result
// is only applied if no newer resync has been applied already, so the most
// recently issued refresh wins.
package board

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/benbjohnson/clock"

	"github.com/mrlokans/nameboard/internal/entities"
	"github.com/mrlokans/nameboard/internal/namesapi"
)

// DefaultScrollThreshold is the offset past which the scroll-to-top
// affordance is shown.
const DefaultScrollThreshold = 200

var (
	// ErrNotEditing is returned by SaveEdit when the edit flow is idle.
	ErrNotEditing = errors.New("no edit in progress")

	// ErrUnknownName is returned for intents naming a record that is not on
	// the board.
	ErrUnknownName = errors.New("name is not on the board")
)

// Store is the remote store adapter the controller drives.
type Store interface {
	ListAll(ctx context.Context) ([]entities.Name, error)
	Create(ctx context.Context, firstName string) (*entities.Name, error)
	Update(ctx context.Context, id string, patch entities.NamePatch) (*entities.Name, error)
	Delete(ctx context.Context, id string) error
}

// Config tunes a Controller. Zero values pick the defaults.
type Config struct {
	HighlightDuration time.Duration
	ScrollThreshold   int

	Clock  clock.Clock
	Rand   func(n int) int
	Logger *slog.Logger

	// OnChange is called, without locks held, after a resync replaced the
	// list and after a highlight expired.
	OnChange func()
}

// Controller is the board's state container.
type Controller struct {
	store     Store
	threshold int
	rand      func(n int) int
	logger    *slog.Logger
	onChange  func()

	highlight *highlighter

	mu      sync.Mutex
	state   State
	issued  uint64
	applied uint64
}

// NewController creates a controller with an empty board. Call Resync to
// load it.
func NewController(store Store, cfg Config) *Controller {
	if cfg.HighlightDuration <= 0 {
		cfg.HighlightDuration = DefaultHighlightDuration
	}
	if cfg.ScrollThreshold <= 0 {
		cfg.ScrollThreshold = DefaultScrollThreshold
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.IntN
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Controller{
		store:     store,
		threshold: cfg.ScrollThreshold,
		rand:      cfg.Rand,
		logger:    cfg.Logger,
		onChange:  cfg.OnChange,
		highlight: newHighlighter(cfg.Clock, cfg.HighlightDuration),
	}
}

// Close cancels the pending highlight clear.
func (c *Controller) Close() {
	c.highlight.stop()
}

// View returns a snapshot of the current board.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return newView(c.state)
}

func (c *Controller) apply(reduce func(State) State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = reduce(c.state)
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Resync replaces the local list with a fresh copy from the store. On
// failure the previous list is kept.
func (c *Controller) Resync(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	ticket := c.issued
	c.mu.Unlock()

	names, err := c.store.ListAll(ctx)
	if err != nil {
		c.logger.Error("resync failed, keeping previous list", "error", err)
		return err
	}

	c.mu.Lock()
	if applied := c.applied; ticket <= applied {
		c.mu.Unlock()
		c.logger.Debug("dropping stale resync", "ticket", ticket, "applied", applied)
		return nil
	}
	c.applied = ticket
	c.state = replaceNames(c.state, names)
	c.mu.Unlock()

	c.changed()
	return nil
}

// mutate runs one store call and, if it succeeded, resyncs. Transport
// failures are logged; validation failures are rejected quietly.
func (c *Controller) mutate(ctx context.Context, op string, call func(context.Context) error) error {
	if err := call(ctx); err != nil {
		if namesapi.IsValidation(err) {
			c.logger.Debug("mutation rejected", "op", op, "error", err)
		} else {
			c.logger.Error("mutation failed", "op", op, "error", err)
		}
		return err
	}
	return c.Resync(ctx)
}

// SetDraft records the text of the "add name" field.
func (c *Controller) SetDraft(text string) {
	c.apply(func(s State) State { return setDraft(s, text) })
}

// Create adds a name. The draft is cleared only once the API accepted it.
func (c *Controller) Create(ctx context.Context, firstName string) error {
	c.SetDraft(firstName)

	var created bool
	err := c.mutate(ctx, "create", func(ctx context.Context) error {
		if _, err := c.store.Create(ctx, firstName); err != nil {
			return err
		}
		created = true
		c.apply(func(s State) State { return draftSubmitted(s, firstName) })
		return nil
	})
	if created && err != nil {
		c.logger.Warn("name created but resync failed", "error", err)
	}
	return err
}

// StartEdit enters the edit flow for id, seeded with its current name.
// It returns false if id is not on the board.
func (c *Controller) StartEdit(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, ok := startEdit(c.state, id)
	c.state = next
	return ok
}

// SetEditText updates the in-progress text. It is ignored when idle.
func (c *Controller) SetEditText(text string) {
	c.apply(func(s State) State { return setEditText(s, text) })
}

// CancelEdit discards the in-progress text and returns to idle.
func (c *Controller) CancelEdit() {
	c.apply(cancelEdit)
}

// SaveEdit commits the in-progress text. On success the edit flow returns to
// idle and the board resyncs; on failure it stays in Editing with the text
// intact.
func (c *Controller) SaveEdit(ctx context.Context) error {
	c.mu.Lock()
	id, text := c.state.Interaction.EditID, c.state.Interaction.EditText
	c.mu.Unlock()

	if id == "" {
		return ErrNotEditing
	}

	return c.mutate(ctx, "update", func(ctx context.Context) error {
		if _, err := c.store.Update(ctx, id, entities.RenamePatch(text)); err != nil {
			return err
		}
		c.apply(func(s State) State { return editSaved(s, id) })
		return nil
	})
}

// ToggleLike flips the liked flag of id.
func (c *Controller) ToggleLike(ctx context.Context, id string) error {
	c.mu.Lock()
	n, ok := find(c.state.Names, id)
	c.mu.Unlock()

	if !ok {
		return ErrUnknownName
	}

	return c.mutate(ctx, "toggle_like", func(ctx context.Context) error {
		_, err := c.store.Update(ctx, id, entities.LikedPatch(!n.Liked))
		return err
	})
}

// Delete removes id.
func (c *Controller) Delete(ctx context.Context, id string) error {
	return c.mutate(ctx, "delete", func(ctx context.Context) error {
		return c.store.Delete(ctx, id)
	})
}

// PickRandom highlights a uniformly random name and returns its anchor.
// Only names that appear on the board are candidates. The highlight clears
// itself after the configured duration; a later pick cancels the earlier
// clear.
func (c *Controller) PickRandom() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	candidates := GroupByLetter(c.state.Names).Flatten()
	if len(candidates) == 0 {
		return Outcome{Notice: noNamesAvailable()}
	}

	pick := candidates[c.rand(len(candidates))]
	c.state = highlight(c.state, pick.ID)
	c.highlight.schedule(pick.ID, c.expireHighlight)

	return Outcome{Target: NameAnchor(pick.ID)}
}

// HighlightDuration is how long a picked name stays highlighted.
func (c *Controller) HighlightDuration() time.Duration {
	return c.highlight.delay
}

// expireHighlight runs when the clear scheduled as seq fires. The check and
// the clear share c.mu with PickRandom, so a superseded timer never clears
// a newer pick of the same name.
func (c *Controller) expireHighlight(id string, seq uint64) {
	c.mu.Lock()
	if !c.highlight.current(seq) {
		c.mu.Unlock()
		return
	}
	c.state = clearHighlight(c.state, id)
	c.mu.Unlock()

	c.changed()
}

// JumpTo returns the anchor of the group for letter, or a notice if no name
// starts with it. Anything but a single character gets the notice.
func (c *Controller) JumpTo(letter string) Outcome {
	letter = strings.TrimSpace(letter)
	if utf8.RuneCountInString(letter) != 1 {
		return Outcome{Notice: noNamesForLetter(letter)}
	}
	letter = Initial(letter)

	c.mu.Lock()
	g := GroupByLetter(c.state.Names)
	c.mu.Unlock()

	if !g.Has(letter) {
		return Outcome{Notice: noNamesForLetter(letter)}
	}
	return Outcome{Target: LetterAnchor(letter)}
}

// Scrolled records the vertical scroll offset and returns whether the
// scroll-to-top affordance is visible.
func (c *Controller) Scrolled(offset int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = scrolled(c.state, offset, c.threshold)
	return c.state.Interaction.ShowScrollTop
}
