package board

import "github.com/mrlokans/nameboard/internal/entities"

// Interaction is the client-only part of the board. It is never sent to the
// names API.
type Interaction struct {
	// EditID is the record being edited, empty when idle.
	EditID   string `json:"editId,omitempty"`
	EditText string `json:"editText,omitempty"`

	// HighlightedID is the record picked by the random button, empty when
	// nothing is highlighted.
	HighlightedID string `json:"highlightedId,omitempty"`

	ShowScrollTop bool `json:"showScrollTop"`

	// Draft is the text of the "add name" field.
	Draft string `json:"draft,omitempty"`
}

// Editing reports whether the edit flow is in the Editing state.
func (i Interaction) Editing() bool {
	return i.EditID != ""
}

// State is everything the board renders from.
type State struct {
	Names       []entities.Name
	Interaction Interaction
}

// The reducers below are pure: they never modify their input and return the
// next state. Names slices are replaced, never patched.

func find(names []entities.Name, id string) (entities.Name, bool) {
	for _, n := range names {
		if n.ID == id {
			return n, true
		}
	}
	return entities.Name{}, false
}

// replaceNames installs a freshly fetched list. Edit and highlight state
// pointing at a record that no longer exists is dropped.
func replaceNames(s State, names []entities.Name) State {
	s.Names = names
	if s.Interaction.Editing() {
		if _, ok := find(names, s.Interaction.EditID); !ok {
			s.Interaction.EditID, s.Interaction.EditText = "", ""
		}
	}
	if s.Interaction.HighlightedID != "" {
		if _, ok := find(names, s.Interaction.HighlightedID); !ok {
			s.Interaction.HighlightedID = ""
		}
	}
	return s
}

// startEdit moves Idle (or another edit) to Editing, seeded with the current
// first name. Unknown ids leave the state unchanged.
func startEdit(s State, id string) (State, bool) {
	n, ok := find(s.Names, id)
	if !ok {
		return s, false
	}
	s.Interaction.EditID = n.ID
	s.Interaction.EditText = n.FirstName
	return s, true
}

func setEditText(s State, text string) State {
	if s.Interaction.Editing() {
		s.Interaction.EditText = text
	}
	return s
}

// cancelEdit and editSaved both return to Idle, discarding the text.
func cancelEdit(s State) State {
	s.Interaction.EditID, s.Interaction.EditText = "", ""
	return s
}

// editSaved returns to Idle only if id is still the record being edited.
func editSaved(s State, id string) State {
	if s.Interaction.EditID != id {
		return s
	}
	return cancelEdit(s)
}

func setDraft(s State, text string) State {
	s.Interaction.Draft = text
	return s
}

// draftSubmitted clears the draft unless it was changed while the create
// was in flight.
func draftSubmitted(s State, submitted string) State {
	if s.Interaction.Draft == submitted {
		s.Interaction.Draft = ""
	}
	return s
}

func highlight(s State, id string) State {
	s.Interaction.HighlightedID = id
	return s
}

// clearHighlight only clears id; a newer highlight survives.
func clearHighlight(s State, id string) State {
	if s.Interaction.HighlightedID == id {
		s.Interaction.HighlightedID = ""
	}
	return s
}

// scrolled shows the scroll-to-top affordance strictly past threshold.
func scrolled(s State, offset, threshold int) State {
	s.Interaction.ShowScrollTop = offset > threshold
	return s
}
