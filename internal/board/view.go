package board

import "github.com/mrlokans/nameboard/internal/entities"

// View is an immutable snapshot of the board, ready to render.
type View struct {
	Names       []entities.Name
	Groups      []Group
	Letters     []string
	Interaction Interaction

	grouping Grouping
}

func newView(s State) View {
	g := GroupByLetter(s.Names)
	return View{
		Names:       s.Names,
		Groups:      g.Groups(),
		Letters:     g.Letters,
		Interaction: s.Interaction,
		grouping:    g,
	}
}

// Empty reports whether there is nothing to show.
func (v View) Empty() bool {
	return len(v.Names) == 0
}

// HasLetter reports whether the jump bar entry for letter has a target.
func (v View) HasLetter(letter string) bool {
	return v.grouping.Has(letter)
}

// IsEditing reports whether id is the record being edited.
func (v View) IsEditing(id string) bool {
	return v.Interaction.Editing() && v.Interaction.EditID == id
}

// IsHighlighted reports whether id is the randomly picked record.
func (v View) IsHighlighted(id string) bool {
	return id != "" && v.Interaction.HighlightedID == id
}

// Alphabet returns the jump bar letters.
func (v View) Alphabet() []string {
	return Alphabet
}
