package board

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mrlokans/nameboard/internal/entities"
	"github.com/mrlokans/nameboard/internal/namesapi"
)

// Alphabet is the jump bar, A through Z.
var Alphabet = strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "")

// Group is every name sharing one uppercase initial.
type Group struct {
	Letter string          `json:"letter"`
	Names  []entities.Name `json:"names"`
}

// Grouping maps initials to their names. Letters holds the keys of ByLetter
// in sorted order.
type Grouping struct {
	ByLetter map[string][]entities.Name
	Letters  []string
}

// GroupByLetter buckets names by the uppercase form of their first rune. The
// input is not modified; a stably sorted copy is grouped, so already sorted
// input keeps its order and regrouping a flattened grouping is a no-op.
// Names with an empty first name have no initial and are skipped.
func GroupByLetter(names []entities.Name) Grouping {
	sorted := make([]entities.Name, len(names))
	copy(sorted, names)
	namesapi.SortByFirstName(sorted)

	g := Grouping{ByLetter: make(map[string][]entities.Name)}
	for _, n := range sorted {
		letter := Initial(n.FirstName)
		if letter == "" {
			continue
		}
		if _, ok := g.ByLetter[letter]; !ok {
			g.Letters = append(g.Letters, letter)
		}
		g.ByLetter[letter] = append(g.ByLetter[letter], n)
	}
	sort.Strings(g.Letters)
	return g
}

// Initial returns the uppercase first rune of s, or "" for an empty string.
func Initial(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r))
}

// Groups returns the buckets in letter order.
func (g Grouping) Groups() []Group {
	groups := make([]Group, 0, len(g.Letters))
	for _, letter := range g.Letters {
		groups = append(groups, Group{Letter: letter, Names: g.ByLetter[letter]})
	}
	return groups
}

// Has reports whether any name starts with letter.
func (g Grouping) Has(letter string) bool {
	_, ok := g.ByLetter[letter]
	return ok
}

// Flatten concatenates the buckets in letter order.
func (g Grouping) Flatten() []entities.Name {
	var out []entities.Name
	for _, letter := range g.Letters {
		out = append(out, g.ByLetter[letter]...)
	}
	return out
}
