package board

import "fmt"

// NoticeKind identifies a user-facing notice.
type NoticeKind string

const (
	NoticeNoNamesAvailable NoticeKind = "no_names_available"
	NoticeNoNamesForLetter NoticeKind = "no_names_for_letter"
)

// Notice is a message shown to the user instead of scrolling.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

func noNamesAvailable() *Notice {
	return &Notice{Kind: NoticeNoNamesAvailable, Message: "There are no names available."}
}

func noNamesForLetter(letter string) *Notice {
	return &Notice{
		Kind:    NoticeNoNamesForLetter,
		Message: fmt.Sprintf("There are no names with the letter %s", letter),
	}
}

// Outcome is the result of a navigation intent: either a scroll target or
// a notice, never both.
type Outcome struct {
	Target string  `json:"target,omitempty"`
	Notice *Notice `json:"notice,omitempty"`
}

// LetterAnchor is the element id of a group header.
func LetterAnchor(letter string) string {
	return "letter-" + letter
}

// NameAnchor is the element id of a name card.
func NameAnchor(id string) string {
	return "name-" + id
}
