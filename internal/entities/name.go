package entities

import "time"

// Name is a single entry on the board. The API owns it; clients hold a
// read-mostly copy and never patch it in place.
type Name struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	FirstName string    `gorm:"index;size:256;not null" json:"firstName"`
	Liked     bool      `gorm:"not null;default:false" json:"liked"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Name) TableName() string {
	return "names"
}

// NamePatch is a partial update. Only non-nil fields are sent.
type NamePatch struct {
	FirstName *string `json:"firstName,omitempty"`
	Liked     *bool   `json:"liked,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p NamePatch) IsEmpty() bool {
	return p.FirstName == nil && p.Liked == nil
}

// RenamePatch builds a patch that only changes the first name.
func RenamePatch(firstName string) NamePatch {
	return NamePatch{FirstName: &firstName}
}

// LikedPatch builds a patch that only changes the liked flag.
func LikedPatch(liked bool) NamePatch {
	return NamePatch{Liked: &liked}
}
