// Package names provides database operations for name records.
//
// This package implements the NameStore interface defined in
// internal/http/names_api.go.
package names

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/nameboard/internal/entities"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("name not found")

// Repository handles all name database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new names repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every record in insertion order.
func (r *Repository) List() ([]entities.Name, error) {
	names := []entities.Name{}
	err := r.db.Order("created_at ASC, id ASC").Find(&names).Error
	return names, err
}

// Get returns the record with id.
func (r *Repository) Get(id string) (*entities.Name, error) {
	var name entities.Name
	err := r.db.Where("id = ?", id).First(&name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &name, nil
}

// Create stores a new record under a fresh UUID.
func (r *Repository) Create(firstName string, liked bool) (*entities.Name, error) {
	name := &entities.Name{
		ID:        uuid.NewString(),
		FirstName: firstName,
		Liked:     liked,
	}
	if err := r.db.Create(name).Error; err != nil {
		return nil, err
	}
	return name, nil
}

// Update applies the non-nil fields of patch and returns the result.
func (r *Repository) Update(id string, patch entities.NamePatch) (*entities.Name, error) {
	updates := map[string]any{}
	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.Liked != nil {
		updates["liked"] = *patch.Liked
	}

	if len(updates) > 0 {
		result := r.db.Model(&entities.Name{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.Get(id)
}

// Delete removes the record with id.
func (r *Repository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&entities.Name{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
