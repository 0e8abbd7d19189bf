package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/nameboard/internal/audit"
	"github.com/mrlokans/nameboard/internal/database/names"
	"github.com/mrlokans/nameboard/internal/entities"
)

// NameStore is the persistence the reference names API serves from.
// Implemented by names.Repository.
type NameStore interface {
	List() ([]entities.Name, error)
	Get(id string) (*entities.Name, error)
	Create(firstName string, liked bool) (*entities.Name, error)
	Update(id string, patch entities.NamePatch) (*entities.Name, error)
	Delete(id string) error
}

// MutationRecorder keeps a trail of accepted writes. Implemented by
// audit.Auditor.
type MutationRecorder interface {
	Record(m audit.Mutation) (string, error)
}

// NamesAPIController serves the /names collection.
type NamesAPIController struct {
	store    NameStore
	recorder MutationRecorder
}

// NewNamesAPIController creates the controller. recorder may be nil.
func NewNamesAPIController(store NameStore, recorder MutationRecorder) *NamesAPIController {
	return &NamesAPIController{store: store, recorder: recorder}
}

// record never fails the request; a lost audit entry is only logged.
func (nc *NamesAPIController) record(op, id string, payload any) {
	if nc.recorder == nil {
		return
	}
	if _, err := nc.recorder.Record(audit.Mutation{Op: op, RecordID: id, Payload: payload}); err != nil {
		slog.Warn("failed to record mutation", "op", op, "id", id, "error", err)
	}
}

type CreateNameRequest struct {
	FirstName string `json:"firstName"`
	Liked     bool   `json:"liked"`
}

// ListNames returns every record.
// GET /names
func (nc *NamesAPIController) ListNames(c *gin.Context) {
	list, err := nc.store.List()
	if err != nil {
		respondInternalError(c, err, "list names")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetName returns one record.
// GET /names/:id
func (nc *NamesAPIController) GetName(c *gin.Context) {
	name, err := nc.store.Get(c.Param("id"))
	if errors.Is(err, names.ErrNotFound) {
		respondNotFound(c, "name")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get name")
		return
	}
	c.JSON(http.StatusOK, name)
}

// CreateName stores a new record.
// POST /names
func (nc *NamesAPIController) CreateName(c *gin.Context) {
	var req CreateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		respondValidationError(c, "firstName", "must not be empty")
		return
	}

	name, err := nc.store.Create(firstName, req.Liked)
	if err != nil {
		respondInternalError(c, err, "create name")
		return
	}
	nc.record("create", name.ID, CreateNameRequest{FirstName: firstName, Liked: req.Liked})
	respondCreated(c, name)
}

// UpdateName applies a partial update.
// PUT /names/:id
func (nc *NamesAPIController) UpdateName(c *gin.Context) {
	var patch entities.NamePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if patch.IsEmpty() {
		respondValidationError(c, "patch", "has no fields to update")
		return
	}
	if patch.FirstName != nil {
		trimmed := strings.TrimSpace(*patch.FirstName)
		if trimmed == "" {
			respondValidationError(c, "firstName", "must not be empty")
			return
		}
		patch.FirstName = &trimmed
	}

	name, err := nc.store.Update(c.Param("id"), patch)
	if errors.Is(err, names.ErrNotFound) {
		respondNotFound(c, "name")
		return
	}
	if err != nil {
		respondInternalError(c, err, "update name")
		return
	}
	nc.record("update", name.ID, patch)
	c.JSON(http.StatusOK, name)
}

// DeleteName removes a record. The response has no body.
// DELETE /names/:id
func (nc *NamesAPIController) DeleteName(c *gin.Context) {
	err := nc.store.Delete(c.Param("id"))
	if errors.Is(err, names.ErrNotFound) {
		respondNotFound(c, "name")
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete name")
		return
	}
	nc.record("delete", c.Param("id"), nil)
	c.Status(http.StatusNoContent)
}
