// Package audit keeps a file per accepted names API mutation, so changes made
// through the reference API can be traced after the fact.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Mutation is one accepted write against the names collection.
type Mutation struct {
	ID       string    `json:"id"`
	Op       string    `json:"op"`
	RecordID string    `json:"recordId,omitempty"`
	Payload  any       `json:"payload,omitempty"`
	At       time.Time `json:"at"`
}

type Auditor struct {
	AuditDir string
	Now      func() time.Time
}

func NewAuditor(auditDir string) *Auditor {
	return &Auditor{
		AuditDir: auditDir,
		Now:      time.Now,
	}
}

// Record saves m as indented JSON under a fresh UUID4 filename and returns
// that filename. ID and At are filled in when empty.
func (a *Auditor) Record(m Mutation) (string, error) {
	if err := a.ensureAuditDir(); err != nil {
		return "", fmt.Errorf("failed to ensure audit directory: %w", err)
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.At.IsZero() {
		now := time.Now
		if a.Now != nil {
			now = a.Now
		}
		m.At = now().UTC()
	}

	filename := fmt.Sprintf("%s.json", m.ID)

	jsonData, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal mutation to JSON: %w", err)
	}

	if err := os.WriteFile(filepath.Join(a.AuditDir, filename), jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}

	return filename, nil
}

// ensureAuditDir creates the audit directory if it doesn't exist
func (a *Auditor) ensureAuditDir() error {
	if _, err := os.Stat(a.AuditDir); os.IsNotExist(err) {
		if err := os.MkdirAll(a.AuditDir, 0755); err != nil {
			return fmt.Errorf("failed to create audit directory: %w", err)
		}
	}
	return nil
}
