// Package exporters writes the grouped board to downloadable formats.
package exporters

import (
	"io"

	"github.com/mrlokans/nameboard/internal/board"
)

// BoardExporter writes the groups of a board, in order, to w.
type BoardExporter interface {
	Export(w io.Writer, groups []board.Group) (ExportResult, error)
	ContentType() string
	FileName() string
}

type ExportResult struct {
	GroupsProcessed int `json:"groups_processed"`
	NamesProcessed  int `json:"names_processed"`
}
