package http

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/nameboard/internal/exporters"
)

// ExportController downloads the grouped board in one format.
type ExportController struct {
	board    Board
	exporter exporters.BoardExporter
}

func NewExportController(b Board, exporter exporters.BoardExporter) *ExportController {
	return &ExportController{board: b, exporter: exporter}
}

// Download streams the export as an attachment.
// GET /ui/export.xlsx, GET /ui/export.md
func (ec *ExportController) Download(c *gin.Context) {
	var buf bytes.Buffer
	result, err := ec.exporter.Export(&buf, ec.board.View().Groups)
	if err != nil {
		respondInternalError(c, err, "export board")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+ec.exporter.FileName()+`"`)
	c.Header("X-Names-Exported", strconv.Itoa(result.NamesProcessed))
	c.Data(http.StatusOK, ec.exporter.ContentType(), buf.Bytes())
}
