package exporters

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mrlokans/nameboard/internal/board"
)

const (
	XLSXSheet       = "Names"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// XLSXExporter writes one row per name: Letter, First Name, Liked.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (exporter *XLSXExporter) ContentType() string {
	return xlsxContentType
}

func (exporter *XLSXExporter) FileName() string {
	return "names.xlsx"
}

func (exporter *XLSXExporter) Export(w io.Writer, groups []board.Group) (ExportResult, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", XLSXSheet); err != nil {
		return ExportResult{}, err
	}

	sw, err := f.NewStreamWriter(XLSXSheet)
	if err != nil {
		return ExportResult{}, err
	}
	if err := sw.SetRow("A1", []interface{}{"Letter", "First Name", "Liked"}); err != nil {
		return ExportResult{}, err
	}

	row := 2
	for _, g := range groups {
		for _, n := range g.Names {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := sw.SetRow(cell, []interface{}{g.Letter, n.FirstName, n.Liked}); err != nil {
				return ExportResult{}, err
			}
			row++
		}
	}
	if err := sw.Flush(); err != nil {
		return ExportResult{}, err
	}

	if _, err := f.WriteTo(w); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return countResult(groups), nil
}
