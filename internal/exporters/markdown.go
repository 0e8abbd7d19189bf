package exporters

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mrlokans/nameboard/internal/board"
)

// MarkdownExporter renders the board as a Markdown document with one
// section per letter.
type MarkdownExporter struct {
	Now func() time.Time
}

func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{Now: time.Now}
}

func (exporter *MarkdownExporter) ContentType() string {
	return "text/markdown; charset=utf-8"
}

func (exporter *MarkdownExporter) FileName() string {
	return "names.md"
}

func GenerateMarkdown(groups []board.Group, exportedAt time.Time) string {
	var builder strings.Builder

	names := 0
	for _, g := range groups {
		names += len(g.Names)
	}

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: names\n")
	fmt.Fprintf(&builder, "created_at: %s\n", exportedAt.Format("2006-01-02"))
	fmt.Fprintf(&builder, "total: %d\n", names)
	fmt.Fprintf(&builder, "---\n\n")

	if len(groups) == 0 {
		fmt.Fprintf(&builder, "_There are no names available._\n")
		return builder.String()
	}

	for _, g := range groups {
		fmt.Fprintf(&builder, "## %s\n\n", g.Letter)
		for _, n := range g.Names {
			mark := " "
			if n.Liked {
				mark = "x"
			}
			fmt.Fprintf(&builder, "- [%s] %s\n", mark, escapeMarkdown(n.FirstName))
		}
		fmt.Fprintf(&builder, "\n")
	}

	return builder.String()
}

func (exporter *MarkdownExporter) Export(w io.Writer, groups []board.Group) (ExportResult, error) {
	now := time.Now
	if exporter.Now != nil {
		now = exporter.Now
	}

	if _, err := io.WriteString(w, GenerateMarkdown(groups, now())); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write markdown: %w", err)
	}
	return countResult(groups), nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func countResult(groups []board.Group) ExportResult {
	result := ExportResult{GroupsProcessed: len(groups)}
	for _, g := range groups {
		result.NamesProcessed += len(g.Names)
	}
	return result
}
