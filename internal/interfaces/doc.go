// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Client Core
//
//   - board.Store: The names API as the board controller sees it (internal/board/controller.go)
//   - http.Board: Board intents driven by the web UI (internal/http/board.go)
//   - tui.Board: Board intents driven by the terminal client (internal/tui/model.go)
//   - scheduler.Resyncer: Periodic resync target (internal/scheduler/resync.go)
//   - http.NoticeStore: One-shot notices between redirects (internal/http/board.go)
//   - exporters.BoardExporter: Board downloads (internal/exporters/generic.go)
//
// ## Reference Names API
//
//   - http.NameStore: Persistence behind /names (internal/http/names_api.go)
//   - http.MutationRecorder: Trail of accepted writes (internal/http/names_api.go)
//   - demo.Seeder: Sample data loader (internal/demo/seed.go)
//
// # Adding a New Export Format
//
//  1. Implement BoardExporter in internal/exporters/
//
//     type CSVExporter struct{}
//
//     func (e *CSVExporter) Export(w io.Writer, groups []board.Group) (ExportResult, error)
//     func (e *CSVExporter) ContentType() string { return "text/csv" }
//     func (e *CSVExporter) FileName() string    { return "names.csv" }
//
//  2. Register it in the Exporters map in entrypoint.go; it is served at
//     /ui/export.<key>
//
//  3. Add a compile-time check to checks.go
//
// # Adding a New Board Surface
//
// A surface (web, terminal, ...) declares the subset of board.Controller it
// drives as its own interface, sends every user intent to the controller and
// renders from board.View. It never patches the names list itself; use the
// controller's OnChange hook to redraw after background resyncs.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
