package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/nameboard/internal/audit"
	"github.com/mrlokans/nameboard/internal/board"
	"github.com/mrlokans/nameboard/internal/database/names"
	"github.com/mrlokans/nameboard/internal/demo"
	"github.com/mrlokans/nameboard/internal/exporters"
	"github.com/mrlokans/nameboard/internal/http"
	"github.com/mrlokans/nameboard/internal/namesapi"
	"github.com/mrlokans/nameboard/internal/scheduler"
	"github.com/mrlokans/nameboard/internal/sessions"
	"github.com/mrlokans/nameboard/internal/tui"
)

// =============================================================================
// Client Core
// =============================================================================

// Store implementations
var _ board.Store = (*namesapi.Client)(nil)

// Board surfaces
var _ http.Board = (*board.Controller)(nil)
var _ tui.Board = (*board.Controller)(nil)
var _ scheduler.Resyncer = (*board.Controller)(nil)

// NoticeStore implementations
var _ http.NoticeStore = (*sessions.Manager)(nil)

// BoardExporter implementations
var _ exporters.BoardExporter = (*exporters.MarkdownExporter)(nil)
var _ exporters.BoardExporter = (*exporters.XLSXExporter)(nil)

// =============================================================================
// Reference Names API
// =============================================================================

// NameStore implementations
var _ http.NameStore = (*names.Repository)(nil)
var _ demo.Seeder = (*names.Repository)(nil)

// MutationRecorder implementations
var _ http.MutationRecorder = (*audit.Auditor)(nil)
