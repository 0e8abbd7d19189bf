package entrypoint

import (
	"context"
	"io"
	"log/slog"

	"github.com/mrlokans/nameboard/internal/config"
	"github.com/mrlokans/nameboard/internal/logging"
	"github.com/mrlokans/nameboard/internal/scheduler"
	"github.com/mrlokans/nameboard/internal/tui"
)

// RunTUI starts the terminal board. The screen belongs to the board, so logs
// go to logFile, or nowhere when it is empty.
func RunTUI(ctx context.Context, cfg *config.Config, logFile string) error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if logFile != "" {
		l, closeLog, err := logging.ToFile(logFile, cfg.Log.Level)
		if err != nil {
			return err
		}
		defer closeLog()
		logger = l
	}

	var refresher tui.Refresher
	client := NewNamesClient(cfg, logger, nil)
	b := NewBoard(cfg, client, cfg.Board.TUIScrollLines, logger, refresher.Notify)
	defer b.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resyncer := scheduler.NewResyncScheduler(b, cfg.Board.ResyncSchedule, logger)
	if err := resyncer.Start(ctx); err != nil {
		return err
	}
	defer resyncer.Stop()

	return tui.Run(ctx, b, &refresher)
}
