package slog

import (
	"log/slog"

	"github.com/fwojciec/worldfacts/crawl"
)

// NewProgressFunc returns a crawl.ProgressFunc that writes each event to
// logger. Skipped countries are warnings; harvested ones are debug records.
func NewProgressFunc(logger *slog.Logger) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			logger.Info("crawl started", "url", e.URL, "discovered", e.Total)
		case crawl.ProgressCompleted:
			logger.Debug("harvested",
				"name", e.Name,
				"url", e.URL,
				"completed", e.Completed,
				"total", e.Total,
			)
		case crawl.ProgressFailed:
			logger.Warn("skipped",
				"name", e.Name,
				"url", e.URL,
				"completed", e.Completed,
				"total", e.Total,
				"err", e.Error,
			)
		case crawl.ProgressFinished:
			logger.Info("crawl finished", "url", e.URL, "total", e.Total)
		}
	}
}
