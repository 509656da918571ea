package impl

import (
	"io"
	"log/slog"

	"chatter/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(listLimit int) *config.Config {
	return &config.Config{
		Rooms: &config.RoomsConfig{
			ListLimit: listLimit,
		},
	}
}
