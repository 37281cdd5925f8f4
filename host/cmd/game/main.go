package main

import (
	"log/slog"
	"os"

	"github.com/jim-ec/hello-orbit/orbit"
)

func main() {
	orbit.SetLogger(slog.Default())

	slog.Info("Started")
	if err := runApplication(); err != nil {
		slog.Error("Crashed",
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	slog.Info("Stopped")
}
