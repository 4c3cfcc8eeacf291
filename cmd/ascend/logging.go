package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ascend/internal/games/ascend"
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// setupLogging builds the process logger from the global flags. Commands
// that draw on the terminal never log to it: without --log-file their
// logs are discarded. serve logs to stderr.
func setupLogging(command string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		logFile = f
		w = f
	case command == "serve" || command == "hint" || command == "layouts":
		w = os.Stderr
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "ascend",
	})
	ascend.SetLogger(logger)
	return nil
}

func closeLogging() {
	if logFile != nil {
		//nolint:errcheck // Best-effort close on exit
		logFile.Close()
		logFile = nil
	}
}
