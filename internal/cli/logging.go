// ABOUTME: Log output setup for the command line
// ABOUTME: Sends the standard logger to stderr, a log file, both or nowhere
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
)

// setupLogging points the standard logger at stderr and an optional log
// file. The returned func closes the file.
func setupLogging(stderr io.Writer, toStderr bool, logFile string) (func(), error) {
	var w io.Writer = io.Discard
	if toStderr {
		w = stderr
	}

	if logFile == "" {
		log.SetOutput(w)
		return func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}

	if !toStderr {
		log.SetOutput(f)
	} else {
		log.SetOutput(io.MultiWriter(w, f))
	}

	return func() { _ = f.Close() }, nil
}
