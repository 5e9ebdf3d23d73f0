// Package logutil provides logging utilities.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	out     = io.Discard
	logFile *os.File
	// Protects out, logFile and loggers.
	mu      sync.Mutex
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix. The logger writes nowhere
// until SetOutput or SetOutputFile is called.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger to
// newOut.
func SetOutput(newOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLogFile()
	setOutput(newOut)
}

// SetOutputFile redirects the output of all loggers obtained with GetLogger
// to the named file, which is truncated. If fname is "", the output is
// discarded.
func SetOutputFile(fname string) error {
	mu.Lock()
	defer mu.Unlock()
	closeLogFile()
	if fname == "" {
		setOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	logFile = file
	setOutput(file)
	return nil
}

// Must be called with mu held.
func setOutput(newOut io.Writer) {
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// Must be called with mu held.
func closeLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
