package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	// Leveled loggers. They default to stdout so packages can log before
	// SetupLogger runs (tests, CLI commands).
	InfoLogger    = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLogger = log.New(os.Stdout, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger   = log.New(os.Stdout, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	output  io.Writer = os.Stdout
	logFile *os.File
	mu      sync.Mutex
)

// SetupLogger sends every level to stdout and to a daily file under dir.
// An empty dir keeps stdout only.
func SetupLogger(dir string) error {
	mu.Lock()
	defer mu.Unlock()

	writer := io.Writer(os.Stdout)
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}

		fileName := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
		file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		if logFile != nil {
			logFile.Close()
		}
		logFile = file
		writer = io.MultiWriter(os.Stdout, file)
	}

	output = writer
	InfoLogger = log.New(writer, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLogger = log.New(writer, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(writer, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	return nil
}

// Writer returns the destination shared by all levels, for GORM and gin.
func Writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return output
}

// Close releases the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Info logs at info level.
func Info(format string, v ...interface{}) {
	InfoLogger.Output(2, fmt.Sprintf(format, v...))
}

// Warning logs at warning level.
func Warning(format string, v ...interface{}) {
	WarningLogger.Output(2, fmt.Sprintf(format, v...))
}

// Error logs at error level.
func Error(format string, v ...interface{}) {
	ErrorLogger.Output(2, fmt.Sprintf(format, v...))
}
