package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If COMMITKIT_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.commitkit/logs/commitkit.log
func GetLogFilePath() string {
	if customPath := os.Getenv("COMMITKIT_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "commitkit.log"
	}

	return filepath.Join(homeDir, ".commitkit", "logs", "commitkit.log")
}
