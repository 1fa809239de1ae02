package logging_test

import (
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/htmldom/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.InfoLevel},
		{"bogus", log.InfoLevel},
		{"DEBUG", log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := logging.New(tt.level)
			if logger == nil {
				t.Fatal("New returned nil logger")
			}
			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("New(%q) level = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestNewInteractive(t *testing.T) {
	logger := logging.NewInteractive()
	if logger == nil {
		t.Fatal("NewInteractive returned nil logger")
	}
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("NewInteractive level = %v, want info", logger.GetLevel())
	}
}

func TestDefault_NotNil(t *testing.T) {
	if logging.Default() == nil {
		t.Fatal("Default returned nil logger")
	}
}
