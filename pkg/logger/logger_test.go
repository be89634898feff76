package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/heishia/bluroutine/pkg/config"
	"github.com/heishia/bluroutine/pkg/trace"
)

func TestNewLoggerWritesFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "bluroutine.log")

	l, err := NewLogger(config.LogConfig{Level: "debug", File: logFile, MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if Log != l {
		t.Error("package logger was not set")
	}

	WithTrace(trace.WithContext(context.Background(), "abc123"), l).Info("hello")
	_ = l.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"trace_id":"abc123"`) {
		t.Errorf("log line missing trace id: %s", data)
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := NewLogger(config.LogConfig{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
