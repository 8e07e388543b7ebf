package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"tapebox/internal/logger"
)

func TestTrace(t *testing.T) {
	logger.Init(false, true)

	buf := new(bytes.Buffer)
	l := logger.New(buf)
	l.Debug("dispatch", "op", "+", "ic", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one trace line, got %q", buf.String())
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatal(err)
	}
	if record["msg"] != "dispatch" || record["op"] != "+" {
		t.Errorf("unexpected record %v", record)
	}
}

func TestNoTrace(t *testing.T) {
	logger.Init(false, true)
	if l := logger.New(nil); l == nil {
		t.Fatal("expected a logger")
	}
}
