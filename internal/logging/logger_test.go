package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/logging"
)

func TestChainedLevelCalls(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "info", Output: &buf})
	defer logging.Init(logging.Config{})

	logging.L().Info().Str("port", "8080").Msg("server listening")
	logging.L().Error().Msg("database ping failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not JSON: %v", err)
	}
	if first["level"] != "info" || first["port"] != "8080" || first["message"] != "server listening" {
		t.Errorf("unexpected first line: %v", first)
	}

	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("second line is not JSON: %v", err)
	}
	if second["level"] != "error" {
		t.Errorf("expected error level, got %v", second["level"])
	}
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "error", Output: &buf})
	defer logging.Init(logging.Config{})

	logging.L().Info().Msg("suppressed")
	logging.L().Error().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("info line not filtered at error level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("error line missing: %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "debug", Output: &buf})
	defer logging.Init(logging.Config{})

	logger := logging.With("feed")
	logger.Warn().Msg("cache write failed")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("line is not JSON: %v", err)
	}
	if entry["component"] != "feed" {
		t.Errorf("expected component=feed, got %v", entry["component"])
	}
}
