package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Info("loaded rules", "count", 4)
	logger.Debug("hidden")

	line := buf.String()
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(line) {
		t.Errorf("log line %q should start with an HH:MM:SS.ms timestamp", line)
	}
	if !strings.Contains(line, "count=4") {
		t.Errorf("log line %q missing key/value", line)
	}
	if strings.Contains(line, "hidden") {
		t.Error("debug message written at info level")
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	prog.done("rendered diagram", "run", "0a1b2c3d", "nodes", 6)

	out := buf.String()
	if !regexp.MustCompile(`rendered diagram \(\d+(\.\d+)?(ns|µs|ms|s)\)`).MatchString(out) {
		t.Errorf("done() = %q, want message with elapsed time", out)
	}
	for _, want := range []string{"run=0a1b2c3d", "nodes=6"} {
		if !strings.Contains(out, want) {
			t.Errorf("done() = %q, missing %q", out, want)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield log.Default()")
	}

	custom := newLogger(&bytes.Buffer{}, log.WarnLevel)
	if loggerFromContext(withLogger(context.Background(), custom)) != custom {
		t.Error("attached logger not returned")
	}
}

func TestVerboseFlag(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantDebug bool
	}{
		{"default", nil, false},
		{"short", []string{"-v"}, true},
		{"long", []string{"--verbose"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			var logs bytes.Buffer
			c := New(&logs, LogInfo)
			c.Out = &bytes.Buffer{}
			c.EnvFile = filepath.Join(dir, "missing.env")

			args := append([]string{
				"-r", filepath.Join(dir, "firewall_rules.json"),
				"-o", filepath.Join(dir, "diagram.svg"),
			}, tt.args...)
			if err := run(t, c, args...); err != nil {
				t.Fatal(err)
			}

			if got := strings.Contains(logs.String(), "DEBU"); got != tt.wantDebug {
				t.Errorf("debug output = %v, want %v:\n%s", got, tt.wantDebug, logs.String())
			}
			if !strings.Contains(logs.String(), "run=") {
				t.Errorf("logs should carry the run id:\n%s", logs.String())
			}
		})
	}
}
