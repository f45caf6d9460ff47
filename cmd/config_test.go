package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_SetAndShow(t *testing.T) {
	home := isolateHome(t)

	runCmd(t, "config", "set", "chart_width", "640")
	runCmd(t, "config", "set", "chart_path", "charts/fit.png")
	if _, err := os.Stat(filepath.Join(home, ".regress", "config.yaml")); err != nil {
		t.Fatalf("config not saved: %v", err)
	}

	out := runCmd(t, "config", "show")
	for _, want := range []string{"chart_width: 640", "chart_path: charts/fit.png", "remove_outliers: false"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestConfig_SetRejectsBadValues(t *testing.T) {
	isolateHome(t)
	for _, args := range [][]string{
		{"config", "set", "chart_height", "0"},
		{"config", "set", "remove_outliers", "maybe"},
		{"config", "set", "log_level", "loud"},
		{"config", "set", "no_such_key", "1"},
	} {
		if _, err := execCmd(t, args...); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestConfig_SetKeepsInvalidFileIntact(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, ".regress")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, "config.yaml")
	original := "remove_outliers: true\nchart_height: 0\n"
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// A prior command fell back to defaults after failing to load the file.
	loadConfig()
	if _, err := execCmdKeepConfig(t, "config", "set", "chart_height", "600"); err == nil {
		t.Fatal("expected config set to fail on an invalid config file")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(b) != original {
		t.Fatalf("config file was overwritten:\n%s", b)
	}
}
