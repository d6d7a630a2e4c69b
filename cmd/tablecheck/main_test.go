package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const snapshot = `name: users
columns:
  - name: name
    values: [Alice, Bob, Charlie, ~]
  - name: age
    values: [25, 30, 35, 22]
  - name: email
    values: [a@x.com, b@x.com, b@x.com, c@x.com]
`

func writeFixture(t *testing.T) (cfgPath, logPath string) {
	t.Helper()
	dir := t.TempDir()
	logPath = filepath.Join(dir, "data_quality.log")
	cfg := "log:\n  file: " + logPath + "\nsnapshot: users.yaml\nchecks:\n  completeness: [name, phone]\n  uniqueness: [email]\n  typeConsistency: true\n"
	if err := os.WriteFile(filepath.Join(dir, "users.yaml"), []byte(snapshot), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath = filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfgPath, logPath
}

func TestRunCheck(t *testing.T) {
	cfgPath, logPath := writeFixture(t)

	var out bytes.Buffer
	if err := run([]string{"tablecheck", "check", "--config", cfgPath}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, want := range []string{
		"Table: users (4 rows, 3 columns)",
		"Columns: name, age, email",
		"[WARNING] completeness: Warning: 1 missing values found in column 'name'.",
		"[ERROR] completeness: Error: Column 'phone' not found.",
		"[WARNING] uniqueness: Warning: 1 duplicate values found in column 'email'.",
		"[INFO] type_consistency: all columns have consistent data types",
		"Issues found: 3",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out.String())
		}
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	log := string(data)
	if !strings.Contains(log, "WARNING") || !strings.Contains(log, "ERROR") || !strings.Contains(log, "run_id") {
		t.Fatalf("unexpected log contents:\n%s", log)
	}
	if lines := strings.Count(strings.TrimSpace(log), "\n") + 1; lines != 6 {
		t.Fatalf("expected 6 log records, got %d:\n%s", lines, log)
	}
}

func TestRunCheck_MissingConfigFlag(t *testing.T) {
	if err := run([]string{"tablecheck", "check"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for missing --config")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	if err := run([]string{"tablecheck", "frobnicate"}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}

func TestRun_Help(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"tablecheck", "help"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "tablecheck check --config") {
		t.Fatalf("unexpected usage output: %s", out.String())
	}
}
