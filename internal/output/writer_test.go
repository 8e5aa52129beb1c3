package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seedgen/cli/internal/seed"
)

func testScript() *seed.Script {
	return &seed.Script{
		Dialect: "mysql",
		Tables: []seed.TableInserts{
			{Table: "question_pools", Inserts: []string{"INSERT INTO question_pools VALUES ('a');"}},
			{Table: "questions", Inserts: []string{
				"INSERT INTO questions VALUES ('b');",
				"INSERT INTO questions VALUES ('c');",
			}},
			{Table: "empty_table", Inserts: nil},
		},
		FullSQL: "INSERT INTO question_pools VALUES ('a');\nINSERT INTO questions VALUES ('b');",
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "seed_output")

	files, err := Write(prefix, testScript())
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// combined + json + two non-empty tables
	if len(files) != 4 {
		t.Fatalf("written file count = %d, want 4: %+v", len(files), files)
	}

	sql, err := os.ReadFile(prefix + ".sql")
	if err != nil {
		t.Fatalf("combined SQL missing: %v", err)
	}
	if !strings.Contains(string(sql), "question_pools") {
		t.Error("combined SQL lost content")
	}
	if !strings.Contains(string(sql), "-- Dialect: mysql") {
		t.Error("combined SQL missing header comment")
	}

	raw, err := os.ReadFile(prefix + ".json")
	if err != nil {
		t.Fatalf("JSON payload missing: %v", err)
	}
	var decoded seed.Script
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("JSON payload not decodable: %v", err)
	}
	if decoded.Dialect != "mysql" {
		t.Errorf("decoded dialect = %q", decoded.Dialect)
	}

	if _, err := os.Stat(prefix + "__questions.sql"); err != nil {
		t.Errorf("per-table file missing: %v", err)
	}
	if _, err := os.Stat(prefix + "__empty_table.sql"); !os.IsNotExist(err) {
		t.Error("empty tables should not produce files")
	}
}

func TestWriteCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	prefix := filepath.Join(dir, "nested", "deeper", "out")

	if _, err := Write(prefix, testScript()); err != nil {
		t.Fatalf("Write with nested prefix failed: %v", err)
	}
	if _, err := os.Stat(prefix + ".sql"); err != nil {
		t.Errorf("combined SQL not created under nested dir: %v", err)
	}
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"questions", "questions"},
		{"app.questions", "app_questions"},
		{"a/b", "a_b"},
		{"  spaced  ", "spaced"},
		{"", "table"},
	}

	for _, tt := range tests {
		if got := SafeName(tt.input); got != tt.want {
			t.Errorf("SafeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
