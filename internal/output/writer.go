// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package output writes a generated seed script to disk: the raw JSON
// payload, the combined SQL file, and one SQL file per table.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"seedgen/cli/internal/seed"
)

// WrittenFile records one file produced by a run, for the summary table.
type WrittenFile struct {
	Path       string
	Kind       string
	Statements int
}

// Write persists the script under the given prefix. The prefix may
// include a directory; missing directories are created. Returns the
// files written, combined SQL first.
func Write(prefix string, script *seed.Script) ([]WrittenFile, error) {
	if dir := filepath.Dir(prefix); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var files []WrittenFile

	sqlPath := prefix + ".sql"
	header := fmt.Sprintf("-- Seed script generated by seedgen\n-- Dialect: %s\n-- Generated: %s\n\n",
		script.Dialect, time.Now().Format(time.RFC3339))
	if err := os.WriteFile(sqlPath, []byte(header+script.SQL()), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", sqlPath, err)
	}
	files = append(files, WrittenFile{Path: sqlPath, Kind: "combined SQL", Statements: script.StatementCount()})

	jsonPath := prefix + ".json"
	payload, err := json.MarshalIndent(script, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode script: %w", err)
	}
	if err := os.WriteFile(jsonPath, payload, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", jsonPath, err)
	}
	files = append(files, WrittenFile{Path: jsonPath, Kind: "raw payload", Statements: script.StatementCount()})

	for _, t := range script.Tables {
		if len(t.Inserts) == 0 {
			continue
		}
		tablePath := fmt.Sprintf("%s__%s.sql", prefix, SafeName(t.Table))
		var b strings.Builder
		fmt.Fprintf(&b, "-- %s\n", t.Table)
		for _, stmt := range t.Inserts {
			b.WriteString(strings.TrimSpace(stmt))
			b.WriteString("\n")
		}
		if err := os.WriteFile(tablePath, []byte(b.String()), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", tablePath, err)
		}
		files = append(files, WrittenFile{Path: tablePath, Kind: "table SQL", Statements: len(t.Inserts)})
	}

	return files, nil
}

// SafeName makes a table name usable inside a filename. Dots become
// underscores so schema-qualified names stay on one path segment, and
// separators are stripped.
func SafeName(table string) string {
	name := strings.TrimSpace(table)
	name = strings.ReplaceAll(name, ".", "_")
	name = strings.ReplaceAll(name, string(filepath.Separator), "_")
	name = strings.ReplaceAll(name, "/", "_")
	if name == "" {
		return "table"
	}
	return name
}
