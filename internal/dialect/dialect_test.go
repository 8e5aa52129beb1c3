package dialect

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Dialect
		wantOK bool
	}{
		{name: "mysql", input: "mysql", want: MySQL, wantOK: true},
		{name: "mariadb alias", input: "mariadb", want: MySQL, wantOK: true},
		{name: "postgres", input: "postgres", want: Postgres, wantOK: true},
		{name: "postgresql alias", input: "PostgreSQL", want: Postgres, wantOK: true},
		{name: "pg alias", input: "pg", want: Postgres, wantOK: true},
		{name: "sqlserver", input: "sqlserver", want: SQLServer, wantOK: true},
		{name: "mssql alias", input: "MSSQL", want: SQLServer, wantOK: true},
		{name: "whitespace trimmed", input: "  mysql  ", want: MySQL, wantOK: true},
		{name: "unknown falls back to mysql", input: "sqlite", want: MySQL, wantOK: false},
		{name: "empty falls back to mysql", input: "", want: MySQL, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if ok != tt.wantOK {
				t.Errorf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
		})
	}
}

func TestIDType(t *testing.T) {
	tests := []struct {
		dialect Dialect
		useUUID bool
		want    string
	}{
		{MySQL, true, "CHAR(36)"},
		{MySQL, false, "INT AUTO_INCREMENT"},
		{Postgres, true, "UUID"},
		{Postgres, false, "SERIAL"},
		{SQLServer, true, "UNIQUEIDENTIFIER"},
		{SQLServer, false, "INT IDENTITY(1,1)"},
	}

	for _, tt := range tests {
		got := tt.dialect.IDType(tt.useUUID)
		if got != tt.want {
			t.Errorf("%s.IDType(%v) = %q, want %q", tt.dialect, tt.useUUID, got, tt.want)
		}
	}
}

func TestPromptNotes(t *testing.T) {
	notes := Postgres.PromptNotes(true)
	if !strings.Contains(notes, "postgres") {
		t.Errorf("notes should name the dialect, got %q", notes)
	}
	if !strings.Contains(notes, "UUID") {
		t.Errorf("notes should mention the key type, got %q", notes)
	}

	notes = MySQL.PromptNotes(false)
	if !strings.Contains(notes, "AUTO_INCREMENT") {
		t.Errorf("notes should mention AUTO_INCREMENT for serial mysql keys, got %q", notes)
	}
}
