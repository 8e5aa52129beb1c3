package seed

import (
	"strings"
	"testing"
)

const validPayload = `{
	"dialect": "mysql",
	"notes": "generated for two pools",
	"tables": [
		{"table": "question_pools", "inserts": ["INSERT INTO question_pools (id, skill) VALUES ('a', 'Go');"]},
		{"table": "questions", "inserts": [
			"INSERT INTO questions (id, pool_id) VALUES ('b', 'a');",
			"INSERT INTO questions (id, pool_id) VALUES ('c', 'a');"
		]}
	],
	"full_sql": "INSERT INTO question_pools (id, skill) VALUES ('a', 'Go');"
}`

func TestParseValid(t *testing.T) {
	script, err := Parse([]byte(validPayload))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if script.Dialect != "mysql" {
		t.Errorf("dialect = %q, want mysql", script.Dialect)
	}
	if len(script.Tables) != 2 {
		t.Errorf("table count = %d, want 2", len(script.Tables))
	}
	if got := script.StatementCount(); got != 3 {
		t.Errorf("StatementCount = %d, want 3", got)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing tables", payload: `{"dialect": "mysql", "full_sql": ""}`},
		{name: "tables not array", payload: `{"dialect": "mysql", "tables": "nope", "full_sql": ""}`},
		{name: "insert not string", payload: `{"dialect": "mysql", "tables": [{"table": "t", "inserts": [1]}], "full_sql": ""}`},
		{name: "missing dialect", payload: `{"tables": [], "full_sql": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.payload)); err == nil {
				t.Error("expected schema validation error, got nil")
			}
		})
	}
}

func TestSQLPrefersFullSQL(t *testing.T) {
	script := &Script{
		FullSQL: "INSERT INTO a VALUES (1);",
		Tables:  []TableInserts{{Table: "b", Inserts: []string{"INSERT INTO b VALUES (2);"}}},
	}
	if got := script.SQL(); got != "INSERT INTO a VALUES (1);" {
		t.Errorf("SQL() = %q, want full_sql verbatim", got)
	}
}

func TestSQLReconstructs(t *testing.T) {
	script := &Script{
		Tables: []TableInserts{
			{Table: "question_pools", Inserts: []string{"INSERT INTO question_pools VALUES (1);"}},
			{Table: "questions", Inserts: []string{"INSERT INTO questions VALUES (2);"}},
		},
	}
	got := script.SQL()
	if !strings.Contains(got, "-- question_pools") || !strings.Contains(got, "-- questions") {
		t.Errorf("reconstructed SQL missing table headers: %q", got)
	}
	if strings.Index(got, "question_pools") > strings.Index(got, "INSERT INTO questions") {
		t.Error("reconstructed SQL should preserve table order")
	}
}

func TestResponseSchemaShape(t *testing.T) {
	schema := ResponseSchema()
	for _, field := range []string{"dialect", "tables", "full_sql"} {
		if _, ok := schema.Properties[field]; !ok {
			t.Errorf("response schema missing property %q", field)
		}
	}
	if len(schema.Required) != 3 {
		t.Errorf("required fields = %v", schema.Required)
	}
}
