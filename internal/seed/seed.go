// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package seed defines the structured seed-script payload the model
// returns and validates raw payloads against its schema before use.
package seed

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"
)

// TableInserts groups the INSERT statements for one table.
type TableInserts struct {
	Table   string   `json:"table"`
	Inserts []string `json:"inserts"`
}

// Script is the structured seed script returned by the model.
type Script struct {
	Dialect string         `json:"dialect"`
	Notes   string         `json:"notes"`
	Tables  []TableInserts `json:"tables"`
	FullSQL string         `json:"full_sql"`
}

// StatementCount sums the INSERT statements across all tables.
func (s *Script) StatementCount() int {
	n := 0
	for _, t := range s.Tables {
		n += len(t.Inserts)
	}
	return n
}

// SQL returns the complete script, preferring the model's full_sql and
// reconstructing it from the per-table inserts when full_sql is empty.
func (s *Script) SQL() string {
	if strings.TrimSpace(s.FullSQL) != "" {
		return s.FullSQL
	}
	var b strings.Builder
	for _, t := range s.Tables {
		fmt.Fprintf(&b, "-- %s\n", t.Table)
		for _, stmt := range t.Inserts {
			b.WriteString(strings.TrimSpace(stmt))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ResponseSchema is the schema handed to the model as the structured
// output contract.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"dialect": {
				Type:        genai.TypeString,
				Description: "SQL dialect the script targets",
			},
			"notes": {
				Type:        genai.TypeString,
				Description: "Short remarks about assumptions made while generating",
			},
			"tables": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"table": {
							Type:        genai.TypeString,
							Description: "Table name",
						},
						"inserts": {
							Type:        genai.TypeArray,
							Items:       &genai.Schema{Type: genai.TypeString},
							Description: "INSERT statements for this table, in execution order",
						},
					},
					Required: []string{"table", "inserts"},
				},
			},
			"full_sql": {
				Type:        genai.TypeString,
				Description: "The complete script with all inserts in dependency order",
			},
		},
		Required: []string{"dialect", "tables", "full_sql"},
	}
}

// JSONSchema is the same contract as a JSON Schema document. It is
// embedded in the system instruction on the fallback path and used to
// validate payloads before unmarshaling.
const JSONSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "dialect": {"type": "string"},
    "notes": {"type": "string"},
    "tables": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "table": {"type": "string"},
          "inserts": {
            "type": "array",
            "items": {"type": "string"}
          }
        },
        "required": ["table", "inserts"]
      }
    },
    "full_sql": {"type": "string"}
  },
  "required": ["dialect", "tables", "full_sql"]
}`

var schemaLoader = gojsonschema.NewStringLoader(JSONSchema)

// Parse validates a raw JSON payload against the schema and unmarshals
// it into a Script.
func Parse(raw []byte) (*Script, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			reasons = append(reasons, desc.String())
		}
		return nil, fmt.Errorf("response does not match the seed script schema: %s", strings.Join(reasons, "; "))
	}

	var script Script
	if err := json.Unmarshal(raw, &script); err != nil {
		return nil, fmt.Errorf("failed to decode seed script: %w", err)
	}
	return &script, nil
}
