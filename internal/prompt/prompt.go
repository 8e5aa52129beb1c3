// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package prompt assembles the generation instructions sent to the
// model. The prompt embeds the user's pools and jobs as JSON and
// spells out the table set, dependency order, and per-dialect rules
// the seed script must follow.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"seedgen/cli/internal/dialect"
	"seedgen/cli/internal/inputs"
)

// Options tunes the generated script beyond the raw inputs.
type Options struct {
	Dialect      dialect.Dialect
	UseUUID      bool
	IncludeRoles bool
}

// Core tables every run seeds, in dependency order.
var coreTables = []string{
	"question_pools",
	"questions",
	"question_pools_certifiers",
	"question_validates",
	"job_positions",
	"job_positions_skills",
}

// Role tables appended when Options.IncludeRoles is set.
var roleTables = []string{
	"roles",
	"permissions",
	"role_has_permissions",
	"model_has_roles",
}

// Tables returns the table list a run with these options seeds.
func (o Options) Tables() []string {
	tables := make([]string, 0, len(coreTables)+len(roleTables))
	tables = append(tables, coreTables...)
	if o.IncludeRoles {
		tables = append(tables, roleTables...)
	}
	return tables
}

// Build renders the full generation prompt for one request.
func Build(req *inputs.Request, opts Options) (string, error) {
	poolsJSON, err := json.MarshalIndent(req.Pools, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode pools: %w", err)
	}
	jobsJSON, err := json.MarshalIndent(req.Jobs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode jobs: %w", err)
	}

	var b strings.Builder

	b.WriteString("You are a database seeding assistant for a technical recruitment platform.\n")
	b.WriteString("Generate SQL INSERT statements only. Never emit CREATE TABLE, ALTER, DROP, or any other DDL.\n\n")

	b.WriteString("Seed the following tables, in this exact dependency order:\n")
	for i, table := range opts.Tables() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, table)
	}
	b.WriteString("\n")

	b.WriteString("Question pools to create:\n")
	b.Write(poolsJSON)
	b.WriteString("\n\nJob positions to create:\n")
	b.Write(jobsJSON)
	b.WriteString("\n\n")

	b.WriteString("Rules:\n")
	b.WriteString("- Every row needs an explicit primary key value when the key type allows it.\n")
	if opts.UseUUID {
		b.WriteString("- Generate a fresh UUID v4 for each row and reuse the SAME UUID wherever another table references it as a foreign key.\n")
	} else {
		b.WriteString("- Let auto-increment keys assign themselves; resolve foreign keys with subselects on natural keys.\n")
	}
	b.WriteString("- For each pool, generate exactly its requested quantity of multiple-choice questions about the pool's skill at the pool's difficulty level.\n")
	b.WriteString("- Each question stores its options as a JSON object with keys \"A\", \"B\", \"C\", \"D\" and records which single option is correct.\n")
	b.WriteString("- Link every pool to each of its certifiers in question_pools_certifiers.\n")
	b.WriteString("- Insert one question_validates row per question per certifier with status 'pending'.\n")
	b.WriteString("- Link every job position to its skills in job_positions_skills.\n")
	b.WriteString("- If a job lists a skill that no pool covers, also create a default pool for that skill: MEDIUM level, 5 questions, default certifier.\n")
	if opts.IncludeRoles {
		b.WriteString("- Seed baseline roles (admin, certifier, candidate), their permissions, role_has_permissions, and model_has_roles rows.\n")
	}
	b.WriteString("\n")

	b.WriteString(opts.Dialect.PromptNotes(opts.UseUUID))

	return b.String(), nil
}
