package prompt

import (
	"strings"
	"testing"

	"seedgen/cli/internal/dialect"
	"seedgen/cli/internal/inputs"
)

func testRequest() *inputs.Request {
	req := &inputs.Request{
		Pools: []inputs.PoolInput{
			{Skill: "Go", Level: "HIGH", Quantity: 3, Certifiers: []string{"lead@example.com"}},
		},
		Jobs: []inputs.JobInput{
			{Name: "Backend Developer", Skills: []string{"Go", "SQL"}},
		},
	}
	return req
}

func TestBuildCoreTables(t *testing.T) {
	got, err := Build(testRequest(), Options{Dialect: dialect.MySQL, UseUUID: true})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, table := range []string{
		"question_pools",
		"questions",
		"question_pools_certifiers",
		"question_validates",
		"job_positions",
		"job_positions_skills",
	} {
		if !strings.Contains(got, table) {
			t.Errorf("prompt missing table %q", table)
		}
	}
	if strings.Contains(got, "roles") {
		t.Error("prompt should not mention role tables without IncludeRoles")
	}
}

func TestBuildRoleTables(t *testing.T) {
	got, err := Build(testRequest(), Options{Dialect: dialect.MySQL, IncludeRoles: true})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, table := range []string{"roles", "permissions", "role_has_permissions", "model_has_roles"} {
		if !strings.Contains(got, table) {
			t.Errorf("prompt missing role table %q", table)
		}
	}
}

func TestBuildEmbedsInputs(t *testing.T) {
	got, err := Build(testRequest(), Options{Dialect: dialect.Postgres, UseUUID: true})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !strings.Contains(got, `"Go"`) || !strings.Contains(got, `"Backend Developer"`) {
		t.Error("prompt should embed pools and jobs as JSON")
	}
	if !strings.Contains(got, "UUID") {
		t.Error("prompt should carry the dialect key type")
	}
	if !strings.Contains(got, "INSERT") {
		t.Error("prompt should instruct INSERT-only output")
	}
	if !strings.Contains(got, "'pending'") {
		t.Error("prompt should require pending validation status")
	}
}

func TestBuildUUIDRules(t *testing.T) {
	withUUID, err := Build(testRequest(), Options{Dialect: dialect.MySQL, UseUUID: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(withUUID, "UUID v4") {
		t.Error("UUID mode should instruct explicit UUID generation")
	}

	withoutUUID, err := Build(testRequest(), Options{Dialect: dialect.MySQL, UseUUID: false})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(withoutUUID, "subselects") {
		t.Error("auto-increment mode should instruct subselect FK resolution")
	}
}

func TestTables(t *testing.T) {
	if got := (Options{}).Tables(); len(got) != 6 {
		t.Errorf("core table count = %d, want 6", len(got))
	}
	if got := (Options{IncludeRoles: true}).Tables(); len(got) != 10 {
		t.Errorf("table count with roles = %d, want 10", len(got))
	}
}
