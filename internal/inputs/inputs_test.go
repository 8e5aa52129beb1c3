package inputs

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"LOW", LevelLow},
		{"medium", LevelMedium},
		{"  High  ", LevelHigh},
		{"", LevelLow},
		{"extreme", LevelLow},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "simple", input: "a,b,c", want: []string{"a", "b", "c"}},
		{name: "trims whitespace", input: " a , b ", want: []string{"a", "b"}},
		{name: "drops empties", input: "a,,b,", want: []string{"a", "b"}},
		{name: "empty string", input: "", want: nil},
		{name: "only commas", input: ",,,", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseList(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	req := &Request{
		Pools: []PoolInput{{Skill: " Go "}},
		Jobs:  []JobInput{{Name: "Backend Developer"}},
	}

	req.Normalize()

	p := req.Pools[0]
	if p.Skill != "Go" {
		t.Errorf("skill not trimmed: %q", p.Skill)
	}
	if p.Level != LevelLow {
		t.Errorf("level default = %q, want LOW", p.Level)
	}
	if p.Quantity != DefaultQuantity {
		t.Errorf("quantity default = %d, want %d", p.Quantity, DefaultQuantity)
	}
	if len(p.Certifiers) != 1 || p.Certifiers[0] != DefaultCertifier {
		t.Errorf("certifiers default = %v", p.Certifiers)
	}

	j := req.Jobs[0]
	if len(j.Skills) != 1 || j.Skills[0] != "Go" {
		t.Errorf("job skills should default to first pool skill, got %v", j.Skills)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr string
	}{
		{
			name: "valid",
			req: Request{
				Pools: []PoolInput{{Skill: "Go", Level: LevelLow, Quantity: 5, Certifiers: []string{"c"}}},
				Jobs:  []JobInput{{Name: "Dev", Skills: []string{"Go"}}},
			},
		},
		{
			name:    "no pools",
			req:     Request{Jobs: []JobInput{{Name: "Dev"}}},
			wantErr: "at least one pool",
		},
		{
			name: "no jobs",
			req: Request{
				Pools: []PoolInput{{Skill: "Go", Level: LevelLow, Quantity: 5}},
			},
			wantErr: "at least one job",
		},
		{
			name: "missing skill",
			req: Request{
				Pools: []PoolInput{{Level: LevelLow, Quantity: 5}},
				Jobs:  []JobInput{{Name: "Dev"}},
			},
			wantErr: "skill is required",
		},
		{
			name: "bad level",
			req: Request{
				Pools: []PoolInput{{Skill: "Go", Level: "EXTREME", Quantity: 5}},
				Jobs:  []JobInput{{Name: "Dev"}},
			},
			wantErr: "LOW, MEDIUM, HIGH",
		},
		{
			name: "zero quantity",
			req: Request{
				Pools: []PoolInput{{Skill: "Go", Level: LevelLow}},
				Jobs:  []JobInput{{Name: "Dev"}},
			},
			wantErr: "greater than zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, should contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	content := `{
		"pools": [{"skill": "Python", "level": "HIGH", "quantity": 3}],
		"jobs": [{"name": "Data Engineer"}]
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	req, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if req.Pools[0].Skill != "Python" || req.Pools[0].Level != "HIGH" {
		t.Errorf("pool not loaded: %+v", req.Pools[0])
	}
	if got := req.Jobs[0].Skills; len(got) != 1 || got[0] != "Python" {
		t.Errorf("job skills should default from first pool, got %v", got)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error for malformed JSON")
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
