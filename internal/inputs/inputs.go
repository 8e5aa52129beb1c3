// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

package inputs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Question difficulty levels accepted for a pool.
const (
	LevelLow    = "LOW"
	LevelMedium = "MEDIUM"
	LevelHigh   = "HIGH"
)

// DefaultQuantity is the number of questions generated per pool when
// the user does not give one.
const DefaultQuantity = 5

// DefaultCertifier is assigned to pools declared without certifiers so
// question_validates rows always have an owner.
const DefaultCertifier = "default.certifier@example.com"

// PoolInput describes one question pool to seed.
type PoolInput struct {
	Skill      string   `json:"skill" validate:"required"`
	Level      string   `json:"level" validate:"oneof=LOW MEDIUM HIGH"`
	Quantity   int      `json:"quantity" validate:"gt=0"`
	Certifiers []string `json:"certifiers"`
}

// JobInput describes one job position to seed.
type JobInput struct {
	Name   string   `json:"name" validate:"required"`
	Skills []string `json:"skills"`
}

// Request is the full set of user inputs for one generation run.
type Request struct {
	Pools []PoolInput `json:"pools" validate:"min=1,dive"`
	Jobs  []JobInput  `json:"jobs" validate:"min=1,dive"`
}

var validate = validator.New()

// ParseLevel normalizes a user-supplied level, defaulting to LOW.
func ParseLevel(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case LevelMedium:
		return LevelMedium
	case LevelHigh:
		return LevelHigh
	default:
		return LevelLow
	}
}

// ParseList splits a comma-separated value into trimmed, non-empty items.
func ParseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Normalize fills defaults: pool levels, quantities and certifiers,
// and job skill lists that fall back to the first pool's skill.
func (r *Request) Normalize() {
	for i := range r.Pools {
		p := &r.Pools[i]
		p.Skill = strings.TrimSpace(p.Skill)
		p.Level = ParseLevel(p.Level)
		if p.Quantity <= 0 {
			p.Quantity = DefaultQuantity
		}
		if len(p.Certifiers) == 0 {
			p.Certifiers = []string{DefaultCertifier}
		}
	}
	for i := range r.Jobs {
		j := &r.Jobs[i]
		j.Name = strings.TrimSpace(j.Name)
		if len(j.Skills) == 0 && len(r.Pools) > 0 {
			j.Skills = []string{r.Pools[0].Skill}
		}
	}
}

// Validate checks the request after normalization. Errors are rephrased
// into plain field-level messages instead of validator's struct paths.
func (r *Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if ok := errorsAs(err, &verrs); ok && len(verrs) > 0 {
			return fmt.Errorf("invalid input: %s", describe(verrs[0]))
		}
		return err
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", strings.ToLower(fe.Field()))
	case "min":
		return fmt.Sprintf("at least one %s is required", strings.TrimSuffix(strings.ToLower(fe.Field()), "s"))
	case "gt":
		return fmt.Sprintf("%s must be greater than zero", strings.ToLower(fe.Field()))
	case "oneof":
		return fmt.Sprintf("%s must be one of LOW, MEDIUM, HIGH", strings.ToLower(fe.Field()))
	default:
		return fe.Error()
	}
}

func errorsAs(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

// LoadFile reads a request from a JSON file, then normalizes and
// validates it. This backs the generate --input flag.
func LoadFile(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse input file: %w", err)
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}
