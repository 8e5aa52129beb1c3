// Copyright (c) 2025 Seedgen
// Licensed under the MIT License. See LICENSE file in the project root for details.

package gemini

import (
	"errors"
	"strings"
)

// ExtractJSON pulls the JSON object out of a model reply that may be
// wrapped in markdown fences or surrounded by prose. Returns the text
// spanning the first '{' through the last '}'.
func ExtractJSON(text string) (string, error) {
	trimmed := strings.TrimSpace(text)

	if strings.HasPrefix(trimmed, "```") {
		trimmed = stripFences(trimmed)
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end < start {
		return "", errors.New("no JSON object found in response text")
	}

	return trimmed[start : end+1], nil
}

// stripFences removes a leading ```json (or bare ```) fence and the
// matching trailing fence.
func stripFences(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return text
	}

	if strings.HasPrefix(strings.TrimSpace(lines[0]), "```") {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}
