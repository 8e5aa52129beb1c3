package gemini

import (
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "clean object",
			input: `{"dialect": "mysql"}`,
			want:  `{"dialect": "mysql"}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"dialect\": \"mysql\"}\n```",
			want:  `{"dialect": "mysql"}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "prose around object",
			input: "Here is your script:\n{\"a\": 1}\nLet me know if you need changes.",
			want:  `{"a": 1}`,
		},
		{
			name:  "nested braces kept",
			input: `prefix {"tables": [{"table": "t"}]} suffix`,
			want:  `{"tables": [{"table": "t"}]}`,
		},
		{
			name:  "leading whitespace",
			input: "\n\n  {\"a\": 1}",
			want:  `{"a": 1}`,
		},
		{
			name:    "no object",
			input:   "sorry, I cannot do that",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "only closing brace",
			input:   "} oops",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ExtractJSON(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractJSON(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRetryWithoutSchema(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "schema rejection", err: errFromMessage("response_schema is not supported for this model"), want: true},
		{name: "mime rejection", err: errFromMessage("response_mime_type unsupported"), want: true},
		{name: "unrelated", err: errFromMessage("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryWithoutSchema(tt.err); got != tt.want {
				t.Errorf("retryWithoutSchema(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

type stringError string

func (e stringError) Error() string { return string(e) }

func errFromMessage(msg string) error { return stringError(msg) }
