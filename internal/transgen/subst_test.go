package transgen

import (
	"strings"
	"testing"
)

func TestSubst(t *testing.T) {
	args := []string{"The Wires", "first", "top"}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"no placeholders", "plain text", "plain text"},
		{"single", "color in {0}?", "color in The Wires?"},
		{"all positions", "the {1} wire at {2} in {0}", "the first wire at top in The Wires"},
		{"repeated", "{0} and {0}", "The Wires and The Wires"},
		{"adjacent", "{0}{1}", "The Wiresfirst"},
		{"escaped braces", "literal {{0}} stays", "literal {0} stays"},
		{"escaped closing", "set }} done", "set } done"},
		{"unused args allowed", "just {0}", "just The Wires"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Subst(tt.template, args)
			if err != nil {
				t.Fatalf("Subst(%q) error = %v", tt.template, err)
			}
			if got != tt.want {
				t.Errorf("Subst(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestSubstErrors(t *testing.T) {
	args := []string{"a", "b"}

	tests := []struct {
		name     string
		template string
		wantErr  string
	}{
		{"index out of range", "uses {5}", "outside"},
		{"negative index", "uses {-1}", "outside"},
		{"empty placeholder", "uses {}", "malformed"},
		{"non-numeric", "uses {first}", "malformed"},
		{"unterminated", "uses {0", "unterminated"},
		{"stray closing brace", "oops } here", "stray"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Subst(tt.template, args)
			if err == nil {
				t.Fatalf("Subst(%q) succeeded, want error", tt.template)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
