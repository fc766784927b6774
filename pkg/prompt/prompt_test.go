// Tests for the navigation prompts.
package prompt

import (
	"errors"
	"strings"
	"testing"
)

// TestGenerateBaseline checks the bullet-point route list.
func TestGenerateBaseline(t *testing.T) {
	p := GenerateBaseline()
	if !containsAll(p, []string{
		"navigation assistance",
		"Answer in bullet points",
		"certificados",
		"baixar PDF",
		"inscrever-se agora",
	}) {
		t.Fatalf("baseline prompt missing expected content:\n%s", p)
	}
	if p != strings.TrimSpace(p) {
		t.Fatal("expected prompt without surrounding whitespace")
	}
}

// TestGenerateRefined checks the persona, formatting rules and routes.
func TestGenerateRefined(t *testing.T) {
	p := GenerateRefined()
	if !containsAll(p, []string{
		"called Edu",
		"respond in markdown",
		"bold text for button names",
		"numbered points",
		"1. Meus cursos",
		"2. Explorar",
		"3. Perfil",
		"4. Edu",
	}) {
		t.Fatalf("refined prompt missing expected content:\n%s", p)
	}
}

// TestGenerateIsPure verifies repeated calls return identical text.
func TestGenerateIsPure(t *testing.T) {
	for _, v := range Variants() {
		first, err := Generate(v)
		if err != nil {
			t.Fatalf("Generate(%q): %v", v, err)
		}
		second, _ := Generate(v)
		if first != second || first == "" {
			t.Fatalf("expected stable non-empty prompt for %q", v)
		}
	}
}

func TestGenerateSelectsVariant(t *testing.T) {
	tests := []struct {
		name string
		in   Variant
		want string
	}{
		{name: "baseline", in: Baseline, want: GenerateBaseline()},
		{name: "refined", in: Refined, want: GenerateRefined()},
		{name: "case and space insensitive", in: " Refined ", want: GenerateRefined()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.in)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Generate(%q) returned the wrong variant", tt.in)
			}
		})
	}
}

func TestGenerateUnknownVariant(t *testing.T) {
	_, err := Generate("pirate")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
	if !strings.Contains(err.Error(), "baseline, refined") {
		t.Fatalf("expected known variants in error, got %v", err)
	}
}

func TestVariantsSorted(t *testing.T) {
	got := Variants()
	if len(got) != 2 || got[0] != Baseline || got[1] != Refined {
		t.Fatalf("unexpected variants: %v", got)
	}
}

// containsAll reports whether all substrings exist in text.
func containsAll(text string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(text, needle) {
			return false
		}
	}
	return true
}
