package pattern

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFinalPattern(t *testing.T) {
	tests := []struct {
		name     string
		cmp      Comparison
		expected string
	}{
		{"contains insensitive", New(Contains, "Mesh", false), "(?i)Mesh"},
		{"starts sensitive", New(StartsWith, "Mesh", true), "^Mesh"},
		{"ends insensitive", New(EndsWith, "Filter", false), "(?i)Filter$"},
		{"equals escapes", New(EqualsTo, "a.b", true), `^a\.b$`},
		{"regex untouched", New(Regex, "^M.*$", false), "^M.*$"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.cmp.FinalPattern(); got != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestIsMatch(t *testing.T) {
	tests := []struct {
		cmp      Comparison
		input    string
		expected bool
	}{
		{New(EqualsTo, "MeshFilter", true), "MeshFilter", true},
		{New(EqualsTo, "MeshFilter", true), "meshfilter", false},
		{New(EqualsTo, "MeshFilter", false), "meshfilter", true},
		{New(StartsWith, "Mesh", true), "MeshRenderer", true},
		{New(StartsWith, "Mesh", true), "SkinnedMeshRenderer", false},
		{New(EndsWith, "Collider", true), "BoxCollider", true},
		{New(Contains, "Audio", false), "MyAUDIOPlayer", true},
		{New(Contains, "", false), "anything", false},
		{New(Regex, "^(Box|Sphere)Collider$", false), "SphereCollider", true},
	}

	for _, test := range tests {
		if got := test.cmp.IsMatch(test.input); got != test.expected {
			t.Errorf("%s %q vs %q: expected %v, got %v", test.cmp.Type, test.cmp.Pattern, test.input, test.expected, got)
		}
	}
}

func TestCompiledExpressionsAreReused(t *testing.T) {
	first, err := New(EndsWith, "Renderer", false).compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := New(EndsWith, "Renderer", false).compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if first != second {
		t.Error("Expected the same compiled expression for an identical pattern")
	}
	if first.MatchTimeout != MatchTimeout {
		t.Errorf("Expected match timeout %v, got %v", MatchTimeout, first.MatchTimeout)
	}

	other, err := New(EndsWith, "Renderer", true).compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if other == first {
		t.Error("Expected a different expression when case sensitivity changes")
	}
}

func TestIsMatchTimesOut(t *testing.T) {
	cmp := New(Regex, "^(a+)+$", true)
	input := strings.Repeat("a", 40) + "!"

	start := time.Now()
	if cmp.IsMatch(input) {
		t.Error("Expected a timed out match to report false")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Expected the match to give up near %v, took %v", MatchTimeout, elapsed)
	}
}

func TestMatchAll(t *testing.T) {
	cmp := New(StartsWith, "Box", true)
	got := cmp.MatchAll([]string{"BoxCollider", "SphereCollider", "Box"})
	expected := []bool{true, false, true}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Index %d: expected %v, got %v", i, expected[i], got[i])
		}
	}

	empty := New(Contains, "", false).MatchAll([]string{"a", "b"})
	if empty[0] || empty[1] {
		t.Error("Empty pattern must not match anything")
	}
}

func TestIsValid(t *testing.T) {
	if IsValid("") {
		t.Error("Empty pattern should be invalid")
	}
	if !IsValid("^abc$") {
		t.Error("Expected ^abc$ to be valid")
	}
	if IsValid("(unclosed") {
		t.Error("Expected (unclosed to be invalid")
	}
}

func TestSetPattern_RejectsInvalidRegex(t *testing.T) {
	cmp := New(Regex, "^ok$", false)
	err := cmp.SetPattern("[bad")
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("Expected ErrInvalidPattern, got %v", err)
	}
	if cmp.Pattern != "^ok$" {
		t.Errorf("Previous pattern should be kept, got %q", cmp.Pattern)
	}

	literal := New(Contains, "x", false)
	if err := literal.SetPattern("[bad"); err != nil {
		t.Errorf("Literal comparisons accept any text, got %v", err)
	}
}

func TestRegexModeRoundTrip(t *testing.T) {
	tests := []Comparison{
		New(EqualsTo, "MeshFilter", true),
		New(EqualsTo, "MeshFilter", false),
		New(StartsWith, "Audio", false),
		New(EndsWith, "Renderer", true),
		New(Contains, "Light", false),
		New(Contains, "a.b(c)", true),
	}

	for _, original := range tests {
		cmp := original
		cmp.SetType(Regex)
		if cmp.Pattern != original.FinalPattern() {
			t.Errorf("Entering regex mode: expected %q, got %q", original.FinalPattern(), cmp.Pattern)
		}
		cmp.ExitRegexMode()
		if cmp != original {
			t.Errorf("Round trip of %+v produced %+v", original, cmp)
		}
	}
}

func TestMatchesAny(t *testing.T) {
	hidden := []Comparison{New(EqualsTo, "MeshFilter", false), New(EndsWith, "Joint", true)}
	if !MatchesAny(hidden, "CharacterJoint") {
		t.Error("Expected CharacterJoint to be matched")
	}
	if MatchesAny(hidden, "Camera") {
		t.Error("Camera should not be matched")
	}
}
