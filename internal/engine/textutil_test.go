package engine

import "testing"

func TestFold(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Recitación", "recitacion"},
		{"POESÍA DOMINICANA", "poesia dominicana"},
		{"Niágara", "niagara"},
		{"sin acentos", "sin acentos"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("ab", 3); got != "ab" {
		t.Errorf("short input changed: %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	// multibyte runes must not be split
	if got := TruncateRunes("ñññññ", 3, ""); got != "ñññ" {
		t.Errorf("TruncateRunes = %q", got)
	}
	if got := TruncateRunes("corto", 10, "..."); got != "corto" {
		t.Errorf("suffix added without truncation: %q", got)
	}
}
