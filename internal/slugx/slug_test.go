package slugx

import (
	"strings"
	"testing"
)

func TestDerive_FoldsAccentsAndSpaces(t *testing.T) {
	got := Derive("Huiles CBD 10%")
	if got != "huiles-cbd-10" {
		t.Fatalf("unexpected slug: %q", got)
	}
	if strings.ContainsAny(got, " éèàç%") {
		t.Fatalf("slug contains forbidden characters: %q", got)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	a := Derive("Gélules CBD 500mg")
	b := Derive("Gélules CBD 500mg")
	if a != b {
		t.Fatalf("slug not deterministic: %q vs %q", a, b)
	}
}

func TestDerive_Idempotent(t *testing.T) {
	first := Derive("Cosmétiques CBD")
	second := Derive(first)
	if first != second {
		t.Fatalf("re-deriving changed the slug: %q -> %q", first, second)
	}
}
