package ids

import "testing"

func TestInternStableIndices(t *testing.T) {
	in := New()

	a, err := in.Intern("A")
	if err != nil {
		t.Fatalf("Intern(A) error = %v", err)
	}
	b, err := in.Intern("B")
	if err != nil {
		t.Fatalf("Intern(B) error = %v", err)
	}
	aAgain, err := in.Intern(" A ")
	if err != nil {
		t.Fatalf("Intern( A ) error = %v", err)
	}

	if a != 0 || b != 1 {
		t.Errorf("expected A=0 B=1, got A=%d B=%d", a, b)
	}
	if aAgain != a {
		t.Errorf("re-interning trimmed id changed index: got %d want %d", aAgain, a)
	}
	if in.Len() != 2 {
		t.Errorf("Len() = %d, want 2", in.Len())
	}
}

func TestInternEmptyID(t *testing.T) {
	in := New()
	tests := []string{"", "   ", "\t\n"}
	for _, raw := range tests {
		if _, err := in.Intern(raw); err == nil {
			t.Errorf("Intern(%q) expected error, got nil", raw)
		} else if _, ok := err.(*InvalidIDError); !ok {
			t.Errorf("Intern(%q) error type = %T, want *InvalidIDError", raw, err)
		}
	}
}

func TestIDsOrderMatchesIndex(t *testing.T) {
	in := New()
	for _, id := range []string{"C", "A", "B"} {
		if _, err := in.Intern(id); err != nil {
			t.Fatalf("Intern(%q) error = %v", id, err)
		}
	}
	got := in.IDs()
	want := []string{"C", "A", "B"}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("IDs()[%d] = %q, want %q", i, got[i], w)
		}
	}
}
