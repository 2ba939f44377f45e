package uuid

import "testing"

func TestNew(t *testing.T) {
	id := New()

	if !IsValid(id) {
		t.Fatalf("expected valid UUID, got %q", id)
	}
	if v := Version(id); v != 7 {
		t.Errorf("expected version 7, got %d", v)
	}
}

func TestNew_Ordered(t *testing.T) {
	prev := New()
	for i := 0; i < 100; i++ {
		next := New()
		if next <= prev {
			t.Fatalf("expected increasing ids, got %s after %s", next, prev)
		}
		prev = next
	}
}

func TestIsValid(t *testing.T) {
	if IsValid("not-a-uuid") {
		t.Error("expected invalid for garbage input")
	}
	if Version("not-a-uuid") != 0 {
		t.Error("expected version 0 for garbage input")
	}
}
