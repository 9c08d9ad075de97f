package idmap

import "testing"

func TestInternAssignsDenseIncreasingIds(t *testing.T) {
	m := New()
	a := m.Intern("alice")
	b := m.Intern("bob")
	c := m.Intern("carol")
	if a != 0 || b != 1 || c != 2 {
		t.Fatalf("ids = %d,%d,%d, want 0,1,2", a, b, c)
	}
}

func TestInternIsIdempotent(t *testing.T) {
	m := New()
	first := m.Intern("alice")
	again := m.Intern("alice")
	if first != again {
		t.Errorf("Intern(same key) = %d then %d, want equal", first, again)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestLookupMissing(t *testing.T) {
	m := New()
	if _, ok := m.Lookup("nope"); ok {
		t.Error("Lookup on an empty map should report not found")
	}
	m.Intern("present")
	if _, ok := m.Lookup("nope"); ok {
		t.Error("Lookup for a never-interned key should report not found")
	}
}

func TestNameOfRoundTrips(t *testing.T) {
	m := New()
	id := m.Intern("hello")
	name, ok := m.NameOf(id)
	if !ok || name != "hello" {
		t.Errorf("NameOf(%d) = %q, %v, want %q, true", id, name, ok, "hello")
	}
	if _, ok := m.NameOf(999); ok {
		t.Error("NameOf on an unassigned id should report not found")
	}
}

func TestInternSurvivesGrowth(t *testing.T) {
	m := New()
	ids := make(map[string]int64)
	for i := 0; i < 1000; i++ {
		key := string(rune('a' + i%26))
		key += string(rune('A' + (i/26)%26))
		ids[key] = m.Intern(key)
	}
	for key, id := range ids {
		if got, ok := m.Lookup(key); !ok || got != id {
			t.Fatalf("after growth, Lookup(%q) = %d, %v, want %d, true", key, got, ok, id)
		}
	}
}
