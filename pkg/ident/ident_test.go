package ident

import (
	"strings"
	"testing"
)

func TestNew_Prefix(t *testing.T) {
	id := New("sess")
	if !strings.HasPrefix(id, "sess_") {
		t.Errorf("expected sess_ prefix, got %q", id)
	}
	if len(id) <= len("sess_") {
		t.Errorf("expected a non-empty suffix, got %q", id)
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New("msg")
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
