package service

import (
	"regexp"
	"testing"
)

func TestNewUserID(t *testing.T) {
	pattern := regexp.MustCompile(`^stud_[0-9a-f]{8}$`)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewUserID("stud")
		if !pattern.MatchString(id) {
			t.Fatalf("id %q does not match %s", id, pattern)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewUserIDPrefix(t *testing.T) {
	pattern := regexp.MustCompile(`^prof_[0-9a-f]{8}$`)

	if id := NewUserID("prof"); !pattern.MatchString(id) {
		t.Fatalf("id %q does not match %s", id, pattern)
	}
}
