package utils

import (
	"regexp"
	"testing"
)

func TestGenerateIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^SCH-[A-Z0-9]{8}$`)
	seen := map[string]bool{}

	for i := 0; i < 200; i++ {
		id := GenerateID("SCH")
		if !pattern.MatchString(id) {
			t.Fatalf("id %q does not match %s", id, pattern)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = true
	}
}

func TestGenerateIDPrefix(t *testing.T) {
	if got := GenerateID("FB"); len(got) != 11 || got[:3] != "FB-" {
		t.Fatalf("unexpected id %q", got)
	}
}
