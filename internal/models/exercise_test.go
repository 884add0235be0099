// ABOUTME: Tests for Exercise and Category helpers.
// ABOUTME: Covers custom exercise creation and slug generation.
package models

import (
	"strings"
	"testing"
)

func TestNewCustomExercise(t *testing.T) {
	e := NewCustomExercise("Cable Fly", CategoryChest)

	if !strings.HasPrefix(e.ID, "custom-") {
		t.Errorf("ID = %s, want custom- prefix", e.ID)
	}
	if e.Equipment != "custom" {
		t.Errorf("Equipment = %s, want custom", e.Equipment)
	}
	if e.Instructions != "Custom exercise" {
		t.Errorf("Instructions = %s", e.Instructions)
	}
	if e.IsCardio() {
		t.Error("chest exercise should not be cardio")
	}
}

func TestIsValidCategory(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"chest", true},
		{"full-body", true},
		{"cardio", true},
		{"neck", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidCategory(tt.in); got != tt.want {
			t.Errorf("IsValidCategory(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Back Squat", "back-squat"},
		{"  Pull-Up ", "pull-up"},
		{"Romanian Deadlift (DB)", "romanian-deadlift-db"},
		{"push_up", "push-up"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
