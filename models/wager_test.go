package models

import "testing"

func TestWagerMatches(t *testing.T) {
	w := Wager{GuessedScoreHome: 2, GuessedScoreAway: 1}

	if !w.Matches(2, 1) {
		t.Fatal("exact guess should match")
	}
	if w.Matches(1, 2) {
		t.Fatal("swapped score must not match")
	}
	if w.Matches(2, 2) || w.Matches(3, 1) {
		t.Fatal("single-coordinate miss must not match")
	}
}

func TestWagerIsOpen(t *testing.T) {
	cases := []struct {
		status string
		open   bool
	}{
		{WagerStatusOpen, true},
		{WagerStatusLegacyPending, true},
		{WagerStatusWon, false},
		{WagerStatusLost, false},
		{WagerStatusVoided, false},
	}

	for _, tc := range cases {
		w := Wager{Status: tc.status}
		if w.IsOpen() != tc.open {
			t.Fatalf("IsOpen(%q) = %v, want %v", tc.status, w.IsOpen(), tc.open)
		}
	}
}

func TestWagerOpenStatusesCoverLegacy(t *testing.T) {
	found := false
	for _, s := range WagerOpenStatuses {
		if s == WagerStatusLegacyPending {
			found = true
		}
	}
	if !found {
		t.Fatal("open-status set must include the legacy pending alias until migration")
	}
}
