package models

import (
	"testing"
	"time"
)

func TestPoolAcceptsWagers(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name    string
		status  string
		closing time.Time
		want    bool
	}{
		{"open before closing", PoolStatusOpen, now.Add(time.Hour), true},
		// Closing time is authoritative even when the sweep has not flipped
		// the status yet.
		{"open past closing", PoolStatusOpen, now.Add(-time.Minute), false},
		{"open exactly at closing", PoolStatusOpen, now, false},
		{"closed", PoolStatusClosed, now.Add(time.Hour), false},
		{"settled", PoolStatusSettled, now.Add(time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Pool{Status: tc.status, ClosingTime: tc.closing}
			if got := p.AcceptsWagers(now); got != tc.want {
				t.Fatalf("AcceptsWagers = %v, want %v", got, tc.want)
			}
		})
	}
}
