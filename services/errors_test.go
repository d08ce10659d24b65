package services

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", notFound("pool %d not found", 7), KindNotFound},
		{"invalid state", invalidState("already settled"), KindInvalidState},
		{"failed precondition", failedPrecondition("insufficient balance"), KindFailedPrecondition},
		{"internal", internal("load pool", errors.New("connection refused")), KindInternal},
		{"foreign error", errors.New("boom"), KindInternal},
		{"wrapped service error", fmt.Errorf("context: %w", invalidState("already settled")), KindInvalidState},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Fatalf("KindOf = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMessageHidesInternalCause(t *testing.T) {
	err := internal("load pool", errors.New("password=hunter2 dial failed"))
	if msg := Message(err); msg != "internal error" {
		t.Fatalf("Message = %q, want generic internal error", msg)
	}

	if msg := Message(invalidState("pool 3 is already settled")); msg != "pool 3 is already settled" {
		t.Fatalf("Message = %q", msg)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("dial timeout")
	err := internal("load user", cause)
	if errors.Cause(err.Unwrap()) != cause {
		t.Fatal("Unwrap lost the cause")
	}
}
