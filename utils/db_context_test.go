package utils

import (
	"context"
	"testing"
	"time"
)

func TestQueryContextCarriesDeadline(t *testing.T) {
	ctx, cancel := GetDefaultQueryContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline on the query context")
	}
	remaining := time.Until(deadline)
	if remaining <= 0 || remaining > DefaultQueryTimeout {
		t.Fatalf("deadline %v out of range for default tier", remaining)
	}
}

func TestQueryContextTierOrdering(t *testing.T) {
	if !(FastQueryTimeout < DefaultQueryTimeout && DefaultQueryTimeout < SlowQueryTimeout) {
		t.Fatalf("timeout tiers out of order: fast=%v default=%v slow=%v",
			FastQueryTimeout, DefaultQueryTimeout, SlowQueryTimeout)
	}
}

func TestQueryContextNilParent(t *testing.T) {
	ctx, cancel := GetSlowQueryContext(nil)
	defer cancel()

	if err := ctx.Err(); err != nil {
		t.Fatalf("fresh context already done: %v", err)
	}
}

func TestQueryContextCancelledParentPropagates(t *testing.T) {
	parent, parentCancel := context.WithCancel(context.Background())
	parentCancel()

	ctx, cancel := GetFastQueryContext(parent)
	defer cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("child context did not observe parent cancellation")
	}
}
