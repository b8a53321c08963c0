package session

import (
	"testing"
	"time"
)

func TestStartReplacesPriorFlow(t *testing.T) {
	s := NewStore()
	s.Start(1, &BatchEntryFlow{Step: BatchStepPrices, Location: "Gerji"})
	s.Start(1, &DeleteFlow{})

	f, ok := s.Active(1)
	if !ok {
		t.Fatal("expected an active flow")
	}
	if _, isDelete := f.(*DeleteFlow); !isDelete {
		t.Fatalf("active flow is %T, want *DeleteFlow", f)
	}
}

func TestSessionsAreIsolatedPerUser(t *testing.T) {
	s := NewStore()
	s.Start(1, &SingleEntryFlow{Step: SingleStepPrice})
	s.Start(2, &InsightsFlow{})

	f1, _ := s.Active(1)
	if single, ok := f1.(*SingleEntryFlow); !ok || single.Step != SingleStepPrice {
		t.Fatalf("user 1 flow corrupted: %#v", f1)
	}

	s.Clear(2)
	if _, ok := s.Active(2); ok {
		t.Error("user 2 should be idle after Clear")
	}
	if _, ok := s.Active(1); !ok {
		t.Error("clearing user 2 must not touch user 1")
	}
}

func TestAcquireSerializesPerUser(t *testing.T) {
	s := NewStore()
	release := s.Acquire(1)

	// another user is never blocked
	s.Acquire(2)()

	done := make(chan struct{})
	go func() {
		s.Acquire(1)()
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("second event for the user ran while the first was in flight")
	case <-time.After(20 * time.Millisecond):
	}

	release()
	<-done
}
