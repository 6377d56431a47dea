package observe

import "testing"

func TestSubscribeReceivesPing(t *testing.T) {
	var h Hub
	ch, cancel := h.Subscribe()
	defer cancel()

	h.Notify()

	select {
	case <-ch:
	default:
		t.Fatalf("expected a pending ping after Notify")
	}
}

func TestPingsCoalesce(t *testing.T) {
	var h Hub
	ch, cancel := h.Subscribe()
	defer cancel()

	h.Notify()
	h.Notify()
	h.Notify()

	<-ch
	select {
	case <-ch:
		t.Fatalf("expected coalesced pings to deliver exactly once")
	default:
	}
}

func TestCancelClosesChannel(t *testing.T) {
	var h Hub
	ch, cancel := h.Subscribe()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatalf("expected closed channel after cancel")
	}

	// Further notifies must not panic after unsubscribe.
	h.Notify()
	cancel()
}

func TestMultipleSubscribers(t *testing.T) {
	var h Hub
	a, cancelA := h.Subscribe()
	b, cancelB := h.Subscribe()
	defer cancelA()
	defer cancelB()

	h.Notify()

	select {
	case <-a:
	default:
		t.Fatalf("subscriber a missed the ping")
	}
	select {
	case <-b:
	default:
		t.Fatalf("subscriber b missed the ping")
	}
}
