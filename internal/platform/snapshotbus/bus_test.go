package snapshotbus

import "testing"

func TestNotifyReachesEverySubscriber(t *testing.T) {
	bus := New(nil)
	first, cancelFirst := bus.Subscribe()
	second, cancelSecond := bus.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	bus.Notify()

	select {
	case <-first:
	default:
		t.Fatal("first subscriber missed the signal")
	}
	select {
	case <-second:
	default:
		t.Fatal("second subscriber missed the signal")
	}
}

func TestNotifyCoalescesPendingSignals(t *testing.T) {
	bus := New(nil)
	signals, cancel := bus.Subscribe()
	defer cancel()

	bus.Notify()
	bus.Notify()
	bus.Notify()

	<-signals
	select {
	case <-signals:
		t.Fatal("back-to-back notifies must coalesce into one pending signal")
	default:
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	bus := New(nil)
	signals, cancel := bus.Subscribe()
	cancel()

	// Closed channel: receive must not block and must report closed.
	if _, open := <-signals; open {
		t.Fatal("cancel should close the channel")
	}
	bus.Notify()

	// Cancel twice is safe.
	cancel()
}
