package binding

import (
	"errors"
	"testing"
)

func TestProperty_SetNotifiesInOrder(t *testing.T) {
	p := NewProperty(0)

	var order []string
	p.Listen(func(v int) error {
		order = append(order, "first")
		return nil
	})
	p.Listen(func(v int) error {
		order = append(order, "second")
		return nil
	})

	if err := p.Set(1); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Expected listeners in registration order, got %v", order)
	}
	if p.Get() != 1 {
		t.Errorf("Expected value 1, got %d", p.Get())
	}
}

func TestProperty_SetSameValueIsNoOp(t *testing.T) {
	p := NewProperty(42)

	calls := 0
	p.Listen(func(v int) error {
		calls++
		return nil
	})

	p.Set(42)
	p.Set(42)

	if calls != 0 {
		t.Errorf("Expected no notifications for unchanged value, got %d", calls)
	}
}

func TestProperty_DeliveryIsSynchronous(t *testing.T) {
	p := NewProperty("")

	seen := ""
	p.Listen(func(v string) error {
		seen = v
		return nil
	})

	p.Set("hello")
	// No wait: the listener must have run before Set returned.
	if seen != "hello" {
		t.Errorf("Expected listener to run before Set returns, seen=%q", seen)
	}
}

func TestProperty_UnsubscribeIsIdempotent(t *testing.T) {
	p := NewProperty(0)

	calls := 0
	sub := p.Listen(func(v int) error {
		calls++
		return nil
	})

	if err := sub.Disconnect(); err != nil {
		t.Fatalf("Disconnect returned error: %v", err)
	}
	if err := sub.Disconnect(); err != nil {
		t.Fatalf("Second Disconnect returned error: %v", err)
	}

	p.Set(1)
	if calls != 0 {
		t.Errorf("Expected no calls after disconnect, got %d", calls)
	}
}

func TestProperty_ListenerSelfRemovalDuringNotification(t *testing.T) {
	p := NewProperty(0)

	var calls []string
	var selfSub *Subscription
	p.Listen(func(v int) error {
		calls = append(calls, "a")
		return nil
	})
	selfSub = p.Listen(func(v int) error {
		calls = append(calls, "b")
		return selfSub.Disconnect()
	})
	p.Listen(func(v int) error {
		calls = append(calls, "c")
		return nil
	})

	p.Set(1)
	if len(calls) != 3 {
		t.Fatalf("Expected all three listeners in first round, got %v", calls)
	}

	calls = nil
	p.Set(2)
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "c" {
		t.Errorf("Expected only remaining listeners in second round, got %v", calls)
	}
}

func TestProperty_ListenerErrorDoesNotStopDelivery(t *testing.T) {
	p := NewProperty(0)
	boom := errors.New("boom")

	delivered := false
	p.Listen(func(v int) error { return boom })
	p.Listen(func(v int) error {
		delivered = true
		return nil
	})

	err := p.Set(1)
	if !errors.Is(err, boom) {
		t.Errorf("Expected aggregated error to contain boom, got %v", err)
	}
	if !delivered {
		t.Error("Expected delivery to continue past a failing listener")
	}
	if p.Get() != 1 {
		t.Errorf("Expected value stored despite listener error, got %d", p.Get())
	}
}

func TestProperty_ListenerPanicIsRecovered(t *testing.T) {
	p := NewProperty(0)

	delivered := false
	p.Listen(func(v int) error { panic("listener bug") })
	p.Listen(func(v int) error {
		delivered = true
		return nil
	})

	err := p.Set(1)
	if err == nil {
		t.Error("Expected an error for a panicking listener")
	}
	if !delivered {
		t.Error("Expected delivery to continue past a panicking listener")
	}
}

func TestSignal_EmitDeliversToAll(t *testing.T) {
	s := NewSignal[string]()

	var got []string
	s.Listen(func(v string) error {
		got = append(got, "x:"+v)
		return nil
	})
	s.Listen(func(v string) error {
		got = append(got, "y:"+v)
		return nil
	})

	if err := s.Emit("ping"); err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	if len(got) != 2 || got[0] != "x:ping" || got[1] != "y:ping" {
		t.Errorf("Unexpected delivery %v", got)
	}
}

func TestSignal_EmitWithoutListeners(t *testing.T) {
	s := NewSignal[int]()
	if err := s.Emit(7); err != nil {
		t.Errorf("Emit on empty signal returned error: %v", err)
	}
}
