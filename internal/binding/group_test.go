package binding

import (
	"errors"
	"testing"
)

// failingDisconnector simulates a teardown failure inside a batch.
type failingDisconnector struct {
	err error
}

func (f *failingDisconnector) Disconnect() error { return f.err }

func TestDisconnectAll_EmptyAndNilEntries(t *testing.T) {
	if err := DisconnectAll(nil); err != nil {
		t.Errorf("Expected nil error on empty sequence, got %v", err)
	}
	if err := DisconnectAll([]Disconnector{nil, nil}); err != nil {
		t.Errorf("Expected nil entries tolerated, got %v", err)
	}
}

func TestDisconnectAll_MixedBindingsAndSubscriptions(t *testing.T) {
	src := NewProperty(0)
	dst := NewProperty(0)
	link, _ := Bind(src, dst, TwoWay)

	calls := 0
	sub := src.Listen(func(int) error {
		calls++
		return nil
	})

	if err := DisconnectAll([]Disconnector{link, sub}); err != nil {
		t.Fatalf("DisconnectAll returned error: %v", err)
	}

	src.Set(5)
	if calls != 0 {
		t.Errorf("Expected subscription disconnected, got %d calls", calls)
	}
	if dst.Get() != 0 {
		t.Errorf("Expected link disconnected, got %d", dst.Get())
	}
}

func TestDisconnectAll_ContinuesPastFailure(t *testing.T) {
	src := NewProperty(0)
	dst := NewProperty(0)
	link, _ := Bind(src, dst, TwoWay)
	boom := errors.New("boom")

	// Already-disconnected entry, a failing entry, and a live one: the live
	// one must still be torn down and the failure reported.
	stale, _ := Bind(src, dst, OneWay)
	stale.Disconnect()

	err := DisconnectAll([]Disconnector{stale, &failingDisconnector{err: boom}, link})
	if !errors.Is(err, boom) {
		t.Errorf("Expected aggregated error to contain boom, got %v", err)
	}

	src.Set(5)
	if dst.Get() != 0 {
		t.Errorf("Expected valid entry disconnected despite earlier failure, got %d", dst.Get())
	}
}

func TestGroup_DisconnectClearsAndIsReusable(t *testing.T) {
	modelA := NewProperty("a")
	modelB := NewProperty("b")
	view := NewProperty("")

	var g Group

	link, _ := Bind(modelA, view, TwoWay)
	g.Add(link)
	if g.Len() != 1 {
		t.Fatalf("Expected one binding in group, got %d", g.Len())
	}

	// Switch to a different model: the old binding must be fully gone.
	if err := g.Disconnect(); err != nil {
		t.Fatalf("Group disconnect returned error: %v", err)
	}
	if g.Len() != 0 {
		t.Errorf("Expected empty group after disconnect, got %d", g.Len())
	}

	link, _ = Bind(modelB, view, TwoWay)
	g.Add(link)

	modelA.Set("stale change")
	if view.Get() != "b" {
		t.Errorf("Expected no stale propagation from previous model, got %q", view.Get())
	}

	modelB.Set("fresh change")
	if view.Get() != "fresh change" {
		t.Errorf("Expected propagation from new model, got %q", view.Get())
	}
}

func TestDisconnectAll_ToleratesFailedBindResult(t *testing.T) {
	// A failed bind returns a nil *Link. Stored in a Disconnector slice it
	// becomes a non-nil interface wrapping a nil pointer, which the plain
	// nil check in DisconnectAll does not catch; teardown must still not
	// crash.
	link, err := BindCombo(NewProperty("x"), nil, nil, func(int) {})
	if err == nil {
		t.Fatal("Expected bind error for empty options")
	}

	sub := NewProperty(0).Listen(func(int) error { return nil })
	if err := DisconnectAll([]Disconnector{link, (*Subscription)(nil), sub}); err != nil {
		t.Errorf("Expected failed-bind results tolerated, got %v", err)
	}

	var g Group
	g.Add(link)
	if err := g.Disconnect(); err != nil {
		t.Errorf("Expected group teardown to tolerate failed-bind result, got %v", err)
	}
}

func TestGroup_DisconnectOnEmptyGroup(t *testing.T) {
	var g Group
	if err := g.Disconnect(); err != nil {
		t.Errorf("Expected empty group disconnect to succeed, got %v", err)
	}
}
