package binding

import "errors"

// Disconnector is the uniform teardown capability shared by Link and
// Subscription, so a view can keep both in one slice and tear them down
// together.
type Disconnector interface {
	Disconnect() error
}

// DisconnectAll disconnects every item. It does not stop on failure: all
// items are processed and the errors are aggregated. Nil entries and
// already-disconnected items are tolerated.
func DisconnectAll(items []Disconnector) error {
	var errs []error
	for _, item := range items {
		if item == nil {
			continue
		}
		if err := item.Disconnect(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Group collects the bindings a view creates against one model instance.
// When the view attaches to a different model, Disconnect tears every
// binding down and leaves the group empty, ready for the new set.
type Group struct {
	items []Disconnector
}

// Add appends bindings to the group.
func (g *Group) Add(items ...Disconnector) {
	g.items = append(g.items, items...)
}

// Len returns the number of bindings currently held.
func (g *Group) Len() int {
	return len(g.items)
}

// Disconnect tears down every binding in the group exactly once and clears
// it. Safe on an empty group.
func (g *Group) Disconnect() error {
	err := DisconnectAll(g.items)
	g.items = nil
	return err
}
