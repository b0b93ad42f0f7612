package binding

import (
	"errors"
	"fmt"
)

// Listener receives the new value after a change. A non-nil error is
// collected and surfaced to the caller of Set or Emit; it does not prevent
// delivery to the remaining listeners.
type Listener[T any] func(T) error

// listener is a registered callback. The removed flag keeps an unsubscribed
// listener from firing when it is still part of a notification snapshot.
type listener[T any] struct {
	fn      Listener[T]
	removed bool
}

// notifier holds an ordered listener list shared by Property and Signal.
type notifier[T any] struct {
	listeners []*listener[T]
}

// listen registers fn at the end of the invocation order.
func (n *notifier[T]) listen(fn Listener[T]) *Subscription {
	l := &listener[T]{fn: fn}
	n.listeners = append(n.listeners, l)
	return &Subscription{remove: func() {
		l.removed = true
		for i, el := range n.listeners {
			if el == l {
				n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
				break
			}
		}
	}}
}

// notify invokes all listeners registered at the start of the round, in
// registration order. A listener that unsubscribes itself mid-round does not
// affect the others; a listener that fails or panics does not stop delivery.
func (n *notifier[T]) notify(value T) error {
	snapshot := make([]*listener[T], len(n.listeners))
	copy(snapshot, n.listeners)

	var errs []error
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		if err := safeInvoke(l.fn, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// safeInvoke runs a single listener, converting a panic into an error so one
// faulty listener cannot take down the UI event loop.
func safeInvoke[T any](fn Listener[T], value T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("binding: listener panic: %v", r)
		}
	}()
	return fn(value)
}

// Property is an observable value on a model or view entity. Assigning the
// value it already holds is a no-op and triggers no listeners.
//
// Property is not safe for concurrent use; like the widgets it backs, it
// must only be touched from the UI thread.
type Property[T comparable] struct {
	notifier[T]
	value T
}

// NewProperty creates a property holding initial.
func NewProperty[T comparable](initial T) *Property[T] {
	return &Property[T]{value: initial}
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	return p.value
}

// Set stores value and notifies all listeners synchronously, in registration
// order, before returning. Setting the current value again does nothing.
// The returned error aggregates listener failures from this round; the value
// is stored regardless.
func (p *Property[T]) Set(value T) error {
	if value == p.value {
		return nil
	}
	p.value = value
	return p.notify(value)
}

// Listen registers fn to be called with every new value.
func (p *Property[T]) Listen(fn Listener[T]) *Subscription {
	return p.listen(fn)
}

// Signal is a change event without a stored value, for widgets that expose a
// plain callback instead of an observable property. UI code adapts a widget
// by pointing its change callback at Emit.
type Signal[T any] struct {
	notifier[T]
}

// NewSignal creates an empty signal.
func NewSignal[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Emit delivers value to all listeners synchronously, in registration order.
func (s *Signal[T]) Emit(value T) error {
	return s.notify(value)
}

// Listen registers fn to be called on every emit.
func (s *Signal[T]) Listen(fn Listener[T]) *Subscription {
	return s.listen(fn)
}

// Subscription is the handle returned by Listen. Disconnecting it removes
// the listener; disconnecting twice is a no-op.
type Subscription struct {
	remove func()
}

// Disconnect removes the listener from its notifier. It never fails; the
// error return satisfies Disconnector. A nil subscription is inert.
func (s *Subscription) Disconnect() error {
	if s == nil {
		return nil
	}
	if s.remove != nil {
		s.remove()
		s.remove = nil
	}
	return nil
}
