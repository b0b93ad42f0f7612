package binding

import (
	"errors"
	"fmt"
)

// Direction selects which way a link propagates changes.
type Direction int

const (
	// TwoWay propagates changes from either side to the other.
	TwoWay Direction = iota
	// OneWay propagates source changes to the target only.
	OneWay
)

// ErrBadBinding reports a configuration error detected at bind time, such as
// a nil property or a missing conversion.
var ErrBadBinding = errors.New("binding: invalid configuration")

// Link is one active binding between a source property and a target. It is
// created bound and stays active until Disconnect; a disconnected link is
// inert and cannot be rebound.
type Link struct {
	subs [2]*Subscription
	// propagating guards against a write to one side re-entering this link
	// while it is still delivering to the other side.
	propagating bool
}

// guard runs fn unless this link is already mid-propagation.
func (l *Link) guard(fn func() error) error {
	if l.propagating {
		return nil
	}
	l.propagating = true
	defer func() { l.propagating = false }()
	return fn()
}

// Disconnect removes the link's subscriptions on both ends. Calling it more
// than once is safe; no propagation happens after the first call. A nil
// link, as left behind by a failed bind, disconnects to nothing.
func (l *Link) Disconnect() error {
	if l == nil {
		return nil
	}
	var errs []error
	for _, sub := range l.subs {
		if sub == nil {
			continue
		}
		if err := sub.Disconnect(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Bind links two properties of the same type. The target is set to the
// source's current value immediately, then kept in sync on every change.
func Bind[T comparable](src, dst *Property[T], dir Direction) (*Link, error) {
	identity := func(v T) T { return v }
	return BindConverted(src, dst, identity, identity, dir)
}

// BindConverted links a source property to a target property of a different
// type. forward converts source values to target values, inverse the other
// way; they must round-trip for every value in the source domain. inverse
// may be nil for a one-way link.
func BindConverted[S, V comparable](src *Property[S], dst *Property[V], forward func(S) V, inverse func(V) S, dir Direction) (*Link, error) {
	if src == nil || dst == nil {
		return nil, fmt.Errorf("%w: nil property", ErrBadBinding)
	}
	if forward == nil {
		return nil, fmt.Errorf("%w: nil forward conversion", ErrBadBinding)
	}
	if dir == TwoWay && inverse == nil {
		return nil, fmt.Errorf("%w: two-way link needs an inverse conversion", ErrBadBinding)
	}

	link := &Link{}
	if err := dst.Set(forward(src.Get())); err != nil {
		return nil, fmt.Errorf("binding: initial sync: %w", err)
	}

	link.subs[0] = src.Listen(func(v S) error {
		return link.guard(func() error {
			return dst.Set(forward(v))
		})
	})
	if dir == TwoWay {
		link.subs[1] = dst.Listen(func(v V) error {
			return link.guard(func() error {
				return src.Set(inverse(v))
			})
		})
	}
	return link, nil
}

// BindWidget links a property to a widget that has no property abstraction,
// only a setter and a change signal. The setter is called with the current
// value at bind time. changed may be nil for display-only widgets, making
// the link one-way.
func BindWidget[T comparable](src *Property[T], changed *Signal[T], set func(T)) (*Link, error) {
	if src == nil || set == nil {
		return nil, fmt.Errorf("%w: nil property or setter", ErrBadBinding)
	}

	link := &Link{}
	set(src.Get())

	link.subs[0] = src.Listen(func(v T) error {
		return link.guard(func() error {
			set(v)
			return nil
		})
	})
	if changed != nil {
		link.subs[1] = changed.Listen(func(v T) error {
			return link.guard(func() error {
				return src.Set(v)
			})
		})
	}
	return link, nil
}

// BindCombo links an enumerated property to a selection widget, mapping the
// stored value to its index in options and back. A source value missing
// from options maps to index -1; a selection index out of range is ignored.
func BindCombo[T comparable](src *Property[T], options []T, changed *Signal[int], set func(int)) (*Link, error) {
	if src == nil || set == nil {
		return nil, fmt.Errorf("%w: nil property or setter", ErrBadBinding)
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: empty combo options", ErrBadBinding)
	}

	indexOf := func(v T) int {
		for i, opt := range options {
			if opt == v {
				return i
			}
		}
		return -1
	}

	link := &Link{}
	set(indexOf(src.Get()))

	link.subs[0] = src.Listen(func(v T) error {
		return link.guard(func() error {
			set(indexOf(v))
			return nil
		})
	})
	if changed != nil {
		link.subs[1] = changed.Listen(func(i int) error {
			return link.guard(func() error {
				if i < 0 || i >= len(options) {
					return nil
				}
				return src.Set(options[i])
			})
		})
	}
	return link, nil
}
