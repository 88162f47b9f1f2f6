package widget

import (
	"github.com/go-drift/anchor/pkg/host"
	"github.com/go-drift/anchor/pkg/props"
)

// Widget is the subclass contract for element-bound widgets.
// Concrete widgets embed Base, which supplies default implementations for
// every hook; the unexported accessor keeps the contract satisfiable only
// through embedding.
type Widget interface {
	// Boot runs before option initialization.
	Boot()

	// Booted runs after construction completes.
	Booted()

	// DefaultOptions returns the widget's built-in options.
	DefaultOptions() map[string]any

	// Init performs subclass initialization. Returning false marks the
	// construction failed without aborting it.
	Init() bool

	// Destroy tears the widget down. Overrides must call Base.Destroy.
	Destroy()

	// CheckElement reports whether el is an acceptable host element.
	CheckElement(el host.Element) bool

	base() *Base
}

func (b *Base) base() *Base { return b }

// Base provides common functionality for element-bound widgets.
// Embed this struct in your widget and pass it to Mount:
//
//	type Menu struct {
//	    widget.Base
//	}
//
//	func (m *Menu) DefaultOptions() map[string]any {
//	    return map[string]any{"open": false}
//	}
//
//	menu := &Menu{}
//	widget.Mount(menu, el, nil)
type Base struct {
	element     host.Element
	options     map[string]any
	state       map[string]any
	initialized bool
}

// Element returns the bound host element. The element is borrowed from the
// host UI tree; the widget never owns its lifecycle.
func (b *Base) Element() host.Element {
	return b.element
}

// IsInitialized reports whether the init hook completed successfully.
func (b *Base) IsInitialized() bool {
	return b.initialized
}

// Option resolves a dotted path against the widget's options.
// A missing or nil value yields the fallback (nil when none is given).
// The empty path returns the whole options mapping, by reference.
func (b *Base) Option(path string, fallback ...any) any {
	if path == "" {
		return b.Options()
	}
	return pick(b.options, path, fallback)
}

// SetOption assigns value at the dotted path in the widget's options,
// creating intermediate mappings as needed. It returns the base for
// chaining.
func (b *Base) SetOption(path string, value any) *Base {
	b.options = props.Set(b.options, path, value)
	return b
}

// Options returns the live options mapping, not a copy. Callers may mutate
// it directly; this aliasing is part of the contract.
func (b *Base) Options() map[string]any {
	if b.options == nil {
		b.options = make(map[string]any)
	}
	return b.options
}

// State resolves a dotted path against the widget's runtime state.
// A missing or nil value yields the fallback (nil when none is given).
// The empty path returns the whole state mapping, by reference.
func (b *Base) State(path string, fallback ...any) any {
	if path == "" {
		return b.StateMap()
	}
	return pick(b.state, path, fallback)
}

// SetState assigns value at the dotted path in the widget's runtime state.
// It returns the base for chaining.
func (b *Base) SetState(path string, value any) *Base {
	b.state = props.Set(b.state, path, value)
	return b
}

// DeleteState removes the value at the dotted path from the runtime state.
// It returns false when any path segment is absent.
func (b *Base) DeleteState(path string) bool {
	return props.Delete(b.state, path)
}

// StateMap returns the live state mapping, not a copy.
func (b *Base) StateMap() map[string]any {
	if b.state == nil {
		b.state = make(map[string]any)
	}
	return b.state
}

// Boot is a no-op default implementation.
// Override this method for pre-initialization work.
func (b *Base) Boot() {}

// Booted is a no-op default implementation.
// Override this method for post-construction work.
func (b *Base) Booted() {}

// DefaultOptions returns no options by default.
func (b *Base) DefaultOptions() map[string]any { return nil }

// Init is the default init hook; it reports success.
// Override this method to initialize your widget; return false to mark the
// construction failed.
func (b *Base) Init() bool { return true }

// CheckElement accepts any valid host element.
// Override this method to narrow which elements the widget binds to.
func (b *Base) CheckElement(el host.Element) bool {
	return host.Valid(el)
}

// Destroy clears the initialized flag. Override this method if you need
// custom teardown, but always call b.Base.Destroy() in your override.
// Destruction does not detach the widget from its element or permit a
// second Mount.
func (b *Base) Destroy() {
	b.initialized = false
}

// pick applies the shared fallback rule for Option and State.
func pick(m map[string]any, path string, fallback []any) any {
	value, ok := props.Lookup(m, path)
	if !ok || value == nil {
		if len(fallback) > 0 {
			return fallback[0]
		}
		return nil
	}
	return value
}
