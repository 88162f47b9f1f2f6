// Package widget provides the configurable base for element-bound widgets.
//
// A widget is a Go value bound to exactly one host element. The package
// manages two independent mappings per widget — options (configuration)
// and state (runtime data) — and a two-phase construction lifecycle.
//
// # Construction
//
// Embed [Base] in a concrete widget type and pass it to [Mount]:
//
//	type Menu struct {
//	    widget.Base
//	}
//
//	func (m *Menu) DefaultOptions() map[string]any {
//	    return map[string]any{"open": false, "items.max": 10}
//	}
//
//	func (m *Menu) Init() bool {
//	    m.SetState("selection", 0)
//	    return true
//	}
//
//	el, _ := host.First(`<nav data-options='{"open":true}'></nav>`)
//	menu := &Menu{}
//	widget.Mount(menu, el, map[string]any{"theme": "dark"})
//
// Mount validates the element, runs Boot, merges options (built-in
// defaults, then the element's data-options attribute, then explicit
// overrides), resets state, runs Init, and runs Booted. All failures are
// reported through the errors package and construction degrades rather
// than raising; the one exception is mounting a bare *Base, which panics.
//
// # Options and state
//
// Both mappings are addressed by dotted paths:
//
//	menu.SetOption("items.max", 25)
//	max := menu.Option("items.max", 10)
//	menu.SetState("cursor.row", 3).SetState("cursor.col", 1)
//
// The empty path (and Options/StateMap) returns the live mapping, not a
// copy. Neither mapping is safe for concurrent mutation; widgets live on
// the host UI thread.
package widget
