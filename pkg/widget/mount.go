package widget

import (
	"encoding/json"
	stderrors "errors"
	"net/url"
	"reflect"

	"github.com/go-drift/anchor/pkg/errors"
	"github.com/go-drift/anchor/pkg/host"
	"github.com/go-drift/anchor/pkg/props"
)

var (
	// ErrInvalidElement indicates the host element failed validation.
	ErrInvalidElement = stderrors.New("host element failed validation")

	// ErrInitFailed indicates the widget init hook reported failure.
	ErrInitFailed = stderrors.New("widget init hook reported failure")
)

// Mount binds w to el and runs the construction lifecycle:
// element validation, Boot, option initialization, state reset, Init,
// Booted. Construction failures other than the abstract-base guard are
// reported through the errors package and never raised; a widget whose
// element fails validation or whose Init returns false simply ends up
// not initialized.
//
// Mount panics with *errors.InstantiationError when w is nil or a bare
// *Base: the base is abstract and must be embedded in a concrete widget.
// Mounting is one-shot; a destroyed widget is not mounted again.
func Mount(w Widget, el host.Element, overrides map[string]any) {
	if w == nil {
		panic(&errors.InstantiationError{})
	}
	if v := reflect.ValueOf(w); v.Kind() == reflect.Pointer && v.IsNil() {
		panic(&errors.InstantiationError{Type: reflect.TypeOf(w).String()})
	}
	if _, bare := w.(*Base); bare {
		panic(&errors.InstantiationError{Type: reflect.TypeOf(w).String()})
	}
	b := w.base()

	name := reflect.TypeOf(w).String()

	if !w.CheckElement(el) {
		errors.Report(&errors.BindError{
			Op:         "widget.Mount",
			Kind:       errors.KindElement,
			Widget:     name,
			Err:        ErrInvalidElement,
			StackTrace: errors.CaptureStack(),
		})
		return
	}
	b.element = el

	runHook("widget.Boot", w.Boot)

	b.options = initOptions(w, name, el, overrides)
	b.state = make(map[string]any)

	// A panicking init hook counts as a failed one.
	if runInit(w) {
		b.initialized = true
	} else {
		errors.Report(&errors.BindError{
			Op:     "widget.Mount",
			Kind:   errors.KindInit,
			Widget: name,
			Err:    ErrInitFailed,
		})
	}

	runHook("widget.Booted", w.Booted)
}

// runHook invokes a lifecycle hook with panic recovery; a panicking hook is
// reported and construction continues.
func runHook(op string, fn func()) {
	defer errors.Recover(op)
	fn()
}

func runInit(w Widget) (ok bool) {
	defer errors.Recover("widget.Init")
	return w.Init()
}

// Unmount runs the widget's Destroy hook. The initialized flag is cleared;
// the element binding and mappings are left in place.
func Unmount(w Widget) {
	if w == nil {
		return
	}
	runHook("widget.Destroy", w.Destroy)
}

// initOptions produces the final options mapping. Precedence, lowest to
// highest: built-in defaults, element-attached configuration, explicit
// overrides. Each source is applied as a shallow top-level merge.
func initOptions(w Widget, name string, el host.Element, overrides map[string]any) map[string]any {
	options := props.Merge(nil, w.DefaultOptions())

	if attached, ok := readAttached(name, el); ok {
		options = props.Merge(options, attached)
	}

	return props.Merge(options, overrides)
}

// readAttached reads and decodes the element-attached configuration from
// the reserved data attribute. Decode failures keep the raw string; parse
// failures discard the attachment. Both are reported, never raised.
func readAttached(name string, el host.Element) (map[string]any, bool) {
	raw, ok := host.Dataset(el, host.OptionsAttr)
	if !ok || raw == "" {
		return nil, false
	}

	// PathUnescape rather than QueryUnescape: a literal '+' inside the
	// attached JSON must survive decoding.
	text, err := url.PathUnescape(raw)
	if err != nil {
		errors.Report(&errors.BindError{
			Op:     "widget.Mount",
			Kind:   errors.KindDecode,
			Widget: name,
			Attr:   host.DatasetPrefix + host.OptionsAttr,
			Err:    &errors.DecodeError{Raw: raw, Err: err},
		})
		text = raw
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		errors.Report(&errors.BindError{
			Op:     "widget.Mount",
			Kind:   errors.KindParse,
			Widget: name,
			Attr:   host.DatasetPrefix + host.OptionsAttr,
			Err:    &errors.ParseError{Raw: text, Err: err},
		})
		return nil, false
	}

	// Only a non-null JSON object contributes to the merge.
	attached, ok := parsed.(map[string]any)
	if !ok {
		return nil, false
	}
	return attached, true
}
