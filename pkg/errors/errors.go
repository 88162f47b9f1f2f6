// Package errors provides structured error reporting for Anchor.
//
// Every failure during widget construction is reported through a global
// handler and execution continues; the only fatal condition is constructing
// the abstract widget base directly, which panics with InstantiationError.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInstantiation indicates direct construction of the abstract base.
	KindInstantiation
	// KindElement indicates a host element that failed validation.
	KindElement
	// KindDecode indicates a URL-decoding failure of attached configuration.
	KindDecode
	// KindParse indicates a JSON parse failure of attached configuration.
	KindParse
	// KindInit indicates a widget init hook that reported failure.
	KindInit
	// KindPanic indicates a panic recovered from a widget hook.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInstantiation:
		return "instantiation"
	case KindElement:
		return "element"
	case KindDecode:
		return "decode"
	case KindParse:
		return "parse"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BindError represents a structured error raised while binding a widget to
// its host element.
type BindError struct {
	// Op is the operation that failed (e.g., "widget.Mount").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the type name of the widget being constructed.
	Widget string
	// Attr is the host element attribute involved, if applicable.
	Attr string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BindError) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("%s [%s] widget=%s attr=%s: %v", e.Op, e.Kind, e.Widget, e.Attr, e.Err)
	}
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// InstantiationError reports direct construction of the abstract widget
// base. It is used as a panic value; it is the sole fatal condition.
type InstantiationError struct {
	// Type is the offending type name, if known.
	Type string
}

func (e *InstantiationError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("abstract widget base constructed directly: %s", e.Type)
	}
	return "abstract widget base constructed directly"
}

// DecodeError represents a failure to URL-decode element-attached
// configuration. The raw attribute value is kept and used as-is.
type DecodeError struct {
	// Raw is the attribute value that failed to decode.
	Raw string
	// Err is the underlying decoding error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to url-decode attached configuration %q: %v", e.Raw, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to parse element-attached configuration
// as JSON. The attached configuration is discarded.
type ParseError struct {
	// Raw is the configuration string that failed to parse.
	Raw string
	// Err is the underlying JSON error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse attached configuration %q: %v", e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// PanicError represents a panic recovered from a widget hook.
type PanicError struct {
	// Value is the value passed to panic().
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

// ErrorHandler receives errors reported during widget construction.
type ErrorHandler interface {
	// HandleError is called when a non-fatal error occurs.
	HandleError(err *BindError)
}
