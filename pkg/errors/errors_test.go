package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// captureHandler records reported errors for testing.
type captureHandler struct {
	reported []*BindError
}

func (h *captureHandler) HandleError(err *BindError) {
	h.reported = append(h.reported, err)
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInstantiation, "instantiation"},
		{KindElement, "element"},
		{KindDecode, "decode"},
		{KindParse, "parse"},
		{KindInit, "init"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestBindErrorString(t *testing.T) {
	err := &BindError{
		Op:     "widget.Mount",
		Kind:   KindParse,
		Widget: "Menu",
		Attr:   "data-options",
		Err:    &ParseError{Raw: "{bad", Err: errors.New("unexpected end of input")},
	}
	got := err.Error()
	for _, want := range []string{"widget.Mount", "[parse]", "widget=Menu", "attr=data-options"} {
		if !strings.Contains(got, want) {
			t.Errorf("error string %q should contain %q", got, want)
		}
	}
}

func TestBindErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &BindError{Op: "widget.Mount", Kind: KindInit, Err: inner}
	if !errors.Is(err, inner) {
		t.Error("expected BindError to unwrap to the underlying error")
	}
}

func TestInstantiationErrorString(t *testing.T) {
	err := &InstantiationError{Type: "*widget.Base"}
	if !strings.Contains(err.Error(), "*widget.Base") {
		t.Errorf("expected type name in %q", err.Error())
	}
	bare := &InstantiationError{}
	if bare.Error() == "" {
		t.Error("expected non-empty error string")
	}
}

func TestDecodeAndParseErrorStrings(t *testing.T) {
	decode := &DecodeError{Raw: "%zz", Err: errors.New("invalid URL escape")}
	if !strings.Contains(decode.Error(), "%zz") {
		t.Errorf("expected raw value in %q", decode.Error())
	}
	parse := &ParseError{Raw: "[1,2", Err: errors.New("unexpected end")}
	if !strings.Contains(parse.Error(), "[1,2") {
		t.Errorf("expected raw value in %q", parse.Error())
	}
}

func TestReport(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(&BindError{Op: "widget.Mount", Kind: KindElement})

	if len(handler.reported) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(handler.reported))
	}
	if handler.reported[0].Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNilIsNoOp(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(nil)

	if len(handler.reported) != 0 {
		t.Errorf("expected no reported errors, got %d", len(handler.reported))
	}
}

func TestReportKeepsExistingTimestamp(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	Report(&BindError{Op: "widget.Mount", Kind: KindInit, Timestamp: stamp})

	if got := handler.reported[0].Timestamp; !got.Equal(stamp) {
		t.Errorf("Timestamp = %v, want %v", got, stamp)
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("DefaultHandler = %T, want *LogHandler", DefaultHandler)
	}
}

func TestSetVerbose(t *testing.T) {
	SetHandler(nil)
	SetVerbose(true)
	h, ok := DefaultHandler.(*LogHandler)
	if !ok {
		t.Fatalf("DefaultHandler = %T, want *LogHandler", DefaultHandler)
	}
	if !h.Verbose {
		t.Error("expected Verbose to be enabled")
	}
	SetVerbose(false)
	if h.Verbose {
		t.Error("expected Verbose to be disabled")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	func() {
		defer Recover("widget.Boot")
		panic("boot blew up")
	}()

	if len(handler.reported) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(handler.reported))
	}
	got := handler.reported[0]
	if got.Op != "widget.Boot" {
		t.Errorf("Op = %q, want widget.Boot", got.Op)
	}
	if got.Kind != KindPanic {
		t.Errorf("Kind = %v, want panic", got.Kind)
	}
	var panicErr *PanicError
	if !errors.As(got, &panicErr) {
		t.Fatalf("Err = %T, want *PanicError", got.Err)
	}
	if panicErr.Value != "boot blew up" {
		t.Errorf("panic value = %v, want boot blew up", panicErr.Value)
	}
	if got.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestRecoverWithoutPanicIsNoOp(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	func() {
		defer Recover("widget.Booted")
	}()

	if len(handler.reported) != 0 {
		t.Errorf("expected no reports, got %d", len(handler.reported))
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic"}
	want := "recovered panic: test panic"
	if got := err.Error(); got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, ":") || !strings.Contains(stack, "\n") {
		t.Errorf("expected file:line frames, got:\n%s", stack)
	}
}
