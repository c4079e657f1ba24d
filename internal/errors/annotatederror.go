// Package errors provides error wrapping with slog annotations and caller
// information on top of the standard library errors package.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
)

// annotatedError carries a message, an optional cause, structured annotations,
// and the program counter of the call site that created it.
type annotatedError struct {
	msg   string
	cause error
	attrs []slog.Attr
	pc    uintptr
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// callerPC returns the program counter skip frames above the caller of callerPC.
func callerPC(skip int) uintptr {
	var pcs [1]uintptr
	// +2 skips runtime.Callers and callerPC itself.
	runtime.Callers(skip+2, pcs[:])
	return pcs[0]
}

// Wrap annotates err with a message and optional [slog.Attr] annotations.
// The resulting error message is "msg: err". A nil err is allowed so that
// callers don't have to guard against it; the result then reads as msg alone.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:   msg,
		cause: err,
		attrs: attrs,
		pc:    callerPC(1),
	}
}

// NewSentinel creates an error intended for package-level sentinel values.
// It does not capture a call site since sentinels are created in var blocks.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg, cause: nil, attrs: nil, pc: 0}
}

// DecoratePanic converts a recovered panic value into an annotated error
// pointing at the recovery site.
func DecoratePanic(recovered any) error {
	return &annotatedError{
		msg:   fmt.Sprintf("panic: %v", recovered),
		cause: nil,
		attrs: nil,
		pc:    callerPC(1),
	}
}

// SlogError renders err as a [slog.Attr] group named "error" containing the
// message, the source location of the outermost annotated error, and all
// annotations gathered from the error chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("msg", "<nil>"))
	}

	attrs := []slog.Attr{slog.String("msg", err.Error())}

	if source := outermostSource(err); source != "" {
		attrs = append(attrs, slog.String("source", source))
	}

	if annotations := collectAnnotations(err); len(annotations) > 0 {
		anyAnnotations := make([]any, len(annotations))
		for i, a := range annotations {
			anyAnnotations[i] = a
		}
		attrs = append(attrs, slog.Group("annotations", anyAnnotations...))
	}

	anyAttrs := make([]any, len(attrs))
	for i, a := range attrs {
		anyAttrs[i] = a
	}
	return slog.Group("error", anyAttrs...)
}

// outermostSource finds the first annotated error in the chain that has a
// call site and formats it as "file:line".
func outermostSource(err error) string {
	for err != nil {
		var annotated *annotatedError
		if !errors.As(err, &annotated) {
			return ""
		}
		if annotated.pc != 0 {
			frame, _ := runtime.CallersFrames([]uintptr{annotated.pc}).Next()
			return frame.File + ":" + strconv.Itoa(frame.Line)
		}
		err = annotated.cause
	}
	return ""
}

// collectAnnotations gathers annotations from the whole error chain, outermost
// first.
func collectAnnotations(err error) []slog.Attr {
	var annotations []slog.Attr
	for err != nil {
		var annotated *annotatedError
		if !errors.As(err, &annotated) {
			break
		}
		annotations = append(annotations, annotated.attrs...)
		err = annotated.cause
	}
	return annotations
}

// Re-exports so that callers only need to import this package.

// New returns an error that formats as the given text.
func New(msg string) error {
	return errors.New(msg)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join wraps the given errors into a single error.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
