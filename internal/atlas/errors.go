// Package atlas holds the core data model shared by the packer,
// assembler and manifest writer: Settings, Rect, Page, and the error
// kinds and progress capability they all depend on.
package atlas

import "fmt"

// Kind classifies a pack-run failure per the error handling design.
type Kind int

const (
	// KindConfigInvalid means Settings failed validation at construction.
	KindConfigInvalid Kind = iota
	// KindInputTooLarge means a rect exceeds the max page in both orientations.
	KindInputTooLarge
	// KindNameCollision means a duplicate primary or alias name was found.
	KindNameCollision
	// KindIoError wraps a read/write failure.
	KindIoError
	// KindEncoderMissing means the output format has no encoder.
	KindEncoderMissing
)

func (k Kind) String() string {
	switch k {
	case KindConfigInvalid:
		return "ConfigInvalid"
	case KindInputTooLarge:
		return "InputTooLarge"
	case KindNameCollision:
		return "NameCollision"
	case KindIoError:
		return "IoError"
	case KindEncoderMissing:
		return "EncoderMissing"
	case KindCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error is a typed, wrapping error carrying one of the Kind values.
// Cancellation has its own Kind too (KindCancelled, with the Cancelled
// sentinel in progress.go), but callers treat it as a non-error
// outcome rather than a failure.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a message-less *Error (as KindKey
// builds) of the same Kind, so callers can do
// errors.Is(err, atlas.KindKey(atlas.KindInputTooLarge)).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind && other.Msg == ""
}

// KindKey builds a sentinel *Error usable with errors.Is to test a Kind
// without caring about the message, e.g. errors.Is(err, atlas.KindKey(atlas.KindNameCollision)).
func KindKey(k Kind) error { return &Error{Kind: k} }

func newErr(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

func wrapErr(k Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...), Err: err}
}

// ConfigInvalid builds a KindConfigInvalid error.
func ConfigInvalid(format string, args ...any) error { return newErr(KindConfigInvalid, format, args...) }

// InputTooLarge builds a KindInputTooLarge error naming the offending rect.
func InputTooLarge(name string, w, h, maxW, maxH int) error {
	return newErr(KindInputTooLarge, "rect %q (%dx%d) exceeds max page %dx%d in both orientations", name, w, h, maxW, maxH)
}

// NameCollision builds a KindNameCollision error.
func NameCollision(name string) error {
	return newErr(KindNameCollision, "duplicate region name %q", name)
}

// IoError wraps an I/O failure.
func IoError(err error, format string, args ...any) error {
	return wrapErr(KindIoError, err, format, args...)
}

// EncoderMissing builds a KindEncoderMissing error.
func EncoderMissing(format string) error {
	return newErr(KindEncoderMissing, "no encoder for output format %q", format)
}
