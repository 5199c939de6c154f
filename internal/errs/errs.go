// Package errs provides the structured error type shared by every
// component of the interpreter: the reader, the environment, the
// evaluator and the host library all raise *MalError so that
// try*/catch* can recover a catchable value regardless of where the
// failure originated.
package errs

import "fmt"

// Kind classifies a MalError into one of the error categories the
// core distinguishes (spec §7).
type Kind string

const (
	KindParse        Kind = "PARSE_ERROR"
	KindSymbolLookup Kind = "SYMBOL_NOT_FOUND"
	KindType         Kind = "TYPE_ERROR"
	KindArity        Kind = "ARITY_ERROR"
	KindIO           Kind = "IO_ERROR"
	KindInternal     Kind = "INTERNAL_ERROR"
	KindUser         Kind = "USER_EXCEPTION"
)

// MalError is the single error type produced anywhere in the
// interpreter. Value, when non-nil, is the types.Value that a
// surrounding try*/catch* binds to its catch symbol. Only user
// exceptions set it; for every other error the catch symbol is bound
// to a Str built from Message.
type MalError struct {
	Kind    Kind
	Message string
	Cause   error
	Value   any // types.Value, kept as `any` to avoid an import cycle with internal/types
}

func (e *MalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *MalError) Unwrap() error {
	return e.Cause
}

// New creates a MalError with no wrapped cause.
func New(kind Kind, message string) *MalError {
	return &MalError{Kind: kind, Message: message}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(kind Kind, format string, args ...any) *MalError {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap creates a MalError wrapping an existing error.
func Wrap(kind Kind, message string, cause error) *MalError {
	return &MalError{Kind: kind, Message: message, Cause: cause}
}

// WithValue attaches the catchable value and returns the receiver for
// chaining at the call site.
func (e *MalError) WithValue(v any) *MalError {
	e.Value = v
	return e
}

// Is reports whether err is a MalError of the given kind.
func Is(err error, kind Kind) bool {
	me, ok := err.(*MalError)
	return ok && me.Kind == kind
}

// NewSymbolNotFound builds the symbol-not-found error for an unresolved Sym.
func NewSymbolNotFound(name string) *MalError {
	return Newf(KindSymbolLookup, "'%s' not found", name)
}

// NewArity builds an arity-mismatch error for a fixed-arity call.
func NewArity(fn string, want, got int) *MalError {
	return Newf(KindArity, "%s: expected %d argument(s), got %d", fn, want, got)
}

// NewType builds a type-mismatch error describing the expected shape.
func NewType(context, expected string, got any) *MalError {
	return Newf(KindType, "%s: expected %s, got %T", context, expected, got)
}

// NewParse builds a lex/parse error at the given source position.
func NewParse(message string, line, col int) *MalError {
	return Newf(KindParse, "%s (line %d, col %d)", message, line, col)
}

// NewUser wraps an arbitrary raised value (from `throw`) as the
// catchable payload of a user exception.
func NewUser(v any, display string) *MalError {
	return (&MalError{Kind: KindUser, Message: display}).WithValue(v)
}
