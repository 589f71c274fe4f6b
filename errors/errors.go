package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSchema   Phase = "schema"   // schema construction and registration
	PhaseEncode   Phase = "encode"   // typed values to calldata
	PhaseDecode   Phase = "decode"   // wire bytes to typed values
	PhaseDispatch Phase = "dispatch" // selector/topic routing
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidType      Kind = "invalid_type"
	KindInvalidSchema    Kind = "invalid_schema"
	KindTypeMismatch     Kind = "type_mismatch"
	KindCountMismatch    Kind = "count_mismatch"
	KindValueRange       Kind = "value_range"
	KindDataTooShort     Kind = "data_too_short"
	KindOffsetRange      Kind = "offset_out_of_range"
	KindLengthOverflow   Kind = "length_overflow"
	KindInvalidData      Kind = "invalid_data"
	KindTopicMismatch    Kind = "topic_mismatch"
	KindNoMatchingSchema Kind = "no_matching_schema"
	KindNotFound         Kind = "not_found"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	AbiType string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.AbiType != "" {
		b.WriteString(": type ")
		b.WriteString(e.AbiType)
	}

	if e.Detail != "" {
		if e.AbiType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// AbiType sets the ABI type name
func (b *Builder) AbiType(t string) *Builder {
	b.err.AbiType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, got, want string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindTypeMismatch,
		Path:    path,
		AbiType: want,
		Detail:  fmt.Sprintf("have %s", got),
	}
}

// CountMismatch creates an argument/value cardinality error
func CountMismatch(phase Phase, path []string, got, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCountMismatch,
		Path:   path,
		Detail: fmt.Sprintf("expected %d values, got %d", want, got),
	}
}

// ValueRange creates an error for a value that does not fit its declared type
func ValueRange(phase Phase, path []string, value any, abiType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindValueRange,
		Path:    path,
		AbiType: abiType,
		Detail:  fmt.Sprintf("value %v does not fit", value),
		Value:   value,
	}
}

// DataTooShort creates an error for a truncated input buffer
func DataTooShort(path []string, need, have int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindDataTooShort,
		Path:   path,
		Detail: fmt.Sprintf("need %d bytes, have %d", need, have),
	}
}

// OffsetRange creates an error for a tail offset outside the buffer
func OffsetRange(path []string, offset, length uint64) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOffsetRange,
		Path:   path,
		Detail: fmt.Sprintf("offset %d outside data of length %d", offset, length),
		Value:  offset,
	}
}

// LengthOverflow creates an error for a declared length that overruns the buffer
func LengthOverflow(path []string, declared, available uint64) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindLengthOverflow,
		Path:   path,
		Detail: fmt.Sprintf("declared length %d exceeds remaining %d bytes", declared, available),
		Value:  declared,
	}
}

// InvalidType creates a malformed type descriptor error
func InvalidType(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindInvalidType,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// TopicMismatch creates an error for a log whose topic count disagrees with
// the matched event schema
func TopicMismatch(event string, got, want int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTopicMismatch,
		Detail: fmt.Sprintf("event %s expects %d topics, log has %d", event, want, got),
	}
}

// NoMatchingSchema creates an error for a selector or topic with no usable
// registered schema
func NoMatchingSchema(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindNoMatchingSchema,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Category helpers. Schema errors are fatal to startup; encoding errors are
// local caller bugs; decoding and dispatch errors are expected for untrusted
// wire data and always recoverable.

// IsSchemaError reports whether err originated in schema construction
func IsSchemaError(err error) bool {
	return hasPhase(err, PhaseSchema)
}

// IsEncodingError reports whether err originated while encoding values
func IsEncodingError(err error) bool {
	return hasPhase(err, PhaseEncode)
}

// IsDecodingError reports whether err originated while decoding wire data
func IsDecodingError(err error) bool {
	return hasPhase(err, PhaseDecode)
}

// IsNoMatchingSchema reports whether err means no registered schema could
// serve the input
func IsNoMatchingSchema(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindNoMatchingSchema
}

func hasPhase(err error, p Phase) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Phase == p {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
