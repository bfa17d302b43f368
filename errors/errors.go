package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse     Phase = "parse"     // source text to tree
	PhaseExpand    Phase = "expand"    // call/yield/let-call expansion
	PhaseFlatten   Phase = "flatten"   // if, binding, argument and sequence flattening
	PhaseNormalize Phase = "normalize" // pipeline driver
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedForm   Kind = "malformed_form"
	KindUnexpectedToken Kind = "unexpected_token"
	KindUnexpectedEOF   Kind = "unexpected_eof"
	KindInvalidLiteral  Kind = "invalid_literal"
	KindNotConverged    Kind = "not_converged"
	KindInvalidInput    Kind = "invalid_input"
)

// Sentinels for errors.Is. They match any phase.
var (
	ErrMalformedForm = &Error{Kind: KindMalformedForm}
	ErrNotConverged  = &Error{Kind: KindNotConverged}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Form   string // rendered offending form
	Detail string
	Line   int // source line, 0 when unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.Line > 0 {
		b.WriteString(" at line ")
		b.WriteString(strconv.Itoa(e.Line))
	}

	if e.Form != "" {
		b.WriteString(": ")
		b.WriteString(e.Form)
		b.WriteString(" is improperly formed")
	}

	if e.Detail != "" {
		if e.Form != "" {
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

// Is reports whether target matches this error.
// A target without a phase matches errors of its kind from every phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
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

// Form sets the rendered offending form
func (b *Builder) Form(form string) *Builder {
	b.err.Form = form
	return b
}

// Line sets the source line
func (b *Builder) Line(line int) *Builder {
	b.err.Line = line
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

// MalformedForm creates an error for a recognized form with an arity or
// child type its rule does not accept.
func MalformedForm(phase Phase, form, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMalformedForm,
		Form:   form,
		Detail: detail,
	}
}

// NotConverged reports a pipeline that hit its iteration cap.
func NotConverged(pipeline string, iterations int) *Error {
	return &Error{
		Phase:  PhaseNormalize,
		Kind:   KindNotConverged,
		Detail: fmt.Sprintf("%s did not reach a fixed point after %d iterations", pipeline, iterations),
		Value:  iterations,
	}
}

// UnexpectedToken creates a reader error for a token that cannot appear here.
func UnexpectedToken(line int, token string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnexpectedToken,
		Line:   line,
		Detail: fmt.Sprintf("unexpected %q", token),
		Value:  token,
	}
}

// UnexpectedEOF creates a reader error for input that ends inside a form.
func UnexpectedEOF(line int) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnexpectedEOF,
		Line:   line,
		Detail: "unexpected end of input",
	}
}

// InvalidLiteral creates a reader error for a literal that cannot be decoded.
func InvalidLiteral(line int, text string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidLiteral,
		Line:   line,
		Detail: fmt.Sprintf("invalid literal %s", text),
		Value:  text,
		Cause:  cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
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
