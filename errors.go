package barnode

import (
	"errors"
	"fmt"
)

// Category is the stage of the pipeline an error belongs to. Categories
// are ordered from the earliest stage to the latest.
type Category int

const (
	CategoryValidation Category = iota + 1
	CategoryEncoding
	CategoryRender
	CategoryIO
)

// String returns the name of the category.
func (c Category) String() string {
	switch c {
	case CategoryValidation:
		return "validation"
	case CategoryEncoding:
		return "encoding"
	case CategoryRender:
		return "render"
	case CategoryIO:
		return "io"
	default:
		return "unknown"
	}
}

// Kind refines an encoding error.
type Kind int

const (
	KindNone Kind = iota
	KindInvalidCharacter
	KindLength
	KindInvalidOption
	KindCheckDigit
)

var (
	// ErrUnknownSymbology is returned when a symbology code is not registered.
	ErrUnknownSymbology = errors.New("unknown symbology")

	// ErrInvalidConfig is returned for malformed configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidCharacter is returned when text contains a character the
	// symbology cannot encode.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrLength is returned when text is too short or too long.
	ErrLength = errors.New("invalid data length")

	// ErrInvalidOption is returned for unsupported option values.
	ErrInvalidOption = errors.New("invalid option")

	// ErrCheckDigit is returned when a supplied check digit is wrong.
	ErrCheckDigit = errors.New("check digit mismatch")

	// ErrUnsupportedFormat is returned for output formats that cannot be
	// produced.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrWrite is returned when output cannot be written.
	ErrWrite = errors.New("write failed")
)

// Result codes. Zero is success; every category has its own codes.
const (
	CodeOK                = 0
	CodeTooLong           = 5
	CodeInvalidData       = 6
	CodeInvalidCheck      = 7
	CodeInvalidOption     = 8
	CodeValidation        = 9
	CodeFileAccess        = 10
	CodeUnsupportedFormat = 12
)

// Error is a structured pipeline failure.
type Error struct {
	Category Category
	Kind     Kind
	Message  string

	// Char and Position locate an invalid character. Position counts runes
	// from zero.
	Char     rune
	Position int

	Cause    error
	sentinel error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap exposes both the sentinel for the failure and its cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.sentinel != nil {
		errs = append(errs, e.sentinel)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// Code returns the result code for the error.
func (e *Error) Code() int {
	switch e.Category {
	case CategoryEncoding:
		switch e.Kind {
		case KindLength:
			return CodeTooLong
		case KindCheckDigit:
			return CodeInvalidCheck
		case KindInvalidOption:
			return CodeInvalidOption
		default:
			return CodeInvalidData
		}
	case CategoryRender:
		return CodeUnsupportedFormat
	case CategoryIO:
		return CodeFileAccess
	default:
		return CodeValidation
	}
}

// NotFound reports an unregistered symbology code.
func NotFound(s Symbology) *Error {
	return &Error{
		Category: CategoryValidation,
		Message:  fmt.Sprintf("symbology %d is not supported", int(s)),
		sentinel: ErrUnknownSymbology,
	}
}

// Invalidf reports a malformed configuration value.
func Invalidf(format string, args ...any) *Error {
	return &Error{
		Category: CategoryValidation,
		Message:  fmt.Sprintf(format, args...),
		sentinel: ErrInvalidConfig,
	}
}

// InvalidCharacter reports a character outside the symbology's class.
func InvalidCharacter(r rune, pos int, class string) *Error {
	return &Error{
		Category: CategoryEncoding,
		Kind:     KindInvalidCharacter,
		Message:  fmt.Sprintf("invalid character %q at position %d (allowed: %s)", r, pos, class),
		Char:     r,
		Position: pos,
		sentinel: ErrInvalidCharacter,
	}
}

// Length reports text that does not fit the symbology.
func Length(format string, args ...any) *Error {
	return &Error{
		Category: CategoryEncoding,
		Kind:     KindLength,
		Message:  fmt.Sprintf(format, args...),
		sentinel: ErrLength,
	}
}

// InvalidOption reports an option value the symbology does not accept.
func InvalidOption(format string, args ...any) *Error {
	return &Error{
		Category: CategoryEncoding,
		Kind:     KindInvalidOption,
		Message:  fmt.Sprintf(format, args...),
		sentinel: ErrInvalidOption,
	}
}

// CheckDigit reports a supplied check digit that does not match.
func CheckDigit(format string, args ...any) *Error {
	return &Error{
		Category: CategoryEncoding,
		Kind:     KindCheckDigit,
		Message:  fmt.Sprintf(format, args...),
		sentinel: ErrCheckDigit,
	}
}

// UnsupportedFormat reports an output format that cannot be produced.
func UnsupportedFormat(format string, cause error) *Error {
	return &Error{
		Category: CategoryRender,
		Message:  fmt.Sprintf("output format %q is not supported", format),
		Cause:    cause,
		sentinel: ErrUnsupportedFormat,
	}
}

// RenderFailed reports a failure while serializing rendered output.
func RenderFailed(format string, cause error) *Error {
	return &Error{
		Category: CategoryRender,
		Message:  fmt.Sprintf("encode %s output", format),
		Cause:    cause,
		sentinel: ErrUnsupportedFormat,
	}
}

// WriteFailed reports a filesystem failure for path.
func WriteFailed(path string, cause error) *Error {
	return &Error{
		Category: CategoryIO,
		Message:  fmt.Sprintf("write %s", path),
		Cause:    cause,
		sentinel: ErrWrite,
	}
}

// CategoryOf returns the category of err. Errors that are not *Error are
// treated as validation failures.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return CategoryValidation
}

// Code returns the result code for err, CodeOK when err is nil.
func Code(err error) int {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code()
	}
	return CodeValidation
}
