package idtheory

import (
	"errors"
	"fmt"

	"github.com/theory-cloud/idtheory/pkg/basex"
)

// Error is a conversion or generation failure with a stable error code.
//
// Errors compare by Code under errors.Is, so the Err* sentinels match any
// Error carrying the same code.
type Error struct {
	Code    string
	Message string
	Err     error
}

var (
	ErrMalformedInput  = &Error{Code: CodeMalformedInput, Message: errorMessageMalformedInput}
	ErrInvalidSymbol   = &Error{Code: CodeInvalidSymbol, Message: errorMessageInvalidSymbol}
	ErrOverflow        = &Error{Code: CodeOverflow, Message: errorMessageOverflow}
	ErrInvalidAlphabet = &Error{Code: CodeInvalidAlphabet, Message: errorMessageInvalidAlphabet}
	ErrGeneratorFailed = &Error{Code: CodeGeneratorFailed, Message: errorMessageGeneratorFailed}
)

func (e *Error) Error() string {
	msg := e.Code
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t != nil && t.Code == e.Code
}

func newError(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Err: cause}
}

// codecError maps RadixCodec failures onto error codes. Failures from custom
// codecs that are not basex sentinels are reported as invalid symbols.
func codecError(message string, err error) error {
	if errors.Is(err, basex.ErrInvalidAlphabet) || errors.Is(err, ErrInvalidAlphabet) {
		return newError(CodeInvalidAlphabet, message, err)
	}
	return newError(CodeInvalidSymbol, message, err)
}
