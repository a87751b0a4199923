// Package errs carries the fixed, closed ParseError taxonomy shared by the
// LDT and IES parsers.
package errs

import "fmt"

// ParseErrorKind enumerates the ways a parse can fail. Parsers never invent
// a new kind outside this set.
type ParseErrorKind string

const (
	UnexpectedEof   ParseErrorKind = "UnexpectedEof"
	InvalidNumber   ParseErrorKind = "InvalidNumber"
	InvalidEnum     ParseErrorKind = "InvalidEnum"
	LengthMismatch  ParseErrorKind = "LengthMismatch"
	RangeViolation  ParseErrorKind = "RangeViolation"
	EncodingError   ParseErrorKind = "EncodingError"
)

// ParseError is returned by ParseLDT/ParseIES on the first structural
// failure; parsers do not attempt partial recovery.
type ParseError struct {
	Kind    ParseErrorKind
	Line    int // 1-based; 0 if not applicable
	Column  int // 1-based; 0 if not applicable
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		if e.Column > 0 {
			return fmt.Sprintf("%s at line %d, column %d: %s", e.Kind, e.Line, e.Column, e.Message)
		}
		return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewParseError builds a ParseError at the given 1-based line.
func NewParseError(kind ParseErrorKind, line int, message string) *ParseError {
	return &ParseError{Kind: kind, Line: line, Message: message}
}
