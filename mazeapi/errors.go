package mazeapi

import (
	"errors"
	"fmt"
)

// Sentinel errors for the maze protocol.
var (
	// ErrLineTooLong indicates a protocol line exceeded MaxLineLength.
	ErrLineTooLong = errors.New("line too long")

	// ErrUnacknowledgedMove matches every *UnacknowledgedMoveError via
	// errors.Is. It is fatal: the mouse's true position is unknown after it.
	ErrUnacknowledgedMove = errors.New("move not acknowledged")
)

// UnacknowledgedMoveError reports a moveForward whose reply was not "ack".
// Response holds the simulator's reply verbatim.
type UnacknowledgedMoveError struct {
	Distance int
	Response string
}

// Error implements the error interface.
func (e *UnacknowledgedMoveError) Error() string {
	return fmt.Sprintf("move forward %d not acknowledged: %s", e.Distance, e.Response)
}

// Is lets errors.Is(err, ErrUnacknowledgedMove) succeed.
func (e *UnacknowledgedMoveError) Is(target error) bool {
	return target == ErrUnacknowledgedMove
}

// ParseError represents an error that occurred during command or reply parsing.
type ParseError struct {
	Kind    ParseErrorKind
	Value   string // The invalid value that caused the error
	Message string // Additional context
}

// ParseErrorKind categorizes parsing errors.
type ParseErrorKind int

const (
	// ErrKindInvalidCommand indicates an unknown or malformed command.
	ErrKindInvalidCommand ParseErrorKind = iota
	// ErrKindInvalidInteger indicates a coordinate, distance or dimension
	// that is not a decimal integer.
	ErrKindInvalidInteger
	// ErrKindInvalidDirection indicates a wall direction other than n, s, e, w.
	ErrKindInvalidDirection
	// ErrKindInvalidColor indicates a color code that is not one character.
	ErrKindInvalidColor
	// ErrKindMissingArgument indicates a required argument was not provided.
	ErrKindMissingArgument
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrKindInvalidCommand:
		return fmt.Sprintf("invalid command '%s'", e.Value)
	case ErrKindInvalidInteger:
		return fmt.Sprintf("invalid integer '%s'", e.Value)
	case ErrKindInvalidDirection:
		return fmt.Sprintf("invalid direction '%s'", e.Value)
	case ErrKindInvalidColor:
		return fmt.Sprintf("invalid color '%s'", e.Value)
	case ErrKindMissingArgument:
		return e.Message
	default:
		return fmt.Sprintf("parse error: %s", e.Value)
	}
}

// Helper functions to create specific parse errors.

func newInvalidCommandError(cmd string) error {
	return &ParseError{Kind: ErrKindInvalidCommand, Value: cmd}
}

func newInvalidIntegerError(s string) error {
	return &ParseError{Kind: ErrKindInvalidInteger, Value: s}
}

func newInvalidDirectionError(s string) error {
	return &ParseError{Kind: ErrKindInvalidDirection, Value: s}
}

func newInvalidColorError(s string) error {
	return &ParseError{Kind: ErrKindInvalidColor, Value: s}
}

func newMissingArgumentError(msg string) error {
	return &ParseError{Kind: ErrKindMissingArgument, Message: msg}
}

// LinkError represents a failure of the underlying stream.
type LinkError struct {
	Op    string // "write" or "read"
	Line  string // The command line being exchanged
	Cause error
}

// Error implements the error interface.
func (e *LinkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("maze link %s failed for %q: %v", e.Op, e.Line, e.Cause)
	}
	return fmt.Sprintf("maze link %s failed for %q", e.Op, e.Line)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *LinkError) Unwrap() error {
	return e.Cause
}

// NewLinkError creates a new link error.
func NewLinkError(op, line string, cause error) error {
	return &LinkError{Op: op, Line: line, Cause: cause}
}
