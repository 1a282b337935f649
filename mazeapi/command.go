package mazeapi

import (
	"fmt"
)

// CommandType represents the type of maze command.
type CommandType int

const (
	// Maze queries
	CmdMazeWidth CommandType = iota
	CmdMazeHeight

	// Wall sensors
	CmdWallFront
	CmdWallRight
	CmdWallLeft

	// Movement
	CmdMoveForward
	CmdTurnRight
	CmdTurnLeft

	// Wall markings
	CmdSetWall
	CmdClearWall

	// Cell colors
	CmdSetColor
	CmdClearColor
	CmdClearAllColor

	// Cell text
	CmdSetText
	CmdClearText
	CmdClearAllText

	// Reset handshake
	CmdWasReset
	CmdAckReset
)

// Reply returns what the simulator sends back for this command type.
func (t CommandType) Reply() ReplyKind {
	switch t {
	case CmdMazeWidth, CmdMazeHeight:
		return ReplyInteger
	case CmdWallFront, CmdWallRight, CmdWallLeft, CmdWasReset:
		return ReplyBoolean
	case CmdMoveForward:
		return ReplyAcknowledge
	case CmdTurnRight, CmdTurnLeft, CmdAckReset:
		return ReplyIgnored
	default:
		return ReplyNone
	}
}

// Keyword returns the wire keyword for this command type.
func (t CommandType) Keyword() string {
	switch t {
	case CmdMazeWidth:
		return KeywordMazeWidth
	case CmdMazeHeight:
		return KeywordMazeHeight
	case CmdWallFront:
		return KeywordWallFront
	case CmdWallRight:
		return KeywordWallRight
	case CmdWallLeft:
		return KeywordWallLeft
	case CmdMoveForward:
		return KeywordMoveForward
	case CmdTurnRight:
		return KeywordTurnRight
	case CmdTurnLeft:
		return KeywordTurnLeft
	case CmdSetWall:
		return KeywordSetWall
	case CmdClearWall:
		return KeywordClearWall
	case CmdSetColor:
		return KeywordSetColor
	case CmdClearColor:
		return KeywordClearColor
	case CmdClearAllColor:
		return KeywordClearAllColor
	case CmdSetText:
		return KeywordSetText
	case CmdClearText:
		return KeywordClearText
	case CmdClearAllText:
		return KeywordClearAllText
	case CmdWasReset:
		return KeywordWasReset
	case CmdAckReset:
		return KeywordAckReset
	default:
		return ""
	}
}

// Command represents one maze command with its arguments.
// Use the constructor functions (NewMazeWidthCommand, NewSetWallCommand,
// etc.) to create Command instances.
type Command struct {
	Type CommandType

	// Fields used by various commands (only relevant fields are populated)
	X         int       // For setWall, clearWall, setColor, clearColor, setText, clearText
	Y         int       // Same as X
	Direction Direction // For setWall, clearWall
	Color     Color     // For setColor
	Text      string    // For setText
	Distance  int       // For moveForward
}

// Command constructors - these provide a clean API for creating commands.

// NewMazeWidthCommand creates a maze width query.
func NewMazeWidthCommand() Command {
	return Command{Type: CmdMazeWidth}
}

// NewMazeHeightCommand creates a maze height query.
func NewMazeHeightCommand() Command {
	return Command{Type: CmdMazeHeight}
}

// NewWallFrontCommand creates a front wall query.
func NewWallFrontCommand() Command {
	return Command{Type: CmdWallFront}
}

// NewWallRightCommand creates a right wall query.
func NewWallRightCommand() Command {
	return Command{Type: CmdWallRight}
}

// NewWallLeftCommand creates a left wall query.
func NewWallLeftCommand() Command {
	return Command{Type: CmdWallLeft}
}

// NewMoveForwardCommand creates a move of distance cells. The distance is
// only written when it differs from 1, so older simulators that expect a
// bare "moveForward" keep working.
func NewMoveForwardCommand(distance int) Command {
	return Command{Type: CmdMoveForward, Distance: distance}
}

// NewTurnRightCommand creates a clockwise quarter turn.
func NewTurnRightCommand() Command {
	return Command{Type: CmdTurnRight}
}

// NewTurnLeftCommand creates a counter-clockwise quarter turn.
func NewTurnLeftCommand() Command {
	return Command{Type: CmdTurnLeft}
}

// NewSetWallCommand marks a wall on side dir of cell (x, y).
func NewSetWallCommand(x, y int, dir Direction) Command {
	return Command{Type: CmdSetWall, X: x, Y: y, Direction: dir}
}

// NewClearWallCommand removes a wall marking on side dir of cell (x, y).
func NewClearWallCommand(x, y int, dir Direction) Command {
	return Command{Type: CmdClearWall, X: x, Y: y, Direction: dir}
}

// NewSetColorCommand paints cell (x, y).
func NewSetColorCommand(x, y int, color Color) Command {
	return Command{Type: CmdSetColor, X: x, Y: y, Color: color}
}

// NewClearColorCommand clears the color of cell (x, y).
func NewClearColorCommand(x, y int) Command {
	return Command{Type: CmdClearColor, X: x, Y: y}
}

// NewClearAllColorCommand clears every cell color.
func NewClearAllColorCommand() Command {
	return Command{Type: CmdClearAllColor}
}

// NewSetTextCommand shows text in cell (x, y). The text is sent verbatim
// and may contain spaces.
func NewSetTextCommand(x, y int, text string) Command {
	return Command{Type: CmdSetText, X: x, Y: y, Text: text}
}

// NewClearTextCommand clears the text of cell (x, y).
func NewClearTextCommand(x, y int) Command {
	return Command{Type: CmdClearText, X: x, Y: y}
}

// NewClearAllTextCommand clears every cell's text.
func NewClearAllTextCommand() Command {
	return Command{Type: CmdClearAllText}
}

// NewWasResetCommand asks whether the simulator's reset button was pressed.
func NewWasResetCommand() Command {
	return Command{Type: CmdWasReset}
}

// NewAckResetCommand tells the simulator the reset has been handled.
func NewAckResetCommand() Command {
	return Command{Type: CmdAckReset}
}

// Format returns the command formatted for transmission over the protocol.
// This does not include the trailing newline.
func (c Command) Format() string {
	switch c.Type {
	case CmdMoveForward:
		if c.Distance == 1 {
			return KeywordMoveForward
		}
		return fmt.Sprintf("%s %d", KeywordMoveForward, c.Distance)
	case CmdSetWall, CmdClearWall:
		return fmt.Sprintf("%s %d %d %s", c.Type.Keyword(), c.X, c.Y, c.Direction)
	case CmdSetColor:
		return fmt.Sprintf("%s %d %d %s", KeywordSetColor, c.X, c.Y, c.Color)
	case CmdClearColor, CmdClearText:
		return fmt.Sprintf("%s %d %d", c.Type.Keyword(), c.X, c.Y)
	case CmdSetText:
		return fmt.Sprintf("%s %d %d %s", KeywordSetText, c.X, c.Y, c.Text)
	default:
		return c.Type.Keyword()
	}
}

// FormatLine returns the command formatted as a complete protocol line with newline.
func (c Command) FormatLine() string {
	return c.Format() + LineTerminator
}

// Reply returns what the simulator sends back for this command.
func (c Command) Reply() ReplyKind {
	return c.Type.Reply()
}

// String implements fmt.Stringer.
func (c Command) String() string {
	return c.Format()
}
