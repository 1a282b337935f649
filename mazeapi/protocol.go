package mazeapi

// Protocol keywords. They are case-sensitive on the wire.
const (
	KeywordMazeWidth     = "mazeWidth"
	KeywordMazeHeight    = "mazeHeight"
	KeywordWallFront     = "wallFront"
	KeywordWallRight     = "wallRight"
	KeywordWallLeft      = "wallLeft"
	KeywordMoveForward   = "moveForward"
	KeywordTurnRight     = "turnRight"
	KeywordTurnLeft      = "turnLeft"
	KeywordSetWall       = "setWall"
	KeywordClearWall     = "clearWall"
	KeywordSetColor      = "setColor"
	KeywordClearColor    = "clearColor"
	KeywordClearAllColor = "clearAllColor"
	KeywordSetText       = "setText"
	KeywordClearText     = "clearText"
	KeywordClearAllText  = "clearAllText"
	KeywordWasReset      = "wasReset"
	KeywordAckReset      = "ackReset"
)

// Reply literals.
const (
	// ReplyTrue is the only reply a boolean query treats as true.
	ReplyTrue = "true"

	// ReplyFalse is what the simulator sends for a negative boolean query.
	// Any reply other than ReplyTrue is read as false.
	ReplyFalse = "false"

	// ReplyAck acknowledges a completed move.
	ReplyAck = "ack"
)

// LineTerminator ends every command and reply line.
const LineTerminator = "\n"

// MaxLineLength is the longest line the command parser accepts.
const MaxLineLength = 4096

// Direction names a side of a cell in setWall/clearWall.
type Direction byte

// Wall directions understood by the simulator.
const (
	North Direction = 'n'
	East  Direction = 'e'
	South Direction = 's'
	West  Direction = 'w'
)

// String returns the single-character wire form.
func (d Direction) String() string {
	return string(rune(d))
}

// Valid reports whether d is one of the four wire directions. The client
// never calls it; only the command parser does.
func (d Direction) Valid() bool {
	switch d {
	case North, East, South, West:
		return true
	}
	return false
}

// Color is a single-character cell color code.
type Color byte

// Color codes used by the simulator's palette.
const (
	ColorBlack      Color = 'k'
	ColorBlue       Color = 'b'
	ColorGray       Color = 'a'
	ColorCyan       Color = 'c'
	ColorGreen      Color = 'g'
	ColorOrange     Color = 'o'
	ColorRed        Color = 'r'
	ColorWhite      Color = 'w'
	ColorYellow     Color = 'y'
	ColorDarkBlue   Color = 'B'
	ColorDarkCyan   Color = 'C'
	ColorDarkGray   Color = 'A'
	ColorDarkGreen  Color = 'G'
	ColorDarkRed    Color = 'R'
	ColorDarkYellow Color = 'Y'
)

// String returns the single-character wire form.
func (c Color) String() string {
	return string(rune(c))
}

// ReplyKind describes what, if anything, the simulator sends back for a
// command.
type ReplyKind int

const (
	// ReplyNone means the command is fire-and-forget.
	ReplyNone ReplyKind = iota
	// ReplyInteger is a decimal integer line.
	ReplyInteger
	// ReplyBoolean is "true" or anything else.
	ReplyBoolean
	// ReplyAcknowledge must be exactly "ack".
	ReplyAcknowledge
	// ReplyIgnored is read and discarded.
	ReplyIgnored
)

// String returns a human-readable name for the reply kind.
func (k ReplyKind) String() string {
	switch k {
	case ReplyNone:
		return "none"
	case ReplyInteger:
		return "integer"
	case ReplyBoolean:
		return "boolean"
	case ReplyAcknowledge:
		return "ack"
	case ReplyIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}
