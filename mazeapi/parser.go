package mazeapi

import (
	"strconv"
	"strings"
)

// CommandParser parses maze protocol commands from text lines.
type CommandParser struct{}

// NewCommandParser creates a new command parser.
func NewCommandParser() *CommandParser {
	return &CommandParser{}
}

// Parse parses a command line into a Command. Keywords are case-sensitive.
// A trailing line terminator is ignored.
func (p *CommandParser) Parse(line string) (Command, error) {
	commandLine := trimLineTerminator(line)

	// Check line length
	if len(commandLine) > MaxLineLength {
		return Command{}, ErrLineTooLong
	}

	// Split into keyword and arguments
	keyword, args, _ := strings.Cut(commandLine, " ")
	if keyword == "" {
		return Command{}, newInvalidCommandError("")
	}

	// Commands that take arguments
	switch keyword {
	case KeywordMoveForward:
		return p.parseMoveForward(args)
	case KeywordSetWall, KeywordClearWall:
		return p.parseWall(keyword, args)
	case KeywordSetColor:
		return p.parseSetColor(args)
	case KeywordClearColor, KeywordClearText:
		return p.parseClearCell(keyword, args)
	case KeywordSetText:
		return p.parseSetText(args)
	}

	var cmd Command
	switch keyword {
	case KeywordMazeWidth:
		cmd = NewMazeWidthCommand()
	case KeywordMazeHeight:
		cmd = NewMazeHeightCommand()
	case KeywordWallFront:
		cmd = NewWallFrontCommand()
	case KeywordWallRight:
		cmd = NewWallRightCommand()
	case KeywordWallLeft:
		cmd = NewWallLeftCommand()
	case KeywordTurnRight:
		cmd = NewTurnRightCommand()
	case KeywordTurnLeft:
		cmd = NewTurnLeftCommand()
	case KeywordClearAllColor:
		cmd = NewClearAllColorCommand()
	case KeywordClearAllText:
		cmd = NewClearAllTextCommand()
	case KeywordWasReset:
		cmd = NewWasResetCommand()
	case KeywordAckReset:
		cmd = NewAckResetCommand()
	default:
		return Command{}, newInvalidCommandError(keyword)
	}

	if strings.TrimSpace(args) != "" {
		return Command{}, newInvalidCommandError(commandLine)
	}
	return cmd, nil
}

func (p *CommandParser) parseMoveForward(args string) (Command, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return NewMoveForwardCommand(1), nil
	}
	distance, err := strconv.Atoi(args)
	if err != nil {
		return Command{}, newInvalidIntegerError(args)
	}
	return NewMoveForwardCommand(distance), nil
}

func (p *CommandParser) parseWall(keyword, args string) (Command, error) {
	fields := strings.Fields(args)
	if len(fields) != 3 {
		return Command{}, newMissingArgumentError(keyword + " requires <x> <y> <dir>")
	}
	x, y, err := parseCell(fields[0], fields[1])
	if err != nil {
		return Command{}, err
	}
	if len(fields[2]) != 1 || !Direction(fields[2][0]).Valid() {
		return Command{}, newInvalidDirectionError(fields[2])
	}
	dir := Direction(fields[2][0])

	if keyword == KeywordClearWall {
		return NewClearWallCommand(x, y, dir), nil
	}
	return NewSetWallCommand(x, y, dir), nil
}

func (p *CommandParser) parseSetColor(args string) (Command, error) {
	fields := strings.Fields(args)
	if len(fields) != 3 {
		return Command{}, newMissingArgumentError("setColor requires <x> <y> <color>")
	}
	x, y, err := parseCell(fields[0], fields[1])
	if err != nil {
		return Command{}, err
	}
	if len(fields[2]) != 1 {
		return Command{}, newInvalidColorError(fields[2])
	}
	return NewSetColorCommand(x, y, Color(fields[2][0])), nil
}

func (p *CommandParser) parseClearCell(keyword, args string) (Command, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return Command{}, newMissingArgumentError(keyword + " requires <x> <y>")
	}
	x, y, err := parseCell(fields[0], fields[1])
	if err != nil {
		return Command{}, err
	}
	if keyword == KeywordClearText {
		return NewClearTextCommand(x, y), nil
	}
	return NewClearColorCommand(x, y), nil
}

// parseSetText keeps the text argument verbatim, including inner spaces.
// Whitespace between the coordinates and before the text is not significant.
func (p *CommandParser) parseSetText(args string) (Command, error) {
	xs, rest := nextField(args)
	ys, rest := nextField(rest)
	text := strings.TrimLeft(rest, " \t")
	if text == "" {
		return Command{}, newMissingArgumentError("setText requires <x> <y> <text>")
	}
	x, y, err := parseCell(xs, ys)
	if err != nil {
		return Command{}, err
	}
	return NewSetTextCommand(x, y, text), nil
}

// nextField splits off the first whitespace-delimited token of s.
func nextField(s string) (field, rest string) {
	s = strings.TrimLeft(s, " \t")
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

func parseCell(xs, ys string) (int, int, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, newInvalidIntegerError(xs)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, newInvalidIntegerError(ys)
	}
	return x, y, nil
}

// trimLineTerminator removes a trailing "\n" or "\r\n" and nothing else.
func trimLineTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// ParseInteger parses an integer reply such as the answer to mazeWidth.
func ParseInteger(reply string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil {
		return 0, newInvalidIntegerError(reply)
	}
	return n, nil
}

// ParseBoolean interprets a boolean reply: only the exact text "true" is true.
func ParseBoolean(reply string) bool {
	return reply == ReplyTrue
}
