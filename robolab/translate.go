// =============================================================================
// translate.go - Operator Command Translation
// =============================================================================
//
// The drive console accepts short operator commands ("f 3", "walls",
// "color 0 0 G") and turns them into maze protocol lines. Translation is
// purely textual; the protocol parser validates the result before anything
// is sent.
//
// =============================================================================

package main

import "strings"

// translateOperatorCommand converts one console line into the protocol
// lines to send, in order. Keywords are case-insensitive; arguments are
// passed through untouched. Unrecognised input is returned as-is so that
// protocol commands can also be typed directly.
func translateOperatorCommand(line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	// GO CONCEPT: strings.Cut
	// -----------------------
	// strings.Cut splits a string around the first separator and returns
	// (before, after, found). It replaces the older SplitN(s, sep, 2) idiom
	// without allocating a slice.
	//
	// Compare with Python: `keyword, _, args = line.partition(" ")`.
	keyword, args, _ := strings.Cut(trimmed, " ")
	keyword = strings.ToLower(keyword)
	args = strings.TrimSpace(args)

	switch keyword {
	case "f", "forward":
		if args == "" {
			return []string{"moveForward"}
		}
		return []string{"moveForward " + args}

	case "r", "right":
		return []string{"turnRight"}

	case "l", "left":
		return []string{"turnLeft"}

	case "walls":
		return []string{"wallLeft", "wallFront", "wallRight"}

	case "size":
		return []string{"mazeWidth", "mazeHeight"}

	case "wall":
		return []string{withArgs("setWall", args)}

	case "unwall":
		return []string{withArgs("clearWall", args)}

	case "color":
		return []string{withArgs("setColor", args)}

	case "uncolor":
		return []string{withArgs("clearColor", args)}

	case "text":
		return []string{withArgs("setText", args)}

	case "untext":
		return []string{withArgs("clearText", args)}

	case "clear":
		switch strings.ToLower(args) {
		case "colors", "color":
			return []string{"clearAllColor"}
		case "text":
			return []string{"clearAllText"}
		case "all", "":
			return []string{"clearAllColor", "clearAllText"}
		}
		return []string{trimmed}

	case "reset?":
		return []string{"wasReset"}

	case "ack":
		return []string{"ackReset"}

	case "raw":
		return []string{args}

	default:
		return []string{trimmed}
	}
}

// withArgs appends args to a protocol keyword, leaving a bare keyword when
// there are none so the parser reports the missing arguments.
func withArgs(keyword, args string) string {
	if args == "" {
		return keyword
	}
	return keyword + " " + args
}
