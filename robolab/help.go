// =============================================================================
// help.go - Drive Console Help
// =============================================================================
//
//   - ".help"         Full command listing
//   - ".help <topic>" Detailed help for one command
//
// =============================================================================

package main

import (
	"fmt"
	"io"
	"strings"
)

// printHelp writes the command listing, or detailed help for topic.
func printHelp(w io.Writer, topic string) {
	if topic == "" {
		printHelpOverview(w)
		return
	}

	// ".help .quit" works the same as ".help quit".
	key := strings.ToLower(strings.TrimPrefix(topic, "."))

	if text, ok := consoleHelp[key]; ok {
		fmt.Fprintln(w, text)
		return
	}
	fmt.Fprintf(w, "Error: No help for '%s'. Type .help to see available commands.\n", topic)
}

func printHelpOverview(w io.Writer) {
	fmt.Fprint(w, `Movement:
  f [n]             Move forward n cells (default: 1)
  r                 Turn right 90 degrees
  l                 Turn left 90 degrees

Sensing:
  walls             Show walls left, front and right
  size              Show maze width and height
  reset?            Ask whether the simulator was reset
  ack               Acknowledge a reset

Drawing:
  wall <x> <y> <d>  Mark a wall (d: n, e, s, w)
  unwall <x> <y> <d> Remove a wall marking
  color <x> <y> <c> Color a cell
  uncolor <x> <y>   Clear a cell's color
  text <x> <y> <t>  Show text in a cell
  untext <x> <y>    Clear a cell's text
  clear colors      Clear every cell color
  clear text        Clear every cell text
  clear all         Clear both

Other:
  raw <line>        Send a protocol line unchanged
  .help [cmd]       Show help (or help for a specific command)
  .quit             Exit the console
`)
}

// consoleHelp holds the detailed text for each console command.
var consoleHelp = map[string]string{
	"f": `  f [n]
    Move forward n cells (default 1). The simulator answers "ack" when
    the move succeeded. Any other answer means the mouse hit a wall or
    crashed; its position is unknown afterwards and the console exits.
    Examples:
      f
      f 3`,

	"r": `  r
    Turn right 90 degrees in place.`,

	"l": `  l
    Turn left 90 degrees in place.`,

	"walls": `  walls
    Ask for walls on the left, in front and on the right of the mouse.
    Each answer is true or false.`,

	"size": `  size
    Show the maze width and height in cells.`,

	"wall": `  wall <x> <y> <d>
    Mark a wall on side d of cell (x, y). d is one of n, e, s, w.
    The simulator does not answer; bad coordinates go unnoticed.
    Example:
      wall 2 5 w`,

	"unwall": `  unwall <x> <y> <d>
    Remove a wall marking from side d of cell (x, y).`,

	"color": `  color <x> <y> <c>
    Color cell (x, y). c is a one-character color code:
      k black  b blue   a gray    c cyan  g green  o orange
      r red    w white  y yellow  B dark blue  C dark cyan
      A dark gray  G dark green  R dark red  Y dark yellow
    Example:
      color 0 0 B`,

	"uncolor": `  uncolor <x> <y>
    Clear the color of cell (x, y).`,

	"text": `  text <x> <y> <text>
    Show text in cell (x, y). Everything after y is sent as-is.
    Example:
      text 8 8 goal`,

	"untext": `  untext <x> <y>
    Clear the text of cell (x, y).`,

	"clear": `  clear colors | clear text | clear all
    Clear every cell color, every cell text, or both.`,

	"reset?": `  reset?
    Ask whether the simulator's reset button was pressed. After a reset,
    clear your drawings and send "ack".`,

	"ack": `  ack
    Tell the simulator the reset has been handled.`,

	"raw": `  raw <line>
    Send a protocol line unchanged, e.g. "raw mazeWidth". The line is
    still checked against the protocol before it is sent.`,

	"help": `  .help [command]
    Show help for all commands, or detailed help for one command.
    Examples:
      .help
      .help wall`,

	"quit": `  .quit
    Exit the console. The simulator keeps running.`,
}
