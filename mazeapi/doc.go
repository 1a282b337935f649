// Package mazeapi is a client for the micromouse maze simulator's text
// protocol.
//
// A mouse program is launched by the simulator with its standard input and
// standard output connected to the simulator. Every request is a single
// newline-terminated line written to the program's output; queries and
// actions are answered with a single line on the program's input.
//
// # Protocol Overview
//
//	mazeWidth                   -> integer
//	mazeHeight                  -> integer
//	wallFront|wallRight|wallLeft -> "true" | anything else
//	moveForward [<n>]           -> "ack" | error text
//	turnRight|turnLeft          -> ignored line
//	setWall <x> <y> <dir>       (no reply)
//	clearWall <x> <y> <dir>     (no reply)
//	setColor <x> <y> <color>    (no reply)
//	clearColor <x> <y>          (no reply)
//	clearAllColor               (no reply)
//	setText <x> <y> <text...>   (no reply)
//	clearText <x> <y>           (no reply)
//	clearAllText                (no reply)
//	wasReset                    -> "true" | anything else
//	ackReset                    -> ignored line
//
// The exchange is strictly half-duplex: a reply, when one is expected, is
// read completely before the next command is written. Commands without a
// reply are fire-and-forget; the simulator never reports malformed
// coordinates, directions, colors or text, and this package does not check
// them either.
//
// # Basic Usage
//
//	client := mazeapi.NewStdioClient()
//
//	width, err := client.Width()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.MoveForward(); err != nil {
//	    var unack *mazeapi.UnacknowledgedMoveError
//	    if errors.As(err, &unack) {
//	        // The mouse's position is unknown from here on.
//	        log.Fatalf("simulator refused move: %s", unack.Response)
//	    }
//	}
//
// # Parsing Commands
//
// CommandParser turns a wire line back into a Command. The operator
// console uses it for raw input and test simulators use it to decide
// whether a reply is due:
//
//	cmd, err := mazeapi.NewCommandParser().Parse("setWall 2 5 w")
//
// # Thread Safety
//
// Client serialises each command and its reply under a mutex, so replies
// stay paired with their commands even if the client is shared.
package mazeapi
