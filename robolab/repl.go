// =============================================================================
// repl.go - Drive Console
// =============================================================================
//
// "robolab drive" lets an operator steer the mouse by hand. The simulator
// still owns stdin and stdout, so the console talks to the operator through
// the controlling terminal (/dev/tty), or reads a script given with
// --input and echoes to stderr.
//
// =============================================================================

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/enpm702/robolab/mazeapi"
)

// drivePrompt is shown before every console line.
const drivePrompt = "mouse> "

// ttyPath is the controlling terminal.
const ttyPath = "/dev/tty"

var driveInput string

// driveCmd runs the operator console.
var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Steer the mouse by hand from the terminal",
	Long: `drive opens an operator console on the controlling terminal and sends
each command to the simulator. Type .help for the command list.`,
	Args: cobra.NoArgs,
	RunE: runDriveCommand,
}

func init() {
	driveCmd.Flags().StringVar(&driveInput, "input", "", "read console commands from this file instead of the terminal")
}

// lineReader supplies console input lines.
type lineReader interface {
	GetLine(prompt string) (string, error)
}

// commandSender sends one protocol command and returns its reply.
type commandSender interface {
	Send(cmd mazeapi.Command) (string, error)
}

func runDriveCommand(cmd *cobra.Command, args []string) error {
	in, out, err := openConsole(cmd)
	if err != nil {
		return err
	}
	defer in.Close()

	editor := NewLineEditor(in, out, cfg.HistoryFile)
	defer editor.Close()

	client := mazeapi.NewStdioClient()
	client.SetLogger(logger.Named("wire"))

	fmt.Fprintf(out, "%s drive console\nType '.help' for available commands.\nType '.quit' to exit.\n\n", fullTitle())
	return runConsole(client, editor, out, logger)
}

// openConsole opens the operator's input and picks where console output
// goes: the terminal itself, or stderr when reading a script.
func openConsole(cmd *cobra.Command) (*os.File, io.Writer, error) {
	if driveInput != "" {
		f, err := os.Open(driveInput)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open console input: %w", err)
		}
		return f, cmd.ErrOrStderr(), nil
	}

	tty, err := os.OpenFile(ttyPath, os.O_RDWR, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("no terminal for the console (use --input): %w", err)
	}
	return tty, tty, nil
}

// runConsole reads operator commands until .quit or end of input. It
// returns an error when the simulator link fails or a move is not
// acknowledged.
func runConsole(link commandSender, editor lineReader, out io.Writer, log *zap.Logger) error {
	parser := mazeapi.NewCommandParser()

	for {
		line, err := editor.GetLine(drivePrompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Dot-commands are handled locally and never reach the simulator.
		if strings.HasPrefix(line, ".") {
			lower := strings.ToLower(line)
			switch {
			case lower == ".quit" || lower == ".exit":
				return nil
			case lower == ".help":
				printHelp(out, "")
			case strings.HasPrefix(lower, ".help "):
				printHelp(out, strings.TrimSpace(line[len(".help "):]))
			default:
				fmt.Fprintf(out, "Error: Unknown command '%s'. Type .help for help.\n", line)
			}
			continue
		}

		for _, protocolLine := range translateOperatorCommand(line) {
			command, err := parser.Parse(protocolLine)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				break
			}

			reply, err := link.Send(command)
			if err != nil {
				var linkErr *mazeapi.LinkError
				if errors.As(err, &linkErr) {
					return err
				}
				if errors.Is(err, mazeapi.ErrUnacknowledgedMove) {
					// The mouse's position is unknown, so the session is over.
					log.Error("move not acknowledged", zap.String("line", protocolLine))
					fmt.Fprintf(out, "Error: %v (mouse position is now unknown)\n", err)
					return err
				}
				fmt.Fprintf(out, "Error: %v\n", err)
				break
			}

			printReply(out, command, reply)
		}
	}
}

// printReply shows the answer to a command. Commands without a meaningful
// answer print nothing.
func printReply(out io.Writer, command mazeapi.Command, reply string) {
	switch command.Reply() {
	case mazeapi.ReplyInteger:
		fmt.Fprintf(out, "%s: %s\n", command.Type.Keyword(), reply)
	case mazeapi.ReplyBoolean:
		fmt.Fprintf(out, "%s: %t\n", command.Type.Keyword(), mazeapi.ParseBoolean(reply))
	case mazeapi.ReplyAcknowledge:
		fmt.Fprintln(out, "ok")
	}
}
