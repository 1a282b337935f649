package mazeapi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Client speaks the maze protocol over a pair of streams.
//
// Each call writes one command line and, when the command has a reply,
// blocks until one reply line has been read. There is no pipelining, no
// timeout and no retry: the simulator is a local process on the other end
// of a pipe.
//
// Thread Safety:
// A mutex is held for the whole command/reply exchange, so replies can
// never be paired with the wrong command.
type Client struct {
	mu sync.Mutex

	reader *bufio.Reader
	writer *bufio.Writer

	// diagnostics receives Log output. The simulator shows the mouse's
	// stderr in its log pane.
	diagnostics io.Writer

	logger *zap.Logger
}

// NewClient creates a client that reads replies from r and writes
// commands to w.
func NewClient(r io.Reader, w io.Writer) *Client {
	return &Client{
		reader:      bufio.NewReader(r),
		writer:      bufio.NewWriter(w),
		diagnostics: io.Discard,
		logger:      zap.NewNop(),
	}
}

// NewStdioClient creates the client a mouse program normally uses: replies
// on standard input, commands on standard output, Log output on standard
// error.
func NewStdioClient() *Client {
	c := NewClient(os.Stdin, os.Stdout)
	c.diagnostics = os.Stderr
	return c
}

// SetLogger attaches a logger that records every wire line at debug level.
func (c *Client) SetLogger(logger *zap.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
}

// SetDiagnostics sets where Log writes.
func (c *Client) SetDiagnostics(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	c.diagnostics = w
}

// Log writes one line of text to the diagnostics stream. It never touches
// the protocol stream.
func (c *Client) Log(text string) {
	c.mu.Lock()
	w := c.diagnostics
	c.mu.Unlock()
	fmt.Fprintln(w, text)
}

// Send writes cmd and reads its reply if the command has one. The raw
// reply line, without its terminator, is returned; it is empty for
// fire-and-forget commands.
//
// A moveForward whose reply is not "ack" returns *UnacknowledgedMoveError.
func (c *Client) Send(cmd Command) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line := cmd.Format()
	if err := c.writeLine(line); err != nil {
		return "", err
	}

	if cmd.Reply() == ReplyNone {
		return "", nil
	}

	reply, err := c.readLine(line)
	if err != nil {
		return "", err
	}

	if cmd.Reply() == ReplyAcknowledge && reply != ReplyAck {
		return reply, &UnacknowledgedMoveError{Distance: cmd.Distance, Response: reply}
	}
	return reply, nil
}

func (c *Client) writeLine(line string) error {
	c.logger.Debug("tx", zap.String("line", line))
	if _, err := c.writer.WriteString(line + LineTerminator); err != nil {
		return NewLinkError("write", line, err)
	}
	// The simulator waits for whole lines, so every command is flushed.
	if err := c.writer.Flush(); err != nil {
		return NewLinkError("write", line, err)
	}
	return nil
}

func (c *Client) readLine(sent string) (string, error) {
	reply, err := c.reader.ReadString('\n')
	if err != nil {
		// A final reply without a terminator still counts.
		if !errors.Is(err, io.EOF) || reply == "" {
			return "", NewLinkError("read", sent, err)
		}
	}
	reply = trimLineTerminator(reply)
	c.logger.Debug("rx", zap.String("line", reply), zap.String("for", sent))
	return reply, nil
}

// Width returns the maze width in cells.
func (c *Client) Width() (int, error) {
	return c.queryInteger(NewMazeWidthCommand())
}

// Height returns the maze height in cells.
func (c *Client) Height() (int, error) {
	return c.queryInteger(NewMazeHeightCommand())
}

// WallFront reports whether there is a wall in front of the mouse.
func (c *Client) WallFront() (bool, error) {
	return c.queryBoolean(NewWallFrontCommand())
}

// WallRight reports whether there is a wall to the mouse's right.
func (c *Client) WallRight() (bool, error) {
	return c.queryBoolean(NewWallRightCommand())
}

// WallLeft reports whether there is a wall to the mouse's left.
func (c *Client) WallLeft() (bool, error) {
	return c.queryBoolean(NewWallLeftCommand())
}

// MoveForward moves one cell forward.
func (c *Client) MoveForward() error {
	return c.MoveForwardBy(1)
}

// MoveForwardBy moves distance cells forward. Any reply other than "ack"
// is returned as *UnacknowledgedMoveError and leaves the session in an
// unknown state.
func (c *Client) MoveForwardBy(distance int) error {
	_, err := c.Send(NewMoveForwardCommand(distance))
	return err
}

// TurnRight turns the mouse 90 degrees clockwise.
func (c *Client) TurnRight() error {
	_, err := c.Send(NewTurnRightCommand())
	return err
}

// TurnLeft turns the mouse 90 degrees counter-clockwise.
func (c *Client) TurnLeft() error {
	_, err := c.Send(NewTurnLeftCommand())
	return err
}

// SetWall marks a wall on side dir of cell (x, y). No reply is expected,
// so bad coordinates or directions go unnoticed.
func (c *Client) SetWall(x, y int, dir Direction) error {
	_, err := c.Send(NewSetWallCommand(x, y, dir))
	return err
}

// ClearWall removes a wall marking.
func (c *Client) ClearWall(x, y int, dir Direction) error {
	_, err := c.Send(NewClearWallCommand(x, y, dir))
	return err
}

// SetColor paints cell (x, y).
func (c *Client) SetColor(x, y int, color Color) error {
	_, err := c.Send(NewSetColorCommand(x, y, color))
	return err
}

// ClearColor clears the color of cell (x, y).
func (c *Client) ClearColor(x, y int) error {
	_, err := c.Send(NewClearColorCommand(x, y))
	return err
}

// ClearAllColor clears every cell color.
func (c *Client) ClearAllColor() error {
	_, err := c.Send(NewClearAllColorCommand())
	return err
}

// SetText shows text in cell (x, y).
func (c *Client) SetText(x, y int, text string) error {
	_, err := c.Send(NewSetTextCommand(x, y, text))
	return err
}

// ClearText clears the text of cell (x, y).
func (c *Client) ClearText(x, y int) error {
	_, err := c.Send(NewClearTextCommand(x, y))
	return err
}

// ClearAllText clears every cell's text.
func (c *Client) ClearAllText() error {
	_, err := c.Send(NewClearAllTextCommand())
	return err
}

// WasReset reports whether the simulator's reset button was pressed.
func (c *Client) WasReset() (bool, error) {
	return c.queryBoolean(NewWasResetCommand())
}

// AckReset tells the simulator the reset has been handled.
func (c *Client) AckReset() error {
	_, err := c.Send(NewAckResetCommand())
	return err
}

func (c *Client) queryInteger(cmd Command) (int, error) {
	reply, err := c.Send(cmd)
	if err != nil {
		return 0, err
	}
	return ParseInteger(reply)
}

func (c *Client) queryBoolean(cmd Command) (bool, error) {
	reply, err := c.Send(cmd)
	if err != nil {
		return false, err
	}
	return ParseBoolean(reply), nil
}
