// Package mazetest provides a scripted maze simulator for tests.
//
// The simulator is connected to a real mazeapi.Client through in-memory
// pipes and speaks the same line protocol as the real simulator. It records
// every line it receives and answers only the commands that carry a reply.
package mazetest

import (
	"bufio"
	"io"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/enpm702/robolab/mazeapi"
)

// Handler computes the reply for a command when no scripted reply is queued.
type Handler func(cmd mazeapi.Command) string

// Simulator is a lightweight stand-in for the maze simulator.
type Simulator struct {
	// Client is connected to this simulator.
	Client *mazeapi.Client

	mu       sync.Mutex
	queue    []string
	received []string
	replies  int
	rejected []string
	handler  Handler

	// Client -> simulator
	commandsIn  *io.PipeReader
	commandsOut *io.PipeWriter

	// Simulator -> client
	repliesIn  *io.PipeReader
	repliesOut *io.PipeWriter

	group     errgroup.Group
	closeOnce sync.Once
}

// New starts a simulator whose first replies are taken, in order, from
// replies. Once they run out, DefaultHandler answers. The simulator is
// closed when the test finishes.
func New(t testing.TB, replies ...string) *Simulator {
	t.Helper()

	commandsIn, commandsOut := io.Pipe()
	repliesIn, repliesOut := io.Pipe()

	s := &Simulator{
		Client:      mazeapi.NewClient(repliesIn, commandsOut),
		queue:       append([]string(nil), replies...),
		handler:     DefaultHandler,
		commandsIn:  commandsIn,
		commandsOut: commandsOut,
		repliesIn:   repliesIn,
		repliesOut:  repliesOut,
	}

	s.group.Go(s.serve)
	t.Cleanup(func() { s.Close() })

	return s
}

// SetHandler replaces the handler used once scripted replies run out.
func (s *Simulator) SetHandler(h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h == nil {
		h = DefaultHandler
	}
	s.handler = h
}

// Queue appends scripted replies.
func (s *Simulator) Queue(replies ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, replies...)
}

// Close disconnects the client and waits for the simulator to stop.
// It is safe to call more than once.
func (s *Simulator) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.commandsOut.Close()
		s.repliesIn.Close()
		err = s.group.Wait()
	})
	return err
}

// Received returns every line the simulator has read so far. Call Close
// first to be sure the last fire-and-forget line has been recorded.
func (s *Simulator) Received() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.received...)
}

// Replies returns how many reply lines the simulator has written.
func (s *Simulator) Replies() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replies
}

// Rejected returns the lines the simulator could not parse.
func (s *Simulator) Rejected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.rejected...)
}

func (s *Simulator) serve() error {
	defer s.repliesOut.Close()

	parser := mazeapi.NewCommandParser()
	scanner := bufio.NewScanner(s.commandsIn)
	for scanner.Scan() {
		line := scanner.Text()

		cmd, err := parser.Parse(line)
		s.mu.Lock()
		s.received = append(s.received, line)
		if err != nil {
			s.rejected = append(s.rejected, line)
		}
		s.mu.Unlock()

		if err != nil || cmd.Reply() == mazeapi.ReplyNone {
			continue
		}

		reply := s.next(cmd)
		if _, err := io.WriteString(s.repliesOut, reply+mazeapi.LineTerminator); err != nil {
			// The client went away; nothing more to do.
			return nil
		}

		s.mu.Lock()
		s.replies++
		s.mu.Unlock()
	}
	return scanner.Err()
}

func (s *Simulator) next(cmd mazeapi.Command) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) > 0 {
		reply := s.queue[0]
		s.queue = s.queue[1:]
		return reply
	}
	return s.handler(cmd)
}

// DefaultHandler answers like an open 16x16 maze: no walls anywhere and
// every move acknowledged.
func DefaultHandler(cmd mazeapi.Command) string {
	switch cmd.Reply() {
	case mazeapi.ReplyInteger:
		return "16"
	case mazeapi.ReplyBoolean:
		return mazeapi.ReplyFalse
	default:
		return mazeapi.ReplyAck
	}
}
