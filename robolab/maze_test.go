package main

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/enpm702/robolab/config"
	"github.com/enpm702/robolab/mazeapi"
	"github.com/enpm702/robolab/mazeapi/mazetest"
)

// fakeMaze answers the simulator protocol for an empty rectangular maze
// whose only walls are the outer boundary. The mouse starts at (0,0)
// facing north. A move into a wall is answered with "crash".
//
// It runs inside the simulator goroutine; read its fields only after the
// simulator is closed.
type fakeMaze struct {
	width, height int
	x, y          int
	heading       int // 0 north, 1 east, 2 south, 3 west

	resetPending bool
	onTurnRight  func(turns int)
	rightTurns   int
}

func newFakeMaze(width, height int) *fakeMaze {
	return &fakeMaze{width: width, height: height}
}

func (m *fakeMaze) blocked(heading int) bool {
	switch heading % 4 {
	case 0:
		return m.y == m.height-1
	case 1:
		return m.x == m.width-1
	case 2:
		return m.y == 0
	default:
		return m.x == 0
	}
}

func (m *fakeMaze) handle(cmd mazeapi.Command) string {
	switch cmd.Type {
	case mazeapi.CmdMazeWidth:
		return strconv.Itoa(m.width)
	case mazeapi.CmdMazeHeight:
		return strconv.Itoa(m.height)
	case mazeapi.CmdWallFront:
		return strconv.FormatBool(m.blocked(m.heading))
	case mazeapi.CmdWallRight:
		return strconv.FormatBool(m.blocked(m.heading + 1))
	case mazeapi.CmdWallLeft:
		return strconv.FormatBool(m.blocked(m.heading + 3))
	case mazeapi.CmdTurnRight:
		m.heading = (m.heading + 1) % 4
		m.rightTurns++
		if m.onTurnRight != nil {
			m.onTurnRight(m.rightTurns)
		}
	case mazeapi.CmdTurnLeft:
		m.heading = (m.heading + 3) % 4
	case mazeapi.CmdMoveForward:
		for i := 0; i < cmd.Distance; i++ {
			if m.blocked(m.heading) {
				return "crash"
			}
			switch m.heading {
			case 0:
				m.y++
			case 1:
				m.x++
			case 2:
				m.y--
			case 3:
				m.x--
			}
		}
	case mazeapi.CmdWasReset:
		reset := m.resetPending
		m.resetPending = false
		return strconv.FormatBool(reset)
	}
	return mazeapi.ReplyAck
}

// decorationLines is what the default config paints before the first move.
var decorationLines = []string{
	"setColor 0 0 B", "setText 0 0 start",
	"setColor 8 7 R", "setText 8 7 goal",
	"setColor 7 7 C", "setText 7 7 goal",
	"setColor 8 8 G", "setText 8 8 goal",
	"setColor 7 8 O", "setText 7 8 goal",
	"setWall 0 0 w", "setWall 0 0 s",
}

func testConfig(maxSteps int) *config.Config {
	c := config.DefaultConfig()
	c.MaxSteps = maxSteps
	return c
}

func TestRunMazeFirstStepTranscript(t *testing.T) {
	maze := newFakeMaze(16, 16)
	sim := mazetest.New(t)
	sim.SetHandler(maze.handle)

	stats, err := runMaze(context.Background(), sim.Client, testConfig(1), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, sim.Close())

	want := append(append([]string{}, decorationLines...), "wallLeft", "wallFront", "moveForward")
	if diff := cmp.Diff(want, sim.Received()); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, runStats{Steps: 1}, stats)
	assert.Equal(t, 1, maze.y)
}

func TestRunMazeFollowsBoundary(t *testing.T) {
	maze := newFakeMaze(16, 16)
	sim := mazetest.New(t)
	sim.SetHandler(maze.handle)

	stats, err := runMaze(context.Background(), sim.Client, testConfig(20), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, sim.Close())

	// Fifteen cells north along the west wall, then five east along the
	// north wall.
	assert.Equal(t, 20, stats.Steps)
	assert.Equal(t, 1, stats.Turns)
	assert.Equal(t, 5, maze.x)
	assert.Equal(t, 15, maze.y)
	assert.Equal(t, 1, maze.heading)
	assert.Empty(t, sim.Rejected())
}

func TestRunMazeTurnsLeftIntoOpening(t *testing.T) {
	maze := newFakeMaze(4, 4)
	maze.x, maze.y = 2, 2
	sim := mazetest.New(t)
	sim.SetHandler(maze.handle)

	c := testConfig(1)
	c.Markers = nil
	c.Walls = nil

	stats, err := runMaze(context.Background(), sim.Client, c, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, sim.Close())

	want := []string{"wallLeft", "turnLeft", "wallFront", "moveForward"}
	if diff := cmp.Diff(want, sim.Received()); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, runStats{Steps: 1, Turns: 1}, stats)
	assert.Equal(t, 1, maze.x)
}

func TestRunMazeUnacknowledgedMove(t *testing.T) {
	// wallLeft and wallFront are answered from the queue: wall on the left,
	// front open. The move that follows is refused.
	sim := mazetest.New(t, "true", "false")
	sim.SetHandler(func(cmd mazeapi.Command) string {
		if cmd.Type == mazeapi.CmdMoveForward {
			return "crash"
		}
		return mazetest.DefaultHandler(cmd)
	})

	stats, err := runMaze(context.Background(), sim.Client, testConfig(5), zap.NewNop())
	require.Error(t, err)

	var unack *mazeapi.UnacknowledgedMoveError
	require.True(t, errors.As(err, &unack))
	assert.Equal(t, "crash", unack.Response)
	assert.Equal(t, 0, stats.Steps)
}

func TestRunMazeCancelled(t *testing.T) {
	sim := mazetest.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := runMaze(ctx, sim.Client, testConfig(0), zap.NewNop())
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, stats.Steps)

	require.NoError(t, sim.Close())
	// Decorations are sent before the loop looks at the context.
	if diff := cmp.Diff(decorationLines, sim.Received()); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMazeBoxedInStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sim := mazetest.New(t)
	sim.SetHandler(func(cmd mazeapi.Command) string {
		switch cmd.Reply() {
		case mazeapi.ReplyBoolean:
			return "true"
		}
		if cmd.Type == mazeapi.CmdTurnRight {
			cancel()
		}
		return mazetest.DefaultHandler(cmd)
	})

	c := testConfig(0)
	c.Markers = nil
	c.Walls = nil

	stats, err := runMaze(ctx, sim.Client, c, zap.NewNop())
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, stats.Steps)
	assert.GreaterOrEqual(t, stats.Turns, 1)
}

func TestRunMazeHandlesReset(t *testing.T) {
	maze := newFakeMaze(16, 16)
	maze.resetPending = true
	sim := mazetest.New(t)
	sim.SetHandler(maze.handle)

	c := testConfig(1)
	c.WatchReset = true
	c.Markers = []config.Marker{{X: 0, Y: 0, Color: "B", Text: "start"}}
	c.Walls = nil

	stats, err := runMaze(context.Background(), sim.Client, c, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, sim.Close())

	want := []string{
		"setColor 0 0 B", "setText 0 0 start",
		"wasReset",
		"clearAllColor", "clearAllText", "ackReset",
		"setColor 0 0 B", "setText 0 0 start",
		"wallLeft", "wallFront", "moveForward",
	}
	if diff := cmp.Diff(want, sim.Received()); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, stats.Resets)
}

func TestPaintMarkersSkipsEmptyFields(t *testing.T) {
	sim := mazetest.New(t)

	markers := []config.Marker{
		{X: 1, Y: 1, Color: "r"},
		{X: 2, Y: 2, Text: "dead end"},
	}
	require.NoError(t, paintMarkers(sim.Client, markers))
	require.NoError(t, sim.Close())

	want := []string{"setColor 1 1 r", "setText 2 2 dead end"}
	if diff := cmp.Diff(want, sim.Received()); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}
