package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/enpm702/robolab/mazeapi"
	"github.com/enpm702/robolab/mazeapi/mazetest"
)

// scriptedInput feeds fixed lines to the console.
type scriptedInput struct {
	lines   []string
	prompts int
}

func (s *scriptedInput) GetLine(prompt string) (string, error) {
	s.prompts++
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// runScript runs the console against a scripted simulator and returns the
// console output and the lines the simulator received.
func runScript(t *testing.T, sim *mazetest.Simulator, lines ...string) (string, []string, error) {
	t.Helper()
	var out bytes.Buffer
	err := runConsole(sim.Client, &scriptedInput{lines: lines}, &out, zap.NewNop())
	require.NoError(t, sim.Close())
	return out.String(), sim.Received(), err
}

func TestConsoleQuit(t *testing.T) {
	sim := mazetest.New(t)
	input := &scriptedInput{lines: []string{".quit", "f"}}

	var out bytes.Buffer
	require.NoError(t, runConsole(sim.Client, input, &out, zap.NewNop()))
	require.NoError(t, sim.Close())

	assert.Empty(t, sim.Received())
	assert.Equal(t, 1, input.prompts)
}

func TestConsoleEOFExits(t *testing.T) {
	sim := mazetest.New(t)
	output, received, err := runScript(t, sim)
	require.NoError(t, err)
	assert.Equal(t, "\n", output)
	assert.Empty(t, received)
}

func TestConsoleSendsTranslatedCommands(t *testing.T) {
	sim := mazetest.New(t, "true", "false", "true", "ack", "12", "9")

	output, received, err := runScript(t, sim,
		"walls",
		"f 2",
		"wall 2 5 w",
		"text 8 8 goal",
		"size",
		"r",
	)
	require.NoError(t, err)

	want := []string{
		"wallLeft", "wallFront", "wallRight",
		"moveForward 2",
		"setWall 2 5 w",
		"setText 8 8 goal",
		"mazeWidth", "mazeHeight",
		"turnRight",
	}
	if diff := cmp.Diff(want, received); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}

	for _, line := range []string{
		"wallLeft: true",
		"wallFront: false",
		"wallRight: true",
		"ok",
		"mazeWidth: 12",
		"mazeHeight: 9",
	} {
		assert.Contains(t, output, line)
	}
}

func TestConsoleDotCommandsStayLocal(t *testing.T) {
	sim := mazetest.New(t)
	output, received, err := runScript(t, sim, ".help", ".help wall", ".bogus", ".QUIT")
	require.NoError(t, err)

	assert.Empty(t, received)
	assert.Contains(t, output, "Movement:")
	assert.Contains(t, output, "wall 2 5 w")
	assert.Contains(t, output, "Unknown command '.bogus'")
}

func TestConsoleParseErrorIsNotSent(t *testing.T) {
	sim := mazetest.New(t)
	output, received, err := runScript(t, sim, "wall 1 2 up", "f two", "teleport", "size")
	require.NoError(t, err)

	assert.Equal(t, []string{"mazeWidth", "mazeHeight"}, received)
	assert.Contains(t, output, "invalid direction 'up'")
	assert.Contains(t, output, "invalid integer 'two'")
	assert.Contains(t, output, "invalid command 'teleport'")
}

func TestConsoleUnacknowledgedMoveEndsSession(t *testing.T) {
	sim := mazetest.New(t, "crash")
	input := &scriptedInput{lines: []string{"f", "f", "r", "walls"}}

	var out bytes.Buffer
	err := runConsole(sim.Client, input, &out, zap.NewNop())
	require.NoError(t, sim.Close())

	require.Error(t, err)
	assert.ErrorIs(t, err, mazeapi.ErrUnacknowledgedMove)
	var unack *mazeapi.UnacknowledgedMoveError
	require.ErrorAs(t, err, &unack)
	assert.Equal(t, "crash", unack.Response)

	assert.Equal(t, []string{"moveForward"}, sim.Received())
	assert.Equal(t, 1, input.prompts)
	assert.Contains(t, out.String(), "not acknowledged: crash")
	assert.Contains(t, out.String(), "position is now unknown")
}

func TestConsoleUnacknowledgedMoveStopsTranslation(t *testing.T) {
	// "clear" expands to two lines; a refused move before it means
	// neither is sent.
	sim := mazetest.New(t, "wall")
	_, received, err := runScript(t, sim, "f 2", "clear")
	require.Error(t, err)
	assert.Equal(t, []string{"moveForward 2"}, received)
}

// deadLink fails every exchange as if the simulator had exited.
type deadLink struct{}

func (deadLink) Send(cmd mazeapi.Command) (string, error) {
	return "", mazeapi.NewLinkError("read", cmd.Format(), io.EOF)
}

func TestConsoleStopsWhenSimulatorGone(t *testing.T) {
	var out bytes.Buffer
	input := &scriptedInput{lines: []string{"walls", "f"}}

	err := runConsole(deadLink{}, input, &out, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, input.prompts)
}

func TestConsoleBlankLinesIgnored(t *testing.T) {
	sim := mazetest.New(t)
	output, received, err := runScript(t, sim, "", "   ", "\t")
	require.NoError(t, err)

	assert.Empty(t, received)
	assert.False(t, strings.Contains(output, "Error"))
}

func TestPrintReply(t *testing.T) {
	tests := []struct {
		cmd      mazeapi.Command
		reply    string
		expected string
	}{
		{mazeapi.NewMazeWidthCommand(), "16", "mazeWidth: 16\n"},
		{mazeapi.NewWallFrontCommand(), "true", "wallFront: true\n"},
		{mazeapi.NewWasResetCommand(), "TRUE", "wasReset: false\n"},
		{mazeapi.NewMoveForwardCommand(1), "ack", "ok\n"},
		{mazeapi.NewTurnLeftCommand(), "ack", ""},
		{mazeapi.NewSetWallCommand(0, 0, mazeapi.North), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Format(), func(t *testing.T) {
			var buf bytes.Buffer
			printReply(&buf, tt.cmd, tt.reply)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}
