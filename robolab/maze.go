// =============================================================================
// maze.go - Wall Follower
// =============================================================================
//
// The mouse keeps its left hand on the wall: turn left whenever the left
// side is open, turn right until the front is open, then step forward.
// Before the loop starts, the start and goal cells are painted and a couple
// of walls are drawn so they show up in the simulator.
//
// =============================================================================

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/enpm702/robolab/config"
	"github.com/enpm702/robolab/mazeapi"
)

// Flags shared by the root command and "maze".
var (
	maxSteps   int
	watchReset bool
)

// mazeCmd runs the wall follower. It is also what the root command runs.
var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Run the left-hand wall follower against the simulator",
	Args:  cobra.NoArgs,
	RunE:  runMazeCommand,
}

func init() {
	addMazeFlags(mazeCmd)
}

func addMazeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many forward moves (0 = run until stopped)")
	cmd.Flags().BoolVar(&watchReset, "watch-reset", false, "poll the simulator's reset button and repaint after a reset")
}

// mazeLink is the part of the maze client the wall follower uses.
type mazeLink interface {
	WallFront() (bool, error)
	WallLeft() (bool, error)
	MoveForward() error
	TurnLeft() error
	TurnRight() error
	SetWall(x, y int, dir mazeapi.Direction) error
	SetColor(x, y int, color mazeapi.Color) error
	SetText(x, y int, text string) error
	ClearAllColor() error
	ClearAllText() error
	WasReset() (bool, error)
	AckReset() error
	Log(text string)
}

// runStats counts what a maze run did.
type runStats struct {
	Steps  int
	Turns  int
	Resets int
}

func runMazeCommand(cmd *cobra.Command, args []string) error {
	client := mazeapi.NewStdioClient()
	client.SetLogger(logger.Named("wire"))

	// GO CONCEPT: Signals as Context Cancellation
	// -------------------------------------------
	// signal.NotifyContext returns a context that is cancelled on SIGINT or
	// SIGTERM. Long-running loops check ctx.Err() and unwind normally, so
	// deferred cleanup and logger.Sync still run.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := runMaze(ctx, client, cfg, logger)

	var unack *mazeapi.UnacknowledgedMoveError
	switch {
	case errors.As(err, &unack):
		// The mouse's position is unknown from here on.
		logger.Fatal("move not acknowledged",
			zap.String("response", unack.Response),
			zap.Int("steps", stats.Steps))
	case errors.Is(err, context.Canceled):
		logger.Info("stopped", zap.Int("steps", stats.Steps), zap.Int("turns", stats.Turns))
		return nil
	case err != nil:
		return err
	}

	logger.Info("step limit reached",
		zap.Int("steps", stats.Steps),
		zap.Int("turns", stats.Turns),
		zap.Int("resets", stats.Resets))
	return nil
}

// runMaze decorates the maze and then follows the left wall until the step
// limit is reached, the context is cancelled or the link fails.
func runMaze(ctx context.Context, link mazeLink, c *config.Config, log *zap.Logger) (runStats, error) {
	var stats runStats

	link.Log("Running...")
	if err := paintMarkers(link, c.Markers); err != nil {
		return stats, err
	}
	if err := drawWalls(link, c.Walls); err != nil {
		return stats, err
	}

	for c.MaxSteps == 0 || stats.Steps < c.MaxSteps {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if c.WatchReset {
			reset, err := link.WasReset()
			if err != nil {
				return stats, err
			}
			if reset {
				if err := handleReset(link, c.Markers); err != nil {
					return stats, err
				}
				stats.Resets++
				log.Info("simulator reset", zap.Int("steps", stats.Steps))
			}
		}

		if err := followStep(ctx, link, &stats); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// followStep performs one iteration of the left-hand rule and moves one
// cell forward.
func followStep(ctx context.Context, link mazeLink, stats *runStats) error {
	left, err := link.WallLeft()
	if err != nil {
		return err
	}
	if !left {
		if err := link.TurnLeft(); err != nil {
			return err
		}
		stats.Turns++
	}

	for {
		front, err := link.WallFront()
		if err != nil {
			return err
		}
		if !front {
			break
		}
		// A cell walled on all four sides would spin forever.
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := link.TurnRight(); err != nil {
			return err
		}
		stats.Turns++
	}

	if err := link.MoveForward(); err != nil {
		return err
	}
	stats.Steps++
	return nil
}

func paintMarkers(link mazeLink, markers []config.Marker) error {
	if len(markers) > 0 {
		link.Log("Setting start and goal cells")
	}
	for _, m := range markers {
		if m.HasColor() {
			if err := link.SetColor(m.X, m.Y, m.ColorCode()); err != nil {
				return err
			}
		}
		if m.Text != "" {
			if err := link.SetText(m.X, m.Y, m.Text); err != nil {
				return err
			}
		}
	}
	return nil
}

func drawWalls(link mazeLink, walls []config.Wall) error {
	for _, w := range walls {
		if err := link.SetWall(w.X, w.Y, w.Direction()); err != nil {
			return err
		}
	}
	return nil
}

// handleReset clears the simulator's decorations, acknowledges the reset
// and paints the markers again.
func handleReset(link mazeLink, markers []config.Marker) error {
	if err := link.ClearAllColor(); err != nil {
		return err
	}
	if err := link.ClearAllText(); err != nil {
		return err
	}
	if err := link.AckReset(); err != nil {
		return err
	}
	return paintMarkers(link, markers)
}
