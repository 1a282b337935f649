package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/enpm702/robolab/sensors"
)

var (
	sensorSeed       uint64
	sensorTimestamps int
)

// sensorsCmd runs the dual-sensor simulation and prints a report.
var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "Simulate LIDAR and camera readings and summarize them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sensorTimestamps < 1 {
			return fmt.Errorf("--timestamps must be at least 1, got %d", sensorTimestamps)
		}
		seed := sensorSeed
		if !cmd.Flags().Changed("seed") {
			seed = rand.Uint64()
		}
		logger.Debug("sensor simulation", zap.Uint64("seed", seed), zap.Int("timestamps", sensorTimestamps))
		runSensors(cmd.OutOrStdout(), seed, sensorTimestamps)
		return nil
	},
}

func init() {
	sensorsCmd.Flags().Uint64Var(&sensorSeed, "seed", 0, "random seed for reproducible readings (default: random)")
	sensorsCmd.Flags().IntVar(&sensorTimestamps, "timestamps", sensors.NumTimestamps, "number of timestamps to simulate")
}

// runSensors generates, processes and reports n timestamps of data.
func runSensors(out io.Writer, seed uint64, n int) {
	rng := rand.New(rand.NewPCG(seed, seed))

	fmt.Fprint(out, "=== ROBOT DUAL-SENSOR SYSTEM ===\n\n")
	fmt.Fprintf(out, "Generating sensor data for %d timestamps...\n\n", n)

	readings := sensors.Generate(rng, n)
	results := make([]sensors.Result, 0, len(readings))
	for _, reading := range readings {
		res := sensors.Process(reading)
		results = append(results, res)
		printResult(out, reading, res)
	}

	printSummary(out, sensors.Summarize(results))
}

func printResult(out io.Writer, reading sensors.Reading, res sensors.Result) {
	fmt.Fprintf(out, "Processing Timestamp: %d\n", res.Timestamp)

	fmt.Fprint(out, "  LIDAR readings:")
	for _, d := range reading.Lidar {
		fmt.Fprintf(out, " %.2f", d)
	}
	fmt.Fprintln(out)
	if res.LidarValid {
		fmt.Fprintf(out, "  LIDAR: valid, average distance %.2f m, %d obstacle(s) within %.1f m\n",
			res.AverageDistance, res.Obstacles, sensors.ObstacleThreshold)
	} else {
		fmt.Fprintln(out, "  LIDAR: invalid reading")
	}

	c := reading.Camera
	fmt.Fprintf(out, "  Camera RGB: (%d, %d, %d), brightness %.1f\n", c.R, c.G, c.B, res.Brightness)
	switch {
	case !res.CameraValid:
		fmt.Fprintln(out, "  Camera: invalid reading")
	case res.Day:
		fmt.Fprintln(out, "  Camera: valid, day mode")
	default:
		fmt.Fprintln(out, "  Camera: valid, night mode")
	}
	fmt.Fprintln(out)
}

func printSummary(out io.Writer, s sensors.Summary) {
	fmt.Fprintln(out, "=== SUMMARY STATISTICS ===")
	fmt.Fprintf(out, "LIDAR valid readings:  %d/%d (%.1f%% reliable)\n", s.LidarValid, s.LidarTotal, s.LidarReliability())
	fmt.Fprintf(out, "Camera valid readings: %d/%d (%.1f%% reliable)\n", s.CameraValid, s.CameraTotal, s.CameraReliability())
	fmt.Fprintf(out, "Average LIDAR distance: %.2f m\n", s.AverageDistance)
	fmt.Fprintf(out, "Average camera brightness: %.1f\n", s.AverageBrightness)
	fmt.Fprintf(out, "Obstacles detected: %d\n", s.Obstacles)
	fmt.Fprintf(out, "Day mode: %d, night mode: %d\n", s.DayCount, s.NightCount)
}
