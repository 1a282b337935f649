package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/enpm702/robolab/robotics"
)

// warehouseCmd runs a small warehouse fleet through one round of tasks.
var warehouseCmd = &cobra.Command{
	Use:   "warehouse",
	Short: "Assign and run one task on each warehouse robot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWarehouse(cmd.OutOrStdout(), logger)
	},
}

// buildFleet creates one robot of each kind with a matching task.
func buildFleet(log *zap.Logger) ([]robotics.Robot, error) {
	carrier, err := robotics.NewCarrierRobot("WH-AMR-001", 50, log)
	if err != nil {
		return nil, err
	}
	scanner, err := robotics.NewScannerRobot("WH-SCN-002", 5, 99.5, log)
	if err != nil {
		return nil, err
	}
	sorter, err := robotics.NewSorterRobot("WH-SRT-003", 97, log)
	if err != nil {
		return nil, err
	}

	assignments := []struct {
		robot robotics.Robot
		task  *robotics.Task
	}{
		{carrier, robotics.NewTask("", robotics.TaskTransport, robotics.PriorityHigh)},
		{scanner, robotics.NewTask("", robotics.TaskScan, robotics.PriorityNormal)},
		{sorter, robotics.NewTask("", robotics.TaskSort, robotics.PriorityUrgent)},
	}
	fleet := make([]robotics.Robot, 0, len(assignments))
	for _, a := range assignments {
		if err := a.robot.AssignTask(a.task); err != nil {
			return nil, err
		}
		fleet = append(fleet, a.robot)
	}
	return fleet, nil
}

func runWarehouse(out io.Writer, log *zap.Logger) error {
	fleet, err := buildFleet(log)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "=== ASSIGNED TASKS ===")
	for _, r := range fleet {
		fmt.Fprintln(out, r.DescribeTask())
	}

	if err := robotics.Dispatch(fleet...); err != nil {
		return fmt.Errorf("dispatch failed: %w", err)
	}

	fmt.Fprintln(out, "\n=== FLEET STATUS ===")
	for _, r := range fleet {
		fmt.Fprintf(out, "%-12s %-14s %s\n", r.ID(), r.Model(), r.Status())
		fmt.Fprintf(out, "  %s\n", r.DescribeTask())
	}
	return nil
}
