package robotics

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrNilTask is returned when assigning a nil task.
	ErrNilTask = errors.New("cannot assign nil task to robot")

	// ErrNoTask is returned when executing without an assigned task.
	ErrNoTask = errors.New("no task assigned")

	// ErrLowBattery is returned when the battery is too low to start a task.
	ErrLowBattery = errors.New("battery critically low")
)

// taskEnergy is the charge, in Ah, one task consumes.
const taskEnergy = 5.0

// Robot is the behavior shared by every robot in the fleet.
type Robot interface {
	ID() string
	Model() string
	Status() RobotStatus
	ExecuteTask() error
	DescribeTask() string
	AssignTask(task *Task) error
}

// base holds the state every robot variant embeds.
type base struct {
	id      string
	model   string
	status  RobotStatus
	battery *Battery
	task    *Task
	logger  *zap.Logger
}

func newBase(id, model string, logger *zap.Logger) (base, error) {
	if id == "" {
		return base{}, fmt.Errorf("robot ID cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	b := base{
		id:     id,
		model:  model,
		status: StatusIdle,
		logger: logger.Named("robot").With(zap.String("robot", id)),
	}
	b.logActivity("Robot created", zap.String("model", model))

	battery, err := NewBattery(id+"_battery", DefaultBatteryCapacity)
	if err != nil {
		return base{}, err
	}
	b.installBattery(battery)
	return b, nil
}

// ID returns the robot's identifier.
func (b *base) ID() string { return b.id }

// Model returns the robot's model name.
func (b *base) Model() string { return b.model }

// Status returns the robot's operating state.
func (b *base) Status() RobotStatus { return b.status }

// Battery returns the installed battery.
func (b *base) Battery() *Battery { return b.battery }

// Task returns the assigned task, or nil.
func (b *base) Task() *Task { return b.task }

// InstallBattery replaces the robot's battery.
func (b *base) InstallBattery(battery *Battery) error {
	if battery == nil {
		return fmt.Errorf("cannot install nil battery")
	}
	b.installBattery(battery)
	return nil
}

func (b *base) installBattery(battery *Battery) {
	b.battery = battery
	b.logActivity("Battery installed",
		zap.String("battery", battery.ID),
		zap.Float64("capacity_ah", battery.Capacity))
}

// AssignTask gives the robot a task, replacing any previous one.
func (b *base) AssignTask(task *Task) error {
	if task == nil {
		return ErrNilTask
	}
	b.task = task
	task.Status = TaskAssigned
	b.logActivity("Task assigned", zap.String("task", task.ID), zap.Stringer("type", task.Type))
	return nil
}

// DescribeTask returns a one-line description of the assigned task.
func (b *base) DescribeTask() string {
	if b.task == nil {
		return fmt.Sprintf("%s (%s): no task assigned", b.id, b.model)
	}
	return fmt.Sprintf("%s (%s): %s", b.id, b.model, b.task)
}

// execute runs the assigned task, logging action as the work itself.
func (b *base) execute(action string) error {
	if b.task == nil {
		return fmt.Errorf("%s: %w", b.id, ErrNoTask)
	}
	if b.battery.Status == ChargingCritical {
		b.task.Status = TaskFailed
		b.logActivity("Task failed", zap.String("task", b.task.ID), zap.String("battery", b.battery.String()))
		return fmt.Errorf("%s: %w", b.id, ErrLowBattery)
	}

	b.status = StatusActive
	b.task.Status = TaskInProgress
	b.logActivity(action, zap.String("task", b.task.ID), zap.Stringer("priority", b.task.Priority))

	b.battery.Drain(taskEnergy)
	b.task.Status = TaskCompleted
	b.status = StatusIdle
	return nil
}

func (b *base) logActivity(message string, fields ...zap.Field) {
	b.logger.Info("[ROBOT LOG] "+message, fields...)
}
