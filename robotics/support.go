// Package robotics models a small fleet of warehouse robots: carriers,
// scanners and sorters, each with a battery and at most one task.
package robotics

// RobotStatus is the operating state of a robot.
type RobotStatus int

const (
	// StatusIdle means the robot is available for a task.
	StatusIdle RobotStatus = iota
	// StatusActive means the robot is executing a task.
	StatusActive
	// StatusCharging means the robot is docked at a charger.
	StatusCharging
	// StatusMaintenance means the robot is being serviced.
	StatusMaintenance
	// StatusError means the robot needs attention.
	StatusError
)

func (s RobotStatus) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusActive:
		return "ACTIVE"
	case StatusCharging:
		return "CHARGING"
	case StatusMaintenance:
		return "MAINTENANCE"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ChargingStatus is the state of a battery.
type ChargingStatus int

const (
	ChargingCharging ChargingStatus = iota
	ChargingFull
	ChargingDischarging
	ChargingCritical
)

func (s ChargingStatus) String() string {
	switch s {
	case ChargingCharging:
		return "CHARGING"
	case ChargingFull:
		return "FULL"
	case ChargingDischarging:
		return "DISCHARGING"
	case ChargingCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// TaskType is the kind of work a task describes.
type TaskType int

const (
	// TaskTransport moves items between locations.
	TaskTransport TaskType = iota
	// TaskScan scans barcodes and updates inventory.
	TaskScan
	// TaskSort organizes items by type or destination.
	TaskSort
	// TaskMaintenance is upkeep or calibration work.
	TaskMaintenance
)

func (t TaskType) String() string {
	switch t {
	case TaskTransport:
		return "TRANSPORT"
	case TaskScan:
		return "SCAN"
	case TaskSort:
		return "SORT"
	case TaskMaintenance:
		return "MAINTENANCE"
	default:
		return "UNKNOWN"
	}
}

// Priority orders tasks by urgency.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	PriorityUrgent
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityNormal:
		return "NORMAL"
	case PriorityHigh:
		return "HIGH"
	case PriorityUrgent:
		return "URGENT"
	default:
		return "UNKNOWN"
	}
}

// TaskStatus tracks a task through its life cycle.
type TaskStatus int

const (
	TaskCreated TaskStatus = iota
	TaskAssigned
	TaskInProgress
	TaskCompleted
	TaskFailed
)

func (s TaskStatus) String() string {
	switch s {
	case TaskCreated:
		return "CREATED"
	case TaskAssigned:
		return "ASSIGNED"
	case TaskInProgress:
		return "IN_PROGRESS"
	case TaskCompleted:
		return "COMPLETED"
	case TaskFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}
