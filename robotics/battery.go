package robotics

import "fmt"

// DefaultBatteryCapacity is the capacity, in Ah, of the battery a robot
// gets when none is supplied.
const DefaultBatteryCapacity = 100.0

// criticalPercent is the charge level below which a battery is critical.
const criticalPercent = 20.0

// Battery is a robot's power source. A battery starts fully charged.
type Battery struct {
	ID       string
	Capacity float64 // Ah
	Charge   float64 // Ah
	Status   ChargingStatus
}

// NewBattery creates a full battery. The capacity must be positive and the
// ID non-empty.
func NewBattery(id string, capacity float64) (*Battery, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("battery capacity must be positive, got %.1f", capacity)
	}
	if id == "" {
		return nil, fmt.Errorf("battery ID cannot be empty")
	}
	return &Battery{
		ID:       id,
		Capacity: capacity,
		Charge:   capacity,
		Status:   ChargingFull,
	}, nil
}

// Percent returns the charge level as a percentage of capacity.
func (b *Battery) Percent() float64 {
	return b.Charge / b.Capacity * 100
}

// Drain consumes amount Ah, never going below empty.
func (b *Battery) Drain(amount float64) {
	b.Charge -= amount
	if b.Charge < 0 {
		b.Charge = 0
	}
	if b.Percent() < criticalPercent {
		b.Status = ChargingCritical
	} else {
		b.Status = ChargingDischarging
	}
}

// Recharge fills the battery.
func (b *Battery) Recharge() {
	b.Charge = b.Capacity
	b.Status = ChargingFull
}

func (b *Battery) String() string {
	return fmt.Sprintf("%s %.1f/%.1f Ah (%s)", b.ID, b.Charge, b.Capacity, b.Status)
}
