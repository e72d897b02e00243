package model

import "fmt"

// VehicleClass distinguishes ground trucks from drones. The class drives
// edge eligibility and the weather blocking rule.
type VehicleClass int

const (
	ClassTruck VehicleClass = iota
	ClassDrone
)

func (c VehicleClass) String() string {
	switch c {
	case ClassTruck:
		return "truck"
	case ClassDrone:
		return "drone"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// CanUse reports whether the class may traverse a road type. Drones may
// use every road; trucks are banned from airspace.
func (c VehicleClass) CanUse(roadType int) bool {
	return c == ClassDrone || roadType != RoadAirspace
}

// Vehicle is one member of the fleet. Node and Step form the cursor: the
// position the vehicle has committed to so far. Path grows monotonically
// in time and never exceeds the horizon during planning.
type Vehicle struct {
	ID    string
	Class VehicleClass
	Node  NodeID
	Step  int
	Path  []NodeID

	// Running totals for reporting.
	TravelCost float64
	Points     float64
	Served     int
}

// NewFleet creates the conventional fleet of trucks and drones, all
// starting at the same node at step zero. IDs follow the truck1..truckN,
// drone1..droneM convention of the surrounding system.
func NewFleet(trucks, drones int, start NodeID) []*Vehicle {
	fleet := make([]*Vehicle, 0, trucks+drones)
	for i := 1; i <= trucks; i++ {
		fleet = append(fleet, &Vehicle{
			ID:    fmt.Sprintf("truck%d", i),
			Class: ClassTruck,
			Node:  start,
			Path:  []NodeID{start},
		})
	}
	for i := 1; i <= drones; i++ {
		fleet = append(fleet, &Vehicle{
			ID:    fmt.Sprintf("drone%d", i),
			Class: ClassDrone,
			Node:  start,
			Path:  []NodeID{start},
		})
	}
	return fleet
}
