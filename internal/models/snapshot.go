package models

import "time"

// Snapshot is one consistent view of the business data. The engine only
// reads it; all mutation happens in whatever produced the snapshot.
type Snapshot struct {
	Ingredients []*Ingredient        `json:"ingredients"`
	Menus       []*Menu              `json:"menus"`
	Overheads   []*Overhead          `json:"overheads"`
	Settings    Settings             `json:"settings"`
	Scenarios   []SimulationScenario `json:"scenarios"`
	TakenAt     time.Time            `json:"taken_at"`
}
