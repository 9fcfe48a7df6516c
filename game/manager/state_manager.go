package manager

import (
	"time"
)

// SessionStats is a snapshot of the counters kept for the current run.
// Nothing here is written to disk.
type SessionStats struct {
	StartTime  time.Time
	Ticks      int
	FoodEaten  int
	Resets     int
	BestLength int
}

// Duration returns how long the session has been running at now.
func (s SessionStats) Duration(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}

type StateManager struct {
	stats SessionStats
}

func NewStateManager(start time.Time) *StateManager {
	return &StateManager{
		stats: SessionStats{
			StartTime:  start,
			BestLength: 1,
		},
	}
}

func (sm *StateManager) RecordTick() {
	sm.stats.Ticks++
}

func (sm *StateManager) RecordFood(length int) {
	sm.stats.FoodEaten++
	sm.UpdateLength(length)
}

func (sm *StateManager) RecordReset() {
	sm.stats.Resets++
}

func (sm *StateManager) UpdateLength(length int) {
	if length > sm.stats.BestLength {
		sm.stats.BestLength = length
	}
}

func (sm *StateManager) Stats() SessionStats {
	return sm.stats
}
