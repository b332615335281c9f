package alarm

import "sync"

// ActiveAlarms tracks currently raised alarms, deduplicated by message.
type ActiveAlarms struct {
	alarms []string
	sync.RWMutex
}

// Add raises an alarm and returns true if it was not already active.
func (a *ActiveAlarms) Add(alarm string) bool {
	a.Lock()
	defer a.Unlock()
	for _, active := range a.alarms {
		if active == alarm {
			return false
		}
	}
	a.alarms = append(a.alarms, alarm)
	return true
}

// Clear drops all active alarms and returns true if any were active.
func (a *ActiveAlarms) Clear() bool {
	a.Lock()
	defer a.Unlock()
	if len(a.alarms) == 0 {
		return false
	}
	a.alarms = nil
	return true
}

// Active returns a copy of the current alarm list.
func (a *ActiveAlarms) Active() []string {
	a.RLock()
	defer a.RUnlock()
	return append([]string(nil), a.alarms...)
}
