package store

import (
	"time"

	"github.com/frdeange/apitoolsnetworking/internal/models"
	"github.com/frdeange/apitoolsnetworking/internal/utils"
)

// MaintenanceSchedule answers "windows active at an instant" or "all windows".
type MaintenanceSchedule struct {
	windows []models.MaintenanceWindow
}

// NewMaintenanceSchedule builds a schedule over the supplied windows,
// preserving their order.
func NewMaintenanceSchedule(windows []models.MaintenanceWindow) *MaintenanceSchedule {
	return &MaintenanceSchedule{windows: append([]models.MaintenanceWindow(nil), windows...)}
}

// Windows returns maintenance windows. When activeOnly is set, only windows
// whose [start, end] contains the evaluation instant are returned; otherwise
// every window is.
func (s *MaintenanceSchedule) Windows(at time.Time, activeOnly bool) []models.MaintenanceWindow {
	matched := make([]models.MaintenanceWindow, 0, len(s.windows))
	for _, w := range s.windows {
		if activeOnly && !utils.Within(at, w.ScheduledStart, w.ScheduledEnd) {
			continue
		}
		matched = append(matched, w)
	}
	return matched
}

// Len reports the number of windows in the schedule.
func (s *MaintenanceSchedule) Len() int { return len(s.windows) }
