package portal

import (
	"github.com/footcare/intake/internal/domain/intake"
	"github.com/footcare/intake/internal/domain/scheduling"
)

// Overview is the staff dashboard aggregate. It is recomputed on every
// request; nothing here is cached.
type Overview struct {
	TotalPatients        int                       `json:"totalPatients"`
	TotalTriages         int                       `json:"totalTriages"`
	AvgSatisfaction      float64                   `json:"avgSatisfaction"`
	UpcomingAppointments []*scheduling.Appointment `json:"upcomingAppointments"`
	Sessions             []*intake.Session         `json:"sessions"`
	ConditionCounts      map[string]int            `json:"conditionCounts"`
}
