package portal

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/footcare/intake/internal/domain/intake"
	"github.com/footcare/intake/internal/domain/scheduling"
	"github.com/footcare/intake/internal/domain/survey"
)

// maxUpcoming caps the appointments shown on the dashboard.
const maxUpcoming = 20

type Service struct {
	sessions     intake.SessionRepository
	triages      intake.TriageRepository
	appointments scheduling.AppointmentRepository
	surveys      survey.ResponseRepository
	now          func() time.Time
	logger       zerolog.Logger
}

func NewService(
	sessions intake.SessionRepository,
	triages intake.TriageRepository,
	appointments scheduling.AppointmentRepository,
	surveys survey.ResponseRepository,
	logger zerolog.Logger,
) *Service {
	return &Service{
		sessions:     sessions,
		triages:      triages,
		appointments: appointments,
		surveys:      surveys,
		now:          time.Now,
		logger:       logger,
	}
}

// Overview assembles the staff dashboard from the live repositories.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	totalPatients, err := s.sessions.CountPatients(ctx)
	if err != nil {
		return nil, err
	}
	triages, err := s.triages.List(ctx)
	if err != nil {
		return nil, err
	}
	appts, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	responses, err := s.surveys.List(ctx)
	if err != nil {
		return nil, err
	}

	avg := 0.0
	if len(responses) > 0 {
		sum := 0
		for _, r := range responses {
			sum += r.Rating
		}
		avg = float64(sum) / float64(len(responses))
	}

	now := s.now()
	upcoming := make([]*scheduling.Appointment, 0)
	for _, a := range appts {
		start, err := scheduling.ParseISO(a.StartISO)
		if err != nil {
			s.logger.Warn().Str("appointment_id", a.ID).Str("start_iso", a.StartISO).Msg("skipping appointment with unparseable start")
			continue
		}
		if !start.Before(now) {
			upcoming = append(upcoming, a)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartISO < upcoming[j].StartISO
	})
	if len(upcoming) > maxUpcoming {
		upcoming = upcoming[:maxUpcoming]
	}

	counts := make(map[string]int)
	for _, t := range triages {
		if len(t.Diagnosis.Likelihoods) == 0 {
			continue
		}
		counts[t.Diagnosis.Likelihoods[0].Condition]++
	}

	if sessions == nil {
		sessions = make([]*intake.Session, 0)
	}
	return &Overview{
		TotalPatients:        totalPatients,
		TotalTriages:         len(triages),
		AvgSatisfaction:      avg,
		UpcomingAppointments: upcoming,
		Sessions:             sessions,
		ConditionCounts:      counts,
	}, nil
}
