package appointment

import (
	"context"

	domain "github.com/gabrielcaixeta01/barber-agenda/internal/domain/appointment"
	"github.com/gabrielcaixeta01/barber-agenda/internal/dto"
	"github.com/gabrielcaixeta01/barber-agenda/internal/timezone"
)

// GetAdminStats feeds the dashboard header: active appointments today,
// active appointments over the coming week, active barbers.
type GetAdminStats struct {
	repo domain.Repository
}

func NewGetAdminStats(repo domain.Repository) *GetAdminStats {
	return &GetAdminStats{repo: repo}
}

func (uc *GetAdminStats) Execute(
	ctx context.Context,
) (*dto.AdminStatsDTO, error) {

	today := timezone.TodayISO()
	weekEnd, err := timezone.AddDaysISO(today, 6)
	if err != nil {
		return nil, err
	}

	active := string(domain.StatusActive)

	todayCount, err := uc.repo.CountAppointments(ctx, today, today, active)
	if err != nil {
		return nil, err
	}

	weekCount, err := uc.repo.CountAppointments(ctx, today, weekEnd, active)
	if err != nil {
		return nil, err
	}

	barbers, err := uc.repo.CountActiveBarbers(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsDTO{
		AppointmentsToday: todayCount,
		AppointmentsWeek:  weekCount,
		ActiveBarbers:     barbers,
	}, nil
}
