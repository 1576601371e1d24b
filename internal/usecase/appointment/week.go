package appointment

import (
	"context"
	"sort"

	domain "github.com/gabrielcaixeta01/barber-agenda/internal/domain/appointment"
	"github.com/gabrielcaixeta01/barber-agenda/internal/dto"
	"github.com/gabrielcaixeta01/barber-agenda/internal/timezone"
)

// GetWeekAgenda returns the seven-day grid starting today plus a
// per-service appointment count. The grid carries every status so the
// admin sees cancellations in place; the summary counts only
// appointments still on the books.
type GetWeekAgenda struct {
	repo domain.Repository
}

func NewGetWeekAgenda(repo domain.Repository) *GetWeekAgenda {
	return &GetWeekAgenda{repo: repo}
}

func (uc *GetWeekAgenda) Execute(
	ctx context.Context,
) (*dto.WeekAgendaDTO, error) {

	today := timezone.TodayISO()
	weekEnd, err := timezone.AddDaysISO(today, 6)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		DateFrom: today,
		DateTo:   weekEnd,
		Today:    today,
	})
	if err != nil {
		return nil, err
	}

	rows := toListDTOs(appointments)

	counts := make(map[string]int)
	for _, row := range rows {
		if row.Status == string(domain.StatusCancelled) {
			continue
		}
		name := "unknown service"
		if row.Service != nil {
			name = row.Service.Name
		}
		counts[name]++
	}

	summary := make([]dto.ServiceSummaryDTO, 0, len(counts))
	for name, count := range counts {
		summary = append(summary, dto.ServiceSummaryDTO{
			Name:  name,
			Count: count,
		})
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Count != summary[j].Count {
			return summary[i].Count > summary[j].Count
		}
		return summary[i].Name < summary[j].Name
	})

	return &dto.WeekAgendaDTO{
		WeekStart:         today,
		WeekEnd:           weekEnd,
		TotalAppointments: len(rows),
		Appointments:      rows,
		ServicesSummary:   summary,
	}, nil
}
