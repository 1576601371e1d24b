package appointment

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	domain "github.com/gabrielcaixeta01/barber-agenda/internal/domain/appointment"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
	"github.com/gabrielcaixeta01/barber-agenda/internal/timezone"
	"github.com/gabrielcaixeta01/barber-agenda/internal/validators"
)

// GetAvailability produces the ordered "HH:MM" slot candidates for a
// date and, optionally, a barber.
//
// Slots come from the barber_schedules rows matching the date's
// day-of-week, at a 30-minute step, minus times already occupied by a
// non-cancelled appointment for that barber. With no barber filter a
// slot is offered when at least one active barber is free on it. When
// no schedule rows exist for the requested scope the calculator falls
// back to the full 09:00–19:00 grid, end inclusive, with no occupancy
// check; that grid is the behavior the booking flow originally shipped
// with.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	date, err := validators.MustDate(in.Date, "date")
	if err != nil {
		return nil, err
	}

	weekday, err := timezone.WeekdayOf(date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	barberID := validators.OptionalString(in.BarberID)
	if barberID != "" {
		barber, err := uc.repo.GetBarber(ctx, barberID)
		if err != nil {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		if !barber.Active {
			return []string{}, nil
		}
	}

	schedules, err := uc.repo.ListSchedulesForDay(ctx, weekday, barberID)
	if err != nil {
		return nil, err
	}

	if barberID == "" {
		active, err := uc.repo.ListActiveBarbers(ctx)
		if err != nil {
			return nil, err
		}
		schedules = keepActiveBarbers(schedules, active)
	}

	if len(schedules) == 0 {
		return staticGrid(), nil
	}

	booked, err := uc.repo.ListBookedAppointments(ctx, date, barberID)
	if err != nil {
		return nil, err
	}
	bookedByBarber := groupBookedTimes(booked)

	free := make(map[string]bool)
	for _, sched := range schedules {
		for _, slot := range windowSlots(sched.StartTime, sched.EndTime, domain.GridStepMin) {
			if !bookedByBarber[sched.BarberID][slot] {
				free[slot] = true
			}
		}
	}

	slots := make([]string, 0, len(free))
	for slot := range free {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots, nil
}

// --------------------------------------------------
// Slot arithmetic
// --------------------------------------------------

// windowSlots walks a schedule window at the given step. A slot fits
// when it starts at or after the window start and its full step still
// ends within the window.
func windowSlots(start, end string, stepMin int) []string {
	startMin, ok1 := hmToMinutes(start)
	endMin, ok2 := hmToMinutes(end)
	if !ok1 || !ok2 {
		return nil
	}

	var slots []string
	for cur := startMin; cur+stepMin <= endMin; cur += stepMin {
		slots = append(slots, minutesToHM(cur))
	}
	return slots
}

// staticGrid is the fixed fallback: 09:00 through 19:00 inclusive.
func staticGrid() []string {
	startMin, _ := hmToMinutes(domain.GridStart)
	endMin, _ := hmToMinutes(domain.GridEnd)

	var slots []string
	for cur := startMin; cur <= endMin; cur += domain.GridStepMin {
		slots = append(slots, minutesToHM(cur))
	}
	return slots
}

func hmToMinutes(hm string) (int, bool) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return h*60 + m, true
}

func minutesToHM(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

func keepActiveBarbers(
	schedules []models.BarberSchedule,
	active []models.Barber,
) []models.BarberSchedule {

	activeIDs := make(map[string]bool, len(active))
	for _, b := range active {
		activeIDs[b.ID] = true
	}

	kept := schedules[:0]
	for _, s := range schedules {
		if activeIDs[s.BarberID] {
			kept = append(kept, s)
		}
	}
	return kept
}

// groupBookedTimes indexes occupied "HH:MM" values per barber.
// Unassigned appointments hold no barber's chair and are skipped.
func groupBookedTimes(booked []models.Appointment) map[string]map[string]bool {
	out := make(map[string]map[string]bool)
	for _, ap := range booked {
		if ap.BarberID == nil {
			continue
		}
		hm := ap.AppointmentTime
		if len(hm) > 5 {
			hm = hm[:5]
		}
		if out[*ap.BarberID] == nil {
			out[*ap.BarberID] = make(map[string]bool)
		}
		out[*ap.BarberID][hm] = true
	}
	return out
}
