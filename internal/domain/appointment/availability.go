package appointment

// Default booking grid used when no schedule rows exist for the
// requested scope: 09:00 through 19:00 inclusive, 30-minute step.
const (
	GridStart   = "09:00"
	GridEnd     = "19:00"
	GridStepMin = 30
)

type AvailabilityInput struct {
	// Date is "YYYY-MM-DD".
	Date string
	// BarberID is optional; empty means "any active barber".
	BarberID string
}
