package schedule

// Activity is what an employee is doing during a slot
type Activity int

const (
	ActivityFree Activity = iota
	ActivityWork
	ActivityLunch
)

const (
	LabelFree  = "FREE"
	LabelLunch = "Lunch"
)

func (a Activity) String() string {
	switch a {
	case ActivityWork:
		return "work"
	case ActivityLunch:
		return "lunch"
	default:
		return "free"
	}
}

// SlotStatus is one cell of a schedule row
type SlotStatus struct {
	Activity Activity
	Role     string // Set for ActivityWork; empty when the employee has no reserved role
}

// Label returns the text shown in the cell
func (s SlotStatus) Label() string {
	switch s.Activity {
	case ActivityLunch:
		return LabelLunch
	case ActivityWork:
		return s.Role
	default:
		return LabelFree
	}
}

// MapSlots returns the status of rec at every probe instant, in the same order.
//
// Lunch wins over work: a probe p is lunch when lunchStart-1h < p <= lunchStart,
// otherwise work when start <= p < end, otherwise free.
func MapSlots(rec *ShiftRecord, probes []TimeOfDay) []SlotStatus {
	statuses := make([]SlotStatus, len(probes))
	lunch := rec.Lunch()

	for i, p := range probes {
		switch {
		case lunch != nil && !p.After(lunch.Start) && p.After(lunch.Start.Add(-LunchLength)):
			statuses[i] = SlotStatus{Activity: ActivityLunch}
		case !p.Before(rec.Start()) && p.Before(rec.End()):
			statuses[i] = SlotStatus{Activity: ActivityWork, Role: rec.Role()}
		default:
			statuses[i] = SlotStatus{Activity: ActivityFree}
		}
	}

	return statuses
}
