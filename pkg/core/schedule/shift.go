package schedule

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the ISO date format used for shift dates
const DateLayout = "2006-01-02"

// LunchLength is the fixed length of a lunch break
const LunchLength = time.Hour

// RawShift is one unvalidated input row
type RawShift struct {
	EmployeeID string
	LastName   string
	FirstName  string
	Date       string
	ShiftTime  string
}

// IsBlank reports whether the row has no leading field. Such rows mark the end of the data
// or a separator and are skipped rather than reported.
func (r RawShift) IsBlank() bool {
	return strings.TrimSpace(r.EmployeeID) == ""
}

// Values returns the row fields in input order
func (r RawShift) Values() []string {
	return []string{r.EmployeeID, r.LastName, r.FirstName, r.Date, r.ShiftTime}
}

// Contact holds the phone number and role reserved for an employee
type Contact struct {
	Phone string
	Role  string
}

// Directory looks up contact details by employee id
type Directory interface {
	Lookup(employeeID string) (Contact, bool)
}

// StaticDirectory is an in-memory Directory keyed by employee id
type StaticDirectory map[string]Contact

// Lookup implements Directory
func (d StaticDirectory) Lookup(employeeID string) (Contact, bool) {
	c, ok := d[NormalizeEmployeeID(employeeID)]
	return c, ok
}

// Merge copies all entries of other into d, overwriting existing ids
func (d StaticDirectory) Merge(other StaticDirectory) {
	for id, c := range other {
		d[NormalizeEmployeeID(id)] = c
	}
}

// NormalizeEmployeeID trims whitespace and drops a trailing ".0" that spreadsheets add to
// numeric ids, so "1234", " 1234" and "1234.0" all match the same directory entry.
func NormalizeEmployeeID(id string) string {
	id = strings.TrimSpace(id)
	return strings.TrimSuffix(id, ".0")
}

// Policy is the lunch policy and directory every record is built against
type Policy struct {
	HoursForLunch float64 // A shift strictly longer than this many hours gets a lunch break
	LunchAfter    float64 // Hours after shift start that lunch begins
	Directory     Directory
}

// Validate checks that every part of the policy is present
func (p Policy) Validate() error {
	if p.Directory == nil {
		return fmt.Errorf("%w: employee directory", ErrConfigurationMissing)
	}
	if math.IsNaN(p.HoursForLunch) || p.HoursForLunch < 0 {
		return fmt.Errorf("%w: hours for lunch must be a non-negative number, got %v", ErrConfigurationMissing, p.HoursForLunch)
	}
	if math.IsNaN(p.LunchAfter) || p.LunchAfter < 0 {
		return fmt.Errorf("%w: lunch after must be a non-negative number, got %v", ErrConfigurationMissing, p.LunchAfter)
	}
	return nil
}

func hours(h float64) time.Duration {
	return time.Duration(math.Round(h * float64(time.Hour)))
}

// LunchWindow is the unpaid break inside a shift
type LunchWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ShiftRecord is a validated shift. It is never modified after construction.
type ShiftRecord struct {
	employeeID   string
	employeeName string
	date         time.Time
	shiftTime    string
	start        TimeOfDay
	end          TimeOfDay
	lunch        *LunchWindow
	total        time.Duration
	contact      *Contact
}

// NewShiftRecord validates raw and derives the lunch window, total and contact details.
//
// The lunch window is placed purely by policy arithmetic. A large LunchAfter on a short shift
// can put it partly or fully outside the shift; it is neither clamped nor rejected.
func NewShiftRecord(raw RawShift, policy Policy) (*ShiftRecord, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(raw.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateFormat, raw.Date)
	}

	start, end, err := ParseShiftTime(raw.ShiftTime)
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: %s is not after %s", ErrInvalidTimeRange, end, start)
	}

	rec := &ShiftRecord{
		employeeID:   NormalizeEmployeeID(raw.EmployeeID),
		employeeName: fmt.Sprintf("%s %s", raw.FirstName, raw.LastName),
		date:         date,
		shiftTime:    raw.ShiftTime,
		start:        start,
		end:          end,
		total:        end.Sub(start),
	}

	if end.Sub(start) > hours(policy.HoursForLunch) {
		lunchStart := start.Add(hours(policy.LunchAfter))
		rec.lunch = &LunchWindow{Start: lunchStart, End: lunchStart.Add(LunchLength)}
		rec.total -= LunchLength
	}

	if policy.Directory != nil {
		if c, ok := policy.Directory.Lookup(rec.employeeID); ok {
			rec.contact = &c
		}
	}

	return rec, nil
}

// EmployeeID returns the normalised employee id
func (s *ShiftRecord) EmployeeID() string { return s.employeeID }

// EmployeeName returns "first last"
func (s *ShiftRecord) EmployeeName() string { return s.employeeName }

// Date returns the shift date (UTC midnight)
func (s *ShiftRecord) Date() time.Time { return s.date }

// DateString returns the shift date as YYYY-MM-DD
func (s *ShiftRecord) DateString() string { return s.date.Format(DateLayout) }

// ShiftTime returns the shift time exactly as it appeared in the input
func (s *ShiftRecord) ShiftTime() string { return s.shiftTime }

// Start returns the shift start
func (s *ShiftRecord) Start() TimeOfDay { return s.start }

// End returns the shift end
func (s *ShiftRecord) End() TimeOfDay { return s.end }

// Lunch returns the lunch window, or nil when the shift is too short for one
func (s *ShiftRecord) Lunch() *LunchWindow {
	if s.lunch == nil {
		return nil
	}
	l := *s.lunch
	return &l
}

// Total returns the worked duration, excluding lunch
func (s *ShiftRecord) Total() time.Duration { return s.total }

// Contact returns the directory entry for the employee, or nil when the id is unknown
func (s *ShiftRecord) Contact() *Contact {
	if s.contact == nil {
		return nil
	}
	c := *s.contact
	return &c
}

// Phone returns the reserved phone number, or "" when unknown
func (s *ShiftRecord) Phone() string {
	if s.contact == nil {
		return ""
	}
	return s.contact.Phone
}

// Role returns the reserved role, or "" when unknown
func (s *ShiftRecord) Role() string {
	if s.contact == nil {
		return ""
	}
	return s.contact.Role
}

// RecordBuilder builds records against one policy and registers their dates
type RecordBuilder struct {
	policy Policy
	dates  *DateSet
}

// NewRecordBuilder returns a builder that adds the date of every built record to dates
func NewRecordBuilder(policy Policy, dates *DateSet) (*RecordBuilder, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if dates == nil {
		return nil, fmt.Errorf("%w: date set", ErrConfigurationMissing)
	}
	return &RecordBuilder{policy: policy, dates: dates}, nil
}

// Build creates a record from raw and registers its date
func (b *RecordBuilder) Build(raw RawShift) (*ShiftRecord, error) {
	rec, err := NewShiftRecord(raw, b.policy)
	if err != nil {
		return nil, err
	}
	b.dates.Add(rec.Date())
	return rec, nil
}

// ReadRecords builds a record for every non-blank row. Bad rows do not stop processing;
// they are returned as RowErrors alongside the records that could be built.
func ReadRecords(source string, rows []RawShift, builder *RecordBuilder) ([]*ShiftRecord, []*RowError) {
	var records []*ShiftRecord
	var failures []*RowError

	for i, row := range rows {
		if row.IsBlank() {
			continue
		}
		rec, err := builder.Build(row)
		if err != nil {
			failures = append(failures, &RowError{Source: source, Index: i, Row: row, Err: err})
			continue
		}
		records = append(records, rec)
	}

	return records, failures
}
