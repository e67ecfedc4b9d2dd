package domain

import "time"

// DateOf truncates t to a calendar date at UTC midnight, keeping t's local
// year, month and day. All ledger dates (due dates, payment dates) are stored
// in this form.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Validate checks that both ends are set and ordered.
func (r DateRange) Validate() error {
	var errs []FieldError
	if r.Start.IsZero() {
		errs = append(errs, FieldError{Field: "start", Message: "required"})
	}
	if r.End.IsZero() {
		errs = append(errs, FieldError{Field: "end", Message: "required"})
	}
	if len(errs) == 0 && DateOf(r.End).Before(DateOf(r.Start)) {
		errs = append(errs, FieldError{Field: "end", Message: "must not be before start"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Normalize returns the range with both ends truncated to dates.
func (r DateRange) Normalize() DateRange {
	return DateRange{Start: DateOf(r.Start), End: DateOf(r.End)}
}
