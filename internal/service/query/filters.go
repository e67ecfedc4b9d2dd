package query

import (
	"strings"
	"time"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

const maxLimit = 1000

// PaymentQuery selects payments. Start and End bound the payment date, both
// inclusive; either may be open.
type PaymentQuery struct {
	HouseholdID *int64
	FeeID       *int64
	Start       *time.Time
	End         *time.Time
	Verified    *bool
	FeeType     *domain.FeeType
	Newest      bool
	Limit       int
}

// Filter validates q and translates it into a payment filter.
func (q PaymentQuery) Filter() (domain.PaymentFilter, error) {
	var errs []domain.FieldError

	if q.HouseholdID != nil && *q.HouseholdID <= 0 {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "must be positive"})
	}
	if q.FeeID != nil && *q.FeeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "fee_id", Message: "must be positive"})
	}
	if q.FeeType != nil && !q.FeeType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "fee_type", Message: "must be MANDATORY or VOLUNTARY"})
	}
	errs = append(errs, rangeErrors(q.Start, q.End)...)
	if q.Limit < 0 || q.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 1000"})
	}
	if len(errs) > 0 {
		return domain.PaymentFilter{}, domain.NewValidationErrors(errs)
	}

	return domain.PaymentFilter{
		HouseholdID: q.HouseholdID,
		FeeID:       q.FeeID,
		From:        dateOrNil(q.Start),
		To:          dateOrNil(q.End),
		Verified:    q.Verified,
		FeeType:     q.FeeType,
		OrderNewest: q.Newest,
		Limit:       q.Limit,
	}, nil
}

// FeeQuery selects fees. Overdue restricts to fees due strictly before today
// and implies active fees only.
type FeeQuery struct {
	Type     *domain.FeeType
	DueStart *time.Time
	DueEnd   *time.Time
	Overdue  bool
	ShowAll  bool
}

// Filter validates q and translates it into a fee filter relative to today.
func (q FeeQuery) Filter(today time.Time) (domain.FeeFilter, error) {
	var errs []domain.FieldError

	if q.Type != nil && !q.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be MANDATORY or VOLUNTARY"})
	}
	errs = append(errs, rangeErrors(q.DueStart, q.DueEnd)...)
	if len(errs) > 0 {
		return domain.FeeFilter{}, domain.NewValidationErrors(errs)
	}

	filter := domain.FeeFilter{
		Type:       q.Type,
		DueFrom:    dateOrNil(q.DueStart),
		DueTo:      dateOrNil(q.DueEnd),
		ActiveOnly: !q.ShowAll,
	}
	if q.Overdue {
		d := domain.DateOf(today)
		filter.DueBefore = &d
		filter.ActiveOnly = true
	}
	return filter, nil
}

// HouseholdQuery selects households by case-insensitive substring match.
type HouseholdQuery struct {
	OwnerName *string
	Address   *string
	ShowAll   bool
}

// Filter translates q into a household filter. Blank criteria are dropped.
// Owner name takes precedence over address. A search by either criterion
// includes inactive households; ShowAll only applies to the unfiltered list.
func (q HouseholdQuery) Filter() domain.HouseholdFilter {
	if name := trimmedOrNil(q.OwnerName); name != nil {
		return domain.HouseholdFilter{OwnerName: name}
	}
	if addr := trimmedOrNil(q.Address); addr != nil {
		return domain.HouseholdFilter{Address: addr}
	}
	return domain.HouseholdFilter{ActiveOnly: !q.ShowAll}
}

func rangeErrors(start, end *time.Time) []domain.FieldError {
	if start != nil && end != nil && domain.DateOf(*end).Before(domain.DateOf(*start)) {
		return []domain.FieldError{{Field: "end", Message: "must not be before start"}}
	}
	return nil
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.DateOf(*t)
	return &d
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
