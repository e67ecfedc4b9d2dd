package domain

// PaymentAggregate is the count and sums over a set of payments.
// Total sums Amount; Collected sums AmountPaid.
type PaymentAggregate struct {
	Count         int
	VerifiedCount int
	Total         float64
	Collected     float64
}

// FeeStatistics summarises payments made against one fee.
type FeeStatistics struct {
	FeeID          int64
	FeeName        string
	FeeAmount      float64
	TotalPayments  int
	TotalCollected float64
}

// HouseholdStatistics summarises payments made by one household.
type HouseholdStatistics struct {
	HouseholdID        int64
	TotalPayments      int
	TotalPaid          float64
	VerifiedCount      int
	VerifiedPercentage float64
}

// LedgerSummary is the administrative dashboard snapshot.
type LedgerSummary struct {
	ActiveHouseholds   int
	ActiveFees         int
	OverdueFees        int
	UnverifiedPayments int
	MonthTotal         float64
	UnreadNotices      int
}
