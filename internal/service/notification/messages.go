package notification

import (
	"fmt"
	"strconv"

	"github.com/heartmarshall/bluemoon-fees/internal/domain"
)

// FeeCreated builds the notification announcing a new fee.
func FeeCreated(f domain.Fee) domain.Notification {
	name := f.Name
	if name == "" {
		name = "Unknown"
	}
	amount := "N/A"
	if f.Amount > 0 {
		amount = formatAmount(f.Amount)
	}
	return domain.Notification{
		Title:      "New Fee Created",
		Message:    fmt.Sprintf("A new fee '%s' has been created with amount %s", name, amount),
		EntityType: domain.EntityTypeFee,
		EntityID:   f.ID,
	}
}

// HouseholdCreated builds the notification announcing a new household.
func HouseholdCreated(h domain.Household) domain.Notification {
	return domain.Notification{
		Title:      "New Household Added",
		Message:    fmt.Sprintf("A new household '%s' has been added", h.DisplayName()),
		EntityType: domain.EntityTypeHousehold,
		EntityID:   h.ID,
	}
}

// PaymentReceived builds the notification announcing a new payment. h may be
// nil when the household could not be resolved.
func PaymentReceived(p domain.Payment, h *domain.Household) domain.Notification {
	household := "unknown"
	switch {
	case h != nil && h.OwnerName != "":
		household = h.OwnerName
	case h != nil:
		household = "ID: " + strconv.FormatInt(h.ID, 10)
	}
	return domain.Notification{
		Title:      "New Payment Received",
		Message:    fmt.Sprintf("A new payment of %s has been received for household %s", formatAmount(p.Amount), household),
		EntityType: domain.EntityTypePayment,
		EntityID:   p.ID,
	}
}

func formatAmount(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}
