package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Templates names the messaging templates used for each kind of notification.
type Templates struct {
	Inbound      string
	Outbound     string
	AdminSummary string
}

// DefaultTemplates are used when configuration leaves a template name empty.
var DefaultTemplates = Templates{
	Inbound:      "inbound-transaction",
	Outbound:     "outbound-transaction",
	AdminSummary: "daily-admin-summary",
}

// For returns the template for an entry's direction.
func (t Templates) For(direction Direction) string {
	if direction == DirectionOut {
		return t.Outbound
	}
	return t.Inbound
}

// FormatAmount renders an amount with exactly two fractional digits.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(AmountScale)
}

// EntryNotificationParams are the positional template parameters for an entry:
// name, created date, amount.
func EntryNotificationParams(entry *LedgerEntry, loc *time.Location) []string {
	return []string{
		entry.Name,
		FormatDisplayDate(entry.CreatedAt, loc),
		FormatAmount(entry.Amount),
	}
}

// SummaryNotificationParams are the positional parameters of the admin summary:
// label, date, in, out, net.
func SummaryNotificationParams(label string, totals WindowTotals, loc *time.Location) []string {
	return []string{
		label,
		FormatDisplayDate(totals.From, loc),
		FormatAmount(totals.InAmount),
		FormatAmount(totals.OutAmount),
		FormatAmount(totals.Net()),
	}
}

// DailySummaryResult describes one run of the daily admin summary.
type DailySummaryResult struct {
	Totals     WindowTotals
	Skipped    bool
	Recipients int
	Delivered  int
	Failed     int
}
