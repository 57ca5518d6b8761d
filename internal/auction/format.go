package auction

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// Unavailable is shown for a missing amount.
	Unavailable = "לא זמין"

	// Ended is shown instead of a countdown once an auction closes.
	Ended = "הסתיים"

	currencySign = "₪"

	urgentWindow = 24 * time.Hour
)

// FormatCurrency renders an amount in shekels with Hebrew digit grouping,
// e.g. "1,580 ₪".
func FormatCurrency(amount *float64) string {
	if amount == nil {
		return Unavailable
	}
	p := message.NewPrinter(language.Hebrew)
	return p.Sprintf("%v %s", number.Decimal(*amount, number.MaxFractionDigits(3)), currencySign)
}

// FormatTimeRemaining renders the countdown to end in Hebrew, showing the
// two most significant units.
func FormatTimeRemaining(end, now time.Time) string {
	d := end.Sub(now)
	if d <= 0 {
		return Ended
	}

	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	seconds := int(d % time.Minute / time.Second)

	switch {
	case days > 0:
		return withRemainder(fmt.Sprintf("%d ימים", days), hours, "שעות")
	case hours > 0:
		return withRemainder(fmt.Sprintf("%d שעות", hours), minutes, "דקות")
	case minutes > 0:
		return withRemainder(fmt.Sprintf("%d דקות", minutes), seconds, "שניות")
	default:
		return fmt.Sprintf("%d שניות", seconds)
	}
}

func withRemainder(head string, n int, unit string) string {
	if n == 0 {
		return head
	}
	return fmt.Sprintf("%s ו-%d %s", head, n, unit)
}

// IsUrgent reports whether an auction ends within the next 24 hours.
func IsUrgent(end, now time.Time) bool {
	d := end.Sub(now)
	return d > 0 && d <= urgentWindow
}

// PhaseAt returns the phase of an auction ending at end, as of now.
func PhaseAt(end, now time.Time) BidPhase {
	if end.After(now) {
		return PhaseActive
	}
	return PhaseEnded
}
