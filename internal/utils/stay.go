package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeExpired is the sentinel returned by FormatRemaining once the
// payment deadline has passed but before reconciliation has persisted
// the cancellation.
const TimeExpired = "Expired"

// Nights returns the number of nights between check-in and check-out,
// computed as the ceiling of the elapsed time divided by 24 hours so a
// partial final day still counts as a night. Returns 0 when check-out
// is not after check-in.
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff <= 0 {
		return 0
	}
	nights := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// TotalPrice returns nights x nightly rate for the given stay. The
// result is snapshotted onto the booking at creation and never
// recomputed afterwards.
func TotalPrice(checkIn, checkOut time.Time, pricePerNight int64) int64 {
	return int64(Nights(checkIn, checkOut)) * pricePerNight
}

// FormatRemaining renders a countdown as whole hours and minutes, e.g.
// "3h 12m". Negative or zero durations render as the expired sentinel.
// The value is always recomputed from stored timestamps by the caller,
// never ticked down in memory, so calling on any schedule is safe.
func FormatRemaining(remaining time.Duration) string {
	if remaining <= 0 {
		return TimeExpired
	}
	hours := int(remaining / time.Hour)
	minutes := int(remaining%time.Hour) / int(time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FormatRupiah renders a rupiah amount with dot thousand separators,
// e.g. "Rp 1.000.000".
func FormatRupiah(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "Rp " + strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^(\+62|62|0)[0-9]{9,12}$`)
)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidPhone reports whether s is an Indonesian phone number. Spaces
// and dashes are ignored.
func ValidPhone(s string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(s)
	return phoneRe.MatchString(cleaned)
}
