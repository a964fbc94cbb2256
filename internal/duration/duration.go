// internal/duration/duration.go
package duration

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/modgarage/garage-backend/internal/models"
)

// HoursPerDay converts between day-unit and hour-unit installation
// estimates. Estimates are shop labor, so a "day" is one working day. The
// same constant is used in both directions (parsing and formatting).
const HoursPerDay = 8.0

// DefaultHours is the per-item fallback for unparsable duration specs.
const DefaultHours = 1.0

// ErrInvalidSpec reports a duration string that did not match any known
// shape. Callers still get the fallback value; the error is informational.
var ErrInvalidSpec = fmt.Errorf("invalid installation duration spec")

var (
	hourPattern  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*hours?$`)
	rangePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)\s*hours?$`)
	dayPattern   = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*days?$`)
	openPattern  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\+\s*hours?$`)
)

// ParseToHours converts a free-form installation duration spec into hours.
// Supported shapes: "3 hours", "2-3 hours", "1 day", "6+ hours". A range
// parses to its midpoint; an open-ended spec to its lower bound. Unparsable
// input never fails: it logs a data-quality warning and returns the 1-hour
// default together with ErrInvalidSpec.
func ParseToHours(spec string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(spec))

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		lo, _ := strconv.ParseFloat(m[1], 64)
		hi, _ := strconv.ParseFloat(m[2], 64)
		return (lo + hi) / 2, nil
	}

	if m := hourPattern.FindStringSubmatch(s); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return n, nil
	}

	if m := openPattern.FindStringSubmatch(s); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return n, nil
	}

	if m := dayPattern.FindStringSubmatch(s); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return n * HoursPerDay, nil
	}

	logrus.WithField("spec", spec).Warn("Unparsable installation duration, falling back to 1 hour")
	return DefaultHours, ErrInvalidSpec
}

// SumHours aggregates the installation estimates of all cart items.
// SumHours(nil) == 0.
func SumHours(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		hours, _ := ParseToHours(item.InstallationDuration)
		total += hours
	}
	return total
}

// FormatHours renders an aggregated hour total for display. Totals under a
// working day render as hours; larger totals as working days plus a
// remainder. Display values round half-up to whole hours; the caller keeps
// the unrounded total for further aggregation.
func FormatHours(total float64) string {
	if total < HoursPerDay {
		return pluralize(roundHalfUp(total), "hour")
	}

	days := int(math.Floor(total / HoursPerDay))
	remainder := roundHalfUp(math.Mod(total, HoursPerDay))
	if remainder == int(HoursPerDay) {
		// rounding carried the remainder into a full day
		days++
		remainder = 0
	}
	if remainder == 0 {
		return pluralize(days, "day")
	}
	return pluralize(days, "day") + " " + pluralize(remainder, "hour")
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
