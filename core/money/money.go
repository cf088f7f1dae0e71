package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Amounts are integer KRW throughout the application; there are no
// fractional units to model.

// ParseAmount converts a free-form amount string into integer won.
// It tolerates the shapes the recognition collaborator and manual entry
// produce: "59000", "59,000", "59,000원", "₩59,000", surrounding spaces.
func ParseAmount(s string) (int, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "₩")
	cleaned = strings.TrimSuffix(cleaned, "원")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}

	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return n, nil
}

// FormatKRW renders an integer won amount with thousands separators and the
// won suffix, e.g. 59000 -> "59,000원". Used by reports and CSV export.
func FormatKRW(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.Itoa(n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + b.String() + "원"
}
