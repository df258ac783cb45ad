package textnorm

import (
	"regexp"
	"strconv"
	"strings"
)

// number with optional currency symbol or short currency code around it ("₺1.299,90", "159.00 USD").
var decimalPattern = regexp.MustCompile(
	`^(?:(?:\p{Sc}|\p{L}{1,3})\s*(\d[\d.,' ]*)|([-+]?\d[\d.,' ]*))\s*(?:\p{Sc}|\p{L}{1,3})?$`,
)

// ParseDecimal parses decimal number written with either comma or dot as decimal separator.
// When both are present the last one is the decimal separator and the other one groups thousands.
// A separator repeated more than once is treated as thousands grouping.
func ParseDecimal(s string) (float64, bool) {
	match := decimalPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return 0, false
	}

	num := match[1]
	if num == "" {
		num = match[2]
	}
	num = strings.NewReplacer(" ", "", "'", "").Replace(num)
	lastComma := strings.LastIndex(num, ",")
	lastDot := strings.LastIndex(num, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			num = strings.ReplaceAll(num, ".", "")
			num = strings.Replace(num, ",", ".", 1)
		} else {
			num = strings.ReplaceAll(num, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(num, ",") > 1 {
			num = strings.ReplaceAll(num, ",", "")
		} else {
			num = strings.Replace(num, ",", ".", 1)
		}
	case lastDot >= 0:
		if strings.Count(num, ".") > 1 {
			num = strings.ReplaceAll(num, ".", "")
		}
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// IsNumeric reports whether s parses as decimal number.
func IsNumeric(s string) bool {
	_, ok := ParseDecimal(s)
	return ok
}
