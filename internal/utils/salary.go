package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	negotiableMarker = "面議"
	hourlyMarker     = "時薪"
	dailyMarker      = "日薪"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// ParseMonthlySalary turns a 104 salary description into a single monthly figure.
// "月薪30,000~50,000元" gives the midpoint 40000, "40000元以上" gives 40000.
// Negotiable, hourly and daily pay, and text with zero or more than two numbers
// are reported as not parseable.
func ParseMonthlySalary(salaryText string) (float64, bool) {
	if strings.Contains(salaryText, negotiableMarker) {
		return 0, false
	}
	if strings.Contains(salaryText, hourlyMarker) || strings.Contains(salaryText, dailyMarker) {
		return 0, false
	}

	clean := strings.ReplaceAll(salaryText, ",", "")
	numbers := digitRun.FindAllString(clean, -1)

	switch len(numbers) {
	case 1:
		return parseDigits(numbers[0])
	case 2:
		low, ok := parseDigits(numbers[0])
		if !ok {
			return 0, false
		}
		high, ok := parseDigits(numbers[1])
		if !ok {
			return 0, false
		}
		return (low + high) / 2, true
	default:
		return 0, false
	}
}

// SalaryEstimate wraps ParseMonthlySalary for the optional field on models.Listing
func SalaryEstimate(salaryText string) *float64 {
	value, ok := ParseMonthlySalary(salaryText)
	if !ok {
		return nil
	}
	return &value
}

func parseDigits(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatSalary formats a monthly figure with thousands separators, e.g. "40,000 元"
func FormatSalary(value float64) string {
	return humanize.Comma(int64(value)) + " 元"
}

// FormatOptionalSalary renders a possibly missing estimate
func FormatOptionalSalary(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return FormatSalary(*value)
}
