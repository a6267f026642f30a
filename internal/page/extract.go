package page

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ExtractIntegers applies re to each text and returns the matched integers in
// input order. The first capture group is used when re has one, otherwise the
// whole match. Thousands separators are stripped. Texts that do not match, or
// whose match is not a number, are skipped.
func ExtractIntegers(re *regexp.Regexp, texts []string) []int {
	values := make([]int, 0, len(texts))
	for _, text := range texts {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := m[0]
		if len(m) > 1 {
			raw = m[1]
		}
		n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""))
		if err != nil {
			continue
		}
		values = append(values, n)
	}
	return values
}

// ExtractDates parses each trimmed text with a time layout such as
// "Updated January 2, 2006" and returns the dates in input order. Texts that
// do not parse are skipped.
func ExtractDates(layout string, texts []string) []time.Time {
	dates := make([]time.Time, 0, len(texts))
	for _, text := range texts {
		d, err := time.Parse(layout, strings.TrimSpace(text))
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}
