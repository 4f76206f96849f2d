package source

import (
	"strconv"
	"strings"
)

// numericJunk removes the accounting notation characters found in report
// cells: currency symbols, thousands separators, and parentheses.
var numericJunk = strings.NewReplacer("$", "", ",", "", "(", "", ")", "")

// CleanNumber converts a raw report cell to a float64.
//
// The rule is literal character stripping: every '$', ',', '(' and ')' is
// removed and the remainder is parsed. Parentheses are NOT treated as
// accounting negatives: "(500)" cleans to 500, not -500. Anything that
// still fails to parse becomes 0 rather than an error, so a stray "N/A"
// never aborts a report.
func CleanNumber(raw string) float64 {
	s := strings.TrimSpace(numericJunk.Replace(raw))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
