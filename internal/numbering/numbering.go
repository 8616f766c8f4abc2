// Package numbering derives sequential invoice numbers from the numbers already issued.
package numbering

import (
	"regexp"
	"strconv"
	"strings"
)

// Next is a composed invoice number together with its numeric part.
type Next struct {
	InvoiceNumber string `json:"invoice_number"`
	Number        int64  `json:"number"`
	Prefix        string `json:"prefix"`
}

// ExtractSuffix returns the numeric suffix of invoiceNumber under prefix.
//
// The prefix is matched literally (regex metacharacters are escaped) and must be
// followed by one or more digits up to the end of the string. When that fails the
// prefix is stripped and the remainder parsed as a plain integer. ok is false when
// neither yields a non-negative number.
func ExtractSuffix(prefix, invoiceNumber string) (n int64, ok bool) {
	re := suffixPattern(prefix)
	if m := re.FindStringSubmatch(invoiceNumber); m != nil {
		if v, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return v, true
		}
	}

	if !strings.HasPrefix(invoiceNumber, prefix) {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(invoiceNumber, prefix)), 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Highest returns the largest numeric suffix among candidates. Candidates that do
// not carry a usable suffix are skipped.
func Highest(prefix string, candidates []string) (int64, bool) {
	var (
		best  int64
		found bool
	)
	for _, c := range candidates {
		n, ok := ExtractSuffix(prefix, c)
		if !ok {
			continue
		}
		if !found || n > best {
			best, found = n, true
		}
	}
	return best, found
}

// Compute returns the number following the highest existing suffix, or start when
// nothing under prefix qualifies.
func Compute(prefix string, start int64, existing []string) Next {
	number := start
	if highest, ok := Highest(prefix, existing); ok {
		number = highest + 1
	}
	return Next{
		InvoiceNumber: prefix + strconv.FormatInt(number, 10),
		Number:        number,
		Prefix:        prefix,
	}
}

func suffixPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\d+)$`)
}

// LikePattern escapes prefix for use in `LIKE ? ESCAPE '\'` and appends the
// trailing wildcard.
func LikePattern(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}
