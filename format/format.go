package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Supermarket-List/create-list/models"
)

var nonDigits = regexp.MustCompile(`\D`)

// CapitalizeWords uppercases the first letter of every word and lowercases
// the rest, accent-aware (e.g. "água" -> "Água").
func CapitalizeWords(s string) string {
	// cases.Caser is stateful, so build one per call.
	return cases.Title(language.BrazilianPortuguese).String(s)
}

// MaskCurrency re-derives the currency display string from the digits of
// raw, treating them as cents: "1050" -> "R$ 10,50". Every keystroke goes
// through this, so the field never holds anything but "R$ D,DD".
// An input with no digits clears the field.
func MaskCurrency(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return ""
	}
	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("R$ %d,%02d", cents/100, cents%100)
}

// ToDecimal is the inverse of MaskCurrency: strips the "R$ " prefix,
// swaps the decimal comma for a period, and parses the value.
// Returns 0 for anything unparseable.
func ToDecimal(display string) float64 {
	s := strings.TrimPrefix(display, "R$ ")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// MaskPhone strips non-digits and, once exactly 11 digits are present,
// formats them as "DD DDDDD-DDDD". Anything shorter (or longer) stays a
// plain digit string.
func MaskPhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) != 11 {
		return digits
	}
	return fmt.Sprintf("%s %s-%s", digits[0:2], digits[2:7], digits[7:11])
}

// Total sums valor*quantidade over the items, formatted to two decimals
// ("25.50"). Recomputed from scratch on every call.
func Total(itens []models.Item) string {
	var total float64
	for _, item := range itens {
		total += item.Valor * float64(item.Quantidade)
	}
	return strconv.FormatFloat(total, 'f', 2, 64)
}

// TotalBRL is Total in display form: "R$ 25,50".
func TotalBRL(itens []models.Item) string {
	return "R$ " + strings.ReplaceAll(Total(itens), ".", ",")
}

// BRL renders a single value for display: 10.5 -> "R$ 10,50".
func BRL(v float64) string {
	return "R$ " + strings.ReplaceAll(strconv.FormatFloat(v, 'f', 2, 64), ".", ",")
}
