package textnorm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DateOrder disambiguates numeric dates where both day and month parts
// could be a month.
type DateOrder int

const (
	OrderUnknown DateOrder = iota
	OrderDayFirst
	OrderMonthFirst
)

var (
	reISODate     = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	reNumericDate = regexp.MustCompile(`\b(\d{1,2})[/.-](\d{1,2})[/.-](\d{4})\b`)
	reTextualDate = regexp.MustCompile(`(?i)\b(\d{1,2})(?:er|st|nd|rd|th)?\s+([a-zéûôùî]+)\.?\s+(\d{4})\b`)
	reEnglishDate = regexp.MustCompile(`(?i)\b([a-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)

	// contextual markers that indicate a month-first (US/English) layout
	reMonthFirstHint = regexp.MustCompile(`(?i)\bdated\b|\bsale\s+no\b|\bsale\s+#`)

	monthNames = map[string]int{
		"janvier": 1, "fevrier": 2, "février": 2, "mars": 3, "avril": 4,
		"mai": 5, "juin": 6, "juillet": 7, "aout": 8, "août": 8,
		"septembre": 9, "octobre": 10, "novembre": 11, "decembre": 12, "décembre": 12,
		"janv": 1, "fevr": 2, "févr": 2, "avr": 4, "juil": 7, "sept": 9, "oct": 10, "nov": 11, "dec": 12, "déc": 12,
		"january": 1, "february": 2, "march": 3, "april": 4, "may": 5, "june": 6,
		"july": 7, "august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
		"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6, "jul": 7, "aug": 8, "sep": 9,
	}
)

// DeriveDateOrder inspects surrounding text for markers that resolve the
// DD/MM vs MM/DD ambiguity. English sale-catalog phrasing implies
// month-first; absent any marker the order stays unknown.
func DeriveDateOrder(context string) DateOrder {
	if reMonthFirstHint.MatchString(context) {
		return OrderMonthFirst
	}
	return OrderUnknown
}

// ParseDate extracts a date from raw text and returns it as YYYY-MM-DD.
// For numeric ##/##/YYYY dates where both parts could be a month, the
// result is ok=false unless order resolves the ambiguity: the caller must
// never receive a silently swapped day/month.
func ParseDate(raw string, order DateOrder) (string, bool) {
	if m := reISODate.FindStringSubmatch(raw); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return formatDate(year, month, day)
	}

	if m := reNumericDate.FindStringSubmatch(raw); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		switch {
		case first > 12 && second <= 12:
			return formatDate(year, second, first)
		case second > 12 && first <= 12:
			return formatDate(year, first, second)
		case first <= 12 && second <= 12:
			switch order {
			case OrderMonthFirst:
				return formatDate(year, first, second)
			case OrderDayFirst:
				return formatDate(year, second, first)
			default:
				return "", false // ambiguous and no hint
			}
		}
		return "", false
	}

	if m := reTextualDate.FindStringSubmatch(raw); m != nil {
		if month, ok := monthNames[strings.ToLower(m[2])]; ok {
			day, _ := strconv.Atoi(m[1])
			year, _ := strconv.Atoi(m[3])
			return formatDate(year, month, day)
		}
	}
	if m := reEnglishDate.FindStringSubmatch(raw); m != nil {
		if month, ok := monthNames[strings.ToLower(m[1])]; ok {
			day, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			return formatDate(year, month, day)
		}
	}

	return "", false
}

func formatDate(year, month, day int) (string, bool) {
	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
