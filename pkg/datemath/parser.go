// Package datemath finds relative dates ("tomorrow", "بعد 3 أيام",
// "in 2 hours") inside reminder text.
package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultHour is when an all-day reminder fires.
const DefaultHour = 9

var (
	englishIn   = regexp.MustCompile(`\bin (\d+|an|a) (minute|minutes|hour|hours|day|days|week|weeks|month|months)\b`)
	englishNext = regexp.MustCompile(`\bnext (monday|tuesday|wednesday|thursday|friday|saturday|sunday|week)\b`)
	arabicIn    = regexp.MustCompile(`بعد ?(\d+)? ?(دقيقة|دقائق|ساعة|ساعات|يوم|أيام|ايام|أسبوع|اسبوع|أسابيع|اسابيع|شهر|أشهر|اشهر)`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	// Longer phrases first so "بعد غد" is not read as "غد".
	dayWords = []struct {
		phrase string
		days   int
	}{
		{"day after tomorrow", 2},
		{"بعد غد", 2},
		{"tomorrow", 1},
		{"غداً", 1},
		{"غدا", 1},
		{"بكرة", 1},
		{"بكره", 1},
		{"today", 0},
		{"اليوم", 0},
	}
)

// Parser resolves relative dates in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Riyadh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Find returns the first relative date mentioned in text, resolved against base.
// Minute and hour offsets are exact; anything a day or longer fires at DefaultHour.
func (p *Parser) Find(text string, base time.Time) (Result, bool) {
	text = strings.ToLower(text)

	if m := englishIn.FindStringSubmatch(text); m != nil {
		n := 1
		if v, err := strconv.Atoi(m[1]); err == nil {
			n = v
		}
		return p.offset(base, n, m[2], m[0])
	}

	if m := arabicIn.FindStringSubmatch(text); m != nil {
		n := 1
		if v, err := strconv.Atoi(m[1]); err == nil {
			n = v
		}
		return p.offset(base, n, arabicUnit(m[2]), m[0])
	}

	if m := englishNext.FindStringSubmatch(text); m != nil {
		if m[1] == "week" {
			return p.day(base.AddDate(0, 0, 7), m[0]), true
		}
		target := weekdays[m[1]]
		daysUntil := int(target - base.In(p.location).Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return p.day(base.AddDate(0, 0, daysUntil), m[0]), true
	}

	for _, w := range dayWords {
		if strings.Contains(text, w.phrase) {
			return p.day(base.AddDate(0, 0, w.days), w.phrase), true
		}
	}

	return Result{}, false
}

func (p *Parser) offset(base time.Time, n int, unit, phrase string) (Result, bool) {
	base = base.In(p.location)
	switch strings.TrimSuffix(unit, "s") {
	case "minute":
		return Result{At: base.Add(time.Duration(n) * time.Minute), Phrase: phrase}, true
	case "hour":
		return Result{At: base.Add(time.Duration(n) * time.Hour), Phrase: phrase}, true
	case "day":
		return p.day(base.AddDate(0, 0, n), phrase), true
	case "week":
		return p.day(base.AddDate(0, 0, 7*n), phrase), true
	case "month":
		return p.day(base.AddDate(0, n, 0), phrase), true
	}
	return Result{}, false
}

// day returns DefaultHour on the given day in the parser's timezone.
func (p *Parser) day(t time.Time, phrase string) Result {
	t = t.In(p.location)
	return Result{
		At:     time.Date(t.Year(), t.Month(), t.Day(), DefaultHour, 0, 0, 0, p.location),
		AllDay: true,
		Phrase: phrase,
	}
}

func arabicUnit(u string) string {
	switch u {
	case "دقيقة", "دقائق":
		return "minute"
	case "ساعة", "ساعات":
		return "hour"
	case "يوم", "أيام", "ايام":
		return "day"
	case "أسبوع", "اسبوع", "أسابيع", "اسابيع":
		return "week"
	default:
		return "month"
	}
}
