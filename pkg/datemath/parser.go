package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parser converts relative date phrases to the start of a day in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone, e.g. "Asia/Ho_Chi_Minh".
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

// In returns base converted into the parser's location.
func (p *Parser) In(base time.Time) time.Time {
	return base.In(p.location)
}

// Parse resolves a phrase against base. Accepted forms: "today", "tomorrow",
// "yesterday", "in N days|weeks|months", "next <weekday>" and ISO dates
// (YYYY-MM-DD). The result is always the start of a day.
func (p *Parser) Parse(phrase string, base time.Time) (time.Time, error) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	base = base.In(p.location)

	switch phrase {
	case "", "today":
		return StartOfDay(base), nil
	case "tomorrow":
		return AddDays(base, 1), nil
	case "yesterday":
		return AddDays(base, -1), nil
	}

	if strings.HasPrefix(phrase, "in ") {
		return p.parseInDuration(phrase, base)
	}
	if strings.HasPrefix(phrase, "next ") {
		return p.parseNextWeekday(phrase, base)
	}

	if d, err := time.ParseInLocation(time.DateOnly, phrase, p.location); err == nil {
		return d, nil
	}
	return base, fmt.Errorf("unrecognised date %q", phrase)
}

func (p *Parser) parseInDuration(phrase string, base time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(phrase)
	if len(matches) != 3 {
		return base, fmt.Errorf("invalid duration format: %q", phrase)
	}

	amount, _ := strconv.Atoi(matches[1])
	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return AddDays(base, amount), nil
	case strings.HasPrefix(unit, "week"):
		return AddDays(base, amount*7), nil
	default:
		return StartOfDay(base.AddDate(0, amount, 0)), nil
	}
}

func (p *Parser) parseNextWeekday(phrase string, base time.Time) (time.Time, error) {
	name := strings.TrimPrefix(phrase, "next ")
	target, ok := weekdayNames[name]
	if !ok {
		return base, fmt.Errorf("unknown weekday: %q", name)
	}

	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return AddDays(base, daysUntil), nil
}

// ParseWeekday accepts a full or three-letter English weekday name.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for name, wd := range weekdayNames {
		if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday: %q", s)
}
