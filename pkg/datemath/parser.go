package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative or absolute date strings to concrete times and
// time ranges.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// ParseDate converts a date string to an absolute time.Time. It recognizes
// the relative phrases today/now, tomorrow, yesterday, "this week" and
// "next week" (substring match), patterns like "in 3 days" or
// "next monday", and several absolute formats. Anything unrecognized falls
// back to baseTime.
func (p *Parser) ParseDate(text string, baseTime time.Time) time.Time {
	text = strings.ToLower(strings.TrimSpace(text))
	baseTime = baseTime.In(p.location)

	if text == "" {
		return baseTime
	}

	switch text {
	case "today", "now":
		return baseTime
	case "tomorrow":
		return baseTime.AddDate(0, 0, 1)
	case "yesterday":
		return baseTime.AddDate(0, 0, -1)
	}

	if strings.Contains(text, "next week") {
		return baseTime.AddDate(0, 0, 7)
	}
	if strings.Contains(text, "this week") {
		return baseTime
	}

	if strings.HasPrefix(text, "in ") {
		if t, err := p.parseInDuration(text, baseTime); err == nil {
			return t
		}
	}

	if strings.HasPrefix(text, "next ") {
		if t, err := p.parseNextWeekday(text, baseTime); err == nil {
			return t
		}
	}

	for _, layout := range absoluteFormats {
		if t, err := time.ParseInLocation(layout, text, p.location); err == nil {
			return t
		}
	}

	return baseTime
}

// BuildDateFilter converts a date phrase to a concrete time range. Relative
// phrases map to day- or week-aligned ranges (weeks start on Monday). Any
// other text is run through ParseDate and expanded to a one-day range from
// that date's midnight. Empty input yields nil.
func (p *Parser) BuildDateFilter(text string, baseTime time.Time) *DateRange {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	baseTime = baseTime.In(p.location)

	switch text {
	case "today":
		start := p.startOfDay(baseTime)
		return &DateRange{From: start, To: start.AddDate(0, 0, 1)}
	case "tomorrow":
		start := p.startOfDay(baseTime.AddDate(0, 0, 1))
		return &DateRange{From: start, To: start.AddDate(0, 0, 1)}
	case "this week":
		start := p.startOfWeek(baseTime)
		return &DateRange{From: start, To: start.AddDate(0, 0, 7)}
	case "next week":
		start := p.startOfWeek(baseTime).AddDate(0, 0, 7)
		return &DateRange{From: start, To: start.AddDate(0, 0, 7)}
	}

	start := p.startOfDay(p.ParseDate(text, baseTime))
	return &DateRange{From: start, To: start.AddDate(0, 0, 1)}
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	re := regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	matches := re.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return baseTime.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return baseTime.AddDate(0, 0, amount*7), nil
	case strings.HasPrefix(unit, "month"):
		return baseTime.AddDate(0, amount, 0), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// startOfWeek returns midnight on the Monday of the week containing t.
func (p *Parser) startOfWeek(t time.Time) time.Time {
	t = t.In(p.location)
	// Go counts Sunday as 0; shift so Monday is the week start.
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return p.startOfDay(t.AddDate(0, 0, -daysSinceMonday))
}
