package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves due-date tokens emitted by the chat classifier
// ("today", "next_week", "in_3_days", "by_date:12/25", "by_day:friday")
// into absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "UTC" or "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var inDaysRe = regexp.MustCompile(`^in_(\d+)_days?$`)

// Parse converts a due-date token to an absolute time.Time. The baseTime is
// the reference point (usually time.Now()). Spaces are accepted in place of
// underscores so raw phrases resolve the same way as normalized tokens.
func (p *Parser) Parse(token string, baseTime time.Time) (time.Time, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	token = strings.ReplaceAll(token, " ", "_")

	switch token {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "next_week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "next_month":
		return p.startOfDay(baseTime.AddDate(0, 1, 0)), nil
	}

	if m := inDaysRe.FindStringSubmatch(token); m != nil {
		days, _ := strconv.Atoi(m[1])
		return p.startOfDay(baseTime.AddDate(0, 0, days)), nil
	}

	if rest, ok := strings.CutPrefix(token, "by_day:"); ok {
		return p.nextWeekday(rest, baseTime)
	}
	if rest, ok := strings.CutPrefix(token, "on_date:"); ok {
		return p.calendarDate(rest, baseTime)
	}
	if rest, ok := strings.CutPrefix(token, "by_date:"); ok {
		return p.calendarDate(rest, baseTime)
	}

	return time.Time{}, fmt.Errorf("unknown due-date token: %q", token)
}

func (p *Parser) nextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(target - baseTime.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// calendarDate parses "12/25", "12-25", "12/25/2026" style dates. A date
// without a year resolves to the next occurrence from baseTime.
func (p *Parser) calendarDate(raw string, baseTime time.Time) (time.Time, error) {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 2 && len(parts) != 3 {
		return time.Time{}, fmt.Errorf("unparseable date: %q", raw)
	}

	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("unparseable date: %q", raw)
	}

	var year int
	if len(parts) == 3 {
		year, err1 = strconv.Atoi(parts[2])
		if err1 != nil {
			return time.Time{}, fmt.Errorf("unparseable date: %q", raw)
		}
		if year < 100 {
			year += 2000
		}
	} else {
		year = baseTime.In(p.location).Year()
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if len(parts) == 2 && t.Before(p.startOfDay(baseTime)) {
		t = t.AddDate(1, 0, 0)
	}
	return t, nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
