package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Moment is a resolved time phrase. AllDay moments carry midnight.
type Moment struct {
	At     time.Time
	AllDay bool
}

var clockRe = regexp.MustCompile(`(?i)^(?:at\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)

// Resolve maps a task's time phrase to a moment. Clock times ("at 9 AM")
// land on the base day at that time; day phrases resolve to an all-day
// result. ok is false for phrases without a specific day such as
// "this week".
func (p *Parser) Resolve(phrase string, base time.Time) (Moment, bool) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return Moment{}, false
	}

	if m := clockRe.FindStringSubmatch(phrase); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return Moment{}, false
		}
		hour %= 12
		if strings.EqualFold(m[3], "pm") {
			hour += 12
		}
		day := p.StartOfDay(base)
		return Moment{At: day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)}, true
	}

	day, err := p.Parse(phrase, base)
	if err != nil {
		return Moment{}, false
	}
	return Moment{At: day, AllDay: true}, true
}

// SameDay reports whether a and b fall on the same calendar day in the
// parser's timezone.
func (p *Parser) SameDay(a, b time.Time) bool {
	return p.StartOfDay(a).Equal(p.StartOfDay(b))
}
