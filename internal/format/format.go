package format

import (
    "strings"
    "time"
)

// Present is shown in place of an open-ended end date.
const Present = "Present"

var dateLayouts = []string{
    "2006-01-02",
    "2006-01",
    "2006",
}

// ParseDate parses the partial dates used in resume data ("2021", "2021-04", "2021-04-15").
// The second return value reports the precision: "year", "month" or "day".
func ParseDate(v string) (time.Time, string, bool) {
    v = strings.TrimSpace(v)
    if v == "" {
        return time.Time{}, "", false
    }
    precision := []string{"day", "month", "year"}
    for i, layout := range dateLayouts {
        if t, err := time.Parse(layout, v); err == nil {
            return t, precision[i], true
        }
    }
    return time.Time{}, "", false
}

// FmtDate formats a partial date at the precision it was written in.
// Example: FmtDate("2021-04") => "Apr 2021"
func FmtDate(v string) string {
    t, precision, ok := ParseDate(v)
    if !ok {
        return strings.TrimSpace(v)
    }
    switch precision {
    case "year":
        return t.Format("2006")
    default:
        return t.Format("Jan 2006")
    }
}

// DateRange renders "start - end", using Present when end is empty.
// Example: DateRange("2018-06", "") => "Jun 2018 - Present"
func DateRange(start, end string) string {
    s := FmtDate(start)
    e := FmtDate(end)
    if e == "" {
        e = Present
    }
    if s == "" {
        return e
    }
    return s + " - " + e
}

// LastModified returns the latest date mentioned in the given values, or zero when none parse.
func LastModified(values ...string) time.Time {
    var latest time.Time
    for _, v := range values {
        if t, _, ok := ParseDate(v); ok && t.After(latest) {
            latest = t
        }
    }
    return latest
}
