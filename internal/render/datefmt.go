package render

import (
	"fmt"
	"strings"
	"time"
)

var timestampLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// FormatValue formats value with a .NET-style custom date pattern when it
// parses as a timestamp (RFC 3339, "2006-01-02 15:04:05" or "2006-01-02").
// Other values are returned unchanged.
func FormatValue(value, format string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return FormatTime(t, format)
		}
	}
	return value
}

// dateTokens is ordered so that longer tokens win over their prefixes.
var dateTokens = []struct {
	token  string
	format func(t time.Time) string
}{
	{"yyyy", func(t time.Time) string { return fmt.Sprintf("%04d", t.Year()) }},
	{"yy", func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) }},
	{"MMMM", func(t time.Time) string { return t.Month().String() }},
	{"MMM", func(t time.Time) string { return t.Month().String()[:3] }},
	{"MM", func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) }},
	{"M", func(t time.Time) string { return fmt.Sprint(int(t.Month())) }},
	{"dddd", func(t time.Time) string { return t.Weekday().String() }},
	{"ddd", func(t time.Time) string { return t.Weekday().String()[:3] }},
	{"dd", func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) }},
	{"d", func(t time.Time) string { return fmt.Sprint(t.Day()) }},
	{"HH", func(t time.Time) string { return fmt.Sprintf("%02d", t.Hour()) }},
	{"H", func(t time.Time) string { return fmt.Sprint(t.Hour()) }},
	{"hh", func(t time.Time) string { return fmt.Sprintf("%02d", hour12(t)) }},
	{"h", func(t time.Time) string { return fmt.Sprint(hour12(t)) }},
	{"mm", func(t time.Time) string { return fmt.Sprintf("%02d", t.Minute()) }},
	{"m", func(t time.Time) string { return fmt.Sprint(t.Minute()) }},
	{"ss", func(t time.Time) string { return fmt.Sprintf("%02d", t.Second()) }},
	{"s", func(t time.Time) string { return fmt.Sprint(t.Second()) }},
	{"fff", func(t time.Time) string { return fmt.Sprintf("%03d", t.Nanosecond()/1e6) }},
	{"ff", func(t time.Time) string { return fmt.Sprintf("%02d", t.Nanosecond()/1e7) }},
	{"f", func(t time.Time) string { return fmt.Sprint(t.Nanosecond() / 1e8) }},
	{"tt", func(t time.Time) string { return t.Format("PM") }},
	{"zzz", func(t time.Time) string { return t.Format("-07:00") }},
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

// FormatTime renders t with a .NET-style custom pattern. Text in single or
// double quotes and characters escaped with '\' are copied literally, as is
// anything that is not a token.
func FormatTime(t time.Time, format string) string {
	var out strings.Builder
	for i := 0; i < len(format); {
		c := format[i]
		if c == '\\' && i+1 < len(format) {
			out.WriteByte(format[i+1])
			i += 2
			continue
		}
		if c == '\'' || c == '"' {
			end := strings.IndexByte(format[i+1:], c)
			if end < 0 {
				out.WriteString(format[i+1:])
				break
			}
			out.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}
		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(format[i:], tok.token) {
				out.WriteString(tok.format(t))
				i += len(tok.token)
				matched = true
				break
			}
		}
		if !matched {
			out.WriteByte(c)
			i++
		}
	}
	return out.String()
}
