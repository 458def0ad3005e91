package normalize

import "time"

// Layouts the billing API emits, most specific first.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses an API timestamp. Returns nil when s is empty or does not
// match any known layout; date fields only materialize for truthy sources.
func ParseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// Time parses an optional timestamp field.
func Time(s *string) *time.Time {
	if s == nil {
		return nil
	}
	return ParseTime(*s)
}

// FormatDate renders a payload date (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateTime renders a payload datetime (YYYY-MM-DD HH:MM:SS).
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
