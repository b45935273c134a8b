package aggregation

import (
	"strings"
	"time"
)

// Locale selects the language of weekday labels on the chart.
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

var shortWeekdays = map[Locale][7]string{
	LocaleES: {"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	LocaleEN: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

// ParseLocale accepts tags like "es", "es-AR" or "en_US". Unknown languages fall back to Spanish.
func ParseLocale(tag string) Locale {
	lang := strings.ToLower(tag)
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	if _, ok := shortWeekdays[Locale(lang)]; ok {
		return Locale(lang)
	}
	return LocaleES
}

func (l Locale) ShortWeekday(d time.Weekday) string {
	names, ok := shortWeekdays[l]
	if !ok {
		names = shortWeekdays[LocaleES]
	}
	return names[d]
}
