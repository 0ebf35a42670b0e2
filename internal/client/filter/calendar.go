package filter

import (
	"strconv"

	"github.com/dmitrijs2005/calcms/internal/client/models"
)

const (
	FallbackDay   = "--"
	FallbackMonth = "---"
)

// CalendarDay renders a date as day-of-month and short month name
// ("15", "Mar"). Unparseable input yields the fallbacks.
func CalendarDay(date string) (day, month string) {
	t, ok := models.ParseDate(date)
	if !ok {
		return FallbackDay, FallbackMonth
	}
	return strconv.Itoa(t.Day()), t.Month().String()[:3]
}
