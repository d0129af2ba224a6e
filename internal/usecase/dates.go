package usecase

import (
	"strings"
	"time"
)

// Date layouts seen in the funding data, tried in order. Day-first wins for
// ambiguous values such as 05/09/2019.
var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"01/02/2006",
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
