package ui

import (
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders a USD amount compactly: $950, $12.5K, $1.8M, $2.4B
func FormatAmount(v float64) string {
	if v == 0 {
		return "-"
	}
	abs := math.Abs(v)
	sign := ""
	if v < 0 {
		sign = "-"
	}

	units := []struct {
		size   float64
		suffix string
	}{
		{1e9, "B"},
		{1e6, "M"},
		{1e3, "K"},
	}
	for _, u := range units {
		if abs >= u.size {
			return sign + "$" + trimZeros(strconv.FormatFloat(abs/u.size, 'f', 1, 64)) + u.suffix
		}
	}
	return sign + "$" + trimZeros(strconv.FormatFloat(abs, 'f', 0, 64))
}

// FormatCount renders an integer with thousands separators
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatList joins values, or renders a dash for none
func FormatList(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

func trimZeros(s string) string {
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}
