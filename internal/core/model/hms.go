package model

import (
	"fmt"
	"strings"
)

// FormatElapsed renders seconds as HH:MM:SS. Hours are not wrapped at 24 and
// negative values get a single leading minus sign.
func FormatElapsed(totalSeconds int64) string {
	sign := ""
	abs := totalSeconds
	if totalSeconds < 0 {
		sign = "-"
		abs = -totalSeconds
	}
	hours := abs / 3600
	minutes := (abs % 3600) / 60
	seconds := abs % 60
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
}

// ParseHMS reads an "HH:MM:SS" duration. Each field uses its leading decimal
// digits and falls back to 0, so garbage never fails. ok is false only when the
// text does not have exactly three colon separated fields.
func ParseHMS(text string) (int64, bool) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 3 {
		return 0, false
	}
	hours := leadingInt(parts[0])
	minutes := leadingInt(parts[1])
	seconds := leadingInt(parts[2])
	return hours*3600 + minutes*60 + seconds, true
}

// maxField keeps hours*3600 well inside int64.
const maxField = int64(1) << 40

func leadingInt(field string) int64 {
	field = strings.TrimSpace(field)
	field = strings.TrimPrefix(field, "+")
	var value int64
	for _, r := range field {
		if r < '0' || r > '9' {
			break
		}
		value = value*10 + int64(r-'0')
		if value > maxField {
			return maxField
		}
	}
	return value
}
