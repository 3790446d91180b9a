package albumfile

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp converts a tracklist timestamp into a duration.
//
// Two forms are accepted:
//   - MM:SS: minutes and seconds; minutes may exceed 59 ("90:00" is
//     ninety minutes in)
//   - H:MM:SS: hours, minutes and seconds; minutes and seconds must
//     both be below 60
//
// Seconds are always limited to 0-59. Fields are plain digits; signs,
// fractions and unit suffixes are rejected.
//
// Example:
//
//	ParseTimestamp("3:58")    // 3m58s
//	ParseTimestamp("1:02:45") // 1h2m45s
func ParseTimestamp(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("bad timestamp %q: want MM:SS or H:MM:SS", s)
	}

	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := parseDigits(part)
		if err != nil {
			return 0, fmt.Errorf("bad timestamp %q: %w", s, err)
		}
		nums[i] = n
	}

	var h, m, sec int
	if len(parts) == 2 {
		m, sec = nums[0], nums[1]
	} else {
		h, m, sec = nums[0], nums[1], nums[2]
		if m > 59 {
			return 0, fmt.Errorf("bad timestamp %q: minutes out of range", s)
		}
	}
	if sec > 59 {
		return 0, fmt.Errorf("bad timestamp %q: seconds out of range", s)
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second, nil
}

// FormatTimestamp renders a duration the way tracklists write it:
// M:SS below an hour, H:MM:SS from an hour up. Fractions of a second
// are rounded to the nearest second.
func FormatTimestamp(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// parseDigits is strconv.Atoi restricted to unsigned digit runs.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty field")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a number", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}
