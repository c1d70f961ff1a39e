package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// ValueDelimiter separates the values of a multi-valued attribute.
	ValueDelimiter = `\`

	dateOutputLayout = "02/01/2006"
)

// FormatDate reformats a DICOM date to "dd/mm/yyyy".
//
// Accepted encodings are dotted ("dd.mm.yyyy" when the first field has at
// most two characters, "yyyy.mm.dd" otherwise), slashed ("dd/mm/yyyy") and
// packed digits ("yyyymmdd"). Anything else yields "".
func FormatDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	var layout string
	switch {
	case strings.Contains(value, "."):
		if len(strings.SplitN(value, ".", 2)[0]) <= 2 {
			layout = "02.01.2006"
		} else {
			layout = "2006.01.02"
		}
	case strings.Contains(value, "/"):
		layout = "02/01/2006"
	default:
		layout = "20060102"
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return ""
	}
	return t.Format(dateOutputLayout)
}

// FormatTime reformats a DICOM time to "hh:mm:ss".
//
// Accepted encodings: "hh:mm:ss.frac", "hh:mm:ss", "hh.mm.ss", packed
// "hhmmss" (also "hhmm" and "hh") optionally followed by ".frac". Fractional
// seconds are truncated. Anything else yields "".
func FormatTime(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	dots := strings.Count(value, ".")
	colons := strings.Count(value, ":")

	switch {
	case colons >= 1:
		parts := strings.Split(value, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return ""
		}
		sec := "0"
		if len(parts) == 3 {
			sec = parts[2]
		}
		if strings.Contains(sec, ".") {
			f, err := strconv.ParseFloat(sec, 64)
			if err != nil {
				return ""
			}
			sec = strconv.Itoa(int(f))
		}
		return clock(parts[0], parts[1], sec)
	case dots == 1:
		packed := strings.SplitN(value, ".", 2)
		if !isDigits(packed[1]) {
			return ""
		}
		return packedClock(packed[0])
	case dots == 2:
		parts := strings.Split(value, ".")
		return clock(parts[0], parts[1], parts[2])
	case dots > 2:
		return ""
	default:
		return packedClock(value)
	}
}

func packedClock(value string) string {
	if !isDigits(value) {
		return ""
	}
	switch len(value) {
	case 2:
		return clock(value, "0", "0")
	case 4:
		return clock(value[0:2], value[2:4], "0")
	case 6:
		return clock(value[0:2], value[2:4], value[4:6])
	}
	return ""
}

func clock(h, m, s string) string {
	hh, err := strconv.Atoi(h)
	if err != nil || hh < 0 || hh > 23 {
		return ""
	}
	mm, err := strconv.Atoi(m)
	if err != nil || mm < 0 || mm > 59 {
		return ""
	}
	ss, err := strconv.Atoi(s)
	if err != nil || ss < 0 || ss > 59 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SplitValues splits a multi-valued attribute on the backslash delimiter
// and trims padding from every value.
func SplitValues(raw string) []string {
	parts := strings.Split(raw, ValueDelimiter)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParseFloats parses every backslash-separated value of raw.
func ParseFloats(raw string) ([]float64, error) {
	parts := SplitValues(raw)
	values := make([]float64, 0, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d of %q", i, raw)
		}
		values = append(values, f)
	}
	return values, nil
}

func parseInt(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

func parseFloat(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

// normalizeAge turns "045Y" into "45"; ages in other units are returned
// as they are.
func normalizeAge(raw string) string {
	age := strings.SplitN(raw, "Y", 2)[0]
	if n, err := parseInt(age); err == nil {
		return strconv.Itoa(n)
	}
	return age
}
