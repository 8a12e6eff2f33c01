package ofximport

import (
	"errors"
	"time"
)

const (
	dateFormat     = "20060102"
	dateTimeFormat = "20060102150405"
)

// ParseDate parses the given OFX formatted date string to a time.Time object.
//
// Strings shorter than 14 characters carry date precision only and parse as
// YYYYMMDD. Longer strings parse their first 14 characters as
// YYYYMMDDhhmmss; any trailing fraction or timezone offset is ignored and no
// timezone conversion is performed, values stay institution local.
func ParseDate(d string) (*time.Time, error) {
	if len(d) < 14 {
		if len(d) < 8 {
			return nil, errors.New("error - date string can not be parsed")
		}
		t, err := time.Parse(dateFormat, d[:8])
		if err != nil {
			return nil, errors.New("error - date string can not be parsed")
		}
		return &t, nil
	}
	t, err := time.Parse(dateTimeFormat, d[:14])
	if err != nil {
		return nil, errors.New("error - date string can not be parsed")
	}
	return &t, nil
}

// DateOnly truncates the given time to date precision.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
