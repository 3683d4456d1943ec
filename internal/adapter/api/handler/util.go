package handler

import (
	"time"

	"subleasehub/pkg/errors"
)

const dateLayout = "2006-01-02"

func parseDate(name, value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.BadRequest(name+" must be a date (YYYY-MM-DD)", err)
	}
	return t, nil
}

func parseOptionalDate(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(name, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
