package config

import (
	"fmt"
	"strings"
	"time"

	"git.home.luguber.info/inful/dailyreport/internal/foundation/errors"
)

// Validate checks a configuration with defaults applied.
func Validate(cfg *Config) error {
	if err := validateArchive(cfg); err != nil {
		return err
	}
	for _, name := range cfg.CarrySections {
		if strings.TrimSpace(name) == "" {
			return invalid("carry_sections", "section names must not be empty")
		}
	}
	if _, _, err := ParseClock(cfg.Schedule.At); err != nil {
		return invalid("schedule.at", err.Error())
	}
	if _, err := cfg.Location(); err != nil {
		return invalid("schedule.timezone", err.Error())
	}
	if _, err := logLevelNormalizer.NormalizeStrict("logging.level", string(cfg.Logging.Level)); err != nil {
		return invalid("logging.level", err.Error())
	}
	if _, err := logFormatNormalizer.NormalizeStrict("logging.format", string(cfg.Logging.Format)); err != nil {
		return invalid("logging.format", err.Error())
	}
	return nil
}

func validateArchive(cfg *Config) error {
	probe := time.Date(2009, time.November, 10, 23, 0, 0, 0, time.UTC).Format(cfg.Archive.DateFormat)
	if probe == cfg.Archive.DateFormat {
		return invalid("archive.date_format", "layout contains no date fields")
	}
	if strings.ContainsAny(probe, `/\`) {
		return invalid("archive.date_format", "layout must not produce path separators")
	}
	return nil
}

// ParseClock parses an "HH:MM" time of day.
func ParseClock(s string) (hour, minute uint, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", s)
	}
	return uint(t.Hour()), uint(t.Minute()), nil
}

// Location resolves schedule.timezone, defaulting to the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Schedule.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Schedule.Timezone)
}

func invalid(field, reason string) error {
	return errors.ValidationError("invalid configuration").
		WithContext("field", field).
		WithContext(errors.HintKey, fmt.Sprintf("%s: %s", field, reason)).
		Build()
}
