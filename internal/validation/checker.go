// Package validation collects per-field request violations before any store access.
package validation

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/redmonkez12/devconnector-api/internal/apperr"
)

// DateLayout is the calendar date format accepted for experience and education ranges.
const DateLayout = "2006-01-02"

// Checker accumulates issues; the zero value is ready to use.
type Checker struct {
	issues []apperr.Issue
}

func (c *Checker) add(param, msg string) {
	c.issues = append(c.issues, apperr.Issue{Msg: msg, Param: param})
}

// Required fails when value is empty after trimming.
func (c *Checker) Required(param, value, msg string) {
	if strings.TrimSpace(value) == "" {
		c.add(param, msg)
	}
}

// Email fails when value is not a bare address.
func (c *Checker) Email(param, value, msg string) {
	if len(value) > 254 {
		c.add(param, msg)
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		c.add(param, msg)
	}
}

// MinLength fails when value has fewer than n characters.
func (c *Checker) MinLength(param, value string, n int, msg string) {
	if utf8.RuneCountInString(value) < n {
		c.add(param, msg)
	}
}

// Date fails when value is present but not a calendar date or RFC 3339 timestamp.
func (c *Checker) Date(param, value, msg string) {
	if value == "" {
		return
	}
	if _, err := ParseDate(value); err != nil {
		c.add(param, msg)
	}
}

// Issues returns the collected issues.
func (c *Checker) Issues() []apperr.Issue {
	return c.issues
}

// Err returns a validation error listing every issue, or nil.
func (c *Checker) Err() error {
	if len(c.issues) == 0 {
		return nil
	}
	return apperr.Invalid(c.issues)
}

// ParseDate accepts "2006-01-02" or RFC 3339.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
