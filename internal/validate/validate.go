package validate

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/rs/zerolog/log"
)

// ErrInvalidField signals a raw value that does not match its field rule.
var ErrInvalidField = errors.New("invalid field")

// Field names accepted by Contact. They mirror the columns of the contacts
// table.
const (
	FieldName      = "Name"
	FieldLastname  = "Lastname"
	FieldPhone     = "Phone"
	FieldDirection = "Direction"
	FieldEmail     = "Email"
	FieldWeb       = "Web"
)

// FieldError reports which field failed and the raw value that was offered.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

func (e *FieldError) Unwrap() error { return ErrInvalidField }

// Patterns are anchored on both ends so a partial match never passes:
// "J0hn" must be rejected even though "J" alone would satisfy the name rule.
var patterns = map[string]*regexp.Regexp{
	FieldName:     regexp.MustCompile(`^[a-zA-Z\s.]+$`),
	FieldLastname: regexp.MustCompile(`^[a-zA-Z\s.-]+$`),
	FieldPhone:    regexp.MustCompile(`^(\d{3}|\(\d{3}\))?[\s.-]?\d{3}[\s.-]\d{4}(\s*(ext\.?|x)\s*\d{2,5})?$`),
	FieldEmail:    regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9._%+-]+\.[a-zA-Z]{2,4}$`),
	FieldWeb:      regexp.MustCompile(`^(https?://)?(www\.)?[a-zA-Z0-9_%-]+(\.[a-zA-Z0-9_%-]+)*\.[a-zA-Z]{2,5}$`),
}

// maxLengths mirror the column widths of the contacts table.
var maxLengths = map[string]int{
	FieldName:      25,
	FieldLastname:  25,
	FieldPhone:     25,
	FieldDirection: 150,
	FieldEmail:     50,
	FieldWeb:       150,
}

// Field checks a single raw value against the rule for the named field.
// Direction carries only a length bound; fields without a rule pass.
func Field(name, value string) error {
	if max, ok := maxLengths[name]; ok && len(value) > max {
		return &FieldError{Field: name, Value: value}
	}
	pattern, ok := patterns[name]
	if !ok {
		return nil
	}
	if !pattern.MatchString(value) {
		return &FieldError{Field: name, Value: value}
	}
	return nil
}

// Contact validates the raw field mapping for one contact record. Optional
// fields that fail their rule are dropped from the returned mapping and the
// failure is logged; a missing or invalid Name or Lastname fails the record.
func Contact(fields map[string]string) (map[string]string, error) {
	cleaned := make(map[string]string, len(fields))

	for _, name := range []string{FieldName, FieldLastname} {
		value := fields[name]
		if value == "" {
			return nil, &FieldError{Field: name, Value: value}
		}
		if err := Field(name, value); err != nil {
			return nil, err
		}
		cleaned[name] = value
	}

	for _, name := range []string{FieldPhone, FieldDirection, FieldEmail, FieldWeb} {
		value := fields[name]
		if value == "" {
			continue
		}
		if err := Field(name, value); err != nil {
			log.Warn().Str("field", name).Str("value", value).Msg("dropping invalid contact field")
			continue
		}
		cleaned[name] = value
	}

	return cleaned, nil
}
