package types

import (
	"fmt"
	"strings"
	"time"
)

// BirthdayLayout is the date layout for birthdays, DD.MM.YYYY.
const BirthdayLayout = "02.01.2006"

// PhoneLength is the required number of digits in a phone number.
const PhoneLength = 10

// ParseName validates a contact name. Returns ErrRequiredField if the name
// is empty or whitespace-only. The name is returned unmodified; leading and
// trailing whitespace is preserved as entered.
func ParseName(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("name: %w", ErrRequiredField)
	}
	return value, nil
}

// ParsePhone validates a phone number. Returns ErrFieldFormat unless the
// value is exactly PhoneLength ASCII decimal digits.
func ParsePhone(value string) (string, error) {
	if len(value) != PhoneLength {
		return "", fmt.Errorf("phone %q: expected %d digits: %w", value, PhoneLength, ErrFieldFormat)
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return "", fmt.Errorf("phone %q: expected %d digits: %w", value, PhoneLength, ErrFieldFormat)
		}
	}
	return value, nil
}

// ParseBirthday validates a birthday string. Returns ErrFieldFormat unless
// the value parses as DD.MM.YYYY. The canonical DD.MM.YYYY rendering is
// returned.
func ParseBirthday(value string) (string, error) {
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return "", fmt.Errorf("birthday %q: expected DD.MM.YYYY: %w", value, ErrFieldFormat)
	}
	return t.Format(BirthdayLayout), nil
}
